package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/neuropedapp/clinic-agenda/internal/agenda"
	"github.com/neuropedapp/clinic-agenda/internal/audit"
	"github.com/neuropedapp/clinic-agenda/internal/config"
	"github.com/neuropedapp/clinic-agenda/internal/handlers"
	infraRepo "github.com/neuropedapp/clinic-agenda/internal/infra/repository"
	"github.com/neuropedapp/clinic-agenda/internal/middleware"
	"github.com/neuropedapp/clinic-agenda/internal/timezone"
	ucAppointment "github.com/neuropedapp/clinic-agenda/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	patientRepo := infraRepo.NewPatientGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	agendaLoader := agenda.NewLoader(appointmentRepo, timezone.Location(cfg.Timezone))

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	upcomingUC := ucAppointment.NewListUpcoming(appointmentRepo, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
		deleteAppointmentUC,
		upcomingUC,
		appointmentRepo,
		cfg.Timezone,
	)

	agendaHandler := handlers.NewAgendaHandler(agendaLoader, cfg.Timezone)
	patientHandler := handlers.NewPatientHandler(patientRepo, auditDispatcher, cfg.Timezone)
	dashboardHandler := handlers.NewDashboardHandler(
		patientRepo,
		appointmentRepo,
		upcomingUC,
		cfg.Timezone,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/dashboard", dashboardHandler.Summary)
			secured.GET("/me/agenda", agendaHandler.Show)

			// ------------------------------
			// PATIENTS
			// ------------------------------
			secured.GET("/me/patients", patientHandler.List)
			secured.POST("/me/patients", patientHandler.Create)
			secured.GET("/me/patients/:id", patientHandler.Get)
			secured.PATCH("/me/patients/:id", patientHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.GET("/me/appointments/upcoming", appointmentHandler.Upcoming)
			secured.GET("/me/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
