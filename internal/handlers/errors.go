package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/neuropedapp/clinic-agenda/internal/httperr"
)

// respondError traduz erros de negócio dos use cases para o status HTTP
// correspondente; qualquer outra falha vira 500.
func respondError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, fallbackCode, fallbackMsg)
		return
	}

	switch code {
	case "not_authenticated":
		httperr.Unauthorized(c, code, "Usuário não autenticado.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Consulta não encontrada.")
	case "patient_not_found":
		httperr.NotFound(c, code, "Paciente não encontrado.")
	case "invalid_state":
		httperr.BadRequest(c, code, "Transição de status inválida.")
	case "invalid_input":
		httperr.BadRequest(c, code, "Dados inválidos.")
	default:
		httperr.BadRequest(c, code, "Operação rejeitada.")
	}
}
