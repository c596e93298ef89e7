package appointment

import "github.com/neuropedapp/clinic-agenda/internal/httperr"

// ===============================
// Appointment Status
// ===============================

// Status é propositalmente um string aberto: a coluna no banco não é um
// enum fechado e registros legados podem carregar valores fora da lista.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Known informa se o valor pertence ao ciclo de vida conhecido.
// Valores desconhecidos são preservados e tratados como neutros na
// apresentação, nunca rejeitados na leitura.
func (s Status) Known() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal indica que a UI não oferece mais transições a partir daqui.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Transition table
// ===============================

// CanTransition valida a máquina de estados: scheduled é o único estado
// com saídas, e elas levam apenas aos terminais.
func CanTransition(from, to Status) error {
	if from != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	if to != StatusCompleted && to != StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	return CanTransition(current, StatusCompleted)
}

func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}

func InitialStatus() Status {
	return StatusScheduled
}
