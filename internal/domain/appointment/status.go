package appointment

import (
	"time"

	"github.com/agendaservices/salon-agenda/internal/httperr"
	"github.com/agendaservices/salon-agenda/internal/models"
)

// ===============================
// Appointment State
// ===============================

type State string

const (
	StateUnconfirmed State = "UNCO"
	StateConfirmed   State = "CONF"
	StateExecuted    State = "EXEC"
	StateCanceled    State = "CANC"
)

// ===============================
// Domain Actions
// ===============================

// Confirm move UNCO -> CONF (ação do prestador).
func Confirm(ap *models.Appointment) error {
	if State(ap.State) != StateUnconfirmed || ap.Canceled {
		return httperr.ErrBusiness("invalid_state")
	}

	ap.State = string(StateConfirmed)
	return nil
}

// Cancel é o soft delete: válido a partir de qualquer estado.
// Canceled é terminal e nunca volta a false.
func Cancel(ap *models.Appointment) {
	ap.State = string(StateCanceled)
	ap.Canceled = true
}

// EffectiveState deriva EXEC para agendamentos confirmados cujo
// horário já passou. O estado armazenado não é alterado.
func EffectiveState(ap *models.Appointment, now time.Time) State {
	if State(ap.State) == StateConfirmed && ap.StartsAt.Before(now) {
		return StateExecuted
	}
	return State(ap.State)
}
