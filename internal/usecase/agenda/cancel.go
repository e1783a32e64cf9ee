package agenda

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/agendaservices/salon-agenda/internal/domain/appointment"
	"github.com/agendaservices/salon-agenda/internal/models"
)

type CancelAppointment struct {
	repo domain.Repository
}

func NewCancelAppointment(repo domain.Repository) *CancelAppointment {
	return &CancelAppointment{repo: repo}
}

// Execute marca cancelado=true sem remover a linha. O índice parcial de
// unicidade ignora linhas canceladas, então o horário volta a ficar
// disponível imediatamente.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap.Canceled {
		return nil, gorm.ErrRecordNotFound
	}

	domain.Cancel(ap)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
