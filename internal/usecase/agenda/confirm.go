package agenda

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/agendaservices/salon-agenda/internal/domain/appointment"
	"github.com/agendaservices/salon-agenda/internal/models"
)

type ConfirmAppointment struct {
	repo domain.Repository
}

func NewConfirmAppointment(repo domain.Repository) *ConfirmAppointment {
	return &ConfirmAppointment{repo: repo}
}

func (uc *ConfirmAppointment) Execute(
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

	if err := domain.Confirm(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
