package agenda

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/agendaservices/salon-agenda/internal/domain/appointment"
	"github.com/agendaservices/salon-agenda/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListInput struct {
	Username string

	// Confirmed nil = todos; true = CONF; false = UNCO.
	Confirmed *bool

	// Executed = apenas CONF com horário no passado.
	Executed bool
}

type ListAppointments struct {
	repo domain.Repository

	now func() time.Time
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo, now: time.Now}
}

// Execute lista os agendamentos não cancelados de um prestador.
// Username desconhecido devolve lista vazia, não erro.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListInput,
) ([]models.Appointment, error) {

	provider, err := uc.repo.GetProviderByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Appointment{}, nil
		}
		return nil, err
	}

	return uc.repo.ListAppointments(ctx, provider.ID, domain.ListFilter{
		Confirmed: in.Confirmed,
		Executed:  in.Executed,
		Now:       uc.now(),
	})
}

// ======================================================
// GET
// ======================================================

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
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

	return ap, nil
}
