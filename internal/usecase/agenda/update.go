package agenda

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/agendaservices/salon-agenda/internal/domain/appointment"
	"github.com/agendaservices/salon-agenda/internal/fielderr"
	"github.com/agendaservices/salon-agenda/internal/models"
	"github.com/agendaservices/salon-agenda/internal/validators"
)

type UpdateInput struct {
	ID uint

	StartsAt time.Time

	ClientName  string
	ClientEmail string
	ClientPhone string
}

type UpdateAppointment struct {
	repo  domain.Repository
	slots *AvailableSlots

	now func() time.Time
}

func NewUpdateAppointment(
	repo domain.Repository,
	slots *AvailableSlots,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		slots: slots,
		now:   time.Now,
	}
}

// Execute revalida os campos do cliente e, se o horário mudou, o
// conjunto de horários disponíveis — mesmo pipeline da criação. O
// prestador, estabelecimento e serviço do agendamento não mudam.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if ap.Canceled {
		return nil, gorm.ErrRecordNotFound
	}

	verrs := fielderr.New()
	start := in.StartsAt.UTC()

	if !start.Equal(ap.StartsAt.UTC()) {
		if start.Before(uc.now()) {
			verrs.Add("data_horario", "Agendamento não pode ser feito no passado!")
		} else {
			free, err := uc.slots.Execute(ctx, start)
			if err != nil {
				return nil, err
			}
			if !containsTime(free, start) {
				verrs.Add("data_horario", "O horário selecionado não está disponível!")
			}
		}
	}

	exists, err := uc.repo.HasClientBookingOnDay(
		ctx,
		in.ClientName,
		in.ClientEmail,
		ap.ProviderID,
		ap.EstablishmentID,
		start,
		ap.ID,
	)
	if err != nil {
		return nil, err
	}
	if exists {
		verrs.AddNonField("Cada cliente pode ter apenas uma reserva por dia!")
	}

	if validators.PhoneCountryMismatch(in.ClientEmail, in.ClientPhone) {
		verrs.AddNonField(validators.MsgBrazilianEmailForeignPhone)
	}

	for _, msg := range validators.ValidatePhone(in.ClientPhone) {
		verrs.Add("telefone_cliente", msg)
	}

	if !verrs.Empty() {
		return nil, verrs
	}

	ap.StartsAt = start
	ap.ClientName = in.ClientName
	ap.ClientEmail = in.ClientEmail
	ap.ClientPhone = in.ClientPhone

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			conflict := fielderr.New()
			conflict.AddNonField("O horário selecionado não está disponível!")
			return nil, conflict
		}
		return nil, err
	}

	return ap, nil
}
