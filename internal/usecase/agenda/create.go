package agenda

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "github.com/agendaservices/salon-agenda/internal/domain/appointment"
	"github.com/agendaservices/salon-agenda/internal/fielderr"
	"github.com/agendaservices/salon-agenda/internal/models"
	"github.com/agendaservices/salon-agenda/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ProviderUsername  string
	EstablishmentName string
	ServiceName       string

	StartsAt time.Time

	ClientName  string
	ClientEmail string
	ClientPhone string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	slots *AvailableSlots
	log   *zap.Logger

	now func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	slots *AvailableSlots,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		slots: slots,
		log:   log,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida o pedido inteiro antes de persistir, acumulando todas
// as violações independentes em um único fielderr.Errors. A fidelidade
// só é movimentada depois que o agendamento foi gravado.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	verrs := fielderr.New()

	// --------------------------------------------------
	// 1. Resolução de identidades
	// --------------------------------------------------
	provider, err := uc.repo.GetProviderByUsername(ctx, in.ProviderUsername)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		verrs.Add("prestador", "Username incorreto!")
	}

	establishment, err := uc.repo.GetEstablishmentByName(ctx, in.EstablishmentName)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		verrs.Add("estabelecimento", "Estabelecimento não encontrado!")
	}

	service, err := uc.repo.GetServiceByName(ctx, in.ServiceName)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		verrs.Add("servico", "Serviço não encontrado!")
	}

	// --------------------------------------------------
	// 2. Passado + 3. Pertinência ao conjunto de horários
	// --------------------------------------------------
	start := in.StartsAt.UTC()

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

	// --------------------------------------------------
	// 4. Vínculo de trabalho (tripla)
	// --------------------------------------------------
	if provider != nil && establishment != nil && service != nil {
		linked, err := uc.repo.EmploymentExists(
			ctx,
			provider.ID,
			establishment.ID,
			service.ID,
		)
		if err != nil {
			return nil, err
		}
		if !linked {
			verrs.AddNonField("Funcionário, estabelecimento ou serviço incompatíveis ou inexistentes!")
		}
	}

	// --------------------------------------------------
	// 5. Uma reserva por cliente por dia
	// --------------------------------------------------
	if provider != nil && establishment != nil {
		exists, err := uc.repo.HasClientBookingOnDay(
			ctx,
			in.ClientName,
			in.ClientEmail,
			provider.ID,
			establishment.ID,
			start,
			0,
		)
		if err != nil {
			return nil, err
		}
		if exists {
			verrs.AddNonField("Cada cliente pode ter apenas uma reserva por dia!")
		}
	}

	// --------------------------------------------------
	// 6. E-mail brasileiro x prefixo do telefone
	// --------------------------------------------------
	if validators.PhoneCountryMismatch(in.ClientEmail, in.ClientPhone) {
		verrs.AddNonField(validators.MsgBrazilianEmailForeignPhone)
	}

	// --------------------------------------------------
	// 7. Formato do telefone
	// --------------------------------------------------
	for _, msg := range validators.ValidatePhone(in.ClientPhone) {
		verrs.Add("telefone_cliente", msg)
	}

	if !verrs.Empty() {
		return nil, verrs
	}

	// --------------------------------------------------
	// Persistência (estado inicial UNCO)
	// --------------------------------------------------
	ap := &models.Appointment{
		ProviderID:      provider.ID,
		EstablishmentID: establishment.ID,
		ServiceID:       service.ID,
		StartsAt:        start,
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		ClientPhone:     in.ClientPhone,
		State:           string(domain.StateUnconfirmed),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			// corrida perdida entre a checagem e o insert; não é retentado
			conflict := fielderr.New()
			conflict.AddNonField("O horário selecionado não está disponível!")
			return nil, conflict
		}
		return nil, err
	}

	ap.Provider = *provider
	ap.Establishment = *establishment
	ap.Service = *service

	// --------------------------------------------------
	// Fidelidade: efeito colateral estritamente pós-sucesso
	// --------------------------------------------------
	record, err := uc.repo.UpsertLoyalty(ctx, in.ClientName, provider.ID)
	if err != nil {
		uc.log.Error("falha ao movimentar fidelidade",
			zap.String("nome_cliente", in.ClientName),
			zap.Uint("prestador_id", provider.ID),
			zap.Error(err),
		)
	} else {
		uc.log.Info("fidelidade movimentada",
			zap.String("nome_cliente", in.ClientName),
			zap.Int("nivel", record.Level),
		)
	}

	return ap, nil
}

func containsTime(slots []time.Time, t time.Time) bool {
	for _, s := range slots {
		if s.Equal(t) {
			return true
		}
	}
	return false
}
