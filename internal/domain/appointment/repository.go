package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/agendaservices/salon-agenda/internal/models"
)

// ErrSlotTaken: o índice único parcial (prestador, horário, não cancelado)
// rejeitou a inserção. Dois pedidos concorrentes para o mesmo horário
// nunca entram os dois.
var ErrSlotTaken = errors.New("horário já reservado")

// ListFilter seleciona agendamentos de um prestador. Canceled sempre
// excluídos.
type ListFilter struct {
	// Confirmed nil lista todos; true apenas CONF, false apenas UNCO.
	Confirmed *bool

	// Executed lista apenas CONF com horário já passado.
	Executed bool
	Now      time.Time
}

type Repository interface {
	// -------- Reference data --------
	GetProviderByUsername(
		ctx context.Context,
		username string,
	) (*models.Provider, error)

	ListProviders(ctx context.Context) ([]models.Provider, error)

	GetEstablishmentByName(
		ctx context.Context,
		name string,
	) (*models.Establishment, error)

	GetServiceByName(
		ctx context.Context,
		name string,
	) (*models.Service, error)

	EmploymentExists(
		ctx context.Context,
		providerID uint,
		establishmentID uint,
		serviceID uint,
	) (bool, error)

	// -------- Availability --------
	ListOccupiedTimes(
		ctx context.Context,
		day time.Time,
		policy ExclusionPolicy,
	) ([]time.Time, error)

	HasClientBookingOnDay(
		ctx context.Context,
		clientName string,
		clientEmail string,
		providerID uint,
		establishmentID uint,
		day time.Time,
		excludeID uint,
	) (bool, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		providerID uint,
		filter ListFilter,
	) ([]models.Appointment, error)

	// -------- Loyalty --------
	UpsertLoyalty(
		ctx context.Context,
		clientName string,
		providerID uint,
	) (*models.LoyaltyRecord, error)

	ListLoyalty(
		ctx context.Context,
		providerID uint,
	) ([]models.LoyaltyRecord, error)
}
