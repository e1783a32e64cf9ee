package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/agendaservices/salon-agenda/internal/domain/appointment"
	"github.com/agendaservices/salon-agenda/internal/models"
)

const uniqueViolation = "23505"

type AgendaGormRepository struct {
	db *gorm.DB
}

func NewAgendaGormRepository(db *gorm.DB) *AgendaGormRepository {
	return &AgendaGormRepository{db: db}
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *AgendaGormRepository) GetProviderByUsername(
	ctx context.Context,
	username string,
) (*models.Provider, error) {

	var provider models.Provider
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&provider).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *AgendaGormRepository) ListProviders(
	ctx context.Context,
) ([]models.Provider, error) {

	var providers []models.Provider
	if err := r.db.WithContext(ctx).
		Order("username ASC").
		Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *AgendaGormRepository) GetEstablishmentByName(
	ctx context.Context,
	name string,
) (*models.Establishment, error) {

	var establishment models.Establishment
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&establishment).Error; err != nil {
		return nil, err
	}
	return &establishment, nil
}

func (r *AgendaGormRepository) GetServiceByName(
	ctx context.Context,
	name string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AgendaGormRepository) EmploymentExists(
	ctx context.Context,
	providerID uint,
	establishmentID uint,
	serviceID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where(
			"provider_id = ? AND establishment_id = ? AND service_id = ?",
			providerID, establishmentID, serviceID,
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AgendaGormRepository) ListOccupiedTimes(
	ctx context.Context,
	day time.Time,
	policy domain.ExclusionPolicy,
) ([]time.Time, error) {

	start, end := dayBounds(day)

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("canceled = FALSE AND starts_at >= ? AND starts_at < ?", start, end)

	if policy == domain.ExcludeConfirmed {
		q = q.Where("state = ?", string(domain.StateConfirmed))
	}

	var occupied []time.Time
	if err := q.Order("starts_at ASC").
		Pluck("starts_at", &occupied).Error; err != nil {
		return nil, err
	}

	return occupied, nil
}

func (r *AgendaGormRepository) HasClientBookingOnDay(
	ctx context.Context,
	clientName string,
	clientEmail string,
	providerID uint,
	establishmentID uint,
	day time.Time,
	excludeID uint,
) (bool, error) {

	start, end := dayBounds(day)

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			`canceled = FALSE
				AND client_name = ? AND client_email = ?
				AND provider_id = ? AND establishment_id = ?
				AND starts_at >= ? AND starts_at < ?`,
			clientName, clientEmail,
			providerID, establishmentID,
			start, end,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AgendaGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return translateSlotConflict(err)
	}
	return nil
}

func (r *AgendaGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Establishment").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AgendaGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		return translateSlotConflict(err)
	}
	return nil
}

func (r *AgendaGormRepository) ListAppointments(
	ctx context.Context,
	providerID uint,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Establishment").
		Preload("Service").
		Where("provider_id = ? AND canceled = FALSE", providerID)

	if filter.Executed {
		q = q.Where("state = ? AND starts_at < ?",
			string(domain.StateConfirmed), filter.Now)
	} else if filter.Confirmed != nil {
		state := domain.StateUnconfirmed
		if *filter.Confirmed {
			state = domain.StateConfirmed
		}
		q = q.Where("state = ?", string(state))
	}

	var appointments []models.Appointment
	if err := q.Order("starts_at ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// --------------------------------------------------
// Loyalty
// --------------------------------------------------

func (r *AgendaGormRepository) UpsertLoyalty(
	ctx context.Context,
	clientName string,
	providerID uint,
) (*models.LoyaltyRecord, error) {

	var record models.LoyaltyRecord
	err := r.db.WithContext(ctx).
		Where("client_name = ? AND provider_id = ?", clientName, providerID).
		Order("level DESC").
		First(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.LoyaltyRecord{
			ClientName: clientName,
			ProviderID: providerID,
			Level:      0,
		}
		if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, err
		}
		return &record, nil
	}
	if err != nil {
		return nil, err
	}

	record.Level++
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *AgendaGormRepository) ListLoyalty(
	ctx context.Context,
	providerID uint,
) ([]models.LoyaltyRecord, error) {

	var records []models.LoyaltyRecord
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Where("provider_id = ?", providerID).
		Order("client_name ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

// translateSlotConflict mapeia a violação do índice único parcial
// (provider_id, starts_at, NOT canceled) para o erro de domínio.
func translateSlotConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrSlotTaken
	}
	return err
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	d := day.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// Compile-time check
var _ domain.Repository = (*AgendaGormRepository)(nil)
