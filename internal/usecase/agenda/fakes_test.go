package agenda

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/agendaservices/salon-agenda/internal/domain/appointment"
	"github.com/agendaservices/salon-agenda/internal/models"
)

// ======================================================
// Fake calendar
// ======================================================

type fakeCalendar struct {
	holidays map[string]bool
	err      error
}

func (f *fakeCalendar) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.holidays[date.UTC().Format("2006-01-02")], nil
}

// ======================================================
// Fake repository (in-memory)
// ======================================================

type fakeRepo struct {
	providers      []models.Provider
	establishments []models.Establishment
	services       []models.Service
	employees      []models.Employee
	appointments   []*models.Appointment
	loyalty        []*models.LoyaltyRecord

	nextID uint
}

// newSeededRepo monta o cenário padrão dos testes: silvia trabalha de
// manicure no Salão de Beleza.
func newSeededRepo() *fakeRepo {
	return &fakeRepo{
		providers:      []models.Provider{{ID: 1, Username: "silvia"}},
		establishments: []models.Establishment{{ID: 1, Name: "Salão de Beleza"}},
		services:       []models.Service{{ID: 1, Name: "Manicure"}},
		employees: []models.Employee{
			{ID: 1, ProviderID: 1, EstablishmentID: 1, ServiceID: 1},
		},
		nextID: 1,
	}
}

func (r *fakeRepo) GetProviderByUsername(_ context.Context, username string) (*models.Provider, error) {
	for i := range r.providers {
		if r.providers[i].Username == username {
			return &r.providers[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListProviders(_ context.Context) ([]models.Provider, error) {
	return r.providers, nil
}

func (r *fakeRepo) GetEstablishmentByName(_ context.Context, name string) (*models.Establishment, error) {
	for i := range r.establishments {
		if r.establishments[i].Name == name {
			return &r.establishments[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetServiceByName(_ context.Context, name string) (*models.Service, error) {
	for i := range r.services {
		if r.services[i].Name == name {
			return &r.services[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) EmploymentExists(_ context.Context, providerID, establishmentID, serviceID uint) (bool, error) {
	for _, e := range r.employees {
		if e.ProviderID == providerID &&
			e.EstablishmentID == establishmentID &&
			e.ServiceID == serviceID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) ListOccupiedTimes(_ context.Context, day time.Time, policy domain.ExclusionPolicy) ([]time.Time, error) {
	var occupied []time.Time
	for _, ap := range r.appointments {
		if ap.Canceled {
			continue
		}
		if !sameDay(ap.StartsAt, day) {
			continue
		}
		if policy.Blocks(domain.State(ap.State)) {
			occupied = append(occupied, ap.StartsAt)
		}
	}
	return occupied, nil
}

func (r *fakeRepo) HasClientBookingOnDay(
	_ context.Context,
	clientName, clientEmail string,
	providerID, establishmentID uint,
	day time.Time,
	excludeID uint,
) (bool, error) {
	for _, ap := range r.appointments {
		if ap.Canceled || ap.ID == excludeID {
			continue
		}
		if ap.ClientName == clientName &&
			ap.ClientEmail == clientEmail &&
			ap.ProviderID == providerID &&
			ap.EstablishmentID == establishmentID &&
			sameDay(ap.StartsAt, day) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	for _, existing := range r.appointments {
		if !existing.Canceled &&
			existing.ProviderID == ap.ProviderID &&
			existing.StartsAt.Equal(ap.StartsAt) {
			return domain.ErrSlotTaken
		}
	}
	ap.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, ap)
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range r.appointments {
		if ap.ID == id {
			return ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, existing := range r.appointments {
		if existing.ID == ap.ID {
			if !ap.Canceled {
				for _, other := range r.appointments {
					if other.ID != ap.ID && !other.Canceled &&
						other.ProviderID == ap.ProviderID &&
						other.StartsAt.Equal(ap.StartsAt) {
						return domain.ErrSlotTaken
					}
				}
			}
			r.appointments[i] = ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListAppointments(_ context.Context, providerID uint, filter domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Canceled || ap.ProviderID != providerID {
			continue
		}
		if filter.Executed {
			if domain.State(ap.State) != domain.StateConfirmed ||
				!ap.StartsAt.Before(filter.Now) {
				continue
			}
		} else if filter.Confirmed != nil {
			want := domain.StateUnconfirmed
			if *filter.Confirmed {
				want = domain.StateConfirmed
			}
			if domain.State(ap.State) != want {
				continue
			}
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) UpsertLoyalty(_ context.Context, clientName string, providerID uint) (*models.LoyaltyRecord, error) {
	for _, rec := range r.loyalty {
		if rec.ClientName == clientName && rec.ProviderID == providerID {
			rec.Level++
			return rec, nil
		}
	}
	rec := &models.LoyaltyRecord{
		ID:         uint(len(r.loyalty) + 1),
		ClientName: clientName,
		ProviderID: providerID,
		Level:      0,
	}
	r.loyalty = append(r.loyalty, rec)
	return rec, nil
}

func (r *fakeRepo) ListLoyalty(_ context.Context, providerID uint) ([]models.LoyaltyRecord, error) {
	var out []models.LoyaltyRecord
	for _, rec := range r.loyalty {
		if rec.ProviderID == providerID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func sameDay(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.YearDay() == bu.YearDay()
}

var _ domain.Repository = (*fakeRepo)(nil)
