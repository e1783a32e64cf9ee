package agenda

import (
	"context"
	"time"

	"github.com/agendaservices/salon-agenda/internal/brasilapi"
	domain "github.com/agendaservices/salon-agenda/internal/domain/appointment"
)

// ======================================================
// USE CASE — horários disponíveis de um dia
// ======================================================

type AvailableSlots struct {
	repo     domain.Repository
	calendar brasilapi.Calendar
	policy   domain.ExclusionPolicy
}

func NewAvailableSlots(
	repo domain.Repository,
	calendar brasilapi.Calendar,
	policy domain.ExclusionPolicy,
) *AvailableSlots {
	return &AvailableSlots{
		repo:     repo,
		calendar: calendar,
		policy:   policy,
	}
}

// Execute gera os candidatos do dia e subtrai os horários já ocupados.
// Pipeline puro: constrói a sequência completa e depois filtra, nunca
// remove durante a iteração. Falha de consulta de feriado propaga.
func (uc *AvailableSlots) Execute(
	ctx context.Context,
	date time.Time,
) ([]time.Time, error) {

	holiday, err := uc.calendar.IsHoliday(ctx, date)
	if err != nil {
		return nil, err
	}

	candidates := domain.GenerateSlots(date, holiday)
	if len(candidates) == 0 {
		return candidates, nil
	}

	occupied, err := uc.repo.ListOccupiedTimes(ctx, date, uc.policy)
	if err != nil {
		return nil, err
	}

	taken := make(map[int64]bool, len(occupied))
	for _, t := range occupied {
		taken[t.UTC().Unix()] = true
	}

	free := make([]time.Time, 0, len(candidates))
	for _, slot := range candidates {
		if taken[slot.Unix()] {
			continue
		}
		free = append(free, slot)
	}

	return free, nil
}
