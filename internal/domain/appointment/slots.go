package appointment

import "time"

// Expediente fixo do salão, sempre no fuso de referência (UTC):
// seg-sex 09:00-18:00 com almoço 12:00-13:00, sábado 09:00-13:00
// direto, domingo e feriado fechado.
const (
	OpeningHour         = 9
	ClosingHour         = 18
	SaturdayClosingHour = 13
	LunchStartHour      = 12
	LunchEndHour        = 13

	SlotStride = 30 * time.Minute
)

// GenerateSlots enumera os horários de início válidos de um dia,
// intervalo meio-aberto [abertura, fechamento), passo de 30 minutos.
// A ocupação por agendamentos existentes não é considerada aqui.
func GenerateSlots(date time.Time, holiday bool) []time.Time {
	if holiday || date.Weekday() == time.Sunday {
		return []time.Time{}
	}

	closingHour := ClosingHour
	if date.Weekday() == time.Saturday {
		closingHour = SaturdayClosingHour
	}

	opening := atHour(date, OpeningHour)
	closing := atHour(date, closingHour)

	var candidates []time.Time
	for cur := opening; cur.Before(closing); cur = cur.Add(SlotStride) {
		candidates = append(candidates, cur)
	}

	// sábado não tem pausa de almoço (fecha às 13h)
	if date.Weekday() == time.Saturday {
		return candidates
	}

	lunchStart := atHour(date, LunchStartHour)
	lunchEnd := atHour(date, LunchEndHour)

	slots := make([]time.Time, 0, len(candidates))
	for _, s := range candidates {
		if !s.Before(lunchStart) && s.Before(lunchEnd) {
			continue
		}
		slots = append(slots, s)
	}

	return slots
}

func atHour(date time.Time, hour int) time.Time {
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}
