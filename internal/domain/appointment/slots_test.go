package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(base time.Time, hour, minute int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, time.UTC)
}

func TestGenerateSlotsWeekday(t *testing.T) {
	// terça-feira comum
	tuesday := day(2022, time.December, 20)

	slots := GenerateSlots(tuesday, false)

	require.Len(t, slots, 16)
	assert.Equal(t, at(tuesday, 9, 0), slots[0])
	assert.Equal(t, at(tuesday, 17, 30), slots[len(slots)-1])

	assert.NotContains(t, slots, at(tuesday, 12, 0))
	assert.NotContains(t, slots, at(tuesday, 12, 30))
	assert.NotContains(t, slots, at(tuesday, 18, 0))
	assert.Contains(t, slots, at(tuesday, 11, 30))
	assert.Contains(t, slots, at(tuesday, 13, 0))
}

func TestGenerateSlotsAlignment(t *testing.T) {
	slots := GenerateSlots(day(2022, time.December, 20), false)

	for _, s := range slots {
		assert.Zero(t, s.Second())
		assert.True(t, s.Minute() == 0 || s.Minute() == 30,
			"slot %s não está alinhado em 30 minutos", s)
	}
}

func TestGenerateSlotsSaturday(t *testing.T) {
	saturday := day(2022, time.December, 24)
	require.Equal(t, time.Saturday, saturday.Weekday())

	slots := GenerateSlots(saturday, false)

	// 09:00 até 12:30, sem pausa de almoço
	require.Len(t, slots, 8)
	assert.Equal(t, at(saturday, 9, 0), slots[0])
	assert.Equal(t, at(saturday, 12, 30), slots[len(slots)-1])
	assert.Contains(t, slots, at(saturday, 12, 0))
}

func TestGenerateSlotsSunday(t *testing.T) {
	sunday := day(2023, time.December, 24)
	require.Equal(t, time.Sunday, sunday.Weekday())

	assert.Empty(t, GenerateSlots(sunday, false))
}

func TestGenerateSlotsHoliday(t *testing.T) {
	christmas := day(2023, time.December, 25)
	require.Equal(t, time.Monday, christmas.Weekday())

	assert.Empty(t, GenerateSlots(christmas, true))
	assert.NotEmpty(t, GenerateSlots(christmas, false))
}
