package agenda

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/agendaservices/salon-agenda/internal/domain/appointment"
	"github.com/agendaservices/salon-agenda/internal/fielderr"
	"github.com/agendaservices/salon-agenda/internal/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// newCreateUC monta o caso de uso contra o repo+calendário dados, com
// relógio congelado em 2022-12-01 10:00 UTC.
func newCreateUC(repo *fakeRepo, calendar *fakeCalendar, policy domain.ExclusionPolicy) *CreateAppointment {
	slots := NewAvailableSlots(repo, calendar, policy)
	uc := NewCreateAppointment(repo, slots, zap.NewNop())
	uc.now = fixedClock(utc(2022, time.December, 1, 10, 0))
	return uc
}

func validInput(startsAt time.Time) CreateInput {
	return CreateInput{
		ProviderUsername:  "silvia",
		EstablishmentName: "Salão de Beleza",
		ServiceName:       "Manicure",
		StartsAt:          startsAt,
		ClientName:        "Ana",
		ClientEmail:       "ana@example.com",
		ClientPhone:       "11987654321",
	}
}

func TestCreateSuccess(t *testing.T) {
	repo := newSeededRepo()
	uc := newCreateUC(repo, &fakeCalendar{}, domain.ExcludeConfirmed)

	ap, err := uc.Execute(context.Background(), validInput(utc(2022, time.December, 20, 10, 0)))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StateUnconfirmed), ap.State)
	assert.False(t, ap.Canceled)
	assert.Equal(t, "silvia", ap.Provider.Username)

	// primeira reserva abre o registro de fidelidade no nível 0
	require.Len(t, repo.loyalty, 1)
	assert.Equal(t, "Ana", repo.loyalty[0].ClientName)
	assert.Equal(t, 0, repo.loyalty[0].Level)
}

func TestCreateLoyaltyIncrements(t *testing.T) {
	repo := newSeededRepo()
	uc := newCreateUC(repo, &fakeCalendar{}, domain.ExcludeConfirmed)

	_, err := uc.Execute(context.Background(), validInput(utc(2022, time.December, 20, 10, 0)))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validInput(utc(2022, time.December, 21, 10, 0)))
	require.NoError(t, err)

	require.Len(t, repo.loyalty, 1)
	assert.Equal(t, 1, repo.loyalty[0].Level)
}

func TestCreateUnknownIdentities(t *testing.T) {
	uc := newCreateUC(newSeededRepo(), &fakeCalendar{}, domain.ExcludeConfirmed)

	in := validInput(utc(2022, time.December, 20, 10, 0))
	in.ProviderUsername = "ninguem"
	in.EstablishmentName = "Barbearia Fantasma"
	in.ServiceName = "Hipnose"

	_, err := uc.Execute(context.Background(), in)

	var verrs *fielderr.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Fields["prestador"], "Username incorreto!")
	assert.Contains(t, verrs.Fields["estabelecimento"], "Estabelecimento não encontrado!")
	assert.Contains(t, verrs.Fields["servico"], "Serviço não encontrado!")
}

func TestCreateInPast(t *testing.T) {
	uc := newCreateUC(newSeededRepo(), &fakeCalendar{}, domain.ExcludeConfirmed)

	_, err := uc.Execute(context.Background(), validInput(utc(2022, time.November, 15, 10, 0)))

	var verrs *fielderr.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Fields["data_horario"], "Agendamento não pode ser feito no passado!")
}

func TestCreateOutsideSlotGrid(t *testing.T) {
	uc := newCreateUC(newSeededRepo(), &fakeCalendar{}, domain.ExcludeConfirmed)

	cases := map[string]time.Time{
		"domingo":          utc(2023, time.December, 24, 10, 0),
		"hora de almoço":   utc(2022, time.December, 20, 12, 0),
		"fora do passo":    utc(2022, time.December, 20, 10, 15),
		"após fechamento":  utc(2022, time.December, 20, 18, 0),
		"sábado pós-13h":   utc(2022, time.December, 24, 14, 0),
	}

	for name, startsAt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), validInput(startsAt))

			var verrs *fielderr.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.Fields["data_horario"], "O horário selecionado não está disponível!")
		})
	}
}

func TestCreateOnHolidayRejected(t *testing.T) {
	calendar := &fakeCalendar{holidays: map[string]bool{"2022-12-20": true}}
	uc := newCreateUC(newSeededRepo(), calendar, domain.ExcludeConfirmed)

	_, err := uc.Execute(context.Background(), validInput(utc(2022, time.December, 20, 10, 0)))

	var verrs *fielderr.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Fields["data_horario"], "O horário selecionado não está disponível!")
}

func TestCreatePhoneFormat(t *testing.T) {
	uc := newCreateUC(newSeededRepo(), &fakeCalendar{}, domain.ExcludeConfirmed)

	in := validInput(utc(2022, time.December, 20, 10, 0))
	in.ClientPhone = "1231+23123"

	_, err := uc.Execute(context.Background(), in)

	var verrs *fielderr.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"Formato inválido"}, verrs.Fields["telefone_cliente"])
}

func TestCreateBrazilianEmailForeignPhone(t *testing.T) {
	uc := newCreateUC(newSeededRepo(), &fakeCalendar{}, domain.ExcludeConfirmed)

	in := validInput(utc(2022, time.December, 20, 10, 0))
	in.ClientEmail = "ana@example.com.br"
	in.ClientPhone = "+4411987654321"

	_, err := uc.Execute(context.Background(), in)

	var verrs *fielderr.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(
		t,
		verrs.Fields[fielderr.NonFieldKey],
		"E-mail brasileiro deve estar associado a um número do Brasil (+55)",
	)
}

func TestCreateDailyUniqueness(t *testing.T) {
	repo := newSeededRepo()
	uc := newCreateUC(repo, &fakeCalendar{}, domain.ExcludeConfirmed)

	_, err := uc.Execute(context.Background(), validInput(utc(2022, time.December, 20, 10, 0)))
	require.NoError(t, err)

	// mesma cliente, mesmo dia, outro horário
	_, err = uc.Execute(context.Background(), validInput(utc(2022, time.December, 20, 11, 0)))

	var verrs *fielderr.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(
		t,
		verrs.Fields[fielderr.NonFieldKey],
		"Cada cliente pode ter apenas uma reserva por dia!",
	)
	require.Len(t, repo.appointments, 1)

	// outra cliente no mesmo dia passa
	other := validInput(utc(2022, time.December, 20, 11, 0))
	other.ClientName = "Beatriz"
	other.ClientEmail = "bia@example.com"
	_, err = uc.Execute(context.Background(), other)
	assert.NoError(t, err)
}

func TestCreateOccupiedSlot(t *testing.T) {
	repo := newSeededRepo()
	uc := newCreateUC(repo, &fakeCalendar{}, domain.ExcludeAll)

	_, err := uc.Execute(context.Background(), validInput(utc(2022, time.December, 20, 10, 0)))
	require.NoError(t, err)

	in := validInput(utc(2022, time.December, 20, 10, 0))
	in.ClientName = "Beatriz"
	in.ClientEmail = "bia@example.com"
	_, err = uc.Execute(context.Background(), in)

	var verrs *fielderr.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Fields["data_horario"], "O horário selecionado não está disponível!")

	// mesmo horário do relógio em outra data continua livre
	in.StartsAt = utc(2022, time.December, 21, 10, 0)
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateMissingEmployment(t *testing.T) {
	repo := newSeededRepo()
	repo.services = append(repo.services, models.Service{ID: 2, Name: "Pedicure"})
	uc := newCreateUC(repo, &fakeCalendar{}, domain.ExcludeConfirmed)

	in := validInput(utc(2022, time.December, 20, 10, 0))
	in.ServiceName = "Pedicure"

	_, err := uc.Execute(context.Background(), in)

	var verrs *fielderr.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(
		t,
		verrs.Fields[fielderr.NonFieldKey],
		"Funcionário, estabelecimento ou serviço incompatíveis ou inexistentes!",
	)
}

func TestCreateLostRaceBecomesConflict(t *testing.T) {
	// UNCO ocupa a linha do banco mas não bloqueia a listagem sob a
	// política "confirmed": a corrida só aparece no insert.
	repo := newSeededRepo()
	uc := newCreateUC(repo, &fakeCalendar{}, domain.ExcludeConfirmed)

	_, err := uc.Execute(context.Background(), validInput(utc(2022, time.December, 20, 10, 0)))
	require.NoError(t, err)

	in := validInput(utc(2022, time.December, 20, 10, 0))
	in.ClientName = "Beatriz"
	in.ClientEmail = "bia@example.com"
	_, err = uc.Execute(context.Background(), in)

	var verrs *fielderr.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(
		t,
		verrs.Fields[fielderr.NonFieldKey],
		"O horário selecionado não está disponível!",
	)
}

func TestCreateValidationFailureLeavesLoyaltyUntouched(t *testing.T) {
	repo := newSeededRepo()
	uc := newCreateUC(repo, &fakeCalendar{}, domain.ExcludeConfirmed)

	in := validInput(utc(2022, time.December, 20, 10, 0))
	in.ClientPhone = "123"

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)

	assert.Empty(t, repo.loyalty)
	assert.Empty(t, repo.appointments)
}

func TestCreateCalendarFailurePropagates(t *testing.T) {
	lookupErr := errors.New("brasilapi fora do ar")
	uc := newCreateUC(newSeededRepo(), &fakeCalendar{err: lookupErr}, domain.ExcludeConfirmed)

	_, err := uc.Execute(context.Background(), validInput(utc(2022, time.December, 20, 10, 0)))
	assert.ErrorIs(t, err, lookupErr)
}
