package appointment

import "fmt"

// ExclusionPolicy define quais agendamentos não cancelados ocupam um
// horário. A mesma política vale para a listagem pública de horários e
// para a validação de conflito na criação.
type ExclusionPolicy string

const (
	// ExcludeConfirmed: apenas agendamentos CONF ocupam o horário.
	ExcludeConfirmed ExclusionPolicy = "confirmed"

	// ExcludeAll: qualquer agendamento não cancelado ocupa o horário.
	ExcludeAll ExclusionPolicy = "all"
)

func ParseExclusionPolicy(s string) (ExclusionPolicy, error) {
	switch ExclusionPolicy(s) {
	case ExcludeConfirmed, ExcludeAll:
		return ExclusionPolicy(s), nil
	}
	return "", fmt.Errorf("política de disponibilidade desconhecida: %q", s)
}

// Blocks diz se um agendamento não cancelado neste estado ocupa o horário.
func (p ExclusionPolicy) Blocks(state State) bool {
	if p == ExcludeAll {
		return true
	}
	return state == StateConfirmed
}
