// Package fielderr acumula violações de regra de negócio por campo,
// no mesmo formato campo -> lista de mensagens que a API expõe.
package fielderr

import "strings"

// NonFieldKey agrupa erros que pertencem à requisição como um todo,
// não a um campo específico.
const NonFieldKey = "non_field_errors"

type Errors struct {
	Fields map[string][]string
}

func New() *Errors {
	return &Errors{Fields: map[string][]string{}}
}

func (e *Errors) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *Errors) AddNonField(message string) {
	e.Add(NonFieldKey, message)
}

func (e *Errors) Empty() bool {
	return len(e.Fields) == 0
}

func (e *Errors) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

func (e *Errors) Error() string {
	var parts []string
	for field, messages := range e.Fields {
		parts = append(parts, field+": "+strings.Join(messages, "; "))
	}
	return strings.Join(parts, " | ")
}
