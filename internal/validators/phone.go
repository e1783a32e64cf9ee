package validators

import "strings"

const (
	MsgPhoneTooShort      = "Telefone precisa conter no mínimo 8 dígitos"
	MsgPhoneBadFormat     = "Formato inválido"
	MsgPhoneNotOnlyDigits = "Telefone deve ser composto por dígitos!"
)

// ValidatePhone aplica as regras de formato do telefone do cliente e
// devolve todas as mensagens que falharam, de forma independente:
//   - pelo menos 8 dígitos;
//   - "+" (prefixo internacional) apenas como primeiro caractere;
//   - fora o "+" inicial, apenas dígitos decimais.
func ValidatePhone(phone string) []string {
	var messages []string

	if countDigits(phone) < 8 {
		messages = append(messages, MsgPhoneTooShort)
	}

	if strings.Contains(phone, "+") && !strings.HasPrefix(phone, "+") {
		messages = append(messages, MsgPhoneBadFormat)
	}

	rest := strings.TrimPrefix(phone, "+")
	if !isAllDigits(strings.ReplaceAll(rest, "+", "")) {
		messages = append(messages, MsgPhoneNotOnlyDigits)
	}

	return messages
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
