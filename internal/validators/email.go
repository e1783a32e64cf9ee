package validators

import "strings"

const MsgBrazilianEmailForeignPhone = "E-mail brasileiro deve estar associado a um número do Brasil (+55)"

const brazilCountryCode = "+55"

// IsEmailWellFormed faz a checagem estrutural mínima (local@dominio.tld);
// o formato completo fica a cargo do binding da requisição.
func IsEmailWellFormed(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".")
}

// PhoneCountryMismatch sinaliza e-mail brasileiro (sufixo .br) com
// telefone em prefixo internacional que não seja +55.
func PhoneCountryMismatch(email, phone string) bool {
	return strings.HasSuffix(email, ".br") &&
		strings.HasPrefix(phone, "+") &&
		!strings.HasPrefix(phone, brazilCountryCode)
}
