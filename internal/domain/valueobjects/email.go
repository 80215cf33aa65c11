package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email format")

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object para endereços de email.
// O valor é normalizado (minúsculas, sem espaços) na construção.
type Email struct {
	value string
}

// NewEmail valida e normaliza um endereço de email
func NewEmail(raw string) (Email, error) {
	normalized := strings.TrimSpace(strings.ToLower(raw))

	if len(normalized) < 3 || len(normalized) > 254 {
		return Email{}, ErrInvalidEmail
	}
	if !emailPattern.MatchString(normalized) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: normalized}, nil
}

// String retorna o endereço normalizado
func (e Email) String() string {
	return e.value
}
