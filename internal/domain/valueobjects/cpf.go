package valueobjects

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrInvalidCPF = errors.New("invalid cpf")
)

// CPF é um value object que armazena um CPF válido como dígitos puros.
// A validação segue o algoritmo oficial de dígitos verificadores.
type CPF struct {
	value string
}

// NewCPF cria um novo CPF validado. Aceita o valor com ou sem máscara
// (123.456.789-09 e 12345678909 são equivalentes).
func NewCPF(raw string) (CPF, error) {
	digits := OnlyDigits(raw)

	if !isValidCPF(digits) {
		return CPF{}, ErrInvalidCPF
	}

	return CPF{value: digits}, nil
}

// String retorna o CPF como dígitos puros (forma canônica)
func (c CPF) String() string {
	return c.value
}

// Formatted retorna o CPF no formato 000.000.000-00
func (c CPF) Formatted() string {
	if len(c.value) != 11 {
		return c.value
	}
	return fmt.Sprintf("%s.%s.%s-%s", c.value[0:3], c.value[3:6], c.value[6:9], c.value[9:11])
}

// OnlyDigits remove tudo que não é dígito de uma string
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF valida um CPF (com ou sem máscara)
func IsValidCPF(raw string) bool {
	return isValidCPF(OnlyDigits(raw))
}

// isValidCPF valida os dígitos verificadores de um CPF já normalizado
func isValidCPF(digits string) bool {
	if len(digits) != 11 {
		return false
	}

	// CPFs com todos os dígitos iguais passam no cálculo dos
	// verificadores mas são inválidos (111.111.111-11 etc.)
	allEqual := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	if checkDigit(digits, 9) != int(digits[9]-'0') {
		return false
	}
	if checkDigit(digits, 10) != int(digits[10]-'0') {
		return false
	}

	return true
}

// checkDigit calcula o dígito verificador sobre os primeiros n dígitos
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}

	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
