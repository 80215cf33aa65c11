package valueobjects

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPhone = errors.New("invalid phone number")
)

// Phone é um value object para telefones brasileiros, armazenado como
// dígitos puros (DDD + número, 10 ou 11 dígitos).
type Phone struct {
	value string
}

// NewPhone cria um novo Phone validado. Aceita o valor com ou sem máscara
// ((11) 98765-4321 e 11987654321 são equivalentes).
func NewPhone(raw string) (Phone, error) {
	digits := OnlyDigits(raw)

	// Aceita número com código do país (55) prefixado
	if len(digits) == 12 || len(digits) == 13 {
		if digits[0] == '5' && digits[1] == '5' {
			digits = digits[2:]
		}
	}

	if len(digits) != 10 && len(digits) != 11 {
		return Phone{}, ErrInvalidPhone
	}

	return Phone{value: digits}, nil
}

// String retorna o telefone como dígitos puros (forma canônica)
func (p Phone) String() string {
	return p.value
}

// Formatted retorna o telefone no formato (00) 00000-0000
func (p Phone) Formatted() string {
	switch len(p.value) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", p.value[0:2], p.value[2:7], p.value[7:11])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", p.value[0:2], p.value[2:6], p.value[6:10])
	}
	return p.value
}
