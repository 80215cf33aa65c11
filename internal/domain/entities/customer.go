package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/valueobjects"
)

// Customer representa um cliente da loja
type Customer struct {
	ID        uuid.UUID
	Name      string
	Phone     valueobjects.Phone
	Email     *valueobjects.Email
	CPF       *valueobjects.CPF
	BirthDate *time.Time
	Address   string
	City      string
	State     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft delete
}

// HasBirthdayContact informa se o cliente pode receber email de aniversário
func (c *Customer) HasBirthdayContact() bool {
	return c.BirthDate != nil && c.Email != nil && c.Email.String() != ""
}

// IsBirthday verifica se dia e mês do aniversário coincidem com a data informada
func (c *Customer) IsBirthday(now time.Time) bool {
	if c.BirthDate == nil {
		return false
	}
	return c.BirthDate.Day() == now.Day() && c.BirthDate.Month() == now.Month()
}

// DaysUntilBirthday calcula quantos dias faltam para o próximo aniversário.
// Retorna -1 quando o cliente não tem data de nascimento cadastrada.
func (c *Customer) DaysUntilBirthday(now time.Time) int {
	if c.BirthDate == nil {
		return -1
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	next := time.Date(now.Year(), c.BirthDate.Month(), c.BirthDate.Day(), 0, 0, 0, 0, now.Location())
	if next.Before(today) {
		next = next.AddDate(1, 0, 0)
	}

	return int(next.Sub(today).Hours() / 24)
}

// IsDeleted verifica se o cliente foi deletado (soft delete)
func (c *Customer) IsDeleted() bool {
	return c.DeletedAt != nil
}

// SoftDelete marca o cliente como deletado
func (c *Customer) SoftDelete() {
	now := time.Now()
	c.DeletedAt = &now
}

// Validate valida regras de negócio da entidade Customer
func (c *Customer) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}

	if len(c.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if c.Phone.String() == "" {
		return errors.New("phone is required")
	}

	return nil
}
