package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SinalStatus representa a situação de um sinal de negócio
type SinalStatus string

const (
	SinalPending   SinalStatus = "pendente"
	SinalConverted SinalStatus = "convertido"
	SinalWithdrawn SinalStatus = "desistido"
	SinalRefunded  SinalStatus = "devolvido"
)

// Valid verifica se o status é um dos valores conhecidos
func (s SinalStatus) Valid() bool {
	switch s {
	case SinalPending, SinalConverted, SinalWithdrawn, SinalRefunded:
		return true
	}
	return false
}

// SinalNegocio representa um sinal pago pelo cliente para reservar um veículo
type SinalNegocio struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	VehicleID    uuid.UUID
	SellerID     uuid.UUID
	SaleID       *uuid.UUID // preenchido quando o sinal vira venda
	Valor        decimal.Decimal
	DataValidade time.Time
	Status       SinalStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsPending informa se o sinal ainda segura a reserva do veículo
func (s *SinalNegocio) IsPending() bool {
	return s.Status == SinalPending
}

// IsExpiredAt informa se o sinal passou da validade sem conversão
func (s *SinalNegocio) IsExpiredAt(now time.Time) bool {
	return s.Status == SinalPending && now.After(s.DataValidade)
}

// Convert vincula o sinal a uma venda concretizada
func (s *SinalNegocio) Convert(saleID uuid.UUID) error {
	if s.Status != SinalPending {
		return errors.New("only pending deposits can be converted")
	}
	s.Status = SinalConverted
	s.SaleID = &saleID
	return nil
}

// Withdraw registra a desistência do cliente
func (s *SinalNegocio) Withdraw() error {
	if s.Status != SinalPending {
		return errors.New("only pending deposits can be withdrawn")
	}
	s.Status = SinalWithdrawn
	return nil
}

// Refund registra a devolução do valor ao cliente
func (s *SinalNegocio) Refund() error {
	if s.Status != SinalPending && s.Status != SinalWithdrawn {
		return errors.New("deposit cannot be refunded in its current status")
	}
	s.Status = SinalRefunded
	return nil
}

// Validate valida regras de negócio da entidade SinalNegocio
func (s *SinalNegocio) Validate() error {
	if s.CustomerID == uuid.Nil {
		return errors.New("customer is required")
	}

	if s.VehicleID == uuid.Nil {
		return errors.New("vehicle is required")
	}

	if s.SellerID == uuid.Nil {
		return errors.New("seller is required")
	}

	if s.Valor.IsNegative() || s.Valor.IsZero() {
		return errors.New("value must be positive")
	}

	if !s.Status.Valid() {
		return errors.New("invalid status")
	}

	return nil
}
