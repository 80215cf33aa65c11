package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus representa a situação de uma venda
type SaleStatus string

const (
	SalePending   SaleStatus = "pendente"
	SaleCompleted SaleStatus = "concluida"
	SaleCancelled SaleStatus = "cancelada"
)

// Valid verifica se o status é um dos valores conhecidos
func (s SaleStatus) Valid() bool {
	switch s {
	case SalePending, SaleCompleted, SaleCancelled:
		return true
	}
	return false
}

// Sale representa a venda de um veículo a um cliente
type Sale struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	VehicleID     uuid.UUID
	SellerID      uuid.UUID
	TradeInID     *uuid.UUID
	SalePrice     decimal.Decimal
	EntryCash     decimal.Decimal
	FinancedValue decimal.Decimal
	Commission    decimal.Decimal
	Status        SaleStatus
	ContractURL   *string
	SaleDate      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive informa se a venda conta para estoque e relatórios
func (s *Sale) IsActive() bool {
	return s.Status != SaleCancelled
}

// Cancel transiciona a venda para cancelada
func (s *Sale) Cancel() error {
	if s.Status == SaleCancelled {
		return errors.New("sale already cancelled")
	}
	s.Status = SaleCancelled
	return nil
}

// Complete transiciona a venda para concluída
func (s *Sale) Complete() error {
	if s.Status != SalePending {
		return errors.New("only pending sales can be completed")
	}
	s.Status = SaleCompleted
	return nil
}

// CommissionFor calcula a comissão sobre o preço de venda dado um percentual
func (s *Sale) CommissionFor(percent decimal.Decimal) decimal.Decimal {
	return s.SalePrice.Mul(percent).Div(decimal.NewFromInt(100)).Round(2)
}

// Validate valida regras de negócio da entidade Sale
func (s *Sale) Validate() error {
	if s.CustomerID == uuid.Nil {
		return errors.New("customer is required")
	}

	if s.VehicleID == uuid.Nil {
		return errors.New("vehicle is required")
	}

	if s.SellerID == uuid.Nil {
		return errors.New("seller is required")
	}

	if s.SalePrice.IsNegative() || s.SalePrice.IsZero() {
		return errors.New("sale price must be positive")
	}

	if s.EntryCash.IsNegative() || s.FinancedValue.IsNegative() {
		return errors.New("entry and financed values must not be negative")
	}

	if s.EntryCash.Add(s.FinancedValue).GreaterThan(s.SalePrice) {
		return errors.New("entry plus financed value exceeds sale price")
	}

	if !s.Status.Valid() {
		return errors.New("invalid status")
	}

	return nil
}
