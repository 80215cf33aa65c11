package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleStatus representa a situação de um veículo no estoque
type VehicleStatus string

const (
	VehicleAvailable VehicleStatus = "disponivel"
	VehicleReserved  VehicleStatus = "reservado"
	VehicleSold      VehicleStatus = "vendido"
)

// Valid verifica se o status é um dos valores conhecidos
func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleAvailable, VehicleReserved, VehicleSold:
		return true
	}
	return false
}

// Vehicle representa um veículo do estoque
type Vehicle struct {
	ID         uuid.UUID
	Brand      string
	Model      string
	Year       int
	Km         int
	Color      string
	Plate      string
	Price      decimal.Decimal
	Cost       decimal.Decimal
	FipeValue  *decimal.Decimal
	Status     VehicleStatus
	Photos     []string
	LocationID *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsAvailable verifica se o veículo pode ser vendido ou reservado
func (v *Vehicle) IsAvailable() bool {
	return v.Status == VehicleAvailable
}

// MarkSold transiciona o veículo para vendido.
// Apenas veículos disponíveis ou reservados podem ser vendidos.
func (v *Vehicle) MarkSold() error {
	if v.Status == VehicleSold {
		return errors.New("vehicle already sold")
	}
	v.Status = VehicleSold
	return nil
}

// MarkReserved transiciona o veículo para reservado (sinal de negócio pendente)
func (v *Vehicle) MarkReserved() error {
	if v.Status != VehicleAvailable {
		return errors.New("only available vehicles can be reserved")
	}
	v.Status = VehicleReserved
	return nil
}

// Release devolve o veículo para disponível (venda cancelada, sinal desfeito)
func (v *Vehicle) Release() {
	v.Status = VehicleAvailable
}

// Margin retorna a margem bruta (preço - custo)
func (v *Vehicle) Margin() decimal.Decimal {
	return v.Price.Sub(v.Cost)
}

// DaysInStock retorna há quantos dias o veículo está no estoque
func (v *Vehicle) DaysInStock(now time.Time) int {
	return int(now.Sub(v.CreatedAt).Hours() / 24)
}

// Validate valida regras de negócio da entidade Vehicle
func (v *Vehicle) Validate() error {
	if v.Brand == "" {
		return errors.New("brand is required")
	}

	if v.Model == "" {
		return errors.New("model is required")
	}

	if v.Year < 1950 || v.Year > time.Now().Year()+1 {
		return errors.New("invalid year")
	}

	if v.Km < 0 {
		return errors.New("km must not be negative")
	}

	if v.Price.IsNegative() || v.Cost.IsNegative() {
		return errors.New("price and cost must not be negative")
	}

	if !v.Status.Valid() {
		return errors.New("invalid status")
	}

	return nil
}
