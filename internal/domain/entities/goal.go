package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType representa a métrica acompanhada por uma meta
type GoalType string

const (
	GoalSales   GoalType = "sales"
	GoalRevenue GoalType = "revenue"
	GoalProfit  GoalType = "profit"
)

// Valid verifica se o tipo é um dos valores conhecidos
func (t GoalType) Valid() bool {
	switch t {
	case GoalSales, GoalRevenue, GoalProfit:
		return true
	}
	return false
}

// Goal representa uma meta de um vendedor em um período
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         GoalType
	TargetValue  decimal.Decimal
	CurrentValue decimal.Decimal
	Period       string // rótulo livre, ex: "2026-09"
	StartDate    time.Time
	EndDate      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActiveAt informa se a meta cobre a data informada
func (g *Goal) IsActiveAt(t time.Time) bool {
	return !t.Before(g.StartDate) && !t.After(g.EndDate)
}

// Progress retorna o percentual atingido (0 quando a meta é zero)
func (g *Goal) Progress() decimal.Decimal {
	if g.TargetValue.IsZero() {
		return decimal.Zero
	}
	return g.CurrentValue.Div(g.TargetValue).Mul(decimal.NewFromInt(100)).Round(2)
}

// Achieved informa se a meta foi atingida
func (g *Goal) Achieved() bool {
	return g.CurrentValue.GreaterThanOrEqual(g.TargetValue) && !g.TargetValue.IsZero()
}

// ApplySale incrementa o valor corrente conforme o tipo da meta
func (g *Goal) ApplySale(salePrice, profit decimal.Decimal) {
	switch g.Type {
	case GoalSales:
		g.CurrentValue = g.CurrentValue.Add(decimal.NewFromInt(1))
	case GoalRevenue:
		g.CurrentValue = g.CurrentValue.Add(salePrice)
	case GoalProfit:
		g.CurrentValue = g.CurrentValue.Add(profit)
	}
}

// RevertSale desfaz o efeito de uma venda cancelada sobre a meta
func (g *Goal) RevertSale(salePrice, profit decimal.Decimal) {
	switch g.Type {
	case GoalSales:
		g.CurrentValue = g.CurrentValue.Sub(decimal.NewFromInt(1))
	case GoalRevenue:
		g.CurrentValue = g.CurrentValue.Sub(salePrice)
	case GoalProfit:
		g.CurrentValue = g.CurrentValue.Sub(profit)
	}
	if g.CurrentValue.IsNegative() {
		g.CurrentValue = decimal.Zero
	}
}

// Validate valida regras de negócio da entidade Goal
func (g *Goal) Validate() error {
	if g.UserID == uuid.Nil {
		return errors.New("user is required")
	}

	if !g.Type.Valid() {
		return errors.New("invalid goal type")
	}

	if g.TargetValue.IsNegative() || g.TargetValue.IsZero() {
		return errors.New("target value must be positive")
	}

	if g.EndDate.Before(g.StartDate) {
		return errors.New("end date must be after start date")
	}

	return nil
}
