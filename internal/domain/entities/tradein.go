package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeInStatus representa a situação de um veículo dado na troca
type TradeInStatus string

const (
	TradeInPending  TradeInStatus = "pendente"
	TradeInAccepted TradeInStatus = "aceito"
	TradeInRejected TradeInStatus = "recusado"
	TradeInSold     TradeInStatus = "vendido"
)

// Valid verifica se o status é um dos valores conhecidos
func (s TradeInStatus) Valid() bool {
	switch s {
	case TradeInPending, TradeInAccepted, TradeInRejected, TradeInSold:
		return true
	}
	return false
}

// tradeInTransitions define as transições de status permitidas
var tradeInTransitions = map[TradeInStatus][]TradeInStatus{
	TradeInPending:  {TradeInAccepted, TradeInRejected},
	TradeInAccepted: {TradeInSold, TradeInPending},
	TradeInRejected: {TradeInPending},
	TradeInSold:     {},
}

// TradeIn representa um veículo oferecido pelo cliente como parte do pagamento
type TradeIn struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Brand      string
	Model      string
	Year       int
	Km         int
	ValueFipe  decimal.Decimal
	ValueOffer decimal.Decimal
	Status     TradeInStatus
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TransitionTo aplica uma transição de status, rejeitando transições inválidas
func (t *TradeIn) TransitionTo(next TradeInStatus) error {
	if !next.Valid() {
		return errors.New("invalid status")
	}
	for _, allowed := range tradeInTransitions[t.Status] {
		if allowed == next {
			t.Status = next
			return nil
		}
	}
	return errors.New("invalid status transition")
}

// Accept marca a troca como aceita (vinculada a uma venda)
func (t *TradeIn) Accept() error {
	return t.TransitionTo(TradeInAccepted)
}

// Reopen devolve a troca para pendente (venda cancelada)
func (t *TradeIn) Reopen() error {
	return t.TransitionTo(TradeInPending)
}

// Validate valida regras de negócio da entidade TradeIn
func (t *TradeIn) Validate() error {
	if t.CustomerID == uuid.Nil {
		return errors.New("customer is required")
	}

	if t.Brand == "" || t.Model == "" {
		return errors.New("brand and model are required")
	}

	if t.Year < 1950 || t.Year > time.Now().Year()+1 {
		return errors.New("invalid year")
	}

	if t.ValueFipe.IsNegative() || t.ValueOffer.IsNegative() {
		return errors.New("values must not be negative")
	}

	if !t.Status.Valid() {
		return errors.New("invalid status")
	}

	return nil
}
