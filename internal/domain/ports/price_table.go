package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceQuote é o resultado de uma consulta à tabela de preços de referência
type PriceQuote struct {
	Brand     string
	Model     string
	YearLabel string
	FuelType  string
	FipeCode  string
	Value     decimal.Decimal
	Reference string // mês de referência da tabela
}

// PriceTable define a interface para consulta de preço de referência
// de veículos (tabela FIPE)
type PriceTable interface {
	Lookup(ctx context.Context, brand, model string, year int) (*PriceQuote, error)
}
