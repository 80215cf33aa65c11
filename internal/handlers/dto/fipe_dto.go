package dto

import (
	"github.com/garagem/crm-backend/internal/domain/ports"
)

// FipeSearchRequest representa os parâmetros da consulta FIPE
type FipeSearchRequest struct {
	Brand string `form:"brand" binding:"required"`
	Model string `form:"model" binding:"required"`
	Year  int    `form:"year" binding:"required,gte=1950"`
}

// FipeQuoteResponse representa o preço de referência encontrado
type FipeQuoteResponse struct {
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	YearLabel string  `json:"year_label"`
	FuelType  string  `json:"fuel_type,omitempty"`
	FipeCode  string  `json:"fipe_code"`
	Value     float64 `json:"value"`
	Reference string  `json:"reference"`
}

// ToFipeQuoteResponse converte a cotação da tabela de preços
func ToFipeQuoteResponse(quote *ports.PriceQuote) FipeQuoteResponse {
	return FipeQuoteResponse{
		Brand:     quote.Brand,
		Model:     quote.Model,
		YearLabel: quote.YearLabel,
		FuelType:  quote.FuelType,
		FipeCode:  quote.FipeCode,
		Value:     quote.Value.InexactFloat64(),
		Reference: quote.Reference,
	}
}
