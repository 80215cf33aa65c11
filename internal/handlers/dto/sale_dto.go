package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/services"
)

// CreateSaleRequest representa a requisição para registrar uma venda
type CreateSaleRequest struct {
	CustomerID    uuid.UUID  `json:"customer_id" binding:"required"`
	VehicleID     uuid.UUID  `json:"vehicle_id" binding:"required"`
	SellerID      uuid.UUID  `json:"seller_id" binding:"required"`
	TradeInID     *uuid.UUID `json:"tradein_id"`
	SalePrice     float64    `json:"sale_price" binding:"required,gt=0"`
	EntryCash     float64    `json:"entry_cash" binding:"gte=0"`
	FinancedValue float64    `json:"financed_value" binding:"gte=0"`
	Commission    float64    `json:"commission" binding:"gte=0"`
	ContractURL   *string    `json:"contract_url" binding:"omitempty,url"`
	SaleDate      *time.Time `json:"sale_date"`
}

// ToCreateInput converte a requisição para o input do serviço
func (r *CreateSaleRequest) ToCreateInput() services.CreateSaleInput {
	input := services.CreateSaleInput{
		CustomerID:    r.CustomerID,
		VehicleID:     r.VehicleID,
		SellerID:      r.SellerID,
		TradeInID:     r.TradeInID,
		SalePrice:     decimal.NewFromFloat(r.SalePrice),
		EntryCash:     decimal.NewFromFloat(r.EntryCash),
		FinancedValue: decimal.NewFromFloat(r.FinancedValue),
		Commission:    decimal.NewFromFloat(r.Commission),
		ContractURL:   r.ContractURL,
	}
	if r.SaleDate != nil {
		input.SaleDate = *r.SaleDate
	}
	return input
}

// SaleResponse representa a resposta de uma venda
type SaleResponse struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	VehicleID     string     `json:"vehicle_id"`
	SellerID      string     `json:"seller_id"`
	TradeInID     *uuid.UUID `json:"tradein_id,omitempty"`
	SalePrice     float64    `json:"sale_price"`
	EntryCash     float64    `json:"entry_cash"`
	FinancedValue float64    `json:"financed_value"`
	Commission    float64    `json:"commission"`
	Status        string     `json:"status"`
	ContractURL   *string    `json:"contract_url,omitempty"`
	SaleDate      time.Time  `json:"sale_date"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ToSaleResponse converte uma entidade Sale para SaleResponse
func ToSaleResponse(sale *entities.Sale) SaleResponse {
	return SaleResponse{
		ID:            sale.ID.String(),
		CustomerID:    sale.CustomerID.String(),
		VehicleID:     sale.VehicleID.String(),
		SellerID:      sale.SellerID.String(),
		TradeInID:     sale.TradeInID,
		SalePrice:     sale.SalePrice.InexactFloat64(),
		EntryCash:     sale.EntryCash.InexactFloat64(),
		FinancedValue: sale.FinancedValue.InexactFloat64(),
		Commission:    sale.Commission.InexactFloat64(),
		Status:        string(sale.Status),
		ContractURL:   sale.ContractURL,
		SaleDate:      sale.SaleDate,
		CreatedAt:     sale.CreatedAt,
	}
}

// ToSaleResponses converte uma lista de entidades Sale
func ToSaleResponses(sales []*entities.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		responses[i] = ToSaleResponse(sale)
	}
	return responses
}
