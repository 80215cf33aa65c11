package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/services"
)

// CreateSinalRequest representa a requisição para registrar um sinal
type CreateSinalRequest struct {
	CustomerID   uuid.UUID `json:"customer_id" binding:"required"`
	VehicleID    uuid.UUID `json:"vehicle_id" binding:"required"`
	SellerID     uuid.UUID `json:"seller_id" binding:"required"`
	Valor        float64   `json:"valor" binding:"required,gt=0"`
	DataValidade time.Time `json:"data_validade" binding:"required"`
}

// ToCreateInput converte a requisição para o input do serviço
func (r *CreateSinalRequest) ToCreateInput() services.CreateSinalInput {
	return services.CreateSinalInput{
		CustomerID:   r.CustomerID,
		VehicleID:    r.VehicleID,
		SellerID:     r.SellerID,
		Valor:        decimal.NewFromFloat(r.Valor),
		DataValidade: r.DataValidade,
	}
}

// ConvertSinalRequest representa os dados da venda gerada pela conversão
type ConvertSinalRequest struct {
	SalePrice     float64    `json:"sale_price" binding:"required,gt=0"`
	EntryCash     float64    `json:"entry_cash" binding:"gte=0"`
	FinancedValue float64    `json:"financed_value" binding:"gte=0"`
	Commission    float64    `json:"commission" binding:"gte=0"`
	TradeInID     *uuid.UUID `json:"tradein_id"`
	ContractURL   *string    `json:"contract_url" binding:"omitempty,url"`
}

// ToConvertInput converte a requisição para o input do serviço
func (r *ConvertSinalRequest) ToConvertInput() services.ConvertSinalInput {
	return services.ConvertSinalInput{
		SalePrice:     decimal.NewFromFloat(r.SalePrice),
		EntryCash:     decimal.NewFromFloat(r.EntryCash),
		FinancedValue: decimal.NewFromFloat(r.FinancedValue),
		Commission:    decimal.NewFromFloat(r.Commission),
		TradeInID:     r.TradeInID,
		ContractURL:   r.ContractURL,
	}
}

// SinalResponse representa a resposta de um sinal de negócio
type SinalResponse struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customer_id"`
	VehicleID    string     `json:"vehicle_id"`
	SellerID     string     `json:"seller_id"`
	SaleID       *uuid.UUID `json:"sale_id,omitempty"`
	Valor        float64    `json:"valor"`
	DataValidade time.Time  `json:"data_validade"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ToSinalResponse converte uma entidade SinalNegocio para SinalResponse
func ToSinalResponse(sinal *entities.SinalNegocio) SinalResponse {
	return SinalResponse{
		ID:           sinal.ID.String(),
		CustomerID:   sinal.CustomerID.String(),
		VehicleID:    sinal.VehicleID.String(),
		SellerID:     sinal.SellerID.String(),
		SaleID:       sinal.SaleID,
		Valor:        sinal.Valor.InexactFloat64(),
		DataValidade: sinal.DataValidade,
		Status:       string(sinal.Status),
		CreatedAt:    sinal.CreatedAt,
	}
}

// ToSinalResponses converte uma lista de entidades SinalNegocio
func ToSinalResponses(sinais []*entities.SinalNegocio) []SinalResponse {
	responses := make([]SinalResponse, len(sinais))
	for i, sinal := range sinais {
		responses[i] = ToSinalResponse(sinal)
	}
	return responses
}

// ConvertSinalResponse agrega o sinal convertido e a venda gerada
type ConvertSinalResponse struct {
	Sinal SinalResponse `json:"sinal"`
	Sale  SaleResponse  `json:"sale"`
}
