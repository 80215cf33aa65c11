package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/services"
)

// CreateTradeInRequest representa a requisição para registrar uma troca
type CreateTradeInRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	Brand      string    `json:"brand" binding:"required,max=60"`
	Model      string    `json:"model" binding:"required,max=100"`
	Year       int       `json:"year" binding:"required,gte=1950"`
	Km         int       `json:"km" binding:"gte=0"`
	ValueFipe  float64   `json:"value_fipe" binding:"gte=0"`
	ValueOffer float64   `json:"value_offer" binding:"gte=0"`
	Notes      string    `json:"notes" binding:"max=2000"`
}

// ToCreateInput converte a requisição para o input do serviço
func (r *CreateTradeInRequest) ToCreateInput() services.CreateTradeInInput {
	return services.CreateTradeInInput{
		CustomerID: r.CustomerID,
		Brand:      r.Brand,
		Model:      r.Model,
		Year:       r.Year,
		Km:         r.Km,
		ValueFipe:  decimal.NewFromFloat(r.ValueFipe),
		ValueOffer: decimal.NewFromFloat(r.ValueOffer),
		Notes:      r.Notes,
	}
}

// UpdateTradeInRequest representa a requisição para atualizar uma troca
type UpdateTradeInRequest struct {
	Brand      *string  `json:"brand" binding:"omitempty,max=60"`
	Model      *string  `json:"model" binding:"omitempty,max=100"`
	Year       *int     `json:"year" binding:"omitempty,gte=1950"`
	Km         *int     `json:"km" binding:"omitempty,gte=0"`
	ValueFipe  *float64 `json:"value_fipe" binding:"omitempty,gte=0"`
	ValueOffer *float64 `json:"value_offer" binding:"omitempty,gte=0"`
	Notes      *string  `json:"notes" binding:"omitempty,max=2000"`
}

// ToUpdateInput converte a requisição para o input do serviço
func (r *UpdateTradeInRequest) ToUpdateInput() services.UpdateTradeInInput {
	input := services.UpdateTradeInInput{
		Brand: r.Brand,
		Model: r.Model,
		Year:  r.Year,
		Km:    r.Km,
		Notes: r.Notes,
	}
	if r.ValueFipe != nil {
		fipe := decimal.NewFromFloat(*r.ValueFipe)
		input.ValueFipe = &fipe
	}
	if r.ValueOffer != nil {
		offer := decimal.NewFromFloat(*r.ValueOffer)
		input.ValueOffer = &offer
	}
	return input
}

// ChangeTradeInStatusRequest representa a requisição de transição de status
type ChangeTradeInStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pendente aceito recusado vendido"`
}

// TradeInResponse representa a resposta de uma troca
type TradeInResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Brand      string    `json:"brand"`
	Model      string    `json:"model"`
	Year       int       `json:"year"`
	Km         int       `json:"km"`
	ValueFipe  float64   `json:"value_fipe"`
	ValueOffer float64   `json:"value_offer"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToTradeInResponse converte uma entidade TradeIn para TradeInResponse
func ToTradeInResponse(tradeIn *entities.TradeIn) TradeInResponse {
	return TradeInResponse{
		ID:         tradeIn.ID.String(),
		CustomerID: tradeIn.CustomerID.String(),
		Brand:      tradeIn.Brand,
		Model:      tradeIn.Model,
		Year:       tradeIn.Year,
		Km:         tradeIn.Km,
		ValueFipe:  tradeIn.ValueFipe.InexactFloat64(),
		ValueOffer: tradeIn.ValueOffer.InexactFloat64(),
		Status:     string(tradeIn.Status),
		Notes:      tradeIn.Notes,
		CreatedAt:  tradeIn.CreatedAt,
	}
}

// ToTradeInResponses converte uma lista de entidades TradeIn
func ToTradeInResponses(tradeIns []*entities.TradeIn) []TradeInResponse {
	responses := make([]TradeInResponse, len(tradeIns))
	for i, tradeIn := range tradeIns {
		responses[i] = ToTradeInResponse(tradeIn)
	}
	return responses
}
