package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/services"
)

// CreatePromotionRequest representa a requisição para criar uma promoção
type CreatePromotionRequest struct {
	Name          string    `json:"name" binding:"required,max=120"`
	Description   string    `json:"description" binding:"max=2000"`
	DiscountType  string    `json:"discount_type" binding:"required,oneof=percentual valor_fixo"`
	DiscountValue float64   `json:"discount_value" binding:"required,gt=0"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	EndDate       time.Time `json:"end_date" binding:"required"`
}

// ToCreateInput converte a requisição para o input do serviço
func (r *CreatePromotionRequest) ToCreateInput() services.CreatePromotionInput {
	return services.CreatePromotionInput{
		Name:          r.Name,
		Description:   r.Description,
		DiscountType:  entities.DiscountType(r.DiscountType),
		DiscountValue: decimal.NewFromFloat(r.DiscountValue),
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
	}
}

// UpdatePromotionRequest representa a requisição para atualizar uma promoção
type UpdatePromotionRequest struct {
	Name          *string    `json:"name" binding:"omitempty,max=120"`
	Description   *string    `json:"description" binding:"omitempty,max=2000"`
	DiscountType  *string    `json:"discount_type" binding:"omitempty,oneof=percentual valor_fixo"`
	DiscountValue *float64   `json:"discount_value" binding:"omitempty,gt=0"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Status        *string    `json:"status" binding:"omitempty,oneof=ativa inativa expirada"`
}

// ToUpdateInput converte a requisição para o input do serviço
func (r *UpdatePromotionRequest) ToUpdateInput() services.UpdatePromotionInput {
	input := services.UpdatePromotionInput{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
	if r.DiscountType != nil {
		discountType := entities.DiscountType(*r.DiscountType)
		input.DiscountType = &discountType
	}
	if r.DiscountValue != nil {
		value := decimal.NewFromFloat(*r.DiscountValue)
		input.DiscountValue = &value
	}
	if r.Status != nil {
		status := entities.PromotionStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// PromotionResponse representa a resposta de uma promoção
type PromotionResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue float64   `json:"discount_value"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToPromotionResponse converte uma entidade Promotion para PromotionResponse
func ToPromotionResponse(promotion *entities.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:            promotion.ID.String(),
		Name:          promotion.Name,
		Description:   promotion.Description,
		DiscountType:  string(promotion.DiscountType),
		DiscountValue: promotion.DiscountValue.InexactFloat64(),
		StartDate:     promotion.StartDate,
		EndDate:       promotion.EndDate,
		Status:        string(promotion.Status),
		CreatedAt:     promotion.CreatedAt,
	}
}

// ToPromotionResponses converte uma lista de entidades Promotion
func ToPromotionResponses(promotions []*entities.Promotion) []PromotionResponse {
	responses := make([]PromotionResponse, len(promotions))
	for i, promotion := range promotions {
		responses[i] = ToPromotionResponse(promotion)
	}
	return responses
}
