package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/services"
)

// UpdateUserRequest representa a requisição para atualizar um usuário
type UpdateUserRequest struct {
	Name              *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Email             *string  `json:"email" binding:"omitempty,email"`
	Password          *string  `json:"password" binding:"omitempty,min=8,max=72"`
	Role              *string  `json:"role" binding:"omitempty,oneof=admin gerente vendedor"`
	AvatarURL         *string  `json:"avatar_url" binding:"omitempty,url"`
	CommissionPercent *float64 `json:"commission_percent" binding:"omitempty,gte=0,lte=100"`
}

// ToUpdateInput converte a requisição para o input do serviço
func (r *UpdateUserRequest) ToUpdateInput() services.UpdateUserInput {
	input := services.UpdateUserInput{
		Name:      r.Name,
		Email:     r.Email,
		Password:  r.Password,
		AvatarURL: r.AvatarURL,
	}
	if r.Role != nil {
		role := entities.Role(*r.Role)
		input.Role = &role
	}
	if r.CommissionPercent != nil {
		percent := decimal.NewFromFloat(*r.CommissionPercent)
		input.CommissionPercent = &percent
	}
	return input
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	AvatarURL         *string   `json:"avatar_url,omitempty"`
	CommissionPercent float64   `json:"commission_percent"`
	CreatedAt         time.Time `json:"created_at"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:                user.ID.String(),
		Name:              user.Name,
		Email:             user.Email.String(),
		Role:              string(user.Role),
		AvatarURL:         user.AvatarURL,
		CommissionPercent: user.CommissionPercent.InexactFloat64(),
		CreatedAt:         user.CreatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
