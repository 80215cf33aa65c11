package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/services"
)

// RegisterRequest representa a requisição de registro de usuário
type RegisterRequest struct {
	Name              string  `json:"name" binding:"required,min=2,max=100"`
	Email             string  `json:"email" binding:"required,email"`
	Password          string  `json:"password" binding:"required,min=8,max=72"`
	Role              string  `json:"role" binding:"required,oneof=admin gerente vendedor"`
	CommissionPercent float64 `json:"commission_percent" binding:"omitempty,gte=0,lte=100"`
}

// ToRegisterInput converte a requisição para o input do serviço
func (r *RegisterRequest) ToRegisterInput() services.RegisterInput {
	return services.RegisterInput{
		Name:              r.Name,
		Email:             r.Email,
		Password:          r.Password,
		Role:              entities.Role(r.Role),
		CommissionPercent: decimal.NewFromFloat(r.CommissionPercent),
	}
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest representa a requisição de renovação de tokens
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse representa o par de tokens emitido
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// ToTokenResponse converte o par de tokens do serviço
func ToTokenResponse(pair *services.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	}
}

// LoginResponse agrega o usuário autenticado e seus tokens
type LoginResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}
