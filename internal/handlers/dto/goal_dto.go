package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/services"
)

// CreateGoalRequest representa a requisição para criar uma meta
type CreateGoalRequest struct {
	UserID      uuid.UUID `json:"user_id" binding:"required"`
	Type        string    `json:"type" binding:"required,oneof=sales revenue profit"`
	TargetValue float64   `json:"target_value" binding:"required,gt=0"`
	Period      string    `json:"period" binding:"max=20"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}

// ToCreateInput converte a requisição para o input do serviço
func (r *CreateGoalRequest) ToCreateInput() services.CreateGoalInput {
	return services.CreateGoalInput{
		UserID:      r.UserID,
		Type:        entities.GoalType(r.Type),
		TargetValue: decimal.NewFromFloat(r.TargetValue),
		Period:      r.Period,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

// UpdateGoalRequest representa a requisição para atualizar uma meta
type UpdateGoalRequest struct {
	Type        *string    `json:"type" binding:"omitempty,oneof=sales revenue profit"`
	TargetValue *float64   `json:"target_value" binding:"omitempty,gt=0"`
	Period      *string    `json:"period" binding:"omitempty,max=20"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// ToUpdateInput converte a requisição para o input do serviço
func (r *UpdateGoalRequest) ToUpdateInput() services.UpdateGoalInput {
	input := services.UpdateGoalInput{
		Period:    r.Period,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
	if r.Type != nil {
		goalType := entities.GoalType(*r.Type)
		input.Type = &goalType
	}
	if r.TargetValue != nil {
		target := decimal.NewFromFloat(*r.TargetValue)
		input.TargetValue = &target
	}
	return input
}

// GoalResponse representa a resposta de uma meta
type GoalResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"type"`
	TargetValue  float64   `json:"target_value"`
	CurrentValue float64   `json:"current_value"`
	Period       string    `json:"period,omitempty"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToGoalResponse converte uma entidade Goal para GoalResponse
func ToGoalResponse(goal *entities.Goal) GoalResponse {
	return GoalResponse{
		ID:           goal.ID.String(),
		UserID:       goal.UserID.String(),
		Type:         string(goal.Type),
		TargetValue:  goal.TargetValue.InexactFloat64(),
		CurrentValue: goal.CurrentValue.InexactFloat64(),
		Period:       goal.Period,
		StartDate:    goal.StartDate,
		EndDate:      goal.EndDate,
		CreatedAt:    goal.CreatedAt,
	}
}

// ToGoalResponses converte uma lista de entidades Goal
func ToGoalResponses(goals []*entities.Goal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToGoalResponse(goal)
	}
	return responses
}

// GoalProgressResponse representa o progresso de uma meta
type GoalProgressResponse struct {
	Goal     GoalResponse `json:"goal"`
	Percent  float64      `json:"percent"`
	Achieved bool         `json:"achieved"`
}

// ToGoalProgressResponse converte o progresso do serviço
func ToGoalProgressResponse(progress *services.GoalProgress) GoalProgressResponse {
	return GoalProgressResponse{
		Goal:     ToGoalResponse(progress.Goal),
		Percent:  progress.Percent.InexactFloat64(),
		Achieved: progress.Achieved,
	}
}
