package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/services"
)

// CreateCategoryRequest representa a requisição para criar uma categoria financeira
type CreateCategoryRequest struct {
	ParentID *uuid.UUID `json:"parent_id"`
	Code     string     `json:"code" binding:"required,max=20"`
	Name     string     `json:"name" binding:"required,max=120"`
	Kind     string     `json:"kind" binding:"required,oneof=receita despesa"`
}

// ToCreateInput converte a requisição para o input do serviço
func (r *CreateCategoryRequest) ToCreateInput() services.CreateCategoryInput {
	return services.CreateCategoryInput{
		ParentID: r.ParentID,
		Code:     r.Code,
		Name:     r.Name,
		Kind:     entities.CategoryKind(r.Kind),
	}
}

// CategoryResponse representa um nó da árvore do plano de contas
type CategoryResponse struct {
	ID       string             `json:"id"`
	ParentID *uuid.UUID         `json:"parent_id,omitempty"`
	Code     string             `json:"code"`
	Name     string             `json:"name"`
	Kind     string             `json:"kind"`
	Level    int                `json:"level"`
	Children []CategoryResponse `json:"children,omitempty"`
}

// ToCategoryResponse converte uma categoria (e seus filhos) recursivamente
func ToCategoryResponse(category *entities.FinancialCategory) CategoryResponse {
	response := CategoryResponse{
		ID:       category.ID.String(),
		ParentID: category.ParentID,
		Code:     category.Code,
		Name:     category.Name,
		Kind:     string(category.Kind),
		Level:    category.Level,
	}
	for _, child := range category.Children {
		response.Children = append(response.Children, ToCategoryResponse(child))
	}
	return response
}

// ToCategoryResponses converte as raízes da árvore do plano de contas
func ToCategoryResponses(categories []*entities.FinancialCategory) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}

// DashboardResponse representa os agregados financeiros do período
type DashboardResponse struct {
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	Receita    float64   `json:"receita"`
	Despesa    float64   `json:"despesa"`
	Lucro      float64   `json:"lucro"`
	SalesCount int       `json:"sales_count"`
}

// ToDashboardResponse converte o dashboard do serviço
func ToDashboardResponse(dashboard *services.Dashboard) DashboardResponse {
	return DashboardResponse{
		From:       dashboard.From,
		To:         dashboard.To,
		Receita:    dashboard.Receita.InexactFloat64(),
		Despesa:    dashboard.Despesa.InexactFloat64(),
		Lucro:      dashboard.Lucro.InexactFloat64(),
		SalesCount: dashboard.SalesCount,
	}
}
