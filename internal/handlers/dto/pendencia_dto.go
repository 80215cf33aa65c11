package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/services"
)

// CreatePendenciaRequest representa a requisição para criar uma pendência
type CreatePendenciaRequest struct {
	VehicleID     uuid.UUID  `json:"vehicle_id" binding:"required"`
	ResponsavelID uuid.UUID  `json:"responsavel_id" binding:"required"`
	Descricao     string     `json:"descricao" binding:"required,max=2000"`
	DataLimite    *time.Time `json:"data_limite"`
	Marcador      string     `json:"marcador" binding:"max=60"`
}

// ToCreateInput converte a requisição para o input do serviço
func (r *CreatePendenciaRequest) ToCreateInput() services.CreatePendenciaInput {
	return services.CreatePendenciaInput{
		VehicleID:     r.VehicleID,
		ResponsavelID: r.ResponsavelID,
		Descricao:     r.Descricao,
		DataLimite:    r.DataLimite,
		Marcador:      r.Marcador,
	}
}

// UpdatePendenciaRequest representa a requisição para atualizar uma pendência
type UpdatePendenciaRequest struct {
	Descricao     *string    `json:"descricao" binding:"omitempty,max=2000"`
	ResponsavelID *uuid.UUID `json:"responsavel_id"`
	DataLimite    *time.Time `json:"data_limite"`
	Marcador      *string    `json:"marcador" binding:"omitempty,max=60"`
}

// ToUpdateInput converte a requisição para o input do serviço
func (r *UpdatePendenciaRequest) ToUpdateInput() services.UpdatePendenciaInput {
	return services.UpdatePendenciaInput{
		Descricao:     r.Descricao,
		ResponsavelID: r.ResponsavelID,
		DataLimite:    r.DataLimite,
		Marcador:      r.Marcador,
	}
}

// ChangePendenciaStatusRequest representa a requisição de transição de status
type ChangePendenciaStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=aberto em_analise finalizado"`
}

// PendenciaResponse representa a resposta de uma pendência
type PendenciaResponse struct {
	ID            string     `json:"id"`
	VehicleID     string     `json:"vehicle_id"`
	ResponsavelID string     `json:"responsavel_id"`
	Descricao     string     `json:"descricao"`
	Status        string     `json:"status"`
	DataLimite    *time.Time `json:"data_limite,omitempty"`
	Marcador      string     `json:"marcador,omitempty"`
	Overdue       bool       `json:"overdue"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ToPendenciaResponse converte uma entidade Pendencia para PendenciaResponse
func ToPendenciaResponse(pendencia *entities.Pendencia) PendenciaResponse {
	return PendenciaResponse{
		ID:            pendencia.ID.String(),
		VehicleID:     pendencia.VehicleID.String(),
		ResponsavelID: pendencia.ResponsavelID.String(),
		Descricao:     pendencia.Descricao,
		Status:        string(pendencia.Status),
		DataLimite:    pendencia.DataLimite,
		Marcador:      pendencia.Marcador,
		Overdue:       pendencia.IsOverdue(time.Now()),
		CreatedAt:     pendencia.CreatedAt,
	}
}

// ToPendenciaResponses converte uma lista de entidades Pendencia
func ToPendenciaResponses(pendencias []*entities.Pendencia) []PendenciaResponse {
	responses := make([]PendenciaResponse, len(pendencias))
	for i, pendencia := range pendencias {
		responses[i] = ToPendenciaResponse(pendencia)
	}
	return responses
}
