package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
)

// PendenciaRepository define a interface para persistência de pendências
type PendenciaRepository interface {
	Create(ctx context.Context, pendencia *entities.Pendencia) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Pendencia, error)
	Update(ctx context.Context, pendencia *entities.Pendencia) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters PendenciaFilters) ([]*entities.Pendencia, error)

	// ListOverdue retorna pendências não finalizadas com data limite vencida
	ListOverdue(ctx context.Context, now time.Time) ([]*entities.Pendencia, error)
}

// PendenciaFilters contém filtros para listagem de pendências
type PendenciaFilters struct {
	VehicleID     *uuid.UUID
	ResponsavelID *uuid.UUID
	Status        *entities.PendenciaStatus
	Marcador      string
	Page          int
	PageSize      int
}
