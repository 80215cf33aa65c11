package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
)

// SinalRepository define a interface para persistência de sinais de negócio
type SinalRepository interface {
	Create(ctx context.Context, sinal *entities.SinalNegocio) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.SinalNegocio, error)
	FindPendingByVehicle(ctx context.Context, vehicleID uuid.UUID) (*entities.SinalNegocio, error)
	Update(ctx context.Context, sinal *entities.SinalNegocio) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters SinalFilters) ([]*entities.SinalNegocio, error)
}

// SinalFilters contém filtros para listagem de sinais
type SinalFilters struct {
	CustomerID *uuid.UUID
	VehicleID  *uuid.UUID
	Status     *entities.SinalStatus
	Page       int
	PageSize   int
}
