package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
)

// SaleRepository define a interface para persistência de vendas
type SaleRepository interface {
	Create(ctx context.Context, sale *entities.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Sale, error)
	FindActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) (*entities.Sale, error)
	Update(ctx context.Context, sale *entities.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters SaleFilters) ([]*entities.Sale, error)
}

// SaleFilters contém filtros para listagem de vendas
type SaleFilters struct {
	SellerID   *uuid.UUID
	CustomerID *uuid.UUID
	Status     *entities.SaleStatus
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}
