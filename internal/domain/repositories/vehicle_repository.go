package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
)

// VehicleRepository define a interface para persistência de veículos
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entities.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Vehicle, error)
	Update(ctx context.Context, vehicle *entities.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters VehicleFilters) ([]*entities.Vehicle, error)
	StockStats(ctx context.Context) (*StockStats, error)
}

// VehicleFilters contém filtros para listagem de veículos
type VehicleFilters struct {
	Status     *entities.VehicleStatus
	Brand      string
	LocationID *uuid.UUID
	MaxPrice   *decimal.Decimal
	Page       int
	PageSize   int
}

// StockStats agrega o estoque por status
type StockStats struct {
	Available      int64
	Reserved       int64
	Sold           int64
	TotalStock     decimal.Decimal // soma dos preços dos veículos não vendidos
	TotalStockCost decimal.Decimal // soma dos custos dos veículos não vendidos
}
