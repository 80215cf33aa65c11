package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
)

// TradeInRepository define a interface para persistência de trocas
type TradeInRepository interface {
	Create(ctx context.Context, tradeIn *entities.TradeIn) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.TradeIn, error)
	Update(ctx context.Context, tradeIn *entities.TradeIn) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters TradeInFilters) ([]*entities.TradeIn, error)
}

// TradeInFilters contém filtros para listagem de trocas
type TradeInFilters struct {
	CustomerID *uuid.UUID
	Status     *entities.TradeInStatus
	Page       int
	PageSize   int
}
