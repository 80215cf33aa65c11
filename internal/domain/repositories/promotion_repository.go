package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
)

// PromotionRepository define a interface para persistência de promoções
type PromotionRepository interface {
	Create(ctx context.Context, promotion *entities.Promotion) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Promotion, error)
	Update(ctx context.Context, promotion *entities.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters PromotionFilters) ([]*entities.Promotion, error)

	// FindActiveExpiredBefore retorna promoções ativas cuja data final já passou
	FindActiveExpiredBefore(ctx context.Context, now time.Time) ([]*entities.Promotion, error)
}

// PromotionFilters contém filtros para listagem de promoções
type PromotionFilters struct {
	Status   *entities.PromotionStatus
	Page     int
	PageSize int
}
