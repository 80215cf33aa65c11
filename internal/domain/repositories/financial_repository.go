package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
)

// FinancialCategoryRepository define a interface para o plano de contas
type FinancialCategoryRepository interface {
	Create(ctx context.Context, category *entities.FinancialCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.FinancialCategory, error)
	FindByCode(ctx context.Context, code string) (*entities.FinancialCategory, error)
	ListAll(ctx context.Context) ([]*entities.FinancialCategory, error)
	Count(ctx context.Context) (int64, error)
}

// LocationRepository define a interface para persistência de pátios/filiais
type LocationRepository interface {
	Create(ctx context.Context, location *entities.Location) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Location, error)
	Update(ctx context.Context, location *entities.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]*entities.Location, error)
}
