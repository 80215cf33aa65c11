package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
)

// GoalRepository define a interface para persistência de metas
type GoalRepository interface {
	Create(ctx context.Context, goal *entities.Goal) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Goal, error)
	Update(ctx context.Context, goal *entities.Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters GoalFilters) ([]*entities.Goal, error)

	// FindActiveByUser retorna as metas do usuário cujo período cobre a data
	FindActiveByUser(ctx context.Context, userID uuid.UUID, at time.Time) ([]*entities.Goal, error)
}

// GoalFilters contém filtros para listagem de metas
type GoalFilters struct {
	UserID   *uuid.UUID
	Type     *entities.GoalType
	Page     int
	PageSize int
}
