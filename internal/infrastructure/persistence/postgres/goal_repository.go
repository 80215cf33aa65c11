package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/repositories"
)

// GoalRepository implementa repositories.GoalRepository
type GoalRepository struct {
	db *gorm.DB
}

// NewGoalRepository cria um novo GoalRepository
func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *entities.Goal) error {
	model := r.toModel(goal)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	goal.ID = model.ID
	return nil
}

func (r *GoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Goal, error) {
	var model GoalModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *GoalRepository) Update(ctx context.Context, goal *entities.Goal) error {
	model := r.toModel(goal)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *GoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&GoalModel{}, "id = ?", id).Error
}

func (r *GoalRepository) List(ctx context.Context, filters repositories.GoalFilters) ([]*entities.Goal, error) {
	var models []*GoalModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&GoalModel{})

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", string(*filters.Type))
	}

	query = paginate(query, filters.Page, filters.PageSize).Order("start_date DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Goal, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}

	return result, nil
}

func (r *GoalRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID, at time.Time) ([]*entities.Goal, error) {
	var models []*GoalModel

	db := dbFromContext(ctx, r.db)
	err := db.Model(&GoalModel{}).
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, at, at).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.Goal, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}

	return result, nil
}

// Conversores
func (r *GoalRepository) toModel(goal *entities.Goal) *GoalModel {
	return &GoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		Type:         string(goal.Type),
		TargetValue:  goal.TargetValue,
		CurrentValue: goal.CurrentValue,
		Period:       goal.Period,
		StartDate:    goal.StartDate,
		EndDate:      goal.EndDate,
		CreatedAt:    goal.CreatedAt.Unix(),
		UpdatedAt:    goal.UpdatedAt.Unix(),
	}
}

func (r *GoalRepository) toEntity(model *GoalModel) *entities.Goal {
	return &entities.Goal{
		ID:           model.ID,
		UserID:       model.UserID,
		Type:         entities.GoalType(model.Type),
		TargetValue:  model.TargetValue,
		CurrentValue: model.CurrentValue,
		Period:       model.Period,
		StartDate:    model.StartDate,
		EndDate:      model.EndDate,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}
}
