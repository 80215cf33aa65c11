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

// PromotionRepository implementa repositories.PromotionRepository
type PromotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository cria um novo PromotionRepository
func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) Create(ctx context.Context, promotion *entities.Promotion) error {
	model := r.toModel(promotion)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	promotion.ID = model.ID
	return nil
}

func (r *PromotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Promotion, error) {
	var model PromotionModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *PromotionRepository) Update(ctx context.Context, promotion *entities.Promotion) error {
	model := r.toModel(promotion)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *PromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&PromotionModel{}, "id = ?", id).Error
}

func (r *PromotionRepository) List(ctx context.Context, filters repositories.PromotionFilters) ([]*entities.Promotion, error) {
	var models []*PromotionModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&PromotionModel{})

	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}

	query = paginate(query, filters.Page, filters.PageSize).Order("start_date DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Promotion, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}

	return result, nil
}

func (r *PromotionRepository) FindActiveExpiredBefore(ctx context.Context, now time.Time) ([]*entities.Promotion, error) {
	var models []*PromotionModel

	db := dbFromContext(ctx, r.db)
	err := db.Model(&PromotionModel{}).
		Where("status = ? AND end_date < ?", string(entities.PromotionActive), now).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.Promotion, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}

	return result, nil
}

// Conversores
func (r *PromotionRepository) toModel(promotion *entities.Promotion) *PromotionModel {
	return &PromotionModel{
		ID:            promotion.ID,
		Name:          promotion.Name,
		Description:   promotion.Description,
		DiscountType:  string(promotion.DiscountType),
		DiscountValue: promotion.DiscountValue,
		StartDate:     promotion.StartDate,
		EndDate:       promotion.EndDate,
		Status:        string(promotion.Status),
		CreatedAt:     promotion.CreatedAt.Unix(),
		UpdatedAt:     promotion.UpdatedAt.Unix(),
	}
}

func (r *PromotionRepository) toEntity(model *PromotionModel) *entities.Promotion {
	return &entities.Promotion{
		ID:            model.ID,
		Name:          model.Name,
		Description:   model.Description,
		DiscountType:  entities.DiscountType(model.DiscountType),
		DiscountValue: model.DiscountValue,
		StartDate:     model.StartDate,
		EndDate:       model.EndDate,
		Status:        entities.PromotionStatus(model.Status),
		CreatedAt:     time.Unix(model.CreatedAt, 0),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0),
	}
}
