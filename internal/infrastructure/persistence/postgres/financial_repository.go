package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/garagem/crm-backend/internal/domain/entities"
)

// FinancialCategoryRepository implementa repositories.FinancialCategoryRepository
type FinancialCategoryRepository struct {
	db *gorm.DB
}

// NewFinancialCategoryRepository cria um novo FinancialCategoryRepository
func NewFinancialCategoryRepository(db *gorm.DB) *FinancialCategoryRepository {
	return &FinancialCategoryRepository{db: db}
}

func (r *FinancialCategoryRepository) Create(ctx context.Context, category *entities.FinancialCategory) error {
	model := &FinancialCategoryModel{
		ID:       category.ID,
		ParentID: category.ParentID,
		Code:     category.Code,
		Name:     category.Name,
		Kind:     string(category.Kind),
		Level:    category.Level,
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	category.ID = model.ID
	return nil
}

func (r *FinancialCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.FinancialCategory, error) {
	var model FinancialCategoryModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *FinancialCategoryRepository) FindByCode(ctx context.Context, code string) (*entities.FinancialCategory, error) {
	var model FinancialCategoryModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *FinancialCategoryRepository) ListAll(ctx context.Context) ([]*entities.FinancialCategory, error) {
	var models []*FinancialCategoryModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("code ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.FinancialCategory, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}

	return result, nil
}

func (r *FinancialCategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	err := db.Model(&FinancialCategoryModel{}).Count(&count).Error
	return count, err
}

func (r *FinancialCategoryRepository) toEntity(model *FinancialCategoryModel) *entities.FinancialCategory {
	return &entities.FinancialCategory{
		ID:       model.ID,
		ParentID: model.ParentID,
		Code:     model.Code,
		Name:     model.Name,
		Kind:     entities.CategoryKind(model.Kind),
		Level:    model.Level,
	}
}

// LocationRepository implementa repositories.LocationRepository
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository cria um novo LocationRepository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, location *entities.Location) error {
	model := &LocationModel{
		ID:        location.ID,
		Name:      location.Name,
		Address:   location.Address,
		CreatedAt: location.CreatedAt.Unix(),
		UpdatedAt: location.UpdatedAt.Unix(),
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	location.ID = model.ID
	return nil
}

func (r *LocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Location, error) {
	var model LocationModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return locationToEntity(&model), nil
}

func (r *LocationRepository) Update(ctx context.Context, location *entities.Location) error {
	model := &LocationModel{
		ID:        location.ID,
		Name:      location.Name,
		Address:   location.Address,
		CreatedAt: location.CreatedAt.Unix(),
		UpdatedAt: location.UpdatedAt.Unix(),
	}

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *LocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&LocationModel{}, "id = ?", id).Error
}

func (r *LocationRepository) ListAll(ctx context.Context) ([]*entities.Location, error) {
	var models []*LocationModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Location, 0, len(models))
	for _, model := range models {
		result = append(result, locationToEntity(model))
	}

	return result, nil
}

func locationToEntity(model *LocationModel) *entities.Location {
	return &entities.Location{
		ID:        model.ID,
		Name:      model.Name,
		Address:   model.Address,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}
}
