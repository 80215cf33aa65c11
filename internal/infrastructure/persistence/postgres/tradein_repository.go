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

// TradeInRepository implementa repositories.TradeInRepository
type TradeInRepository struct {
	db *gorm.DB
}

// NewTradeInRepository cria um novo TradeInRepository
func NewTradeInRepository(db *gorm.DB) *TradeInRepository {
	return &TradeInRepository{db: db}
}

func (r *TradeInRepository) Create(ctx context.Context, tradeIn *entities.TradeIn) error {
	model := r.toModel(tradeIn)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	tradeIn.ID = model.ID
	return nil
}

func (r *TradeInRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.TradeIn, error) {
	var model TradeInModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *TradeInRepository) Update(ctx context.Context, tradeIn *entities.TradeIn) error {
	model := r.toModel(tradeIn)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *TradeInRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&TradeInModel{}, "id = ?", id).Error
}

func (r *TradeInRepository) List(ctx context.Context, filters repositories.TradeInFilters) ([]*entities.TradeIn, error) {
	var models []*TradeInModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&TradeInModel{})

	if filters.CustomerID != nil {
		query = query.Where("customer_id = ?", *filters.CustomerID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}

	query = paginate(query, filters.Page, filters.PageSize).Order("created_at DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.TradeIn, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}

	return result, nil
}

// Conversores
func (r *TradeInRepository) toModel(tradeIn *entities.TradeIn) *TradeInModel {
	return &TradeInModel{
		ID:         tradeIn.ID,
		CustomerID: tradeIn.CustomerID,
		Brand:      tradeIn.Brand,
		Model:      tradeIn.Model,
		Year:       tradeIn.Year,
		Km:         tradeIn.Km,
		ValueFipe:  tradeIn.ValueFipe,
		ValueOffer: tradeIn.ValueOffer,
		Status:     string(tradeIn.Status),
		Notes:      tradeIn.Notes,
		CreatedAt:  tradeIn.CreatedAt.Unix(),
		UpdatedAt:  tradeIn.UpdatedAt.Unix(),
	}
}

func (r *TradeInRepository) toEntity(model *TradeInModel) *entities.TradeIn {
	return &entities.TradeIn{
		ID:         model.ID,
		CustomerID: model.CustomerID,
		Brand:      model.Brand,
		Model:      model.Model,
		Year:       model.Year,
		Km:         model.Km,
		ValueFipe:  model.ValueFipe,
		ValueOffer: model.ValueOffer,
		Status:     entities.TradeInStatus(model.Status),
		Notes:      model.Notes,
		CreatedAt:  time.Unix(model.CreatedAt, 0),
		UpdatedAt:  time.Unix(model.UpdatedAt, 0),
	}
}
