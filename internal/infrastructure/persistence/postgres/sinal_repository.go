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

// SinalRepository implementa repositories.SinalRepository
type SinalRepository struct {
	db *gorm.DB
}

// NewSinalRepository cria um novo SinalRepository
func NewSinalRepository(db *gorm.DB) *SinalRepository {
	return &SinalRepository{db: db}
}

func (r *SinalRepository) Create(ctx context.Context, sinal *entities.SinalNegocio) error {
	model := r.toModel(sinal)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	sinal.ID = model.ID
	return nil
}

func (r *SinalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.SinalNegocio, error) {
	var model SinalModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *SinalRepository) FindPendingByVehicle(ctx context.Context, vehicleID uuid.UUID) (*entities.SinalNegocio, error) {
	var model SinalModel

	db := dbFromContext(ctx, r.db)
	err := db.Where("vehicle_id = ? AND status = ?", vehicleID, string(entities.SinalPending)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *SinalRepository) Update(ctx context.Context, sinal *entities.SinalNegocio) error {
	model := r.toModel(sinal)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *SinalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&SinalModel{}, "id = ?", id).Error
}

func (r *SinalRepository) List(ctx context.Context, filters repositories.SinalFilters) ([]*entities.SinalNegocio, error) {
	var models []*SinalModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&SinalModel{})

	if filters.CustomerID != nil {
		query = query.Where("customer_id = ?", *filters.CustomerID)
	}
	if filters.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filters.VehicleID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}

	query = paginate(query, filters.Page, filters.PageSize).Order("created_at DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.SinalNegocio, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}

	return result, nil
}

// Conversores
func (r *SinalRepository) toModel(sinal *entities.SinalNegocio) *SinalModel {
	return &SinalModel{
		ID:           sinal.ID,
		CustomerID:   sinal.CustomerID,
		VehicleID:    sinal.VehicleID,
		SellerID:     sinal.SellerID,
		SaleID:       sinal.SaleID,
		Valor:        sinal.Valor,
		DataValidade: sinal.DataValidade,
		Status:       string(sinal.Status),
		CreatedAt:    sinal.CreatedAt.Unix(),
		UpdatedAt:    sinal.UpdatedAt.Unix(),
	}
}

func (r *SinalRepository) toEntity(model *SinalModel) *entities.SinalNegocio {
	return &entities.SinalNegocio{
		ID:           model.ID,
		CustomerID:   model.CustomerID,
		VehicleID:    model.VehicleID,
		SellerID:     model.SellerID,
		SaleID:       model.SaleID,
		Valor:        model.Valor,
		DataValidade: model.DataValidade,
		Status:       entities.SinalStatus(model.Status),
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}
}
