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

// SaleRepository implementa repositories.SaleRepository
type SaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository cria um novo SaleRepository
func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) Create(ctx context.Context, sale *entities.Sale) error {
	model := r.toModel(sale)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	sale.ID = model.ID
	return nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Sale, error) {
	var model SaleModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *SaleRepository) FindActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) (*entities.Sale, error) {
	var model SaleModel

	db := dbFromContext(ctx, r.db)
	err := db.Where("vehicle_id = ? AND status <> ?", vehicleID, string(entities.SaleCancelled)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *SaleRepository) Update(ctx context.Context, sale *entities.Sale) error {
	model := r.toModel(sale)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *SaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&SaleModel{}, "id = ?", id).Error
}

func (r *SaleRepository) List(ctx context.Context, filters repositories.SaleFilters) ([]*entities.Sale, error) {
	var models []*SaleModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&SaleModel{})

	if filters.SellerID != nil {
		query = query.Where("seller_id = ?", *filters.SellerID)
	}
	if filters.CustomerID != nil {
		query = query.Where("customer_id = ?", *filters.CustomerID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}
	if filters.From != nil {
		query = query.Where("sale_date >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("sale_date <= ?", *filters.To)
	}

	query = paginate(query, filters.Page, filters.PageSize).Order("sale_date DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Sale, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}

	return result, nil
}

// Conversores
func (r *SaleRepository) toModel(sale *entities.Sale) *SaleModel {
	return &SaleModel{
		ID:            sale.ID,
		CustomerID:    sale.CustomerID,
		VehicleID:     sale.VehicleID,
		SellerID:      sale.SellerID,
		TradeInID:     sale.TradeInID,
		SalePrice:     sale.SalePrice,
		EntryCash:     sale.EntryCash,
		FinancedValue: sale.FinancedValue,
		Commission:    sale.Commission,
		Status:        string(sale.Status),
		ContractURL:   sale.ContractURL,
		SaleDate:      sale.SaleDate,
		CreatedAt:     sale.CreatedAt.Unix(),
		UpdatedAt:     sale.UpdatedAt.Unix(),
	}
}

func (r *SaleRepository) toEntity(model *SaleModel) *entities.Sale {
	return &entities.Sale{
		ID:            model.ID,
		CustomerID:    model.CustomerID,
		VehicleID:     model.VehicleID,
		SellerID:      model.SellerID,
		TradeInID:     model.TradeInID,
		SalePrice:     model.SalePrice,
		EntryCash:     model.EntryCash,
		FinancedValue: model.FinancedValue,
		Commission:    model.Commission,
		Status:        entities.SaleStatus(model.Status),
		ContractURL:   model.ContractURL,
		SaleDate:      model.SaleDate,
		CreatedAt:     time.Unix(model.CreatedAt, 0),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0),
	}
}
