package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/repositories"
)

// VehicleRepository implementa repositories.VehicleRepository
type VehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository cria um novo VehicleRepository
func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *entities.Vehicle) error {
	model, err := r.toModel(vehicle)
	if err != nil {
		return err
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	vehicle.ID = model.ID
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Vehicle, error) {
	var model VehicleModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *entities.Vehicle) error {
	model, err := r.toModel(vehicle)
	if err != nil {
		return err
	}

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&VehicleModel{}, "id = ?", id).Error
}

func (r *VehicleRepository) List(ctx context.Context, filters repositories.VehicleFilters) ([]*entities.Vehicle, error) {
	var models []*VehicleModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&VehicleModel{})

	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}
	if filters.Brand != "" {
		query = query.Where("brand ILIKE ?", "%"+filters.Brand+"%")
	}
	if filters.LocationID != nil {
		query = query.Where("location_id = ?", *filters.LocationID)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}

	query = paginate(query, filters.Page, filters.PageSize).Order("created_at DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// StockStats agrega o estoque por status em uma única query
func (r *VehicleRepository) StockStats(ctx context.Context) (*repositories.StockStats, error) {
	db := dbFromContext(ctx, r.db)

	var rows []struct {
		Status string
		Count  int64
		Price  decimal.Decimal
		Cost   decimal.Decimal
	}

	err := db.Model(&VehicleModel{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(price), 0) AS price, COALESCE(SUM(cost), 0) AS cost").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &repositories.StockStats{}
	for _, row := range rows {
		switch entities.VehicleStatus(row.Status) {
		case entities.VehicleAvailable:
			stats.Available = row.Count
			stats.TotalStock = stats.TotalStock.Add(row.Price)
			stats.TotalStockCost = stats.TotalStockCost.Add(row.Cost)
		case entities.VehicleReserved:
			stats.Reserved = row.Count
			stats.TotalStock = stats.TotalStock.Add(row.Price)
			stats.TotalStockCost = stats.TotalStockCost.Add(row.Cost)
		case entities.VehicleSold:
			stats.Sold = row.Count
		}
	}

	return stats, nil
}

// Conversores
func (r *VehicleRepository) toModel(vehicle *entities.Vehicle) (*VehicleModel, error) {
	photos := "[]"
	if len(vehicle.Photos) > 0 {
		data, err := json.Marshal(vehicle.Photos)
		if err != nil {
			return nil, err
		}
		photos = string(data)
	}

	return &VehicleModel{
		ID:         vehicle.ID,
		Brand:      vehicle.Brand,
		Model:      vehicle.Model,
		Year:       vehicle.Year,
		Km:         vehicle.Km,
		Color:      vehicle.Color,
		Plate:      vehicle.Plate,
		Price:      vehicle.Price,
		Cost:       vehicle.Cost,
		FipeValue:  vehicle.FipeValue,
		Status:     string(vehicle.Status),
		Photos:     photos,
		LocationID: vehicle.LocationID,
		CreatedAt:  vehicle.CreatedAt.Unix(),
		UpdatedAt:  vehicle.UpdatedAt.Unix(),
	}, nil
}

func (r *VehicleRepository) toEntity(model *VehicleModel) (*entities.Vehicle, error) {
	var photos []string
	if model.Photos != "" {
		if err := json.Unmarshal([]byte(model.Photos), &photos); err != nil {
			// Coluna legada pode conter valor fora do formato JSON;
			// nesse caso trata como sem fotos
			photos = nil
		}
	}

	return &entities.Vehicle{
		ID:         model.ID,
		Brand:      model.Brand,
		Model:      model.Model,
		Year:       model.Year,
		Km:         model.Km,
		Color:      model.Color,
		Plate:      model.Plate,
		Price:      model.Price,
		Cost:       model.Cost,
		FipeValue:  model.FipeValue,
		Status:     entities.VehicleStatus(model.Status),
		Photos:     photos,
		LocationID: model.LocationID,
		CreatedAt:  time.Unix(model.CreatedAt, 0),
		UpdatedAt:  time.Unix(model.UpdatedAt, 0),
	}, nil
}

func (r *VehicleRepository) toEntities(models []*VehicleModel) ([]*entities.Vehicle, error) {
	result := make([]*entities.Vehicle, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}

	return result, nil
}
