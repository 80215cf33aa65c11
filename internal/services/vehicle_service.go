package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/errors"
	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/domain/repositories"
)

// VehicleService contém a lógica de negócio para o estoque de veículos
type VehicleService struct {
	vehicleRepo  repositories.VehicleRepository
	locationRepo repositories.LocationRepository
	logger       ports.Logger
}

// NewVehicleService cria um novo VehicleService
func NewVehicleService(
	vehicleRepo repositories.VehicleRepository,
	locationRepo repositories.LocationRepository,
	logger ports.Logger,
) *VehicleService {
	return &VehicleService{
		vehicleRepo:  vehicleRepo,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// CreateVehicleInput representa os dados para cadastrar um veículo
type CreateVehicleInput struct {
	Brand      string
	Model      string
	Year       int
	Km         int
	Color      string
	Plate      string
	Price      decimal.Decimal
	Cost       decimal.Decimal
	FipeValue  *decimal.Decimal
	Photos     []string
	LocationID *uuid.UUID
}

// Create cadastra um veículo no estoque com status disponível
func (s *VehicleService) Create(ctx context.Context, input CreateVehicleInput) (*entities.Vehicle, error) {
	if input.LocationID != nil {
		location, err := s.locationRepo.FindByID(ctx, *input.LocationID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, errors.ErrLocationNotFound
		}
	}

	vehicle := &entities.Vehicle{
		Brand:      input.Brand,
		Model:      input.Model,
		Year:       input.Year,
		Km:         input.Km,
		Color:      input.Color,
		Plate:      input.Plate,
		Price:      input.Price,
		Cost:       input.Cost,
		FipeValue:  input.FipeValue,
		Status:     entities.VehicleAvailable,
		Photos:     input.Photos,
		LocationID: input.LocationID,
	}

	if err := vehicle.Validate(); err != nil {
		return nil, errors.Validation(err)
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	s.logger.Info("vehicle created", "vehicle_id", vehicle.ID, "plate", vehicle.Plate)
	return vehicle, nil
}

// GetByID busca um veículo pelo ID
func (s *VehicleService) GetByID(ctx context.Context, id uuid.UUID) (*entities.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, errors.ErrVehicleNotFound
	}
	return vehicle, nil
}

// List lista veículos com filtros e paginação
func (s *VehicleService) List(ctx context.Context, filters repositories.VehicleFilters) ([]*entities.Vehicle, error) {
	return s.vehicleRepo.List(ctx, filters)
}

// UpdateVehicleInput representa os dados para atualizar um veículo
type UpdateVehicleInput struct {
	Brand      *string
	Model      *string
	Year       *int
	Km         *int
	Color      *string
	Plate      *string
	Price      *decimal.Decimal
	Cost       *decimal.Decimal
	FipeValue  *decimal.Decimal
	Photos     []string
	LocationID *uuid.UUID
}

// Update atualiza os dados de um veículo.
// A mudança de status não passa por aqui: vendas, sinais e cancelamentos
// controlam o status do veículo.
func (s *VehicleService) Update(ctx context.Context, id uuid.UUID, input UpdateVehicleInput) (*entities.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, errors.ErrVehicleNotFound
	}

	if input.Brand != nil {
		vehicle.Brand = *input.Brand
	}
	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.Year != nil {
		vehicle.Year = *input.Year
	}
	if input.Km != nil {
		vehicle.Km = *input.Km
	}
	if input.Color != nil {
		vehicle.Color = *input.Color
	}
	if input.Plate != nil {
		vehicle.Plate = *input.Plate
	}
	if input.Price != nil {
		vehicle.Price = *input.Price
	}
	if input.Cost != nil {
		vehicle.Cost = *input.Cost
	}
	if input.FipeValue != nil {
		vehicle.FipeValue = input.FipeValue
	}
	if input.Photos != nil {
		vehicle.Photos = input.Photos
	}
	if input.LocationID != nil {
		location, err := s.locationRepo.FindByID(ctx, *input.LocationID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, errors.ErrLocationNotFound
		}
		vehicle.LocationID = input.LocationID
	}

	if err := vehicle.Validate(); err != nil {
		return nil, errors.Validation(err)
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	s.logger.Info("vehicle updated", "vehicle_id", vehicle.ID)
	return vehicle, nil
}

// Delete remove um veículo do estoque
func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return errors.ErrVehicleNotFound
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("vehicle deleted", "vehicle_id", id)
	return nil
}

// StockStats retorna os agregados do estoque (contagens por status e capital parado)
func (s *VehicleService) StockStats(ctx context.Context) (*repositories.StockStats, error) {
	return s.vehicleRepo.StockStats(ctx)
}
