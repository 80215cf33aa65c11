package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/repositories"
	"github.com/garagem/crm-backend/internal/services"
)

// CreateVehicleRequest representa a requisição para cadastrar um veículo
type CreateVehicleRequest struct {
	Brand      string     `json:"brand" binding:"required,max=60"`
	Model      string     `json:"model" binding:"required,max=100"`
	Year       int        `json:"year" binding:"required,gte=1950"`
	Km         int        `json:"km" binding:"gte=0"`
	Color      string     `json:"color" binding:"max=40"`
	Plate      string     `json:"plate" binding:"max=10"`
	Price      float64    `json:"price" binding:"required,gt=0"`
	Cost       float64    `json:"cost" binding:"gte=0"`
	FipeValue  *float64   `json:"fipe_value" binding:"omitempty,gte=0"`
	Photos     []string   `json:"photos" binding:"omitempty,dive,url"`
	LocationID *uuid.UUID `json:"location_id"`
}

// ToCreateInput converte a requisição para o input do serviço
func (r *CreateVehicleRequest) ToCreateInput() services.CreateVehicleInput {
	input := services.CreateVehicleInput{
		Brand:      r.Brand,
		Model:      r.Model,
		Year:       r.Year,
		Km:         r.Km,
		Color:      r.Color,
		Plate:      r.Plate,
		Price:      decimal.NewFromFloat(r.Price),
		Cost:       decimal.NewFromFloat(r.Cost),
		Photos:     r.Photos,
		LocationID: r.LocationID,
	}
	if r.FipeValue != nil {
		fipe := decimal.NewFromFloat(*r.FipeValue)
		input.FipeValue = &fipe
	}
	return input
}

// UpdateVehicleRequest representa a requisição para atualizar um veículo
type UpdateVehicleRequest struct {
	Brand      *string    `json:"brand" binding:"omitempty,max=60"`
	Model      *string    `json:"model" binding:"omitempty,max=100"`
	Year       *int       `json:"year" binding:"omitempty,gte=1950"`
	Km         *int       `json:"km" binding:"omitempty,gte=0"`
	Color      *string    `json:"color" binding:"omitempty,max=40"`
	Plate      *string    `json:"plate" binding:"omitempty,max=10"`
	Price      *float64   `json:"price" binding:"omitempty,gt=0"`
	Cost       *float64   `json:"cost" binding:"omitempty,gte=0"`
	FipeValue  *float64   `json:"fipe_value" binding:"omitempty,gte=0"`
	Photos     []string   `json:"photos" binding:"omitempty,dive,url"`
	LocationID *uuid.UUID `json:"location_id"`
}

// ToUpdateInput converte a requisição para o input do serviço
func (r *UpdateVehicleRequest) ToUpdateInput() services.UpdateVehicleInput {
	input := services.UpdateVehicleInput{
		Brand:      r.Brand,
		Model:      r.Model,
		Year:       r.Year,
		Km:         r.Km,
		Color:      r.Color,
		Plate:      r.Plate,
		Photos:     r.Photos,
		LocationID: r.LocationID,
	}
	if r.Price != nil {
		price := decimal.NewFromFloat(*r.Price)
		input.Price = &price
	}
	if r.Cost != nil {
		cost := decimal.NewFromFloat(*r.Cost)
		input.Cost = &cost
	}
	if r.FipeValue != nil {
		fipe := decimal.NewFromFloat(*r.FipeValue)
		input.FipeValue = &fipe
	}
	return input
}

// VehicleResponse representa a resposta de um veículo
type VehicleResponse struct {
	ID         string     `json:"id"`
	Brand      string     `json:"brand"`
	Model      string     `json:"model"`
	Year       int        `json:"year"`
	Km         int        `json:"km"`
	Color      string     `json:"color,omitempty"`
	Plate      string     `json:"plate,omitempty"`
	Price      float64    `json:"price"`
	Cost       float64    `json:"cost"`
	FipeValue  *float64   `json:"fipe_value,omitempty"`
	Status     string     `json:"status"`
	Photos     []string   `json:"photos,omitempty"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ToVehicleResponse converte uma entidade Vehicle para VehicleResponse
func ToVehicleResponse(vehicle *entities.Vehicle) VehicleResponse {
	response := VehicleResponse{
		ID:         vehicle.ID.String(),
		Brand:      vehicle.Brand,
		Model:      vehicle.Model,
		Year:       vehicle.Year,
		Km:         vehicle.Km,
		Color:      vehicle.Color,
		Plate:      vehicle.Plate,
		Price:      vehicle.Price.InexactFloat64(),
		Cost:       vehicle.Cost.InexactFloat64(),
		Status:     string(vehicle.Status),
		Photos:     vehicle.Photos,
		LocationID: vehicle.LocationID,
		CreatedAt:  vehicle.CreatedAt,
	}
	if vehicle.FipeValue != nil {
		fipe := vehicle.FipeValue.InexactFloat64()
		response.FipeValue = &fipe
	}
	return response
}

// ToVehicleResponses converte uma lista de entidades Vehicle
func ToVehicleResponses(vehicles []*entities.Vehicle) []VehicleResponse {
	responses := make([]VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		responses[i] = ToVehicleResponse(vehicle)
	}
	return responses
}

// StockStatsResponse representa os agregados do estoque
type StockStatsResponse struct {
	Available      int64   `json:"available"`
	Reserved       int64   `json:"reserved"`
	Sold           int64   `json:"sold"`
	TotalStock     float64 `json:"total_stock_value"`
	TotalStockCost float64 `json:"total_stock_cost"`
}

// ToStockStatsResponse converte os agregados do repositório
func ToStockStatsResponse(stats *repositories.StockStats) StockStatsResponse {
	return StockStatsResponse{
		Available:      stats.Available,
		Reserved:       stats.Reserved,
		Sold:           stats.Sold,
		TotalStock:     stats.TotalStock.InexactFloat64(),
		TotalStockCost: stats.TotalStockCost.InexactFloat64(),
	}
}
