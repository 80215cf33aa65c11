package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/repositories"
	"github.com/garagem/crm-backend/internal/handlers/dto"
	"github.com/garagem/crm-backend/internal/services"
)

// VehicleHandler expõe os endpoints do estoque de veículos
type VehicleHandler struct {
	vehicleService *services.VehicleService
}

// NewVehicleHandler cria um novo VehicleHandler
func NewVehicleHandler(vehicleService *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// Create godoc
// @Summary Cadastra um veículo no estoque
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateVehicleRequest true "Dados do veículo"
// @Success 201 {object} dto.VehicleResponse
// @Router /vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}

// List godoc
// @Summary Lista veículos do estoque
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filtra por status (disponivel, reservado, vendido)"
// @Param brand query string false "Filtra pela marca"
// @Param location_id query string false "Filtra pela localização"
// @Param max_price query number false "Preço máximo"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.VehicleResponse
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filters := repositories.VehicleFilters{
		Brand:    c.Query("brand"),
		Page:     page,
		PageSize: pageSize,
	}

	if raw := c.Query("status"); raw != "" {
		status := entities.VehicleStatus(raw)
		filters.Status = &status
	}
	if raw := c.Query("location_id"); raw != "" {
		locationID, err := uuid.Parse(raw)
		if err != nil {
			dto.RespondValidationError(c, err)
			return
		}
		filters.LocationID = &locationID
	}
	if raw := c.Query("max_price"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			dto.RespondValidationError(c, err)
			return
		}
		filters.MaxPrice = &maxPrice
	}

	vehicles, err := h.vehicleService.List(c.Request.Context(), filters)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponses(vehicles))
}

// Get godoc
// @Summary Busca um veículo pelo ID
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID do veículo"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// Update godoc
// @Summary Atualiza um veículo
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID do veículo"
// @Param request body dto.UpdateVehicleRequest true "Campos a atualizar"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), id, req.ToUpdateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// Delete godoc
// @Summary Remove um veículo do estoque
// @Tags vehicles
// @Security BearerAuth
// @Param id path string true "ID do veículo"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		dto.RespondError(c, err)
		return
	}

	respondNoContent(c)
}

// StockStats godoc
// @Summary Estatísticas do estoque (contagens por status e valores totais)
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.StockStatsResponse
// @Router /vehicles/stats/stock [get]
func (h *VehicleHandler) StockStats(c *gin.Context) {
	stats, err := h.vehicleService.StockStats(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStockStatsResponse(stats))
}
