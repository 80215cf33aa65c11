package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/repositories"
	"github.com/garagem/crm-backend/internal/handlers/dto"
	"github.com/garagem/crm-backend/internal/services"
)

// SinalHandler expõe os endpoints de sinais de negócio
type SinalHandler struct {
	sinalService *services.SinalService
}

// NewSinalHandler cria um novo SinalHandler
func NewSinalHandler(sinalService *services.SinalService) *SinalHandler {
	return &SinalHandler{sinalService: sinalService}
}

// Create godoc
// @Summary Registra um sinal e reserva o veículo
// @Tags sinais
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSinalRequest true "Dados do sinal"
// @Success 201 {object} dto.SinalResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sinais [post]
func (h *SinalHandler) Create(c *gin.Context) {
	var req dto.CreateSinalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	sinal, err := h.sinalService.Create(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSinalResponse(sinal))
}

// List godoc
// @Summary Lista sinais de negócio
// @Tags sinais
// @Security BearerAuth
// @Produce json
// @Param customer_id query string false "Filtra pelo cliente"
// @Param vehicle_id query string false "Filtra pelo veículo"
// @Param status query string false "Filtra por status (pendente, convertido, desistido, devolvido)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.SinalResponse
// @Router /sinais [get]
func (h *SinalHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filters := repositories.SinalFilters{Page: page, PageSize: pageSize}

	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			dto.RespondValidationError(c, err)
			return
		}
		filters.CustomerID = &customerID
	}
	if raw := c.Query("vehicle_id"); raw != "" {
		vehicleID, err := uuid.Parse(raw)
		if err != nil {
			dto.RespondValidationError(c, err)
			return
		}
		filters.VehicleID = &vehicleID
	}
	if raw := c.Query("status"); raw != "" {
		status := entities.SinalStatus(raw)
		filters.Status = &status
	}

	sinais, err := h.sinalService.List(c.Request.Context(), filters)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSinalResponses(sinais))
}

// Get godoc
// @Summary Busca um sinal pelo ID
// @Tags sinais
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID do sinal"
// @Success 200 {object} dto.SinalResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sinais/{id} [get]
func (h *SinalHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sinal, err := h.sinalService.GetByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSinalResponse(sinal))
}

// Convert godoc
// @Summary Converte um sinal pendente em venda
// @Description O valor do sinal entra como parte da entrada da venda gerada.
// @Tags sinais
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID do sinal"
// @Param request body dto.ConvertSinalRequest true "Dados da venda"
// @Success 201 {object} dto.ConvertSinalResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sinais/{id}/convert [post]
func (h *SinalHandler) Convert(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ConvertSinalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	sinal, sale, err := h.sinalService.Convert(c.Request.Context(), id, req.ToConvertInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ConvertSinalResponse{
		Sinal: dto.ToSinalResponse(sinal),
		Sale:  dto.ToSaleResponse(sale),
	})
}

// Withdraw godoc
// @Summary Registra a desistência do cliente (sinal retido)
// @Tags sinais
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID do sinal"
// @Success 200 {object} dto.SinalResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sinais/{id}/desistencia [post]
func (h *SinalHandler) Withdraw(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sinal, err := h.sinalService.Withdraw(c.Request.Context(), id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSinalResponse(sinal))
}

// Refund godoc
// @Summary Devolve o sinal ao cliente e libera o veículo
// @Tags sinais
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID do sinal"
// @Success 200 {object} dto.SinalResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sinais/{id}/devolver [post]
func (h *SinalHandler) Refund(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sinal, err := h.sinalService.Refund(c.Request.Context(), id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSinalResponse(sinal))
}

// Delete godoc
// @Summary Remove um sinal (libera a reserva quando pendente)
// @Tags sinais
// @Security BearerAuth
// @Param id path string true "ID do sinal"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /sinais/{id} [delete]
func (h *SinalHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.sinalService.Delete(c.Request.Context(), id); err != nil {
		dto.RespondError(c, err)
		return
	}

	respondNoContent(c)
}
