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

// TradeInHandler expõe os endpoints de veículos na troca
type TradeInHandler struct {
	tradeInService *services.TradeInService
}

// NewTradeInHandler cria um novo TradeInHandler
func NewTradeInHandler(tradeInService *services.TradeInService) *TradeInHandler {
	return &TradeInHandler{tradeInService: tradeInService}
}

// Create godoc
// @Summary Registra um veículo oferecido na troca
// @Tags tradeins
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTradeInRequest true "Dados do veículo na troca"
// @Success 201 {object} dto.TradeInResponse
// @Router /tradeins [post]
func (h *TradeInHandler) Create(c *gin.Context) {
	var req dto.CreateTradeInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	tradeIn, err := h.tradeInService.Create(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTradeInResponse(tradeIn))
}

// List godoc
// @Summary Lista veículos na troca
// @Tags tradeins
// @Security BearerAuth
// @Produce json
// @Param customer_id query string false "Filtra pelo cliente"
// @Param status query string false "Filtra por status (pendente, aceito, recusado, vendido)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.TradeInResponse
// @Router /tradeins [get]
func (h *TradeInHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filters := repositories.TradeInFilters{Page: page, PageSize: pageSize}

	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			dto.RespondValidationError(c, err)
			return
		}
		filters.CustomerID = &customerID
	}
	if raw := c.Query("status"); raw != "" {
		status := entities.TradeInStatus(raw)
		filters.Status = &status
	}

	tradeIns, err := h.tradeInService.List(c.Request.Context(), filters)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTradeInResponses(tradeIns))
}

// Get godoc
// @Summary Busca um veículo na troca pelo ID
// @Tags tradeins
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID da troca"
// @Success 200 {object} dto.TradeInResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tradeins/{id} [get]
func (h *TradeInHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	tradeIn, err := h.tradeInService.GetByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTradeInResponse(tradeIn))
}

// Update godoc
// @Summary Atualiza a avaliação de um veículo na troca
// @Tags tradeins
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID da troca"
// @Param request body dto.UpdateTradeInRequest true "Campos a atualizar"
// @Success 200 {object} dto.TradeInResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tradeins/{id} [put]
func (h *TradeInHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateTradeInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	tradeIn, err := h.tradeInService.Update(c.Request.Context(), id, req.ToUpdateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTradeInResponse(tradeIn))
}

// ChangeStatus godoc
// @Summary Muda o status da avaliação da troca
// @Tags tradeins
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID da troca"
// @Param request body dto.ChangeTradeInStatusRequest true "Novo status"
// @Success 200 {object} dto.TradeInResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /tradeins/{id}/status [patch]
func (h *TradeInHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ChangeTradeInStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	tradeIn, err := h.tradeInService.ChangeStatus(c.Request.Context(), id, entities.TradeInStatus(req.Status))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTradeInResponse(tradeIn))
}

// Delete godoc
// @Summary Remove um registro de troca
// @Tags tradeins
// @Security BearerAuth
// @Param id path string true "ID da troca"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /tradeins/{id} [delete]
func (h *TradeInHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.tradeInService.Delete(c.Request.Context(), id); err != nil {
		dto.RespondError(c, err)
		return
	}

	respondNoContent(c)
}
