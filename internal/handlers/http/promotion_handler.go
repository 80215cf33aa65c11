package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/repositories"
	"github.com/garagem/crm-backend/internal/handlers/dto"
	"github.com/garagem/crm-backend/internal/services"
)

// PromotionHandler expõe os endpoints de promoções
type PromotionHandler struct {
	promotionService *services.PromotionService
}

// NewPromotionHandler cria um novo PromotionHandler
func NewPromotionHandler(promotionService *services.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

// Create godoc
// @Summary Cria uma promoção
// @Tags promotions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePromotionRequest true "Dados da promoção"
// @Success 201 {object} dto.PromotionResponse
// @Router /promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	var req dto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	promotion, err := h.promotionService.Create(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPromotionResponse(promotion))
}

// List godoc
// @Summary Lista promoções
// @Tags promotions
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filtra por status (ativa, inativa, expirada)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.PromotionResponse
// @Router /promotions [get]
func (h *PromotionHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filters := repositories.PromotionFilters{Page: page, PageSize: pageSize}

	if raw := c.Query("status"); raw != "" {
		status := entities.PromotionStatus(raw)
		filters.Status = &status
	}

	promotions, err := h.promotionService.List(c.Request.Context(), filters)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPromotionResponses(promotions))
}

// Get godoc
// @Summary Busca uma promoção pelo ID
// @Tags promotions
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID da promoção"
// @Success 200 {object} dto.PromotionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /promotions/{id} [get]
func (h *PromotionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	promotion, err := h.promotionService.GetByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPromotionResponse(promotion))
}

// Update godoc
// @Summary Atualiza uma promoção
// @Tags promotions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID da promoção"
// @Param request body dto.UpdatePromotionRequest true "Campos a atualizar"
// @Success 200 {object} dto.PromotionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /promotions/{id} [put]
func (h *PromotionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	promotion, err := h.promotionService.Update(c.Request.Context(), id, req.ToUpdateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPromotionResponse(promotion))
}

// Delete godoc
// @Summary Remove uma promoção
// @Tags promotions
// @Security BearerAuth
// @Param id path string true "ID da promoção"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.promotionService.Delete(c.Request.Context(), id); err != nil {
		dto.RespondError(c, err)
		return
	}

	respondNoContent(c)
}
