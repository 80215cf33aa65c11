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

// SaleHandler expõe os endpoints de vendas
type SaleHandler struct {
	saleService *services.SaleService
}

// NewSaleHandler cria um novo SaleHandler
func NewSaleHandler(saleService *services.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create godoc
// @Summary Registra uma venda
// @Description Marca o veículo como vendido, aceita a troca vinculada (se houver)
// @Description e credita o progresso das metas do vendedor, tudo na mesma transação.
// @Tags sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	sale, err := h.saleService.Create(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// List godoc
// @Summary Lista vendas
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Param seller_id query string false "Filtra pelo vendedor"
// @Param customer_id query string false "Filtra pelo cliente"
// @Param status query string false "Filtra por status (concluida, cancelada)"
// @Param from query string false "Data inicial (yyyy-mm-dd)"
// @Param to query string false "Data final (yyyy-mm-dd)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.SaleResponse
// @Router /sales [get]
func (h *SaleHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filters := repositories.SaleFilters{Page: page, PageSize: pageSize}

	if raw := c.Query("seller_id"); raw != "" {
		sellerID, err := uuid.Parse(raw)
		if err != nil {
			dto.RespondValidationError(c, err)
			return
		}
		filters.SellerID = &sellerID
	}
	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			dto.RespondValidationError(c, err)
			return
		}
		filters.CustomerID = &customerID
	}
	if raw := c.Query("status"); raw != "" {
		status := entities.SaleStatus(raw)
		filters.Status = &status
	}
	if c.Query("from") != "" || c.Query("to") != "" {
		from, to, ok := parsePeriod(c)
		if !ok {
			return
		}
		filters.From = &from
		filters.To = &to
	}

	sales, err := h.saleService.List(c.Request.Context(), filters)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}

// Get godoc
// @Summary Busca uma venda pelo ID
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sale, err := h.saleService.GetByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// Cancel godoc
// @Summary Cancela uma venda
// @Description Reverte a cascata: devolve o veículo ao estoque, reabre a troca
// @Description e debita o progresso das metas creditadas.
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sales/{id}/cancel [post]
func (h *SaleHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sale, err := h.saleService.Cancel(c.Request.Context(), id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}
