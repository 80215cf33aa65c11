package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garagem/crm-backend/internal/handlers/dto"
	"github.com/garagem/crm-backend/internal/services"
)

// FinancialHandler expõe o plano de contas e o dashboard financeiro
type FinancialHandler struct {
	financialService *services.FinancialService
}

// NewFinancialHandler cria um novo FinancialHandler
func NewFinancialHandler(financialService *services.FinancialService) *FinancialHandler {
	return &FinancialHandler{financialService: financialService}
}

// CategoryTree godoc
// @Summary Árvore de categorias financeiras (até 4 níveis)
// @Tags financial
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /financial/categories [get]
func (h *FinancialHandler) CategoryTree(c *gin.Context) {
	roots, err := h.financialService.GetCategoryTree(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(roots))
}

// CreateCategory godoc
// @Summary Cria uma categoria financeira
// @Description O nível é derivado do pai. A árvore tem no máximo 4 níveis e
// @Description o tipo (receita ou despesa) deve coincidir com o do pai.
// @Tags financial
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /financial/categories [post]
func (h *FinancialHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	category, err := h.financialService.CreateCategory(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// Dashboard godoc
// @Summary Resumo financeiro do período (receita, despesa, lucro)
// @Tags financial
// @Security BearerAuth
// @Produce json
// @Param from query string false "Data inicial (yyyy-mm-dd, default: início do mês)"
// @Param to query string false "Data final (yyyy-mm-dd, default: hoje)"
// @Success 200 {object} dto.DashboardResponse
// @Router /financial/dashboard [get]
func (h *FinancialHandler) Dashboard(c *gin.Context) {
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}

	dashboard, err := h.financialService.GetDashboard(c.Request.Context(), from, to)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}
