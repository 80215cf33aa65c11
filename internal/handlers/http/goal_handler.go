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

// GoalHandler expõe os endpoints de metas de vendas
type GoalHandler struct {
	goalService *services.GoalService
}

// NewGoalHandler cria um novo GoalHandler
func NewGoalHandler(goalService *services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// Create godoc
// @Summary Cria uma meta para um vendedor
// @Tags goals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Dados da meta"
// @Success 201 {object} dto.GoalResponse
// @Router /goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	goal, err := h.goalService.Create(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// List godoc
// @Summary Lista metas
// @Tags goals
// @Security BearerAuth
// @Produce json
// @Param user_id query string false "Filtra pelo vendedor"
// @Param type query string false "Filtra pelo tipo (sales, revenue, profit)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.GoalResponse
// @Router /goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filters := repositories.GoalFilters{Page: page, PageSize: pageSize}

	if raw := c.Query("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			dto.RespondValidationError(c, err)
			return
		}
		filters.UserID = &userID
	}
	if raw := c.Query("type"); raw != "" {
		goalType := entities.GoalType(raw)
		filters.Type = &goalType
	}

	goals, err := h.goalService.List(c.Request.Context(), filters)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponses(goals))
}

// Get godoc
// @Summary Busca uma meta pelo ID
// @Tags goals
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID da meta"
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/{id} [get]
func (h *GoalHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	goal, err := h.goalService.GetByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// Update godoc
// @Summary Atualiza uma meta
// @Tags goals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID da meta"
// @Param request body dto.UpdateGoalRequest true "Campos a atualizar"
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/{id} [put]
func (h *GoalHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	goal, err := h.goalService.Update(c.Request.Context(), id, req.ToUpdateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// Delete godoc
// @Summary Remove uma meta
// @Tags goals
// @Security BearerAuth
// @Param id path string true "ID da meta"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.goalService.Delete(c.Request.Context(), id); err != nil {
		dto.RespondError(c, err)
		return
	}

	respondNoContent(c)
}

// Progress godoc
// @Summary Progresso de uma meta (percentual e atingimento)
// @Tags goals
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID da meta"
// @Success 200 {object} dto.GoalProgressResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /goals/{id}/progress [get]
func (h *GoalHandler) Progress(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	progress, err := h.goalService.Progress(c.Request.Context(), id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalProgressResponse(progress))
}
