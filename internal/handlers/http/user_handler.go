package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garagem/crm-backend/internal/domain/entities"
	domainerrors "github.com/garagem/crm-backend/internal/domain/errors"
	"github.com/garagem/crm-backend/internal/domain/repositories"
	"github.com/garagem/crm-backend/internal/handlers/dto"
	"github.com/garagem/crm-backend/internal/handlers/middleware"
	"github.com/garagem/crm-backend/internal/services"
)

// UserHandler expõe os endpoints de usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List godoc
// @Summary Lista usuários
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param role query string false "Filtra por papel (admin, gerente, vendedor)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.UserResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filters := repositories.UserFilters{Page: page, PageSize: pageSize}

	if raw := c.Query("role"); raw != "" {
		role := entities.Role(raw)
		filters.Role = &role
	}

	users, err := h.userService.List(c.Request.Context(), filters)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// Get godoc
// @Summary Busca um usuário pelo ID
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Me godoc
// @Summary Retorna o usuário autenticado
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		dto.RespondError(c, domainerrors.ErrUnauthorized)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Update godoc
// @Summary Atualiza um usuário
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID do usuário"
// @Param request body dto.UpdateUserRequest true "Campos a atualizar"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req.ToUpdateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Delete godoc
// @Summary Remove um usuário
// @Tags users
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		dto.RespondError(c, err)
		return
	}

	respondNoContent(c)
}
