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

// PendenciaHandler expõe os endpoints de pendências de veículos
type PendenciaHandler struct {
	pendenciaService *services.PendenciaService
}

// NewPendenciaHandler cria um novo PendenciaHandler
func NewPendenciaHandler(pendenciaService *services.PendenciaService) *PendenciaHandler {
	return &PendenciaHandler{pendenciaService: pendenciaService}
}

// Create godoc
// @Summary Abre uma pendência para um veículo
// @Tags pendencias
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePendenciaRequest true "Dados da pendência"
// @Success 201 {object} dto.PendenciaResponse
// @Router /pendencias [post]
func (h *PendenciaHandler) Create(c *gin.Context) {
	var req dto.CreatePendenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	pendencia, err := h.pendenciaService.Create(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPendenciaResponse(pendencia))
}

// List godoc
// @Summary Lista pendências
// @Tags pendencias
// @Security BearerAuth
// @Produce json
// @Param vehicle_id query string false "Filtra pelo veículo"
// @Param responsavel_id query string false "Filtra pelo responsável"
// @Param status query string false "Filtra por status (aberto, em_analise, finalizado)"
// @Param marcador query string false "Filtra pelo marcador"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.PendenciaResponse
// @Router /pendencias [get]
func (h *PendenciaHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filters := repositories.PendenciaFilters{
		Marcador: c.Query("marcador"),
		Page:     page,
		PageSize: pageSize,
	}

	if raw := c.Query("vehicle_id"); raw != "" {
		vehicleID, err := uuid.Parse(raw)
		if err != nil {
			dto.RespondValidationError(c, err)
			return
		}
		filters.VehicleID = &vehicleID
	}
	if raw := c.Query("responsavel_id"); raw != "" {
		responsavelID, err := uuid.Parse(raw)
		if err != nil {
			dto.RespondValidationError(c, err)
			return
		}
		filters.ResponsavelID = &responsavelID
	}
	if raw := c.Query("status"); raw != "" {
		status := entities.PendenciaStatus(raw)
		filters.Status = &status
	}

	pendencias, err := h.pendenciaService.List(c.Request.Context(), filters)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPendenciaResponses(pendencias))
}

// Get godoc
// @Summary Busca uma pendência pelo ID
// @Tags pendencias
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID da pendência"
// @Success 200 {object} dto.PendenciaResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pendencias/{id} [get]
func (h *PendenciaHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	pendencia, err := h.pendenciaService.GetByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPendenciaResponse(pendencia))
}

// Update godoc
// @Summary Atualiza uma pendência
// @Tags pendencias
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID da pendência"
// @Param request body dto.UpdatePendenciaRequest true "Campos a atualizar"
// @Success 200 {object} dto.PendenciaResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pendencias/{id} [put]
func (h *PendenciaHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdatePendenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	pendencia, err := h.pendenciaService.Update(c.Request.Context(), id, req.ToUpdateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPendenciaResponse(pendencia))
}

// ChangeStatus godoc
// @Summary Muda o status de uma pendência
// @Tags pendencias
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID da pendência"
// @Param request body dto.ChangePendenciaStatusRequest true "Novo status"
// @Success 200 {object} dto.PendenciaResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /pendencias/{id}/status [patch]
func (h *PendenciaHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ChangePendenciaStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	pendencia, err := h.pendenciaService.ChangeStatus(c.Request.Context(), id, entities.PendenciaStatus(req.Status))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPendenciaResponse(pendencia))
}

// Delete godoc
// @Summary Remove uma pendência
// @Tags pendencias
// @Security BearerAuth
// @Param id path string true "ID da pendência"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /pendencias/{id} [delete]
func (h *PendenciaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.pendenciaService.Delete(c.Request.Context(), id); err != nil {
		dto.RespondError(c, err)
		return
	}

	respondNoContent(c)
}

// ListOverdue godoc
// @Summary Lista pendências com prazo vencido
// @Tags pendencias
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.PendenciaResponse
// @Router /pendencias/overdue [get]
func (h *PendenciaHandler) ListOverdue(c *gin.Context) {
	pendencias, err := h.pendenciaService.ListOverdue(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPendenciaResponses(pendencias))
}
