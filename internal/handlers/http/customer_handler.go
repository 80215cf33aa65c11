package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/garagem/crm-backend/internal/domain/repositories"
	"github.com/garagem/crm-backend/internal/handlers/dto"
	"github.com/garagem/crm-backend/internal/services"
)

// CustomerHandler expõe os endpoints de clientes
type CustomerHandler struct {
	customerService *services.CustomerService
}

// NewCustomerHandler cria um novo CustomerHandler
func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create godoc
// @Summary Cadastra um novo cliente
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// List godoc
// @Summary Lista clientes
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Param name query string false "Busca parcial pelo nome"
// @Param city query string false "Filtra pela cidade"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.CustomerResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filters := repositories.CustomerFilters{
		Name:     c.Query("name"),
		City:     c.Query("city"),
		Page:     page,
		PageSize: pageSize,
	}

	customers, err := h.customerService.List(c.Request.Context(), filters)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

// Get godoc
// @Summary Busca um cliente pelo ID
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// Update godoc
// @Summary Atualiza um cliente
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Param request body dto.UpdateCustomerRequest true "Campos a atualizar"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, req.ToUpdateInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// Delete godoc
// @Summary Remove um cliente
// @Tags customers
// @Security BearerAuth
// @Param id path string true "ID do cliente"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		dto.RespondError(c, err)
		return
	}

	respondNoContent(c)
}

// UpcomingBirthdays godoc
// @Summary Lista clientes com aniversário nos próximos dias
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Param days query int false "Janela em dias (default: 7)"
// @Success 200 {array} dto.UpcomingBirthdayResponse
// @Router /customers/birthdays/upcoming [get]
func (h *CustomerHandler) UpcomingBirthdays(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 0 {
		dto.RespondValidationError(c, errors.New("days must be a non-negative integer"))
		return
	}

	upcoming, err := h.customerService.GetUpcomingBirthdays(c.Request.Context(), days)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUpcomingBirthdayResponses(upcoming))
}
