package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/handlers/dto"
)

// FipeHandler expõe a consulta ao preço de referência FIPE
type FipeHandler struct {
	priceTable ports.PriceTable
}

// NewFipeHandler cria um novo FipeHandler
func NewFipeHandler(priceTable ports.PriceTable) *FipeHandler {
	return &FipeHandler{priceTable: priceTable}
}

// Search godoc
// @Summary Consulta o preço de referência de um veículo na tabela FIPE
// @Tags fipe
// @Security BearerAuth
// @Produce json
// @Param brand query string true "Marca"
// @Param model query string true "Modelo"
// @Param year query int true "Ano do modelo"
// @Success 200 {object} dto.FipeQuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /fipe/search [get]
func (h *FipeHandler) Search(c *gin.Context) {
	var req dto.FipeSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	quote, err := h.priceTable.Lookup(c.Request.Context(), req.Brand, req.Model, req.Year)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFipeQuoteResponse(quote))
}
