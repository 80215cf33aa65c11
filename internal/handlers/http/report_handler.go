package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/garagem/crm-backend/internal/handlers/dto"
	"github.com/garagem/crm-backend/internal/services"
)

// ReportHandler expõe os relatórios gerenciais
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler cria um novo ReportHandler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Sales godoc
// @Summary Relatório de vendas do período, com quebra por vendedor
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param from query string false "Data inicial (yyyy-mm-dd, default: início do mês)"
// @Param to query string false "Data final (yyyy-mm-dd, default: hoje)"
// @Success 200 {object} dto.SalesReportResponse
// @Router /reports/sales [get]
func (h *ReportHandler) Sales(c *gin.Context) {
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}

	report, err := h.reportService.SalesReport(c.Request.Context(), from, to)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesReportResponse(report))
}

// Profitability godoc
// @Summary Relatório de lucratividade por venda (margem bruta)
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param from query string false "Data inicial (yyyy-mm-dd, default: início do mês)"
// @Param to query string false "Data final (yyyy-mm-dd, default: hoje)"
// @Success 200 {object} dto.ProfitabilityReportResponse
// @Router /reports/profitability [get]
func (h *ReportHandler) Profitability(c *gin.Context) {
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}

	report, err := h.reportService.Profitability(c.Request.Context(), from, to)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitabilityReportResponse(report))
}

// VehiclesStuck godoc
// @Summary Veículos parados no estoque há mais tempo que o limite
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param days query int false "Dias no estoque (default: 90)"
// @Success 200 {array} dto.StuckVehicleResponse
// @Router /reports/vehicles-stuck [get]
func (h *ReportHandler) VehiclesStuck(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "90"))
	if err != nil || days < 0 {
		dto.RespondValidationError(c, errors.New("days must be a non-negative integer"))
		return
	}

	stuck, err := h.reportService.VehiclesStuck(c.Request.Context(), days)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStuckVehicleResponses(stuck))
}
