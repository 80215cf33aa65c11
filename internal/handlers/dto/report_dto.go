package dto

import (
	"time"

	"github.com/garagem/crm-backend/internal/services"
)

// SellerTallyResponse representa o desempenho de um vendedor no período
type SellerTallyResponse struct {
	SellerID   string  `json:"seller_id"`
	SellerName string  `json:"seller_name,omitempty"`
	Count      int     `json:"count"`
	Total      float64 `json:"total"`
	Commission float64 `json:"commission"`
}

// SalesReportResponse representa o relatório de vendas do período
type SalesReportResponse struct {
	From      time.Time             `json:"from"`
	To        time.Time             `json:"to"`
	Count     int                   `json:"count"`
	Total     float64               `json:"total"`
	AvgTicket float64               `json:"avg_ticket"`
	BySeller  []SellerTallyResponse `json:"by_seller"`
}

// ToSalesReportResponse converte o relatório de vendas do serviço
func ToSalesReportResponse(report *services.SalesReport) SalesReportResponse {
	response := SalesReportResponse{
		From:      report.From,
		To:        report.To,
		Count:     report.Count,
		Total:     report.Total.InexactFloat64(),
		AvgTicket: report.AvgTicket.InexactFloat64(),
		BySeller:  make([]SellerTallyResponse, len(report.BySeller)),
	}
	for i, tally := range report.BySeller {
		response.BySeller[i] = SellerTallyResponse{
			SellerID:   tally.SellerID.String(),
			SellerName: tally.SellerName,
			Count:      tally.Count,
			Total:      tally.Total.InexactFloat64(),
			Commission: tally.Commission.InexactFloat64(),
		}
	}
	return response
}

// ProfitabilityLineResponse representa a margem de uma venda
type ProfitabilityLineResponse struct {
	SaleID        string  `json:"sale_id"`
	VehicleID     string  `json:"vehicle_id"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	SalePrice     float64 `json:"sale_price"`
	Cost          float64 `json:"cost"`
	Margin        float64 `json:"margin"`
	MarginPercent float64 `json:"margin_percent"`
}

// ProfitabilityReportResponse representa o relatório de lucratividade
type ProfitabilityReportResponse struct {
	From        time.Time                   `json:"from"`
	To          time.Time                   `json:"to"`
	TotalMargin float64                     `json:"total_margin"`
	Lines       []ProfitabilityLineResponse `json:"lines"`
}

// ToProfitabilityReportResponse converte o relatório de lucratividade do serviço
func ToProfitabilityReportResponse(report *services.ProfitabilityReport) ProfitabilityReportResponse {
	response := ProfitabilityReportResponse{
		From:        report.From,
		To:          report.To,
		TotalMargin: report.TotalMargin.InexactFloat64(),
		Lines:       make([]ProfitabilityLineResponse, len(report.Lines)),
	}
	for i, line := range report.Lines {
		response.Lines[i] = ProfitabilityLineResponse{
			SaleID:        line.SaleID.String(),
			VehicleID:     line.VehicleID.String(),
			Brand:         line.Brand,
			Model:         line.Model,
			SalePrice:     line.SalePrice.InexactFloat64(),
			Cost:          line.Cost.InexactFloat64(),
			Margin:        line.Margin.InexactFloat64(),
			MarginPercent: line.MarginPercent.InexactFloat64(),
		}
	}
	return response
}

// StuckVehicleResponse representa um veículo parado no estoque
type StuckVehicleResponse struct {
	Vehicle     VehicleResponse `json:"vehicle"`
	DaysInStock int             `json:"days_in_stock"`
}

// ToStuckVehicleResponses converte a lista de veículos parados do serviço
func ToStuckVehicleResponses(stuck []services.StuckVehicle) []StuckVehicleResponse {
	responses := make([]StuckVehicleResponse, len(stuck))
	for i, s := range stuck {
		responses[i] = StuckVehicleResponse{
			Vehicle:     ToVehicleResponse(s.Vehicle),
			DaysInStock: s.DaysInStock,
		}
	}
	return responses
}
