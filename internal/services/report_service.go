package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/domain/repositories"
)

// ReportService monta os relatórios gerenciais
type ReportService struct {
	saleRepo    repositories.SaleRepository
	vehicleRepo repositories.VehicleRepository
	userRepo    repositories.UserRepository
	logger      ports.Logger
}

// NewReportService cria um novo ReportService
func NewReportService(
	saleRepo repositories.SaleRepository,
	vehicleRepo repositories.VehicleRepository,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *ReportService {
	return &ReportService{
		saleRepo:    saleRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// SellerTally agrega as vendas de um vendedor no período
type SellerTally struct {
	SellerID   uuid.UUID
	SellerName string
	Count      int
	Total      decimal.Decimal
	Commission decimal.Decimal
}

// SalesReport agrega as vendas concluídas de um período
type SalesReport struct {
	From      time.Time
	To        time.Time
	Count     int
	Total     decimal.Decimal
	BySeller  []SellerTally
	AvgTicket decimal.Decimal
}

// SalesReport monta o relatório de vendas do período, com tally por vendedor
func (s *ReportService) SalesReport(ctx context.Context, from, to time.Time) (*SalesReport, error) {
	status := entities.SaleCompleted
	sales, err := s.saleRepo.List(ctx, repositories.SaleFilters{
		Status:   &status,
		From:     &from,
		To:       &to,
		PageSize: -1,
	})
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		From:  from,
		To:    to,
		Total: decimal.Zero,
	}

	tallies := make(map[uuid.UUID]*SellerTally)
	for _, sale := range sales {
		report.Count++
		report.Total = report.Total.Add(sale.SalePrice)

		tally, ok := tallies[sale.SellerID]
		if !ok {
			tally = &SellerTally{
				SellerID:   sale.SellerID,
				Total:      decimal.Zero,
				Commission: decimal.Zero,
			}
			tallies[sale.SellerID] = tally
		}
		tally.Count++
		tally.Total = tally.Total.Add(sale.SalePrice)
		tally.Commission = tally.Commission.Add(sale.Commission)
	}

	for sellerID, tally := range tallies {
		seller, err := s.userRepo.FindByID(ctx, sellerID)
		if err != nil {
			return nil, err
		}
		if seller != nil {
			tally.SellerName = seller.Name
		}
		report.BySeller = append(report.BySeller, *tally)
	}

	sort.Slice(report.BySeller, func(i, j int) bool {
		return report.BySeller[i].Total.GreaterThan(report.BySeller[j].Total)
	})

	if report.Count > 0 {
		report.AvgTicket = report.Total.Div(decimal.NewFromInt(int64(report.Count))).Round(2)
	} else {
		report.AvgTicket = decimal.Zero
	}

	return report, nil
}

// ProfitabilityLine é a margem de uma venda individual
type ProfitabilityLine struct {
	SaleID        uuid.UUID
	VehicleID     uuid.UUID
	Brand         string
	Model         string
	SalePrice     decimal.Decimal
	Cost          decimal.Decimal
	Margin        decimal.Decimal
	MarginPercent decimal.Decimal
}

// ProfitabilityReport agrega preço de venda contra custo por venda
type ProfitabilityReport struct {
	From        time.Time
	To          time.Time
	Lines       []ProfitabilityLine
	TotalMargin decimal.Decimal
}

// Profitability monta o relatório de margem por venda do período
func (s *ReportService) Profitability(ctx context.Context, from, to time.Time) (*ProfitabilityReport, error) {
	status := entities.SaleCompleted
	sales, err := s.saleRepo.List(ctx, repositories.SaleFilters{
		Status:   &status,
		From:     &from,
		To:       &to,
		PageSize: -1,
	})
	if err != nil {
		return nil, err
	}

	report := &ProfitabilityReport{
		From:        from,
		To:          to,
		TotalMargin: decimal.Zero,
	}

	for _, sale := range sales {
		vehicle, err := s.vehicleRepo.FindByID(ctx, sale.VehicleID)
		if err != nil {
			return nil, err
		}
		if vehicle == nil {
			continue
		}

		margin := sale.SalePrice.Sub(vehicle.Cost)
		line := ProfitabilityLine{
			SaleID:    sale.ID,
			VehicleID: vehicle.ID,
			Brand:     vehicle.Brand,
			Model:     vehicle.Model,
			SalePrice: sale.SalePrice,
			Cost:      vehicle.Cost,
			Margin:    margin,
		}
		if !sale.SalePrice.IsZero() {
			line.MarginPercent = margin.Div(sale.SalePrice).Mul(decimal.NewFromInt(100)).Round(2)
		}

		report.Lines = append(report.Lines, line)
		report.TotalMargin = report.TotalMargin.Add(margin)
	}

	return report, nil
}

// StuckVehicle é um veículo parado no estoque há mais tempo que o corte
type StuckVehicle struct {
	Vehicle     *entities.Vehicle
	DaysInStock int
}

// VehiclesStuck lista veículos não vendidos há mais de N dias no estoque,
// do mais antigo para o mais recente
func (s *ReportService) VehiclesStuck(ctx context.Context, days int) ([]StuckVehicle, error) {
	if days <= 0 {
		days = 90
	}

	vehicles, err := s.vehicleRepo.List(ctx, repositories.VehicleFilters{PageSize: -1})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var stuck []StuckVehicle
	for _, v := range vehicles {
		if v.Status == entities.VehicleSold {
			continue
		}
		inStock := v.DaysInStock(now)
		if inStock > days {
			stuck = append(stuck, StuckVehicle{Vehicle: v, DaysInStock: inStock})
		}
	}

	sort.Slice(stuck, func(i, j int) bool {
		return stuck[i].DaysInStock > stuck[j].DaysInStock
	})

	return stuck, nil
}
