package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/errors"
	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/domain/repositories"
)

// FinancialService contém a lógica do plano de contas e do painel financeiro
type FinancialService struct {
	categoryRepo repositories.FinancialCategoryRepository
	saleRepo     repositories.SaleRepository
	vehicleRepo  repositories.VehicleRepository
	logger       ports.Logger
}

// NewFinancialService cria um novo FinancialService
func NewFinancialService(
	categoryRepo repositories.FinancialCategoryRepository,
	saleRepo repositories.SaleRepository,
	vehicleRepo repositories.VehicleRepository,
	logger ports.Logger,
) *FinancialService {
	return &FinancialService{
		categoryRepo: categoryRepo,
		saleRepo:     saleRepo,
		vehicleRepo:  vehicleRepo,
		logger:       logger,
	}
}

// GetCategoryTree retorna o plano de contas como árvore
func (s *FinancialService) GetCategoryTree(ctx context.Context) ([]*entities.FinancialCategory, error) {
	flat, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return entities.BuildCategoryTree(flat), nil
}

// CreateCategoryInput representa os dados para criar uma categoria
type CreateCategoryInput struct {
	ParentID *uuid.UUID
	Code     string
	Name     string
	Kind     entities.CategoryKind
}

// CreateCategory adiciona uma categoria ao plano de contas.
// O nível é derivado do pai; a natureza deve coincidir com a do pai.
func (s *FinancialService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*entities.FinancialCategory, error) {
	category := &entities.FinancialCategory{
		ParentID: input.ParentID,
		Code:     input.Code,
		Name:     input.Name,
		Kind:     input.Kind,
		Level:    1,
	}

	if input.ParentID != nil {
		parent, err := s.categoryRepo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errors.ErrCategoryNotFound
		}
		if parent.Level >= entities.MaxCategoryLevel {
			return nil, errors.ErrCategoryTooDeep
		}
		if parent.Kind != input.Kind {
			return nil, errors.ErrCategoryKindMismatch
		}
		category.Level = parent.Level + 1
	}

	if err := category.Validate(); err != nil {
		return nil, errors.Validation(err)
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("financial category created", "category_id", category.ID, "code", category.Code)
	return category, nil
}

// Dashboard agrega receita, despesa e lucro do período
type Dashboard struct {
	From       time.Time
	To         time.Time
	Receita    decimal.Decimal
	Despesa    decimal.Decimal
	Lucro      decimal.Decimal
	SalesCount int
}

// GetDashboard calcula os agregados financeiros sobre as vendas ativas do
// período: receita é a soma dos preços de venda, despesa a soma dos custos
// dos veículos vendidos.
func (s *FinancialService) GetDashboard(ctx context.Context, from, to time.Time) (*Dashboard, error) {
	status := entities.SaleCompleted
	sales, err := s.saleRepo.List(ctx, repositories.SaleFilters{
		Status:   &status,
		From:     &from,
		To:       &to,
		PageSize: -1, // sem paginação: agregação sobre o período inteiro
	})
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		From:    from,
		To:      to,
		Receita: decimal.Zero,
		Despesa: decimal.Zero,
	}

	for _, sale := range sales {
		dashboard.Receita = dashboard.Receita.Add(sale.SalePrice)
		dashboard.SalesCount++

		vehicle, err := s.vehicleRepo.FindByID(ctx, sale.VehicleID)
		if err != nil {
			return nil, err
		}
		if vehicle != nil {
			dashboard.Despesa = dashboard.Despesa.Add(vehicle.Cost)
		}
	}

	dashboard.Lucro = dashboard.Receita.Sub(dashboard.Despesa)
	return dashboard, nil
}
