package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/errors"
	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/domain/repositories"
)

// TradeInService contém a lógica de negócio para veículos de troca
type TradeInService struct {
	tradeInRepo  repositories.TradeInRepository
	customerRepo repositories.CustomerRepository
	logger       ports.Logger
}

// NewTradeInService cria um novo TradeInService
func NewTradeInService(
	tradeInRepo repositories.TradeInRepository,
	customerRepo repositories.CustomerRepository,
	logger ports.Logger,
) *TradeInService {
	return &TradeInService{
		tradeInRepo:  tradeInRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// CreateTradeInInput representa os dados para registrar uma troca
type CreateTradeInInput struct {
	CustomerID uuid.UUID
	Brand      string
	Model      string
	Year       int
	Km         int
	ValueFipe  decimal.Decimal
	ValueOffer decimal.Decimal
	Notes      string
}

// Create registra um veículo oferecido na troca, com status pendente
func (s *TradeInService) Create(ctx context.Context, input CreateTradeInInput) (*entities.TradeIn, error) {
	customer, err := s.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.ErrCustomerNotFound
	}

	tradeIn := &entities.TradeIn{
		CustomerID: input.CustomerID,
		Brand:      input.Brand,
		Model:      input.Model,
		Year:       input.Year,
		Km:         input.Km,
		ValueFipe:  input.ValueFipe,
		ValueOffer: input.ValueOffer,
		Status:     entities.TradeInPending,
		Notes:      input.Notes,
	}

	if err := tradeIn.Validate(); err != nil {
		return nil, errors.Validation(err)
	}

	if err := s.tradeInRepo.Create(ctx, tradeIn); err != nil {
		return nil, err
	}

	s.logger.Info("trade-in created", "tradein_id", tradeIn.ID, "customer_id", tradeIn.CustomerID)
	return tradeIn, nil
}

// GetByID busca uma troca pelo ID
func (s *TradeInService) GetByID(ctx context.Context, id uuid.UUID) (*entities.TradeIn, error) {
	tradeIn, err := s.tradeInRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tradeIn == nil {
		return nil, errors.ErrTradeInNotFound
	}
	return tradeIn, nil
}

// List lista trocas com filtros e paginação
func (s *TradeInService) List(ctx context.Context, filters repositories.TradeInFilters) ([]*entities.TradeIn, error) {
	return s.tradeInRepo.List(ctx, filters)
}

// UpdateTradeInInput representa os dados para atualizar uma troca
type UpdateTradeInInput struct {
	Brand      *string
	Model      *string
	Year       *int
	Km         *int
	ValueFipe  *decimal.Decimal
	ValueOffer *decimal.Decimal
	Notes      *string
}

// Update atualiza os dados de uma troca (status muda por ChangeStatus)
func (s *TradeInService) Update(ctx context.Context, id uuid.UUID, input UpdateTradeInInput) (*entities.TradeIn, error) {
	tradeIn, err := s.tradeInRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tradeIn == nil {
		return nil, errors.ErrTradeInNotFound
	}

	if input.Brand != nil {
		tradeIn.Brand = *input.Brand
	}
	if input.Model != nil {
		tradeIn.Model = *input.Model
	}
	if input.Year != nil {
		tradeIn.Year = *input.Year
	}
	if input.Km != nil {
		tradeIn.Km = *input.Km
	}
	if input.ValueFipe != nil {
		tradeIn.ValueFipe = *input.ValueFipe
	}
	if input.ValueOffer != nil {
		tradeIn.ValueOffer = *input.ValueOffer
	}
	if input.Notes != nil {
		tradeIn.Notes = *input.Notes
	}

	if err := tradeIn.Validate(); err != nil {
		return nil, errors.Validation(err)
	}

	if err := s.tradeInRepo.Update(ctx, tradeIn); err != nil {
		return nil, err
	}

	s.logger.Info("trade-in updated", "tradein_id", tradeIn.ID)
	return tradeIn, nil
}

// ChangeStatus aplica uma transição de status à troca
func (s *TradeInService) ChangeStatus(ctx context.Context, id uuid.UUID, next entities.TradeInStatus) (*entities.TradeIn, error) {
	tradeIn, err := s.tradeInRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tradeIn == nil {
		return nil, errors.ErrTradeInNotFound
	}

	if err := tradeIn.TransitionTo(next); err != nil {
		return nil, errors.ErrInvalidTransition
	}

	if err := s.tradeInRepo.Update(ctx, tradeIn); err != nil {
		return nil, err
	}

	s.logger.Info("trade-in status changed", "tradein_id", tradeIn.ID, "status", tradeIn.Status)
	return tradeIn, nil
}

// Delete remove uma troca
func (s *TradeInService) Delete(ctx context.Context, id uuid.UUID) error {
	tradeIn, err := s.tradeInRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if tradeIn == nil {
		return errors.ErrTradeInNotFound
	}

	if err := s.tradeInRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("trade-in deleted", "tradein_id", id)
	return nil
}
