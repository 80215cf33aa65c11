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

// SaleService contém a lógica de negócio para vendas.
// A criação e o cancelamento disparam efeitos em cascata (veículo, troca,
// metas) e por isso rodam dentro de uma transação.
type SaleService struct {
	uow          ports.UnitOfWork
	saleRepo     repositories.SaleRepository
	vehicleRepo  repositories.VehicleRepository
	customerRepo repositories.CustomerRepository
	userRepo     repositories.UserRepository
	tradeInRepo  repositories.TradeInRepository
	goalRepo     repositories.GoalRepository
	notifier     ports.Notifier
	logger       ports.Logger
}

// NewSaleService cria um novo SaleService
func NewSaleService(
	uow ports.UnitOfWork,
	saleRepo repositories.SaleRepository,
	vehicleRepo repositories.VehicleRepository,
	customerRepo repositories.CustomerRepository,
	userRepo repositories.UserRepository,
	tradeInRepo repositories.TradeInRepository,
	goalRepo repositories.GoalRepository,
	notifier ports.Notifier,
	logger ports.Logger,
) *SaleService {
	return &SaleService{
		uow:          uow,
		saleRepo:     saleRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		tradeInRepo:  tradeInRepo,
		goalRepo:     goalRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// CreateSaleInput representa os dados para registrar uma venda
type CreateSaleInput struct {
	CustomerID    uuid.UUID
	VehicleID     uuid.UUID
	SellerID      uuid.UUID
	TradeInID     *uuid.UUID
	SalePrice     decimal.Decimal
	EntryCash     decimal.Decimal
	FinancedValue decimal.Decimal
	Commission    decimal.Decimal // zero: calcula pelo percentual padrão do vendedor
	ContractURL   *string
	SaleDate      time.Time
}

// Create registra uma venda e aplica os efeitos em cascata em uma única
// transação: o veículo vai para vendido, a troca (se houver) é aceita e as
// metas ativas do vendedor são atualizadas.
func (s *SaleService) Create(ctx context.Context, input CreateSaleInput) (*entities.Sale, error) {
	var sale *entities.Sale
	var vehicle *entities.Vehicle

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		customer, err := s.customerRepo.FindByID(txCtx, input.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return errors.ErrCustomerNotFound
		}

		seller, err := s.userRepo.FindByID(txCtx, input.SellerID)
		if err != nil {
			return err
		}
		if seller == nil {
			return errors.ErrUserNotFound
		}

		vehicle, err = s.vehicleRepo.FindByID(txCtx, input.VehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return errors.ErrVehicleNotFound
		}
		if !vehicle.IsAvailable() {
			return errors.ErrVehicleNotForSale
		}

		saleDate := input.SaleDate
		if saleDate.IsZero() {
			saleDate = time.Now()
		}

		sale = &entities.Sale{
			CustomerID:    input.CustomerID,
			VehicleID:     input.VehicleID,
			SellerID:      input.SellerID,
			TradeInID:     input.TradeInID,
			SalePrice:     input.SalePrice,
			EntryCash:     input.EntryCash,
			FinancedValue: input.FinancedValue,
			Commission:    input.Commission,
			Status:        entities.SaleCompleted,
			ContractURL:   input.ContractURL,
			SaleDate:      saleDate,
		}

		if sale.Commission.IsZero() {
			sale.Commission = sale.CommissionFor(seller.CommissionPercent)
		}

		if err := sale.Validate(); err != nil {
			return errors.Validation(err)
		}

		if input.TradeInID != nil {
			tradeIn, err := s.tradeInRepo.FindByID(txCtx, *input.TradeInID)
			if err != nil {
				return err
			}
			if tradeIn == nil {
				return errors.ErrTradeInNotFound
			}
			if err := tradeIn.Accept(); err != nil {
				return errors.ErrInvalidTransition
			}
			if err := s.tradeInRepo.Update(txCtx, tradeIn); err != nil {
				return err
			}
		}

		if err := s.saleRepo.Create(txCtx, sale); err != nil {
			return err
		}

		if err := vehicle.MarkSold(); err != nil {
			return errors.ErrVehicleNotForSale
		}
		if err := s.vehicleRepo.Update(txCtx, vehicle); err != nil {
			return err
		}

		return s.applyToGoals(txCtx, sale, vehicle, false)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sale created",
		"sale_id", sale.ID,
		"vehicle_id", sale.VehicleID,
		"seller_id", sale.SellerID,
		"price", sale.SalePrice.String())

	s.notifier.Publish(ports.Event{
		Kind:    "sale.created",
		Message: "venda registrada",
		Payload: map[string]any{
			"sale_id":    sale.ID,
			"vehicle_id": sale.VehicleID,
			"seller_id":  sale.SellerID,
		},
	})

	return sale, nil
}

// GetByID busca uma venda pelo ID
func (s *SaleService) GetByID(ctx context.Context, id uuid.UUID) (*entities.Sale, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, errors.ErrSaleNotFound
	}
	return sale, nil
}

// List lista vendas com filtros e paginação
func (s *SaleService) List(ctx context.Context, filters repositories.SaleFilters) ([]*entities.Sale, error) {
	return s.saleRepo.List(ctx, filters)
}

// Cancel cancela uma venda e desfaz os efeitos em cascata: o veículo volta
// para disponível, a troca (se houver) reabre e as metas do vendedor são
// revertidas. Tudo dentro de uma transação.
func (s *SaleService) Cancel(ctx context.Context, id uuid.UUID) (*entities.Sale, error) {
	var sale *entities.Sale

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		sale, err = s.saleRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return errors.ErrSaleNotFound
		}

		if err := sale.Cancel(); err != nil {
			return errors.ErrInvalidTransition
		}
		if err := s.saleRepo.Update(txCtx, sale); err != nil {
			return err
		}

		vehicle, err := s.vehicleRepo.FindByID(txCtx, sale.VehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return errors.ErrVehicleNotFound
		}
		vehicle.Release()
		if err := s.vehicleRepo.Update(txCtx, vehicle); err != nil {
			return err
		}

		if sale.TradeInID != nil {
			tradeIn, err := s.tradeInRepo.FindByID(txCtx, *sale.TradeInID)
			if err != nil {
				return err
			}
			if tradeIn != nil {
				if err := tradeIn.Reopen(); err != nil {
					return errors.ErrInvalidTransition
				}
				if err := s.tradeInRepo.Update(txCtx, tradeIn); err != nil {
					return err
				}
			}
		}

		return s.applyToGoals(txCtx, sale, vehicle, true)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sale cancelled", "sale_id", sale.ID, "vehicle_id", sale.VehicleID)

	s.notifier.Publish(ports.Event{
		Kind:    "sale.cancelled",
		Message: "venda cancelada",
		Payload: map[string]any{"sale_id": sale.ID},
	})

	return sale, nil
}

// applyToGoals aplica (ou reverte) o efeito da venda sobre as metas ativas
// do vendedor na data da venda
func (s *SaleService) applyToGoals(ctx context.Context, sale *entities.Sale, vehicle *entities.Vehicle, revert bool) error {
	goals, err := s.goalRepo.FindActiveByUser(ctx, sale.SellerID, sale.SaleDate)
	if err != nil {
		return err
	}

	profit := sale.SalePrice.Sub(vehicle.Cost)
	for _, goal := range goals {
		if revert {
			goal.RevertSale(sale.SalePrice, profit)
		} else {
			goal.ApplySale(sale.SalePrice, profit)
		}
		if err := s.goalRepo.Update(ctx, goal); err != nil {
			return err
		}
	}

	return nil
}
