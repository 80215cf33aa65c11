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

// SinalService contém a lógica de negócio para sinais de negócio.
// Um sinal pendente reserva o veículo; conversão, desistência e devolução
// mexem no status do veículo e por isso rodam em transação.
type SinalService struct {
	uow          ports.UnitOfWork
	sinalRepo    repositories.SinalRepository
	vehicleRepo  repositories.VehicleRepository
	customerRepo repositories.CustomerRepository
	userRepo     repositories.UserRepository
	saleService  *SaleService
	logger       ports.Logger
}

// NewSinalService cria um novo SinalService
func NewSinalService(
	uow ports.UnitOfWork,
	sinalRepo repositories.SinalRepository,
	vehicleRepo repositories.VehicleRepository,
	customerRepo repositories.CustomerRepository,
	userRepo repositories.UserRepository,
	saleService *SaleService,
	logger ports.Logger,
) *SinalService {
	return &SinalService{
		uow:          uow,
		sinalRepo:    sinalRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		saleService:  saleService,
		logger:       logger,
	}
}

// CreateSinalInput representa os dados para registrar um sinal
type CreateSinalInput struct {
	CustomerID   uuid.UUID
	VehicleID    uuid.UUID
	SellerID     uuid.UUID
	Valor        decimal.Decimal
	DataValidade time.Time
}

// Create registra um sinal pendente e reserva o veículo
func (s *SinalService) Create(ctx context.Context, input CreateSinalInput) (*entities.SinalNegocio, error) {
	var sinal *entities.SinalNegocio

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

		vehicle, err := s.vehicleRepo.FindByID(txCtx, input.VehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return errors.ErrVehicleNotFound
		}
		if err := vehicle.MarkReserved(); err != nil {
			return errors.ErrVehicleNotForSale
		}

		sinal = &entities.SinalNegocio{
			CustomerID:   input.CustomerID,
			VehicleID:    input.VehicleID,
			SellerID:     input.SellerID,
			Valor:        input.Valor,
			DataValidade: input.DataValidade,
			Status:       entities.SinalPending,
		}

		if err := sinal.Validate(); err != nil {
			return errors.Validation(err)
		}

		if err := s.sinalRepo.Create(txCtx, sinal); err != nil {
			return err
		}

		return s.vehicleRepo.Update(txCtx, vehicle)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sinal created", "sinal_id", sinal.ID, "vehicle_id", sinal.VehicleID)
	return sinal, nil
}

// GetByID busca um sinal pelo ID
func (s *SinalService) GetByID(ctx context.Context, id uuid.UUID) (*entities.SinalNegocio, error) {
	sinal, err := s.sinalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sinal == nil {
		return nil, errors.ErrSinalNotFound
	}
	return sinal, nil
}

// List lista sinais com filtros e paginação
func (s *SinalService) List(ctx context.Context, filters repositories.SinalFilters) ([]*entities.SinalNegocio, error) {
	return s.sinalRepo.List(ctx, filters)
}

// ConvertSinalInput representa os dados da venda gerada pela conversão
type ConvertSinalInput struct {
	SalePrice     decimal.Decimal
	EntryCash     decimal.Decimal
	FinancedValue decimal.Decimal
	Commission    decimal.Decimal
	TradeInID     *uuid.UUID
	ContractURL   *string
}

// Convert transforma um sinal pendente em venda. O veículo sai da reserva
// e a venda passa pela cascata normal, tudo na mesma transação.
func (s *SinalService) Convert(ctx context.Context, id uuid.UUID, input ConvertSinalInput) (*entities.SinalNegocio, *entities.Sale, error) {
	var sinal *entities.SinalNegocio
	var sale *entities.Sale

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		sinal, err = s.sinalRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if sinal == nil {
			return errors.ErrSinalNotFound
		}
		if !sinal.IsPending() {
			return errors.ErrInvalidTransition
		}

		vehicle, err := s.vehicleRepo.FindByID(txCtx, sinal.VehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return errors.ErrVehicleNotFound
		}

		// Libera a reserva para a venda seguir o caminho normal
		vehicle.Release()
		if err := s.vehicleRepo.Update(txCtx, vehicle); err != nil {
			return err
		}

		// Sinal pago entra como parte da entrada
		sale, err = s.saleService.Create(txCtx, CreateSaleInput{
			CustomerID:    sinal.CustomerID,
			VehicleID:     sinal.VehicleID,
			SellerID:      sinal.SellerID,
			TradeInID:     input.TradeInID,
			SalePrice:     input.SalePrice,
			EntryCash:     input.EntryCash.Add(sinal.Valor),
			FinancedValue: input.FinancedValue,
			Commission:    input.Commission,
			ContractURL:   input.ContractURL,
		})
		if err != nil {
			return err
		}

		if err := sinal.Convert(sale.ID); err != nil {
			return errors.ErrInvalidTransition
		}
		return s.sinalRepo.Update(txCtx, sinal)
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("sinal converted", "sinal_id", sinal.ID, "sale_id", sale.ID)
	return sinal, sale, nil
}

// Withdraw registra a desistência do cliente e libera o veículo
func (s *SinalService) Withdraw(ctx context.Context, id uuid.UUID) (*entities.SinalNegocio, error) {
	return s.releaseWith(ctx, id, func(sinal *entities.SinalNegocio) error {
		return sinal.Withdraw()
	}, "sinal withdrawn")
}

// Refund registra a devolução do valor ao cliente e libera o veículo
// caso a reserva ainda estivesse de pé
func (s *SinalService) Refund(ctx context.Context, id uuid.UUID) (*entities.SinalNegocio, error) {
	return s.releaseWith(ctx, id, func(sinal *entities.SinalNegocio) error {
		return sinal.Refund()
	}, "sinal refunded")
}

// releaseWith aplica uma transição terminal ao sinal e devolve o veículo
// para disponível quando ele ainda estava reservado
func (s *SinalService) releaseWith(ctx context.Context, id uuid.UUID, transition func(*entities.SinalNegocio) error, logMsg string) (*entities.SinalNegocio, error) {
	var sinal *entities.SinalNegocio

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		sinal, err = s.sinalRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if sinal == nil {
			return errors.ErrSinalNotFound
		}

		wasPending := sinal.IsPending()

		if err := transition(sinal); err != nil {
			return errors.ErrInvalidTransition
		}
		if err := s.sinalRepo.Update(txCtx, sinal); err != nil {
			return err
		}

		if !wasPending {
			return nil
		}

		vehicle, err := s.vehicleRepo.FindByID(txCtx, sinal.VehicleID)
		if err != nil {
			return err
		}
		if vehicle != nil && vehicle.Status == entities.VehicleReserved {
			vehicle.Release()
			return s.vehicleRepo.Update(txCtx, vehicle)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(logMsg, "sinal_id", sinal.ID, "vehicle_id", sinal.VehicleID)
	return sinal, nil
}

// Delete remove um sinal. Sinais pendentes liberam a reserva do veículo.
func (s *SinalService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		sinal, err := s.sinalRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if sinal == nil {
			return errors.ErrSinalNotFound
		}

		if sinal.IsPending() {
			vehicle, err := s.vehicleRepo.FindByID(txCtx, sinal.VehicleID)
			if err != nil {
				return err
			}
			if vehicle != nil && vehicle.Status == entities.VehicleReserved {
				vehicle.Release()
				if err := s.vehicleRepo.Update(txCtx, vehicle); err != nil {
					return err
				}
			}
		}

		if err := s.sinalRepo.Delete(txCtx, id); err != nil {
			return err
		}

		s.logger.Info("sinal deleted", "sinal_id", id)
		return nil
	})
}
