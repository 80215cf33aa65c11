package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/errors"
	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/domain/repositories"
	"github.com/garagem/crm-backend/internal/domain/valueobjects"
)

// CustomerService contém a lógica de negócio para clientes
type CustomerService struct {
	customerRepo repositories.CustomerRepository
	logger       ports.Logger
}

// NewCustomerService cria um novo CustomerService
func NewCustomerService(customerRepo repositories.CustomerRepository, logger ports.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// CreateCustomerInput representa os dados para criar um cliente
type CreateCustomerInput struct {
	Name      string
	Phone     string
	Email     *string
	CPF       *string
	BirthDate *time.Time
	Address   string
	City      string
	State     string
	Notes     string
}

// Create cria um novo cliente
func (s *CustomerService) Create(ctx context.Context, input CreateCustomerInput) (*entities.Customer, error) {
	phone, err := valueobjects.NewPhone(input.Phone)
	if err != nil {
		return nil, errors.ErrInvalidPhone
	}

	customer := &entities.Customer{
		Name:      input.Name,
		Phone:     phone,
		BirthDate: input.BirthDate,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		Notes:     input.Notes,
	}

	if input.Email != nil && *input.Email != "" {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, errors.ErrInvalidEmail
		}
		customer.Email = &email
	}

	if input.CPF != nil && *input.CPF != "" {
		cpf, err := valueobjects.NewCPF(*input.CPF)
		if err != nil {
			return nil, errors.ErrInvalidCPF
		}

		existing, err := s.customerRepo.FindByCPF(ctx, cpf.String())
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.ErrCPFAlreadyExists
		}
		customer.CPF = &cpf
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer created", "customer_id", customer.ID)
	return customer, nil
}

// GetByID busca um cliente pelo ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.ErrCustomerNotFound
	}
	return customer, nil
}

// List lista clientes com filtros e paginação
func (s *CustomerService) List(ctx context.Context, filters repositories.CustomerFilters) ([]*entities.Customer, error) {
	return s.customerRepo.List(ctx, filters)
}

// UpdateCustomerInput representa os dados para atualizar um cliente
type UpdateCustomerInput struct {
	Name      *string
	Phone     *string
	Email     *string
	CPF       *string
	BirthDate *time.Time
	Address   *string
	City      *string
	State     *string
	Notes     *string
}

// Update atualiza os dados de um cliente
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*entities.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.ErrCustomerNotFound
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}

	if input.Phone != nil {
		phone, err := valueobjects.NewPhone(*input.Phone)
		if err != nil {
			return nil, errors.ErrInvalidPhone
		}
		customer.Phone = phone
	}

	if input.Email != nil {
		if *input.Email == "" {
			customer.Email = nil
		} else {
			email, err := valueobjects.NewEmail(*input.Email)
			if err != nil {
				return nil, errors.ErrInvalidEmail
			}
			customer.Email = &email
		}
	}

	if input.CPF != nil {
		if *input.CPF == "" {
			customer.CPF = nil
		} else {
			cpf, err := valueobjects.NewCPF(*input.CPF)
			if err != nil {
				return nil, errors.ErrInvalidCPF
			}
			if customer.CPF == nil || customer.CPF.String() != cpf.String() {
				existing, err := s.customerRepo.FindByCPF(ctx, cpf.String())
				if err != nil {
					return nil, err
				}
				if existing != nil && existing.ID != customer.ID {
					return nil, errors.ErrCPFAlreadyExists
				}
			}
			customer.CPF = &cpf
		}
	}

	if input.BirthDate != nil {
		customer.BirthDate = input.BirthDate
	}

	if input.Address != nil {
		customer.Address = *input.Address
	}

	if input.City != nil {
		customer.City = *input.City
	}

	if input.State != nil {
		customer.State = *input.State
	}

	if input.Notes != nil {
		customer.Notes = *input.Notes
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer updated", "customer_id", customer.ID)
	return customer, nil
}

// Delete remove um cliente (soft delete)
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return errors.ErrCustomerNotFound
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("customer deleted", "customer_id", id)
	return nil
}

// UpcomingBirthday agrega um cliente e a distância até o próximo aniversário
type UpcomingBirthday struct {
	Customer  *entities.Customer
	DaysUntil int
}

// GetUpcomingBirthdays lista clientes que fazem aniversário nos próximos dias,
// ordenados do mais próximo para o mais distante
func (s *CustomerService) GetUpcomingBirthdays(ctx context.Context, days int) ([]UpcomingBirthday, error) {
	if days <= 0 {
		days = 7
	}

	customers, err := s.customerRepo.ListWithBirthday(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var upcoming []UpcomingBirthday
	for _, c := range customers {
		until := c.DaysUntilBirthday(now)
		if until < 0 || until > days {
			continue
		}
		upcoming = append(upcoming, UpcomingBirthday{Customer: c, DaysUntil: until})
	}

	sort.Slice(upcoming, func(i, j int) bool {
		if upcoming[i].DaysUntil == upcoming[j].DaysUntil {
			return upcoming[i].Customer.Name < upcoming[j].Customer.Name
		}
		return upcoming[i].DaysUntil < upcoming[j].DaysUntil
	})

	return upcoming, nil
}
