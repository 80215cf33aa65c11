package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
)

// CustomerRepository define a interface para persistência de clientes
type CustomerRepository interface {
	Create(ctx context.Context, customer *entities.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error)
	FindByCPF(ctx context.Context, cpf string) (*entities.Customer, error)
	Update(ctx context.Context, customer *entities.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters CustomerFilters) ([]*entities.Customer, error)

	// ListWithBirthday retorna clientes com data de nascimento e email
	// preenchidos (candidatos ao email de aniversário)
	ListWithBirthday(ctx context.Context) ([]*entities.Customer, error)
}

// CustomerFilters contém filtros para listagem de clientes
type CustomerFilters struct {
	Name     string // busca parcial, case-insensitive
	City     string
	Page     int
	PageSize int
}
