package dto

import (
	"time"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/services"
)

// CreateCustomerRequest representa a requisição para criar um cliente
type CreateCustomerRequest struct {
	Name      string     `json:"name" binding:"required,min=2,max=150"`
	Phone     string     `json:"phone" binding:"required"`
	Email     *string    `json:"email" binding:"omitempty,email"`
	CPF       *string    `json:"cpf" binding:"omitempty,cpf"`
	BirthDate *time.Time `json:"birth_date"`
	Address   string     `json:"address" binding:"max=255"`
	City      string     `json:"city" binding:"max=100"`
	State     string     `json:"state" binding:"omitempty,len=2"`
	Notes     string     `json:"notes" binding:"max=2000"`
}

// ToCreateInput converte a requisição para o input do serviço
func (r *CreateCustomerRequest) ToCreateInput() services.CreateCustomerInput {
	return services.CreateCustomerInput{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		CPF:       r.CPF,
		BirthDate: r.BirthDate,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		Notes:     r.Notes,
	}
}

// UpdateCustomerRequest representa a requisição para atualizar um cliente
type UpdateCustomerRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=2,max=150"`
	Phone     *string    `json:"phone"`
	Email     *string    `json:"email" binding:"omitempty,email"`
	CPF       *string    `json:"cpf" binding:"omitempty,cpf"`
	BirthDate *time.Time `json:"birth_date"`
	Address   *string    `json:"address" binding:"omitempty,max=255"`
	City      *string    `json:"city" binding:"omitempty,max=100"`
	State     *string    `json:"state" binding:"omitempty,len=2"`
	Notes     *string    `json:"notes" binding:"omitempty,max=2000"`
}

// ToUpdateInput converte a requisição para o input do serviço
func (r *UpdateCustomerRequest) ToUpdateInput() services.UpdateCustomerInput {
	return services.UpdateCustomerInput{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		CPF:       r.CPF,
		BirthDate: r.BirthDate,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		Notes:     r.Notes,
	}
}

// CustomerResponse representa a resposta de um cliente
type CustomerResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Email     *string    `json:"email,omitempty"`
	CPF       *string    `json:"cpf,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Address   string     `json:"address,omitempty"`
	City      string     `json:"city,omitempty"`
	State     string     `json:"state,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToCustomerResponse converte uma entidade Customer para CustomerResponse
func ToCustomerResponse(customer *entities.Customer) CustomerResponse {
	response := CustomerResponse{
		ID:        customer.ID.String(),
		Name:      customer.Name,
		Phone:     customer.Phone.Formatted(),
		BirthDate: customer.BirthDate,
		Address:   customer.Address,
		City:      customer.City,
		State:     customer.State,
		Notes:     customer.Notes,
		CreatedAt: customer.CreatedAt,
	}
	if customer.Email != nil {
		email := customer.Email.String()
		response.Email = &email
	}
	if customer.CPF != nil {
		cpf := customer.CPF.Formatted()
		response.CPF = &cpf
	}
	return response
}

// ToCustomerResponses converte uma lista de entidades Customer
func ToCustomerResponses(customers []*entities.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = ToCustomerResponse(customer)
	}
	return responses
}

// UpcomingBirthdayResponse representa um aniversariante próximo
type UpcomingBirthdayResponse struct {
	Customer  CustomerResponse `json:"customer"`
	DaysUntil int              `json:"days_until"`
}

// ToUpcomingBirthdayResponses converte a lista de aniversariantes do serviço
func ToUpcomingBirthdayResponses(upcoming []services.UpcomingBirthday) []UpcomingBirthdayResponse {
	responses := make([]UpcomingBirthdayResponse, len(upcoming))
	for i, u := range upcoming {
		responses[i] = UpcomingBirthdayResponse{
			Customer:  ToCustomerResponse(u.Customer),
			DaysUntil: u.DaysUntil,
		}
	}
	return responses
}
