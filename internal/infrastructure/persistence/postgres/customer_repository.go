package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/repositories"
	"github.com/garagem/crm-backend/internal/domain/valueobjects"
)

// CustomerRepository implementa repositories.CustomerRepository
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository cria um novo CustomerRepository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *entities.Customer) error {
	model := r.toModel(customer)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	customer.ID = model.ID
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	var model CustomerModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *CustomerRepository) FindByCPF(ctx context.Context, cpf string) (*entities.Customer, error) {
	var model CustomerModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("cpf = ? AND deleted_at IS NULL", cpf).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *CustomerRepository) Update(ctx context.Context, customer *entities.Customer) error {
	model := r.toModel(customer)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := dbFromContext(ctx, r.db)
	now := time.Now().Unix()
	return db.Model(&CustomerModel{}).Where("id = ? AND deleted_at IS NULL", id).Update("deleted_at", now).Error
}

func (r *CustomerRepository) List(ctx context.Context, filters repositories.CustomerFilters) ([]*entities.Customer, error) {
	var models []*CustomerModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&CustomerModel{}).Where("deleted_at IS NULL")

	if filters.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filters.Name+"%")
	}
	if filters.City != "" {
		query = query.Where("city ILIKE ?", filters.City)
	}

	query = paginate(query, filters.Page, filters.PageSize).Order("name ASC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *CustomerRepository) ListWithBirthday(ctx context.Context) ([]*entities.Customer, error) {
	var models []*CustomerModel

	db := dbFromContext(ctx, r.db)
	err := db.Model(&CustomerModel{}).
		Where("deleted_at IS NULL AND birth_date IS NOT NULL AND email IS NOT NULL AND email <> ''").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// Conversores
func (r *CustomerRepository) toModel(customer *entities.Customer) *CustomerModel {
	var email *string
	if customer.Email != nil {
		v := customer.Email.String()
		email = &v
	}

	var cpf *string
	if customer.CPF != nil {
		v := customer.CPF.String()
		cpf = &v
	}

	var deletedAt *int64
	if customer.DeletedAt != nil {
		ts := customer.DeletedAt.Unix()
		deletedAt = &ts
	}

	return &CustomerModel{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone.String(),
		Email:     email,
		CPF:       cpf,
		BirthDate: customer.BirthDate,
		Address:   customer.Address,
		City:      customer.City,
		State:     customer.State,
		Notes:     customer.Notes,
		CreatedAt: customer.CreatedAt.Unix(),
		UpdatedAt: customer.UpdatedAt.Unix(),
		DeletedAt: deletedAt,
	}
}

func (r *CustomerRepository) toEntity(model *CustomerModel) (*entities.Customer, error) {
	phone, err := valueobjects.NewPhone(model.Phone)
	if err != nil {
		return nil, err
	}

	var email *valueobjects.Email
	if model.Email != nil && *model.Email != "" {
		v, err := valueobjects.NewEmail(*model.Email)
		if err != nil {
			return nil, err
		}
		email = &v
	}

	var cpf *valueobjects.CPF
	if model.CPF != nil && *model.CPF != "" {
		v, err := valueobjects.NewCPF(*model.CPF)
		if err != nil {
			return nil, err
		}
		cpf = &v
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	return &entities.Customer{
		ID:        model.ID,
		Name:      model.Name,
		Phone:     phone,
		Email:     email,
		CPF:       cpf,
		BirthDate: model.BirthDate,
		Address:   model.Address,
		City:      model.City,
		State:     model.State,
		Notes:     model.Notes,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
		DeletedAt: deletedAt,
	}, nil
}

func (r *CustomerRepository) toEntities(models []*CustomerModel) ([]*entities.Customer, error) {
	result := make([]*entities.Customer, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}

	return result, nil
}
