package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/errors"
	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/domain/repositories"
	"github.com/garagem/crm-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetByID busca um usuário pelo ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// List lista usuários com filtros e paginação
func (s *UserService) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	return s.userRepo.List(ctx, filters)
}

// UpdateUserInput representa os dados para atualizar um usuário
type UpdateUserInput struct {
	Name              *string
	Email             *string
	Password          *string
	Role              *entities.Role
	AvatarURL         *string
	CommissionPercent *decimal.Decimal
}

// Update atualiza os dados de um usuário
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if input.Name != nil {
		user.Name = *input.Name
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, errors.ErrInvalidEmail
		}
		if email.String() != user.Email.String() {
			existing, err := s.userRepo.FindByEmail(ctx, email.String())
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != user.ID {
				return nil, errors.ErrEmailAlreadyExists
			}
		}
		user.Email = email
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if input.Role != nil {
		user.Role = *input.Role
	}

	if input.AvatarURL != nil {
		user.AvatarURL = input.AvatarURL
	}

	if input.CommissionPercent != nil {
		user.CommissionPercent = *input.CommissionPercent
	}

	if err := user.Validate(); err != nil {
		return nil, errors.Validation(err)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", user.ID)
	return user, nil
}

// Delete remove um usuário (soft delete)
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}
