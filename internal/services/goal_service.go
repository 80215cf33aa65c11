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

// GoalService contém a lógica de negócio para metas de vendedores
type GoalService struct {
	goalRepo repositories.GoalRepository
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewGoalService cria um novo GoalService
func NewGoalService(
	goalRepo repositories.GoalRepository,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *GoalService {
	return &GoalService{
		goalRepo: goalRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateGoalInput representa os dados para criar uma meta
type CreateGoalInput struct {
	UserID      uuid.UUID
	Type        entities.GoalType
	TargetValue decimal.Decimal
	Period      string
	StartDate   time.Time
	EndDate     time.Time
}

// Create cria uma meta para um vendedor
func (s *GoalService) Create(ctx context.Context, input CreateGoalInput) (*entities.Goal, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	goal := &entities.Goal{
		UserID:       input.UserID,
		Type:         input.Type,
		TargetValue:  input.TargetValue,
		CurrentValue: decimal.Zero,
		Period:       input.Period,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
	}

	if err := goal.Validate(); err != nil {
		return nil, errors.Validation(err)
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.Info("goal created", "goal_id", goal.ID, "user_id", goal.UserID, "type", goal.Type)
	return goal, nil
}

// GetByID busca uma meta pelo ID
func (s *GoalService) GetByID(ctx context.Context, id uuid.UUID) (*entities.Goal, error) {
	goal, err := s.goalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, errors.ErrGoalNotFound
	}
	return goal, nil
}

// List lista metas com filtros e paginação
func (s *GoalService) List(ctx context.Context, filters repositories.GoalFilters) ([]*entities.Goal, error) {
	return s.goalRepo.List(ctx, filters)
}

// UpdateGoalInput representa os dados para atualizar uma meta
type UpdateGoalInput struct {
	Type        *entities.GoalType
	TargetValue *decimal.Decimal
	Period      *string
	StartDate   *time.Time
	EndDate     *time.Time
}

// Update atualiza os dados de uma meta.
// O valor corrente não é editável: vendas concretizadas o alimentam.
func (s *GoalService) Update(ctx context.Context, id uuid.UUID, input UpdateGoalInput) (*entities.Goal, error) {
	goal, err := s.goalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, errors.ErrGoalNotFound
	}

	if input.Type != nil {
		goal.Type = *input.Type
	}
	if input.TargetValue != nil {
		goal.TargetValue = *input.TargetValue
	}
	if input.Period != nil {
		goal.Period = *input.Period
	}
	if input.StartDate != nil {
		goal.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		goal.EndDate = *input.EndDate
	}

	if err := goal.Validate(); err != nil {
		return nil, errors.Validation(err)
	}

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.Info("goal updated", "goal_id", goal.ID)
	return goal, nil
}

// Delete remove uma meta
func (s *GoalService) Delete(ctx context.Context, id uuid.UUID) error {
	goal, err := s.goalRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if goal == nil {
		return errors.ErrGoalNotFound
	}

	if err := s.goalRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("goal deleted", "goal_id", id)
	return nil
}

// GoalProgress agrega a meta e seu percentual atingido
type GoalProgress struct {
	Goal     *entities.Goal
	Percent  decimal.Decimal
	Achieved bool
}

// Progress retorna o progresso de uma meta
func (s *GoalService) Progress(ctx context.Context, id uuid.UUID) (*GoalProgress, error) {
	goal, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &GoalProgress{
		Goal:     goal,
		Percent:  goal.Progress(),
		Achieved: goal.Achieved(),
	}, nil
}
