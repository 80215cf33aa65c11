package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/errors"
	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/domain/repositories"
)

// PendenciaService contém a lógica de negócio para pendências de veículos
type PendenciaService struct {
	pendenciaRepo repositories.PendenciaRepository
	vehicleRepo   repositories.VehicleRepository
	userRepo      repositories.UserRepository
	notifier      ports.Notifier
	logger        ports.Logger
}

// NewPendenciaService cria um novo PendenciaService
func NewPendenciaService(
	pendenciaRepo repositories.PendenciaRepository,
	vehicleRepo repositories.VehicleRepository,
	userRepo repositories.UserRepository,
	notifier ports.Notifier,
	logger ports.Logger,
) *PendenciaService {
	return &PendenciaService{
		pendenciaRepo: pendenciaRepo,
		vehicleRepo:   vehicleRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

// CreatePendenciaInput representa os dados para criar uma pendência
type CreatePendenciaInput struct {
	VehicleID     uuid.UUID
	ResponsavelID uuid.UUID
	Descricao     string
	DataLimite    *time.Time
	Marcador      string
}

// Create cria uma pendência aberta vinculada a um veículo
func (s *PendenciaService) Create(ctx context.Context, input CreatePendenciaInput) (*entities.Pendencia, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, errors.ErrVehicleNotFound
	}

	responsavel, err := s.userRepo.FindByID(ctx, input.ResponsavelID)
	if err != nil {
		return nil, err
	}
	if responsavel == nil {
		return nil, errors.ErrUserNotFound
	}

	pendencia := &entities.Pendencia{
		VehicleID:     input.VehicleID,
		ResponsavelID: input.ResponsavelID,
		Descricao:     input.Descricao,
		Status:        entities.PendenciaOpen,
		DataLimite:    input.DataLimite,
		Marcador:      input.Marcador,
	}

	if err := pendencia.Validate(); err != nil {
		return nil, errors.Validation(err)
	}

	if err := s.pendenciaRepo.Create(ctx, pendencia); err != nil {
		return nil, err
	}

	s.logger.Info("pendencia created", "pendencia_id", pendencia.ID, "vehicle_id", pendencia.VehicleID)
	return pendencia, nil
}

// GetByID busca uma pendência pelo ID
func (s *PendenciaService) GetByID(ctx context.Context, id uuid.UUID) (*entities.Pendencia, error) {
	pendencia, err := s.pendenciaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pendencia == nil {
		return nil, errors.ErrPendenciaNotFound
	}
	return pendencia, nil
}

// List lista pendências com filtros e paginação
func (s *PendenciaService) List(ctx context.Context, filters repositories.PendenciaFilters) ([]*entities.Pendencia, error) {
	return s.pendenciaRepo.List(ctx, filters)
}

// UpdatePendenciaInput representa os dados para atualizar uma pendência
type UpdatePendenciaInput struct {
	Descricao     *string
	ResponsavelID *uuid.UUID
	DataLimite    *time.Time
	Marcador      *string
}

// Update atualiza os dados de uma pendência (status muda por ChangeStatus)
func (s *PendenciaService) Update(ctx context.Context, id uuid.UUID, input UpdatePendenciaInput) (*entities.Pendencia, error) {
	pendencia, err := s.pendenciaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pendencia == nil {
		return nil, errors.ErrPendenciaNotFound
	}

	if input.Descricao != nil {
		pendencia.Descricao = *input.Descricao
	}
	if input.ResponsavelID != nil {
		responsavel, err := s.userRepo.FindByID(ctx, *input.ResponsavelID)
		if err != nil {
			return nil, err
		}
		if responsavel == nil {
			return nil, errors.ErrUserNotFound
		}
		pendencia.ResponsavelID = *input.ResponsavelID
	}
	if input.DataLimite != nil {
		pendencia.DataLimite = input.DataLimite
	}
	if input.Marcador != nil {
		pendencia.Marcador = *input.Marcador
	}

	if err := pendencia.Validate(); err != nil {
		return nil, errors.Validation(err)
	}

	if err := s.pendenciaRepo.Update(ctx, pendencia); err != nil {
		return nil, err
	}

	s.logger.Info("pendencia updated", "pendencia_id", pendencia.ID)
	return pendencia, nil
}

// ChangeStatus aplica uma transição de status à pendência
func (s *PendenciaService) ChangeStatus(ctx context.Context, id uuid.UUID, next entities.PendenciaStatus) (*entities.Pendencia, error) {
	pendencia, err := s.pendenciaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pendencia == nil {
		return nil, errors.ErrPendenciaNotFound
	}

	if err := pendencia.TransitionTo(next); err != nil {
		return nil, errors.ErrInvalidTransition
	}

	if err := s.pendenciaRepo.Update(ctx, pendencia); err != nil {
		return nil, err
	}

	s.logger.Info("pendencia status changed", "pendencia_id", pendencia.ID, "status", pendencia.Status)
	return pendencia, nil
}

// Delete remove uma pendência
func (s *PendenciaService) Delete(ctx context.Context, id uuid.UUID) error {
	pendencia, err := s.pendenciaRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if pendencia == nil {
		return errors.ErrPendenciaNotFound
	}

	if err := s.pendenciaRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("pendencia deleted", "pendencia_id", id)
	return nil
}

// ListOverdue lista pendências não finalizadas que passaram da data limite
func (s *PendenciaService) ListOverdue(ctx context.Context) ([]*entities.Pendencia, error) {
	return s.pendenciaRepo.ListOverdue(ctx, time.Now())
}

// NotifyOverdue publica um evento para cada pendência vencida.
// Chamado pelo scheduler junto com a varredura diária.
func (s *PendenciaService) NotifyOverdue(ctx context.Context) (int, error) {
	overdue, err := s.pendenciaRepo.ListOverdue(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	for _, p := range overdue {
		s.notifier.Publish(ports.Event{
			Kind:    "pendencia.overdue",
			Message: "pendencia vencida",
			Payload: map[string]any{
				"pendencia_id": p.ID,
				"vehicle_id":   p.VehicleID,
				"descricao":    p.Descricao,
			},
		})
	}

	return len(overdue), nil
}
