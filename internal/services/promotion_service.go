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

// PromotionService contém a lógica de negócio para promoções
type PromotionService struct {
	promotionRepo repositories.PromotionRepository
	logger        ports.Logger
}

// NewPromotionService cria um novo PromotionService
func NewPromotionService(promotionRepo repositories.PromotionRepository, logger ports.Logger) *PromotionService {
	return &PromotionService{
		promotionRepo: promotionRepo,
		logger:        logger,
	}
}

// CreatePromotionInput representa os dados para criar uma promoção
type CreatePromotionInput struct {
	Name          string
	Description   string
	DiscountType  entities.DiscountType
	DiscountValue decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time
}

// Create cria uma promoção ativa
func (s *PromotionService) Create(ctx context.Context, input CreatePromotionInput) (*entities.Promotion, error) {
	promotion := &entities.Promotion{
		Name:          input.Name,
		Description:   input.Description,
		DiscountType:  input.DiscountType,
		DiscountValue: input.DiscountValue,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Status:        entities.PromotionActive,
	}

	if err := promotion.Validate(); err != nil {
		return nil, errors.Validation(err)
	}

	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, err
	}

	s.logger.Info("promotion created", "promotion_id", promotion.ID, "name", promotion.Name)
	return promotion, nil
}

// GetByID busca uma promoção pelo ID
func (s *PromotionService) GetByID(ctx context.Context, id uuid.UUID) (*entities.Promotion, error) {
	promotion, err := s.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, errors.ErrPromotionNotFound
	}
	return promotion, nil
}

// List lista promoções com filtros e paginação
func (s *PromotionService) List(ctx context.Context, filters repositories.PromotionFilters) ([]*entities.Promotion, error) {
	return s.promotionRepo.List(ctx, filters)
}

// UpdatePromotionInput representa os dados para atualizar uma promoção
type UpdatePromotionInput struct {
	Name          *string
	Description   *string
	DiscountType  *entities.DiscountType
	DiscountValue *decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
	Status        *entities.PromotionStatus
}

// Update atualiza os dados de uma promoção
func (s *PromotionService) Update(ctx context.Context, id uuid.UUID, input UpdatePromotionInput) (*entities.Promotion, error) {
	promotion, err := s.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, errors.ErrPromotionNotFound
	}

	if input.Name != nil {
		promotion.Name = *input.Name
	}
	if input.Description != nil {
		promotion.Description = *input.Description
	}
	if input.DiscountType != nil {
		promotion.DiscountType = *input.DiscountType
	}
	if input.DiscountValue != nil {
		promotion.DiscountValue = *input.DiscountValue
	}
	if input.StartDate != nil {
		promotion.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		promotion.EndDate = *input.EndDate
	}
	if input.Status != nil {
		promotion.Status = *input.Status
	}

	if err := promotion.Validate(); err != nil {
		return nil, errors.Validation(err)
	}

	if err := s.promotionRepo.Update(ctx, promotion); err != nil {
		return nil, err
	}

	s.logger.Info("promotion updated", "promotion_id", promotion.ID)
	return promotion, nil
}

// Delete remove uma promoção
func (s *PromotionService) Delete(ctx context.Context, id uuid.UUID) error {
	promotion, err := s.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if promotion == nil {
		return errors.ErrPromotionNotFound
	}

	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("promotion deleted", "promotion_id", id)
	return nil
}

// ExpireOverdue marca como expiradas as promoções ativas que passaram da
// data final. Retorna quantas foram expiradas. Chamado pelo scheduler.
func (s *PromotionService) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	promotions, err := s.promotionRepo.FindActiveExpiredBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, p := range promotions {
		p.Expire()
		if err := s.promotionRepo.Update(ctx, p); err != nil {
			s.logger.Error("failed to expire promotion", "promotion_id", p.ID, "error", err)
			continue
		}
		expired++
	}

	if expired > 0 {
		s.logger.Info("promotions expired", "count", expired)
	}
	return expired, nil
}
