package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/repositories"
)

// PendenciaRepository implementa repositories.PendenciaRepository
type PendenciaRepository struct {
	db *gorm.DB
}

// NewPendenciaRepository cria um novo PendenciaRepository
func NewPendenciaRepository(db *gorm.DB) *PendenciaRepository {
	return &PendenciaRepository{db: db}
}

func (r *PendenciaRepository) Create(ctx context.Context, pendencia *entities.Pendencia) error {
	model := r.toModel(pendencia)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	pendencia.ID = model.ID
	return nil
}

func (r *PendenciaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Pendencia, error) {
	var model PendenciaModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *PendenciaRepository) Update(ctx context.Context, pendencia *entities.Pendencia) error {
	model := r.toModel(pendencia)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *PendenciaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&PendenciaModel{}, "id = ?", id).Error
}

func (r *PendenciaRepository) List(ctx context.Context, filters repositories.PendenciaFilters) ([]*entities.Pendencia, error) {
	var models []*PendenciaModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&PendenciaModel{})

	if filters.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filters.VehicleID)
	}
	if filters.ResponsavelID != nil {
		query = query.Where("responsavel_id = ?", *filters.ResponsavelID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}
	if filters.Marcador != "" {
		query = query.Where("marcador = ?", filters.Marcador)
	}

	query = paginate(query, filters.Page, filters.PageSize).Order("data_limite ASC NULLS LAST")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Pendencia, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}

	return result, nil
}

func (r *PendenciaRepository) ListOverdue(ctx context.Context, now time.Time) ([]*entities.Pendencia, error) {
	var models []*PendenciaModel

	db := dbFromContext(ctx, r.db)
	err := db.Model(&PendenciaModel{}).
		Where("status <> ? AND data_limite IS NOT NULL AND data_limite < ?", string(entities.PendenciaDone), now).
		Order("data_limite ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.Pendencia, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}

	return result, nil
}

// Conversores
func (r *PendenciaRepository) toModel(pendencia *entities.Pendencia) *PendenciaModel {
	return &PendenciaModel{
		ID:            pendencia.ID,
		VehicleID:     pendencia.VehicleID,
		ResponsavelID: pendencia.ResponsavelID,
		Descricao:     pendencia.Descricao,
		Status:        string(pendencia.Status),
		DataLimite:    pendencia.DataLimite,
		Marcador:      pendencia.Marcador,
		CreatedAt:     pendencia.CreatedAt.Unix(),
		UpdatedAt:     pendencia.UpdatedAt.Unix(),
	}
}

func (r *PendenciaRepository) toEntity(model *PendenciaModel) *entities.Pendencia {
	return &entities.Pendencia{
		ID:            model.ID,
		VehicleID:     model.VehicleID,
		ResponsavelID: model.ResponsavelID,
		Descricao:     model.Descricao,
		Status:        entities.PendenciaStatus(model.Status),
		DataLimite:    model.DataLimite,
		Marcador:      model.Marcador,
		CreatedAt:     time.Unix(model.CreatedAt, 0),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0),
	}
}
