package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// PendenciaStatus representa a situação de uma pendência
type PendenciaStatus string

const (
	PendenciaOpen       PendenciaStatus = "aberto"
	PendenciaInAnalysis PendenciaStatus = "em_analise"
	PendenciaDone       PendenciaStatus = "finalizado"
)

// Valid verifica se o status é um dos valores conhecidos
func (s PendenciaStatus) Valid() bool {
	switch s {
	case PendenciaOpen, PendenciaInAnalysis, PendenciaDone:
		return true
	}
	return false
}

// pendenciaTransitions define as transições de status permitidas
var pendenciaTransitions = map[PendenciaStatus][]PendenciaStatus{
	PendenciaOpen:       {PendenciaInAnalysis, PendenciaDone},
	PendenciaInAnalysis: {PendenciaOpen, PendenciaDone},
	PendenciaDone:       {},
}

// Pendencia representa uma tarefa de acompanhamento vinculada a um veículo
type Pendencia struct {
	ID            uuid.UUID
	VehicleID     uuid.UUID
	ResponsavelID uuid.UUID
	Descricao     string
	Status        PendenciaStatus
	DataLimite    *time.Time
	Marcador      string // rótulo livre para agrupamento (ex: "documentacao")
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TransitionTo aplica uma transição de status, rejeitando transições inválidas
func (p *Pendencia) TransitionTo(next PendenciaStatus) error {
	if !next.Valid() {
		return errors.New("invalid status")
	}
	for _, allowed := range pendenciaTransitions[p.Status] {
		if allowed == next {
			p.Status = next
			return nil
		}
	}
	return errors.New("invalid status transition")
}

// IsOverdue informa se a pendência passou da data limite sem ser finalizada
func (p *Pendencia) IsOverdue(now time.Time) bool {
	if p.Status == PendenciaDone || p.DataLimite == nil {
		return false
	}
	return now.After(*p.DataLimite)
}

// Validate valida regras de negócio da entidade Pendencia
func (p *Pendencia) Validate() error {
	if p.VehicleID == uuid.Nil {
		return errors.New("vehicle is required")
	}

	if p.ResponsavelID == uuid.Nil {
		return errors.New("responsible user is required")
	}

	if p.Descricao == "" {
		return errors.New("description is required")
	}

	if !p.Status.Valid() {
		return errors.New("invalid status")
	}

	return nil
}
