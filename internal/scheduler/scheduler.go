package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/infrastructure/config"
	"github.com/garagem/crm-backend/internal/services"
)

// Scheduler agenda as rotinas de fundo (aniversários, expiração de promoções,
// pendências vencidas). Construído no start do processo; Start e Stop são
// idempotentes.
type Scheduler struct {
	cron      *cron.Cron
	birthday  *services.BirthdayService
	promotion *services.PromotionService
	pendencia *services.PendenciaService
	cfg       *config.SchedulerConfig
	logger    ports.Logger

	mu      sync.Mutex
	running bool
}

// New cria um Scheduler com os jobs ainda não registrados
func New(
	birthday *services.BirthdayService,
	promotion *services.PromotionService,
	pendencia *services.PendenciaService,
	cfg *config.SchedulerConfig,
	logger ports.Logger,
) (*Scheduler, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler timezone %q: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(location)),
		birthday:  birthday,
		promotion: promotion,
		pendencia: pendencia,
		cfg:       cfg,
		logger:    logger,
	}, nil
}

// Start registra os jobs e inicia o loop do cron
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.BirthdayCron, s.runBirthdays); err != nil {
		return fmt.Errorf("invalid birthday cron %q: %w", s.cfg.BirthdayCron, err)
	}

	// Varredura diária de promoções expiradas e pendências vencidas
	if _, err := s.cron.AddFunc("@midnight", s.runDailySweep); err != nil {
		return err
	}

	s.cron.Start()
	s.running = true
	s.logger.Info("scheduler started",
		"timezone", s.cfg.Timezone,
		"birthday_cron", s.cfg.BirthdayCron)
	return nil
}

// Stop interrompe o cron e aguarda os jobs em execução terminarem
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
	s.logger.Info("scheduler stopped")
}

// Running informa se o scheduler está ativo
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) runBirthdays() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := s.birthday.CheckAndSendBirthdayEmails(ctx, time.Now()); err != nil {
		s.logger.Error("birthday job failed", "error", err)
	}
}

func (s *Scheduler) runDailySweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := s.promotion.ExpireOverdue(ctx, time.Now()); err != nil {
		s.logger.Error("promotion expiry sweep failed", "error", err)
	}

	if _, err := s.pendencia.NotifyOverdue(ctx); err != nil {
		s.logger.Error("overdue pendencia sweep failed", "error", err)
	}
}
