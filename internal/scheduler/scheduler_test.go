package scheduler

import (
	"testing"

	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/infrastructure/config"
)

type nopLogger struct{}

func (l nopLogger) Info(msg string, args ...any)  {}
func (l nopLogger) Error(msg string, args ...any) {}
func (l nopLogger) Debug(msg string, args ...any) {}
func (l nopLogger) Warn(msg string, args ...any)  {}
func (l nopLogger) With(args ...any) ports.Logger { return l }

func newTestScheduler(t *testing.T, birthdayCron string) *Scheduler {
	t.Helper()

	s, err := New(nil, nil, nil, &config.SchedulerConfig{
		Timezone:     "America/Sao_Paulo",
		BirthdayCron: birthdayCron,
	}, nopLogger{})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	t.Run("timezone inválido retorna erro", func(t *testing.T) {
		_, err := New(nil, nil, nil, &config.SchedulerConfig{
			Timezone:     "Marte/Cratera",
			BirthdayCron: "0 9 * * *",
		}, nopLogger{})
		if err == nil {
			t.Error("esperava erro para timezone inválido, obteve sucesso")
		}
	})
}

func TestScheduler_StartStop(t *testing.T) {
	t.Run("Start e Stop alternam o estado", func(t *testing.T) {
		s := newTestScheduler(t, "0 9 * * *")

		if s.Running() {
			t.Error("scheduler não deveria estar rodando antes de Start")
		}

		if err := s.Start(); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if !s.Running() {
			t.Error("esperava scheduler rodando após Start")
		}

		s.Stop()
		if s.Running() {
			t.Error("esperava scheduler parado após Stop")
		}
	})

	t.Run("Start é idempotente", func(t *testing.T) {
		s := newTestScheduler(t, "0 9 * * *")

		if err := s.Start(); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		defer s.Stop()

		if err := s.Start(); err != nil {
			t.Errorf("segundo Start deveria ser no-op, obteve erro: %v", err)
		}
	})

	t.Run("Stop sem Start é no-op", func(t *testing.T) {
		s := newTestScheduler(t, "0 9 * * *")
		s.Stop()

		if s.Running() {
			t.Error("scheduler não deveria estar rodando")
		}
	})

	t.Run("cron inválido falha no Start", func(t *testing.T) {
		s := newTestScheduler(t, "isso não é cron")

		if err := s.Start(); err == nil {
			t.Error("esperava erro para expressão cron inválida, obteve sucesso")
		}
		if s.Running() {
			t.Error("scheduler não deveria estar rodando após falha no Start")
		}
	})
}
