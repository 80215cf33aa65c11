package services

import (
	"context"
	"time"

	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/domain/repositories"
)

// BirthdayService envia os emails de aniversário do dia
type BirthdayService struct {
	customerRepo repositories.CustomerRepository
	mailer       ports.BirthdayMailer
	logger       ports.Logger
}

// NewBirthdayService cria um novo BirthdayService
func NewBirthdayService(
	customerRepo repositories.CustomerRepository,
	mailer ports.BirthdayMailer,
	logger ports.Logger,
) *BirthdayService {
	return &BirthdayService{
		customerRepo: customerRepo,
		mailer:       mailer,
		logger:       logger,
	}
}

// BirthdayRun é o resultado de uma varredura de aniversários
type BirthdayRun struct {
	Matched int
	Sent    int
	Failed  int
}

// CheckAndSendBirthdayEmails envia o email de aniversário para cada cliente
// que faz aniversário na data informada. Falha em um cliente não interrompe
// o restante do lote.
func (s *BirthdayService) CheckAndSendBirthdayEmails(ctx context.Context, now time.Time) (*BirthdayRun, error) {
	customers, err := s.customerRepo.ListWithBirthday(ctx)
	if err != nil {
		return nil, err
	}

	run := &BirthdayRun{}
	for _, customer := range customers {
		if !customer.IsBirthday(now) {
			continue
		}
		run.Matched++

		if err := s.mailer.SendBirthday(customer.Email.String(), customer.Name); err != nil {
			run.Failed++
			s.logger.Error("failed to send birthday email",
				"customer_id", customer.ID,
				"error", err)
			continue
		}

		run.Sent++
		s.logger.Info("birthday email sent", "customer_id", customer.ID)
	}

	s.logger.Info("birthday batch finished",
		"matched", run.Matched,
		"sent", run.Sent,
		"failed", run.Failed)

	return run, nil
}
