package mailer

import (
	"fmt"

	"github.com/garagem/crm-backend/internal/domain/ports"
)

// BirthdaySender monta e envia o email de aniversário por cima de um Mailer
type BirthdaySender struct {
	mailer    ports.Mailer
	storeName string
}

// NewBirthdaySender cria um BirthdaySender
func NewBirthdaySender(mailer ports.Mailer, storeName string) *BirthdaySender {
	return &BirthdaySender{
		mailer:    mailer,
		storeName: storeName,
	}
}

// SendBirthday renderiza o template e envia o email de aniversário
func (s *BirthdaySender) SendBirthday(to, name string) error {
	body, err := RenderBirthdayEmail(BirthdayEmailData{
		Name:      name,
		StoreName: s.storeName,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Feliz aniversário, %s!", name)
	return s.mailer.Send(to, subject, body)
}
