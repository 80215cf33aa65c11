package services_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/valueobjects"
	"github.com/garagem/crm-backend/internal/services"
)

type fakeBirthdayMailer struct {
	sent    []string
	failFor map[string]error
}

func (f *fakeBirthdayMailer) SendBirthday(to, name string) error {
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, to)
	return nil
}

var _ = Describe("BirthdayService", func() {
	var (
		ctx          context.Context
		customerRepo *fakeCustomerRepo
		mailer       *fakeBirthdayMailer
		service      *services.BirthdayService
		now          time.Time
	)

	addCustomer := func(name, email string, birth time.Time) *entities.Customer {
		addr, err := valueobjects.NewEmail(email)
		Expect(err).NotTo(HaveOccurred())
		c := &entities.Customer{Name: name, Email: &addr, BirthDate: &birth}
		Expect(customerRepo.Create(ctx, c)).To(Succeed())
		return c
	}

	BeforeEach(func() {
		ctx = context.Background()
		customerRepo = newFakeCustomerRepo()
		mailer = &fakeBirthdayMailer{failFor: map[string]error{}}
		service = services.NewBirthdayService(customerRepo, mailer, nopLogger{})
		now = time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	})

	It("envia email só para quem faz aniversário hoje", func() {
		addCustomer("Maria Silva", "maria@example.com", time.Date(1990, time.September, 1, 0, 0, 0, 0, time.UTC))
		addCustomer("João Santos", "joao@example.com", time.Date(1985, time.March, 10, 0, 0, 0, 0, time.UTC))

		run, err := service.CheckAndSendBirthdayEmails(ctx, now)

		Expect(err).NotTo(HaveOccurred())
		Expect(run.Matched).To(Equal(1))
		Expect(run.Sent).To(Equal(1))
		Expect(run.Failed).To(Equal(0))
		Expect(mailer.sent).To(ConsistOf("maria@example.com"))
	})

	It("ignora clientes sem email ou sem data de nascimento", func() {
		birth := time.Date(1990, time.September, 1, 0, 0, 0, 0, time.UTC)
		noEmail := &entities.Customer{Name: "Sem Email", BirthDate: &birth}
		Expect(customerRepo.Create(ctx, noEmail)).To(Succeed())

		run, err := service.CheckAndSendBirthdayEmails(ctx, now)

		Expect(err).NotTo(HaveOccurred())
		Expect(run.Matched).To(Equal(0))
		Expect(mailer.sent).To(BeEmpty())
	})

	It("falha em um cliente não interrompe o lote", func() {
		birth := time.Date(1990, time.September, 1, 0, 0, 0, 0, time.UTC)
		addCustomer("Maria Silva", "maria@example.com", birth)
		addCustomer("Pedro Lima", "pedro@example.com", birth)
		mailer.failFor["maria@example.com"] = errors.New("smtp unavailable")

		run, err := service.CheckAndSendBirthdayEmails(ctx, now)

		Expect(err).NotTo(HaveOccurred())
		Expect(run.Matched).To(Equal(2))
		Expect(run.Sent).To(Equal(1))
		Expect(run.Failed).To(Equal(1))
		Expect(mailer.sent).To(ConsistOf("pedro@example.com"))
	})
})
