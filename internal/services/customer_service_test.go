package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/valueobjects"
	"github.com/garagem/crm-backend/internal/services"
)

var _ = Describe("CustomerService", func() {
	var (
		ctx          context.Context
		customerRepo *fakeCustomerRepo
		service      *services.CustomerService
	)

	addBirthdayCustomer := func(name string, daysFromNow int) {
		addr, err := valueobjects.NewEmail(name + "@example.com")
		Expect(err).NotTo(HaveOccurred())

		next := time.Now().AddDate(0, 0, daysFromNow)
		birth := time.Date(1990, next.Month(), next.Day(), 0, 0, 0, 0, time.UTC)
		c := &entities.Customer{Name: name, Email: &addr, BirthDate: &birth}
		Expect(customerRepo.Create(ctx, c)).To(Succeed())
	}

	BeforeEach(func() {
		ctx = context.Background()
		customerRepo = newFakeCustomerRepo()
		service = services.NewCustomerService(customerRepo, nopLogger{})
	})

	Describe("GetUpcomingBirthdays", func() {
		It("ordena do aniversário mais próximo para o mais distante", func() {
			addBirthdayCustomer("distante", 20)
			addBirthdayCustomer("proximo", 3)
			addBirthdayCustomer("medio", 10)

			upcoming, err := service.GetUpcomingBirthdays(ctx, 30)

			Expect(err).NotTo(HaveOccurred())
			Expect(upcoming).To(HaveLen(3))
			Expect(upcoming[0].Customer.Name).To(Equal("proximo"))
			Expect(upcoming[1].Customer.Name).To(Equal("medio"))
			Expect(upcoming[2].Customer.Name).To(Equal("distante"))
		})

		It("exclui aniversários fora da janela", func() {
			addBirthdayCustomer("dentro", 5)
			addBirthdayCustomer("fora", 40)

			upcoming, err := service.GetUpcomingBirthdays(ctx, 30)

			Expect(err).NotTo(HaveOccurred())
			Expect(upcoming).To(HaveLen(1))
			Expect(upcoming[0].Customer.Name).To(Equal("dentro"))
		})

		It("ignora clientes sem data de nascimento", func() {
			addr, err := valueobjects.NewEmail("semdata@example.com")
			Expect(err).NotTo(HaveOccurred())
			c := &entities.Customer{Name: "Sem Data", Email: &addr}
			Expect(customerRepo.Create(ctx, c)).To(Succeed())

			upcoming, err := service.GetUpcomingBirthdays(ctx, 30)

			Expect(err).NotTo(HaveOccurred())
			Expect(upcoming).To(BeEmpty())
		})
	})
})
