package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/errors"
	"github.com/garagem/crm-backend/internal/services"
)

var _ = Describe("SinalService", func() {
	var (
		ctx          context.Context
		customerRepo *fakeCustomerRepo
		userRepo     *fakeUserRepo
		vehicleRepo  *fakeVehicleRepo
		saleRepo     *fakeSaleRepo
		sinalRepo    *fakeSinalRepo
		notifier     *fakeNotifier
		service      *services.SinalService

		customer *entities.Customer
		seller   *entities.User
		vehicle  *entities.Vehicle
	)

	BeforeEach(func() {
		ctx = context.Background()
		customerRepo = newFakeCustomerRepo()
		userRepo = newFakeUserRepo()
		vehicleRepo = newFakeVehicleRepo()
		saleRepo = newFakeSaleRepo()
		sinalRepo = newFakeSinalRepo()
		notifier = &fakeNotifier{}

		uow := &fakeUnitOfWork{}
		saleService := services.NewSaleService(
			uow, saleRepo, vehicleRepo, customerRepo, userRepo,
			newFakeTradeInRepo(), newFakeGoalRepo(), notifier, nopLogger{},
		)
		service = services.NewSinalService(
			uow, sinalRepo, vehicleRepo, customerRepo, userRepo,
			saleService, nopLogger{},
		)

		customer = &entities.Customer{Name: "Maria Silva"}
		Expect(customerRepo.Create(ctx, customer)).To(Succeed())

		seller = &entities.User{
			Name:              "Carlos Souza",
			Role:              entities.RoleVendedor,
			CommissionPercent: decimal.NewFromFloat(2.5),
		}
		Expect(userRepo.Create(ctx, seller)).To(Succeed())

		vehicle = &entities.Vehicle{
			Brand:  "Fiat",
			Model:  "Argo",
			Year:   2022,
			Price:  decimal.NewFromInt(80000),
			Cost:   decimal.NewFromInt(70000),
			Status: entities.VehicleAvailable,
		}
		Expect(vehicleRepo.Create(ctx, vehicle)).To(Succeed())
	})

	createSinal := func() *entities.SinalNegocio {
		sinal, err := service.Create(ctx, services.CreateSinalInput{
			CustomerID:   customer.ID,
			VehicleID:    vehicle.ID,
			SellerID:     seller.ID,
			Valor:        decimal.NewFromInt(5000),
			DataValidade: time.Now().AddDate(0, 0, 7),
		})
		Expect(err).NotTo(HaveOccurred())
		return sinal
	}

	Describe("Create", func() {
		It("registra o sinal e reserva o veículo", func() {
			sinal := createSinal()

			Expect(sinal.Status).To(Equal(entities.SinalPending))
			Expect(vehicle.Status).To(Equal(entities.VehicleReserved))
		})

		It("rejeita sinal sobre veículo já reservado", func() {
			createSinal()

			_, err := service.Create(ctx, services.CreateSinalInput{
				CustomerID:   customer.ID,
				VehicleID:    vehicle.ID,
				SellerID:     seller.ID,
				Valor:        decimal.NewFromInt(3000),
				DataValidade: time.Now().AddDate(0, 0, 7),
			})

			Expect(err).To(MatchError(errors.ErrVehicleNotForSale))
		})
	})

	Describe("Convert", func() {
		It("gera a venda com o sinal somado à entrada", func() {
			sinal := createSinal()

			converted, sale, err := service.Convert(ctx, sinal.ID, services.ConvertSinalInput{
				SalePrice: decimal.NewFromInt(80000),
				EntryCash: decimal.NewFromInt(10000),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(converted.Status).To(Equal(entities.SinalConverted))
			Expect(converted.SaleID).NotTo(BeNil())
			Expect(*converted.SaleID).To(Equal(sale.ID))
			// entrada informada + valor do sinal
			Expect(sale.EntryCash.Equal(decimal.NewFromInt(15000))).To(BeTrue())
			Expect(vehicle.Status).To(Equal(entities.VehicleSold))
		})

		It("rejeita converter sinal já devolvido", func() {
			sinal := createSinal()
			_, err := service.Refund(ctx, sinal.ID)
			Expect(err).NotTo(HaveOccurred())

			_, _, err = service.Convert(ctx, sinal.ID, services.ConvertSinalInput{
				SalePrice: decimal.NewFromInt(80000),
			})

			Expect(err).To(MatchError(errors.ErrInvalidTransition))
		})
	})

	Describe("Withdraw", func() {
		It("retém o sinal e libera o veículo", func() {
			sinal := createSinal()

			withdrawn, err := service.Withdraw(ctx, sinal.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(withdrawn.Status).To(Equal(entities.SinalWithdrawn))
			Expect(vehicle.Status).To(Equal(entities.VehicleAvailable))
		})
	})

	Describe("Refund", func() {
		It("devolve o sinal e libera o veículo", func() {
			sinal := createSinal()

			refunded, err := service.Refund(ctx, sinal.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(refunded.Status).To(Equal(entities.SinalRefunded))
			Expect(vehicle.Status).To(Equal(entities.VehicleAvailable))
		})

		It("devolve sinal já desistido sem mexer no veículo", func() {
			sinal := createSinal()
			_, err := service.Withdraw(ctx, sinal.ID)
			Expect(err).NotTo(HaveOccurred())

			// Outro sinal reservou o veículo nesse meio tempo
			Expect(vehicle.MarkReserved()).To(Succeed())

			refunded, err := service.Refund(ctx, sinal.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(refunded.Status).To(Equal(entities.SinalRefunded))
			Expect(vehicle.Status).To(Equal(entities.VehicleReserved))
		})
	})

	Describe("Delete", func() {
		It("remove sinal pendente e libera a reserva", func() {
			sinal := createSinal()

			Expect(service.Delete(ctx, sinal.ID)).To(Succeed())

			Expect(vehicle.Status).To(Equal(entities.VehicleAvailable))
			stored, err := sinalRepo.FindByID(ctx, sinal.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(BeNil())
		})
	})
})
