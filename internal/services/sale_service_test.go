package services_test

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/errors"
	"github.com/garagem/crm-backend/internal/services"
)

var _ = Describe("SaleService", func() {
	var (
		ctx          context.Context
		customerRepo *fakeCustomerRepo
		userRepo     *fakeUserRepo
		vehicleRepo  *fakeVehicleRepo
		saleRepo     *fakeSaleRepo
		tradeInRepo  *fakeTradeInRepo
		goalRepo     *fakeGoalRepo
		notifier     *fakeNotifier
		service      *services.SaleService

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
		tradeInRepo = newFakeTradeInRepo()
		goalRepo = newFakeGoalRepo()
		notifier = &fakeNotifier{}

		service = services.NewSaleService(
			&fakeUnitOfWork{}, saleRepo, vehicleRepo, customerRepo,
			userRepo, tradeInRepo, goalRepo, notifier, nopLogger{},
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

	Describe("Create", func() {
		It("registra a venda e marca o veículo como vendido", func() {
			sale, err := service.Create(ctx, services.CreateSaleInput{
				CustomerID: customer.ID,
				VehicleID:  vehicle.ID,
				SellerID:   seller.ID,
				SalePrice:  decimal.NewFromInt(80000),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(sale.Status).To(Equal(entities.SaleCompleted))
			Expect(vehicle.Status).To(Equal(entities.VehicleSold))
		})

		It("calcula a comissão pelo percentual padrão do vendedor", func() {
			sale, err := service.Create(ctx, services.CreateSaleInput{
				CustomerID: customer.ID,
				VehicleID:  vehicle.ID,
				SellerID:   seller.ID,
				SalePrice:  decimal.NewFromInt(80000),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(sale.Commission.Equal(decimal.NewFromInt(2000))).To(BeTrue())
		})

		It("respeita a comissão informada explicitamente", func() {
			sale, err := service.Create(ctx, services.CreateSaleInput{
				CustomerID: customer.ID,
				VehicleID:  vehicle.ID,
				SellerID:   seller.ID,
				SalePrice:  decimal.NewFromInt(80000),
				Commission: decimal.NewFromInt(1500),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(sale.Commission.Equal(decimal.NewFromInt(1500))).To(BeTrue())
		})

		It("aceita a troca vinculada na mesma operação", func() {
			tradeIn := &entities.TradeIn{
				CustomerID: customer.ID,
				Brand:      "VW",
				Model:      "Gol",
				Year:       2015,
				Status:     entities.TradeInPending,
			}
			Expect(tradeInRepo.Create(ctx, tradeIn)).To(Succeed())

			_, err := service.Create(ctx, services.CreateSaleInput{
				CustomerID: customer.ID,
				VehicleID:  vehicle.ID,
				SellerID:   seller.ID,
				TradeInID:  &tradeIn.ID,
				SalePrice:  decimal.NewFromInt(80000),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(tradeIn.Status).To(Equal(entities.TradeInAccepted))
		})

		It("credita as metas ativas do vendedor", func() {
			now := time.Now()
			goal := &entities.Goal{
				UserID:      seller.ID,
				Type:        entities.GoalProfit,
				TargetValue: decimal.NewFromInt(50000),
				StartDate:   now.AddDate(0, 0, -5),
				EndDate:     now.AddDate(0, 0, 25),
			}
			Expect(goalRepo.Create(ctx, goal)).To(Succeed())

			_, err := service.Create(ctx, services.CreateSaleInput{
				CustomerID: customer.ID,
				VehicleID:  vehicle.ID,
				SellerID:   seller.ID,
				SalePrice:  decimal.NewFromInt(80000),
			})

			Expect(err).NotTo(HaveOccurred())
			// lucro = preço de venda - custo do veículo
			Expect(goal.CurrentValue.Equal(decimal.NewFromInt(10000))).To(BeTrue())
		})

		It("publica o evento sale.created", func() {
			_, err := service.Create(ctx, services.CreateSaleInput{
				CustomerID: customer.ID,
				VehicleID:  vehicle.ID,
				SellerID:   seller.ID,
				SalePrice:  decimal.NewFromInt(80000),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(notifier.events).To(HaveLen(1))
			Expect(notifier.events[0].Kind).To(Equal("sale.created"))
		})

		It("rejeita veículo que não está disponível", func() {
			vehicle.Status = entities.VehicleSold

			_, err := service.Create(ctx, services.CreateSaleInput{
				CustomerID: customer.ID,
				VehicleID:  vehicle.ID,
				SellerID:   seller.ID,
				SalePrice:  decimal.NewFromInt(80000),
			})

			Expect(err).To(MatchError(errors.ErrVehicleNotForSale))
		})

		It("rejeita entrada mais financiamento acima do preço", func() {
			_, err := service.Create(ctx, services.CreateSaleInput{
				CustomerID:    customer.ID,
				VehicleID:     vehicle.ID,
				SellerID:      seller.ID,
				SalePrice:     decimal.NewFromInt(80000),
				EntryCash:     decimal.NewFromInt(50000),
				FinancedValue: decimal.NewFromInt(40000),
			})

			Expect(err).To(HaveOccurred())
			Expect(stderrors.Is(err, errors.ErrInvalidPayload)).To(BeTrue())
		})
	})

	Describe("Cancel", func() {
		It("devolve o veículo ao estoque e reverte as metas", func() {
			now := time.Now()
			goal := &entities.Goal{
				UserID:      seller.ID,
				Type:        entities.GoalSales,
				TargetValue: decimal.NewFromInt(10),
				StartDate:   now.AddDate(0, 0, -5),
				EndDate:     now.AddDate(0, 0, 25),
			}
			Expect(goalRepo.Create(ctx, goal)).To(Succeed())

			sale, err := service.Create(ctx, services.CreateSaleInput{
				CustomerID: customer.ID,
				VehicleID:  vehicle.ID,
				SellerID:   seller.ID,
				SalePrice:  decimal.NewFromInt(80000),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(goal.CurrentValue.Equal(decimal.NewFromInt(1))).To(BeTrue())

			cancelled, err := service.Cancel(ctx, sale.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(cancelled.Status).To(Equal(entities.SaleCancelled))
			Expect(vehicle.Status).To(Equal(entities.VehicleAvailable))
			Expect(goal.CurrentValue.IsZero()).To(BeTrue())
		})

		It("reabre a troca vinculada", func() {
			tradeIn := &entities.TradeIn{
				CustomerID: customer.ID,
				Brand:      "VW",
				Model:      "Gol",
				Year:       2015,
				Status:     entities.TradeInPending,
			}
			Expect(tradeInRepo.Create(ctx, tradeIn)).To(Succeed())

			sale, err := service.Create(ctx, services.CreateSaleInput{
				CustomerID: customer.ID,
				VehicleID:  vehicle.ID,
				SellerID:   seller.ID,
				TradeInID:  &tradeIn.ID,
				SalePrice:  decimal.NewFromInt(80000),
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Cancel(ctx, sale.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(tradeIn.Status).To(Equal(entities.TradeInPending))
		})

		It("rejeita cancelar duas vezes", func() {
			sale, err := service.Create(ctx, services.CreateSaleInput{
				CustomerID: customer.ID,
				VehicleID:  vehicle.ID,
				SellerID:   seller.ID,
				SalePrice:  decimal.NewFromInt(80000),
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Cancel(ctx, sale.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Cancel(ctx, sale.ID)
			Expect(err).To(MatchError(errors.ErrInvalidTransition))
		})

		It("retorna erro para venda inexistente", func() {
			_, err := service.Cancel(ctx, uuid.New())
			Expect(err).To(MatchError(errors.ErrSaleNotFound))
		})
	})
})
