package services_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/domain/repositories"
)

// Fakes em memória para os specs de serviço. Os mapas guardam ponteiros,
// então mutações feitas pelos serviços ficam visíveis nas asserções.

type fakeUnitOfWork struct{}

func (f *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (f *fakeUnitOfWork) Commit(ctx context.Context) error                   { return nil }
func (f *fakeUnitOfWork) Rollback(ctx context.Context) error                 { return nil }
func (f *fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	events []ports.Event
}

func (f *fakeNotifier) Publish(event ports.Event) {
	f.events = append(f.events, event)
}

type nopLogger struct{}

func (l nopLogger) Info(msg string, args ...any)  {}
func (l nopLogger) Error(msg string, args ...any) {}
func (l nopLogger) Debug(msg string, args ...any) {}
func (l nopLogger) Warn(msg string, args ...any)  {}
func (l nopLogger) With(args ...any) ports.Logger { return l }

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entities.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entities.Customer)}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *entities.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) FindByCPF(ctx context.Context, cpf string) (*entities.Customer, error) {
	for _, c := range f.customers {
		if c.CPF != nil && c.CPF.String() == cpf {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c *entities.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, filters repositories.CustomerFilters) ([]*entities.Customer, error) {
	var out []*entities.Customer
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) ListWithBirthday(ctx context.Context) ([]*entities.Customer, error) {
	var out []*entities.Customer
	for _, c := range f.customers {
		if c.HasBirthdayContact() {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entities.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entities.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email.String() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *entities.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*entities.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[uuid.UUID]*entities.Vehicle)}
}

func (f *fakeVehicleRepo) Create(ctx context.Context, v *entities.Vehicle) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	f.vehicles[v.ID] = v
	return nil
}

func (f *fakeVehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Vehicle, error) {
	return f.vehicles[id], nil
}

func (f *fakeVehicleRepo) Update(ctx context.Context, v *entities.Vehicle) error {
	f.vehicles[v.ID] = v
	return nil
}

func (f *fakeVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.vehicles, id)
	return nil
}

func (f *fakeVehicleRepo) List(ctx context.Context, filters repositories.VehicleFilters) ([]*entities.Vehicle, error) {
	var out []*entities.Vehicle
	for _, v := range f.vehicles {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVehicleRepo) StockStats(ctx context.Context) (*repositories.StockStats, error) {
	return &repositories.StockStats{}, nil
}

type fakeSaleRepo struct {
	sales map[uuid.UUID]*entities.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entities.Sale)}
}

func (f *fakeSaleRepo) Create(ctx context.Context, s *entities.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.sales[s.ID] = s
	return nil
}

func (f *fakeSaleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Sale, error) {
	return f.sales[id], nil
}

func (f *fakeSaleRepo) FindActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) (*entities.Sale, error) {
	for _, s := range f.sales {
		if s.VehicleID == vehicleID && s.IsActive() {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) Update(ctx context.Context, s *entities.Sale) error {
	f.sales[s.ID] = s
	return nil
}

func (f *fakeSaleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.sales, id)
	return nil
}

func (f *fakeSaleRepo) List(ctx context.Context, filters repositories.SaleFilters) ([]*entities.Sale, error) {
	var out []*entities.Sale
	for _, s := range f.sales {
		out = append(out, s)
	}
	return out, nil
}

type fakeTradeInRepo struct {
	tradeIns map[uuid.UUID]*entities.TradeIn
}

func newFakeTradeInRepo() *fakeTradeInRepo {
	return &fakeTradeInRepo{tradeIns: make(map[uuid.UUID]*entities.TradeIn)}
}

func (f *fakeTradeInRepo) Create(ctx context.Context, t *entities.TradeIn) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	f.tradeIns[t.ID] = t
	return nil
}

func (f *fakeTradeInRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.TradeIn, error) {
	return f.tradeIns[id], nil
}

func (f *fakeTradeInRepo) Update(ctx context.Context, t *entities.TradeIn) error {
	f.tradeIns[t.ID] = t
	return nil
}

func (f *fakeTradeInRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.tradeIns, id)
	return nil
}

func (f *fakeTradeInRepo) List(ctx context.Context, filters repositories.TradeInFilters) ([]*entities.TradeIn, error) {
	var out []*entities.TradeIn
	for _, t := range f.tradeIns {
		out = append(out, t)
	}
	return out, nil
}

type fakeGoalRepo struct {
	goals map[uuid.UUID]*entities.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uuid.UUID]*entities.Goal)}
}

func (f *fakeGoalRepo) Create(ctx context.Context, g *entities.Goal) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	f.goals[g.ID] = g
	return nil
}

func (f *fakeGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Goal, error) {
	return f.goals[id], nil
}

func (f *fakeGoalRepo) Update(ctx context.Context, g *entities.Goal) error {
	f.goals[g.ID] = g
	return nil
}

func (f *fakeGoalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.goals, id)
	return nil
}

func (f *fakeGoalRepo) List(ctx context.Context, filters repositories.GoalFilters) ([]*entities.Goal, error) {
	var out []*entities.Goal
	for _, g := range f.goals {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGoalRepo) FindActiveByUser(ctx context.Context, userID uuid.UUID, at time.Time) ([]*entities.Goal, error) {
	var out []*entities.Goal
	for _, g := range f.goals {
		if g.UserID == userID && g.IsActiveAt(at) {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeSinalRepo struct {
	sinais map[uuid.UUID]*entities.SinalNegocio
}

func newFakeSinalRepo() *fakeSinalRepo {
	return &fakeSinalRepo{sinais: make(map[uuid.UUID]*entities.SinalNegocio)}
}

func (f *fakeSinalRepo) Create(ctx context.Context, s *entities.SinalNegocio) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.sinais[s.ID] = s
	return nil
}

func (f *fakeSinalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.SinalNegocio, error) {
	return f.sinais[id], nil
}

func (f *fakeSinalRepo) FindPendingByVehicle(ctx context.Context, vehicleID uuid.UUID) (*entities.SinalNegocio, error) {
	for _, s := range f.sinais {
		if s.VehicleID == vehicleID && s.IsPending() {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSinalRepo) Update(ctx context.Context, s *entities.SinalNegocio) error {
	f.sinais[s.ID] = s
	return nil
}

func (f *fakeSinalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.sinais, id)
	return nil
}

func (f *fakeSinalRepo) List(ctx context.Context, filters repositories.SinalFilters) ([]*entities.SinalNegocio, error) {
	var out []*entities.SinalNegocio
	for _, s := range f.sinais {
		out = append(out, s)
	}
	return out, nil
}
