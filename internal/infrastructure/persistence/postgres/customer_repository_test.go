package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/garagem/crm-backend/internal/domain/repositories"
)

// setupMockDB abre um gorm.DB sobre um sql.DB mockado
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	return db, mock
}

func customerColumns() []string {
	return []string{
		"id", "name", "phone", "email", "cpf", "birth_date",
		"address", "city", "state", "notes",
		"created_at", "updated_at", "deleted_at",
	}
}

func TestCustomerRepository_FindByID(t *testing.T) {
	t.Run("retorna o cliente quando existe", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCustomerRepository(db)

		id := uuid.New()
		email := "maria@example.com"
		now := time.Now().Unix()

		rows := sqlmock.NewRows(customerColumns()).
			AddRow(id, "Maria Silva", "11987654321", &email, nil, nil,
				"Rua A, 100", "São Paulo", "SP", "", now, now, nil)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers" WHERE id = $1 AND deleted_at IS NULL`)).
			WithArgs(id, 1).
			WillReturnRows(rows)

		customer, err := repo.FindByID(context.Background(), id)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if customer == nil {
			t.Fatal("esperava cliente, obteve nil")
		}

		if customer.Name != "Maria Silva" {
			t.Errorf("esperava 'Maria Silva', obteve '%s'", customer.Name)
		}
		if customer.Phone.String() != "11987654321" {
			t.Errorf("esperava telefone '11987654321', obteve '%s'", customer.Phone)
		}
		if customer.Email == nil || customer.Email.String() != email {
			t.Errorf("esperava email '%s', obteve %v", email, customer.Email)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectativas não atendidas: %v", err)
		}
	})

	t.Run("retorna nil quando não existe", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCustomerRepository(db)

		id := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers" WHERE id = $1 AND deleted_at IS NULL`)).
			WithArgs(id, 1).
			WillReturnRows(sqlmock.NewRows(customerColumns()))

		customer, err := repo.FindByID(context.Background(), id)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if customer != nil {
			t.Errorf("esperava nil, obteve %+v", customer)
		}
	})
}

func TestCustomerRepository_FindByCPF(t *testing.T) {
	t.Run("retorna nil quando CPF não cadastrado", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCustomerRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers" WHERE cpf = $1 AND deleted_at IS NULL`)).
			WithArgs("52998224725", 1).
			WillReturnRows(sqlmock.NewRows(customerColumns()))

		customer, err := repo.FindByCPF(context.Background(), "52998224725")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if customer != nil {
			t.Errorf("esperava nil, obteve %+v", customer)
		}
	})
}

func TestCustomerRepository_Delete(t *testing.T) {
	t.Run("marca deleted_at sem remover a linha", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCustomerRepository(db)

		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "customers" SET`)).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		if err := repo.Delete(context.Background(), id); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectativas não atendidas: %v", err)
		}
	})
}

func TestCustomerRepository_List(t *testing.T) {
	t.Run("aplica filtro de nome e paginação", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCustomerRepository(db)

		now := time.Now().Unix()
		rows := sqlmock.NewRows(customerColumns()).
			AddRow(uuid.New(), "Maria Silva", "11987654321", nil, nil, nil,
				"", "São Paulo", "SP", "", now, now, nil)

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE deleted_at IS NULL AND name ILIKE \$1`).
			WillReturnRows(rows)

		customers, err := repo.List(context.Background(), repositories.CustomerFilters{
			Name:     "maria",
			Page:     1,
			PageSize: 20,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(customers) != 1 {
			t.Fatalf("esperava 1 cliente, obteve %d", len(customers))
		}
		if customers[0].Name != "Maria Silva" {
			t.Errorf("esperava 'Maria Silva', obteve '%s'", customers[0].Name)
		}
	})
}
