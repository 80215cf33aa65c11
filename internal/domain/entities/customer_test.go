package entities

import (
	"testing"
	"time"

	"github.com/garagem/crm-backend/internal/domain/valueobjects"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestCustomer_DaysUntilBirthday(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	t.Run("aniversário hoje", func(t *testing.T) {
		c := &Customer{BirthDate: date(1990, 9, 1)}
		if got := c.DaysUntilBirthday(now); got != 0 {
			t.Errorf("esperava 0, obteve %d", got)
		}
	})

	t.Run("aniversário daqui a cinco dias", func(t *testing.T) {
		c := &Customer{BirthDate: date(1985, 9, 6)}
		if got := c.DaysUntilBirthday(now); got != 5 {
			t.Errorf("esperava 5, obteve %d", got)
		}
	})

	t.Run("aniversário que já passou vira o ano", func(t *testing.T) {
		c := &Customer{BirthDate: date(1990, 8, 31)}
		if got := c.DaysUntilBirthday(now); got != 364 {
			t.Errorf("esperava 364, obteve %d", got)
		}
	})

	t.Run("sem data de nascimento", func(t *testing.T) {
		c := &Customer{}
		if got := c.DaysUntilBirthday(now); got != -1 {
			t.Errorf("esperava -1, obteve %d", got)
		}
	})
}

func TestCustomer_IsBirthday(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	t.Run("dia e mês coincidem", func(t *testing.T) {
		c := &Customer{BirthDate: date(1975, 9, 1)}
		if !c.IsBirthday(now) {
			t.Error("esperava aniversário hoje")
		}
	})

	t.Run("mesmo dia em outro mês", func(t *testing.T) {
		c := &Customer{BirthDate: date(1975, 10, 1)}
		if c.IsBirthday(now) {
			t.Error("não esperava aniversário hoje")
		}
	})
}

func TestCustomer_HasBirthdayContact(t *testing.T) {
	email, err := valueobjects.NewEmail("joao@example.com")
	if err != nil {
		t.Fatalf("esperava email válido: %v", err)
	}

	t.Run("com data e email", func(t *testing.T) {
		c := &Customer{BirthDate: date(1990, 1, 1), Email: &email}
		if !c.HasBirthdayContact() {
			t.Error("esperava contato de aniversário disponível")
		}
	})

	t.Run("sem email", func(t *testing.T) {
		c := &Customer{BirthDate: date(1990, 1, 1)}
		if c.HasBirthdayContact() {
			t.Error("cliente sem email não recebe email de aniversário")
		}
	})

	t.Run("sem data de nascimento", func(t *testing.T) {
		c := &Customer{Email: &email}
		if c.HasBirthdayContact() {
			t.Error("cliente sem data de nascimento não recebe email de aniversário")
		}
	})
}

func TestCustomer_Validate(t *testing.T) {
	phone, err := valueobjects.NewPhone("11987654321")
	if err != nil {
		t.Fatalf("esperava telefone válido: %v", err)
	}

	t.Run("aceita cliente válido", func(t *testing.T) {
		c := &Customer{Name: "Maria Silva", Phone: phone}
		if err := c.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("rejeita nome vazio", func(t *testing.T) {
		c := &Customer{Phone: phone}
		if err := c.Validate(); err == nil {
			t.Error("esperava erro para nome vazio")
		}
	})

	t.Run("rejeita telefone vazio", func(t *testing.T) {
		c := &Customer{Name: "Maria Silva"}
		if err := c.Validate(); err == nil {
			t.Error("esperava erro para telefone vazio")
		}
	})
}
