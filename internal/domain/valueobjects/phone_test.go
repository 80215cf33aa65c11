package valueobjects

import "testing"

func TestNewPhone(t *testing.T) {
	t.Run("aceita celular com máscara", func(t *testing.T) {
		phone, err := NewPhone("(11) 98765-4321")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if phone.String() != "11987654321" {
			t.Errorf("esperava '11987654321', obteve '%s'", phone.String())
		}
	})

	t.Run("aceita fixo com 10 dígitos", func(t *testing.T) {
		phone, err := NewPhone("1133334444")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if phone.Formatted() != "(11) 3333-4444" {
			t.Errorf("esperava '(11) 3333-4444', obteve '%s'", phone.Formatted())
		}
	})

	t.Run("remove código do país 55", func(t *testing.T) {
		phone, err := NewPhone("+55 11 98765-4321")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if phone.String() != "11987654321" {
			t.Errorf("esperava '11987654321', obteve '%s'", phone.String())
		}
	})

	t.Run("rejeita número curto", func(t *testing.T) {
		if _, err := NewPhone("987654"); err != ErrInvalidPhone {
			t.Errorf("esperava ErrInvalidPhone, obteve %v", err)
		}
	})
}

func TestPhone_Formatted(t *testing.T) {
	phone, err := NewPhone("11987654321")
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}

	if got := phone.Formatted(); got != "(11) 98765-4321" {
		t.Errorf("esperava '(11) 98765-4321', obteve '%s'", got)
	}
}

func TestNewEmail(t *testing.T) {
	t.Run("aceita email válido", func(t *testing.T) {
		email, err := NewEmail("maria@example.com.br")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if email.String() != "maria@example.com.br" {
			t.Errorf("esperava 'maria@example.com.br', obteve '%s'", email.String())
		}
	})

	t.Run("rejeita email sem domínio", func(t *testing.T) {
		if _, err := NewEmail("maria@"); err != ErrInvalidEmail {
			t.Errorf("esperava ErrInvalidEmail, obteve %v", err)
		}
	})
}
