package valueobjects

import "testing"

func TestNewCPF(t *testing.T) {
	t.Run("aceita CPF válido sem máscara", func(t *testing.T) {
		cpf, err := NewCPF("52998224725")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cpf.String() != "52998224725" {
			t.Errorf("esperava '52998224725', obteve '%s'", cpf.String())
		}
	})

	t.Run("aceita CPF válido com máscara", func(t *testing.T) {
		cpf, err := NewCPF("529.982.247-25")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cpf.String() != "52998224725" {
			t.Errorf("esperava forma canônica sem máscara, obteve '%s'", cpf.String())
		}
	})

	t.Run("rejeita dígito verificador errado", func(t *testing.T) {
		if _, err := NewCPF("529.982.247-26"); err != ErrInvalidCPF {
			t.Errorf("esperava ErrInvalidCPF, obteve %v", err)
		}
	})

	t.Run("rejeita sequência de dígitos repetidos", func(t *testing.T) {
		// 111.111.111-11 passa no cálculo dos verificadores mas é inválido
		if _, err := NewCPF("111.111.111-11"); err != ErrInvalidCPF {
			t.Errorf("esperava ErrInvalidCPF, obteve %v", err)
		}
	})

	t.Run("rejeita tamanho errado", func(t *testing.T) {
		if _, err := NewCPF("1234567890"); err != ErrInvalidCPF {
			t.Errorf("esperava ErrInvalidCPF, obteve %v", err)
		}
	})
}

func TestCPF_Formatted(t *testing.T) {
	cpf, err := NewCPF("52998224725")
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}

	if got := cpf.Formatted(); got != "529.982.247-25" {
		t.Errorf("esperava '529.982.247-25', obteve '%s'", got)
	}
}

func TestIsValidCPF(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"52998224725", true},
		{"529.982.247-25", true},
		{"529.982.247-24", false},
		{"00000000000", false},
		{"", false},
		{"abc", false},
	}

	for _, tc := range cases {
		if got := IsValidCPF(tc.input); got != tc.valid {
			t.Errorf("IsValidCPF(%q) = %v, esperava %v", tc.input, got, tc.valid)
		}
	}
}
