package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestVehicle_MarkSold(t *testing.T) {
	t.Run("vende veículo disponível", func(t *testing.T) {
		v := &Vehicle{Status: VehicleAvailable}
		if err := v.MarkSold(); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if v.Status != VehicleSold {
			t.Errorf("esperava status vendido, obteve '%s'", v.Status)
		}
	})

	t.Run("vende veículo reservado", func(t *testing.T) {
		v := &Vehicle{Status: VehicleReserved}
		if err := v.MarkSold(); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("rejeita vender duas vezes", func(t *testing.T) {
		v := &Vehicle{Status: VehicleSold}
		if err := v.MarkSold(); err == nil {
			t.Error("esperava erro ao vender veículo já vendido")
		}
	})
}

func TestVehicle_MarkReserved(t *testing.T) {
	t.Run("reserva veículo disponível", func(t *testing.T) {
		v := &Vehicle{Status: VehicleAvailable}
		if err := v.MarkReserved(); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if v.Status != VehicleReserved {
			t.Errorf("esperava status reservado, obteve '%s'", v.Status)
		}
	})

	t.Run("rejeita reservar veículo vendido", func(t *testing.T) {
		v := &Vehicle{Status: VehicleSold}
		if err := v.MarkReserved(); err == nil {
			t.Error("esperava erro ao reservar veículo vendido")
		}
	})

	t.Run("rejeita reservar veículo já reservado", func(t *testing.T) {
		v := &Vehicle{Status: VehicleReserved}
		if err := v.MarkReserved(); err == nil {
			t.Error("esperava erro ao reservar veículo já reservado")
		}
	})
}

func TestVehicle_Release(t *testing.T) {
	v := &Vehicle{Status: VehicleReserved}
	v.Release()
	if v.Status != VehicleAvailable {
		t.Errorf("esperava status disponível, obteve '%s'", v.Status)
	}
}

func TestVehicle_Margin(t *testing.T) {
	v := &Vehicle{
		Price: decimal.NewFromInt(50000),
		Cost:  decimal.NewFromInt(42000),
	}
	if !v.Margin().Equal(decimal.NewFromInt(8000)) {
		t.Errorf("esperava margem 8000, obteve %s", v.Margin())
	}
}

func TestVehicle_DaysInStock(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	v := &Vehicle{CreatedAt: now.AddDate(0, 0, -95)}
	if got := v.DaysInStock(now); got != 95 {
		t.Errorf("esperava 95 dias, obteve %d", got)
	}
}

func TestVehicle_Validate(t *testing.T) {
	valid := func() *Vehicle {
		return &Vehicle{
			Brand:  "Fiat",
			Model:  "Argo",
			Year:   2022,
			Km:     30000,
			Price:  decimal.NewFromInt(65000),
			Cost:   decimal.NewFromInt(58000),
			Status: VehicleAvailable,
		}
	}

	t.Run("aceita veículo válido", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("rejeita ano fora da faixa", func(t *testing.T) {
		v := valid()
		v.Year = 1900
		if err := v.Validate(); err == nil {
			t.Error("esperava erro para ano inválido")
		}
	})

	t.Run("rejeita km negativo", func(t *testing.T) {
		v := valid()
		v.Km = -1
		if err := v.Validate(); err == nil {
			t.Error("esperava erro para km negativo")
		}
	})

	t.Run("rejeita preço negativo", func(t *testing.T) {
		v := valid()
		v.Price = decimal.NewFromInt(-1)
		if err := v.Validate(); err == nil {
			t.Error("esperava erro para preço negativo")
		}
	})
}
