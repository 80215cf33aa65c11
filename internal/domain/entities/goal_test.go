package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestGoal_ApplySale(t *testing.T) {
	price := decimal.NewFromInt(50000)
	profit := decimal.NewFromInt(8000)

	t.Run("meta de quantidade conta uma venda", func(t *testing.T) {
		g := &Goal{Type: GoalSales, TargetValue: decimal.NewFromInt(10)}
		g.ApplySale(price, profit)
		if !g.CurrentValue.Equal(decimal.NewFromInt(1)) {
			t.Errorf("esperava 1, obteve %s", g.CurrentValue)
		}
	})

	t.Run("meta de faturamento soma o preço", func(t *testing.T) {
		g := &Goal{Type: GoalRevenue, TargetValue: decimal.NewFromInt(200000)}
		g.ApplySale(price, profit)
		if !g.CurrentValue.Equal(price) {
			t.Errorf("esperava %s, obteve %s", price, g.CurrentValue)
		}
	})

	t.Run("meta de lucro soma a margem", func(t *testing.T) {
		g := &Goal{Type: GoalProfit, TargetValue: decimal.NewFromInt(30000)}
		g.ApplySale(price, profit)
		if !g.CurrentValue.Equal(profit) {
			t.Errorf("esperava %s, obteve %s", profit, g.CurrentValue)
		}
	})
}

func TestGoal_RevertSale(t *testing.T) {
	price := decimal.NewFromInt(50000)
	profit := decimal.NewFromInt(8000)

	t.Run("desfaz o crédito da venda", func(t *testing.T) {
		g := &Goal{Type: GoalRevenue, TargetValue: decimal.NewFromInt(200000), CurrentValue: price}
		g.RevertSale(price, profit)
		if !g.CurrentValue.IsZero() {
			t.Errorf("esperava 0, obteve %s", g.CurrentValue)
		}
	})

	t.Run("não deixa o acumulado negativo", func(t *testing.T) {
		g := &Goal{Type: GoalProfit, TargetValue: decimal.NewFromInt(30000), CurrentValue: decimal.NewFromInt(100)}
		g.RevertSale(price, profit)
		if !g.CurrentValue.IsZero() {
			t.Errorf("esperava 0, obteve %s", g.CurrentValue)
		}
	})
}

func TestGoal_Progress(t *testing.T) {
	t.Run("calcula percentual", func(t *testing.T) {
		g := &Goal{
			TargetValue:  decimal.NewFromInt(200000),
			CurrentValue: decimal.NewFromInt(50000),
		}
		if !g.Progress().Equal(decimal.NewFromInt(25)) {
			t.Errorf("esperava 25, obteve %s", g.Progress())
		}
	})

	t.Run("meta zerada não divide por zero", func(t *testing.T) {
		g := &Goal{TargetValue: decimal.Zero, CurrentValue: decimal.NewFromInt(10)}
		if !g.Progress().IsZero() {
			t.Errorf("esperava 0, obteve %s", g.Progress())
		}
	})
}

func TestGoal_Achieved(t *testing.T) {
	t.Run("atingida quando corrente alcança o alvo", func(t *testing.T) {
		g := &Goal{TargetValue: decimal.NewFromInt(10), CurrentValue: decimal.NewFromInt(10)}
		if !g.Achieved() {
			t.Error("esperava meta atingida")
		}
	})

	t.Run("meta zerada nunca está atingida", func(t *testing.T) {
		g := &Goal{TargetValue: decimal.Zero, CurrentValue: decimal.Zero}
		if g.Achieved() {
			t.Error("meta sem alvo não deve constar como atingida")
		}
	})
}
