package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSale_Cancel(t *testing.T) {
	t.Run("cancela venda concluída", func(t *testing.T) {
		s := &Sale{Status: SaleCompleted}
		if err := s.Cancel(); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if s.Status != SaleCancelled {
			t.Errorf("esperava status cancelada, obteve '%s'", s.Status)
		}
	})

	t.Run("rejeita cancelar duas vezes", func(t *testing.T) {
		s := &Sale{Status: SaleCancelled}
		if err := s.Cancel(); err == nil {
			t.Error("esperava erro ao cancelar venda já cancelada")
		}
	})
}

func TestSale_CommissionFor(t *testing.T) {
	s := &Sale{SalePrice: decimal.NewFromInt(80000)}

	commission := s.CommissionFor(decimal.NewFromFloat(2.5))

	if !commission.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("esperava comissão 2000, obteve %s", commission)
	}
}

func TestTradeIn_TransitionTo(t *testing.T) {
	t.Run("pendente aceita", func(t *testing.T) {
		tr := &TradeIn{Status: TradeInPending}
		if err := tr.Accept(); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if tr.Status != TradeInAccepted {
			t.Errorf("esperava status aceito, obteve '%s'", tr.Status)
		}
	})

	t.Run("aceita reabre para pendente", func(t *testing.T) {
		tr := &TradeIn{Status: TradeInAccepted}
		if err := tr.Reopen(); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if tr.Status != TradeInPending {
			t.Errorf("esperava status pendente, obteve '%s'", tr.Status)
		}
	})

	t.Run("vendido é terminal", func(t *testing.T) {
		tr := &TradeIn{Status: TradeInSold}
		if err := tr.TransitionTo(TradeInPending); err == nil {
			t.Error("esperava erro ao transicionar troca já vendida")
		}
	})

	t.Run("rejeita pular de pendente para vendido", func(t *testing.T) {
		tr := &TradeIn{Status: TradeInPending}
		if err := tr.TransitionTo(TradeInSold); err == nil {
			t.Error("esperava erro: troca precisa ser aceita antes de vendida")
		}
	})
}

func TestPendencia_TransitionTo(t *testing.T) {
	t.Run("aberto para em análise", func(t *testing.T) {
		p := &Pendencia{Status: PendenciaOpen}
		if err := p.TransitionTo(PendenciaInAnalysis); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("finalizado é terminal", func(t *testing.T) {
		p := &Pendencia{Status: PendenciaDone}
		if err := p.TransitionTo(PendenciaOpen); err == nil {
			t.Error("esperava erro ao reabrir pendência finalizada")
		}
	})
}

func TestPromotion_Apply(t *testing.T) {
	price := decimal.NewFromInt(60000)

	t.Run("desconto percentual", func(t *testing.T) {
		p := &Promotion{DiscountType: DiscountPercent, DiscountValue: decimal.NewFromInt(10)}
		if got := p.Apply(price); !got.Equal(decimal.NewFromInt(54000)) {
			t.Errorf("esperava 54000, obteve %s", got)
		}
	})

	t.Run("desconto fixo", func(t *testing.T) {
		p := &Promotion{DiscountType: DiscountFixed, DiscountValue: decimal.NewFromInt(3000)}
		if got := p.Apply(price); !got.Equal(decimal.NewFromInt(57000)) {
			t.Errorf("esperava 57000, obteve %s", got)
		}
	})

	t.Run("desconto maior que o preço não fica negativo", func(t *testing.T) {
		p := &Promotion{DiscountType: DiscountFixed, DiscountValue: decimal.NewFromInt(70000)}
		if got := p.Apply(price); !got.IsZero() {
			t.Errorf("esperava 0, obteve %s", got)
		}
	})
}
