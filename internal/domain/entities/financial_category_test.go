package entities

import (
	"testing"

	"github.com/google/uuid"
)

func TestBuildCategoryTree(t *testing.T) {
	root := &FinancialCategory{ID: uuid.New(), Code: "1", Name: "Receitas", Kind: CategoryRevenue, Level: 1}
	child := &FinancialCategory{ID: uuid.New(), ParentID: &root.ID, Code: "1.1", Name: "Vendas", Kind: CategoryRevenue, Level: 2}
	grandchild := &FinancialCategory{ID: uuid.New(), ParentID: &child.ID, Code: "1.1.01", Name: "Veículos", Kind: CategoryRevenue, Level: 3}
	otherRoot := &FinancialCategory{ID: uuid.New(), Code: "2", Name: "Despesas", Kind: CategoryExpense, Level: 1}

	roots := BuildCategoryTree([]*FinancialCategory{grandchild, child, root, otherRoot})

	if len(roots) != 2 {
		t.Fatalf("esperava 2 raízes, obteve %d", len(roots))
	}

	var receitas *FinancialCategory
	for _, r := range roots {
		if r.ID == root.ID {
			receitas = r
		}
	}
	if receitas == nil {
		t.Fatal("raiz de receitas não encontrada")
	}

	if len(receitas.Children) != 1 || receitas.Children[0].ID != child.ID {
		t.Fatal("esperava 'Vendas' como filha de 'Receitas'")
	}
	if len(receitas.Children[0].Children) != 1 || receitas.Children[0].Children[0].ID != grandchild.ID {
		t.Fatal("esperava 'Veículos' como neta de 'Receitas'")
	}
}

func TestBuildCategoryTree_OrphanBecomesRoot(t *testing.T) {
	missingParent := uuid.New()
	orphan := &FinancialCategory{ID: uuid.New(), ParentID: &missingParent, Code: "9.1", Level: 2}

	roots := BuildCategoryTree([]*FinancialCategory{orphan})

	if len(roots) != 1 || roots[0].ID != orphan.ID {
		t.Error("categoria órfã deve subir para a raiz, não ser descartada")
	}
}

func TestFinancialCategory_Validate(t *testing.T) {
	parentID := uuid.New()

	t.Run("aceita categoria raiz", func(t *testing.T) {
		c := &FinancialCategory{Name: "Receitas", Kind: CategoryRevenue, Level: 1}
		if err := c.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("rejeita raiz com pai", func(t *testing.T) {
		c := &FinancialCategory{Name: "Receitas", Kind: CategoryRevenue, Level: 1, ParentID: &parentID}
		if err := c.Validate(); err == nil {
			t.Error("esperava erro para raiz com pai")
		}
	})

	t.Run("rejeita nível acima do máximo", func(t *testing.T) {
		c := &FinancialCategory{Name: "Demais", Kind: CategoryExpense, Level: 5, ParentID: &parentID}
		if err := c.Validate(); err == nil {
			t.Error("esperava erro para nível 5")
		}
	})

	t.Run("rejeita filho sem pai", func(t *testing.T) {
		c := &FinancialCategory{Name: "Vendas", Kind: CategoryRevenue, Level: 2}
		if err := c.Validate(); err == nil {
			t.Error("esperava erro para categoria não-raiz sem pai")
		}
	})
}
