package entities

import (
	"errors"

	"github.com/google/uuid"
)

// CategoryKind representa a natureza de uma categoria financeira
type CategoryKind string

const (
	CategoryRevenue CategoryKind = "receita"
	CategoryExpense CategoryKind = "despesa"
)

// Valid verifica se o tipo é um dos valores conhecidos
func (k CategoryKind) Valid() bool {
	return k == CategoryRevenue || k == CategoryExpense
}

// MaxCategoryLevel é a profundidade máxima do plano de contas
const MaxCategoryLevel = 4

// FinancialCategory representa um nó do plano de contas (árvore de até 4 níveis)
type FinancialCategory struct {
	ID       uuid.UUID
	ParentID *uuid.UUID
	Code     string // ex: "1.2.01"
	Name     string
	Kind     CategoryKind
	Level    int

	Children []*FinancialCategory
}

// IsRoot informa se a categoria é raiz da árvore
func (c *FinancialCategory) IsRoot() bool {
	return c.ParentID == nil
}

// Validate valida regras de negócio da categoria
func (c *FinancialCategory) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}

	if !c.Kind.Valid() {
		return errors.New("invalid kind")
	}

	if c.Level < 1 || c.Level > MaxCategoryLevel {
		return errors.New("level must be between 1 and 4")
	}

	if c.Level == 1 && c.ParentID != nil {
		return errors.New("root category must not have a parent")
	}

	if c.Level > 1 && c.ParentID == nil {
		return errors.New("non-root category requires a parent")
	}

	return nil
}

// BuildCategoryTree monta a árvore a partir de uma lista plana de categorias
func BuildCategoryTree(flat []*FinancialCategory) []*FinancialCategory {
	byID := make(map[uuid.UUID]*FinancialCategory, len(flat))
	for _, c := range flat {
		c.Children = nil
		byID[c.ID] = c
	}

	var roots []*FinancialCategory
	for _, c := range flat {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		if parent, ok := byID[*c.ParentID]; ok {
			parent.Children = append(parent.Children, c)
		} else {
			// Pai fora da lista: trata como raiz para não perder o nó
			roots = append(roots, c)
		}
	}

	return roots
}
