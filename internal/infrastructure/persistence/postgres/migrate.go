package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/domain/repositories"
)

// Migrate cria/atualiza o schema do banco
func Migrate(db *gorm.DB, log ports.Logger) error {
	err := db.AutoMigrate(
		&UserModel{},
		&CustomerModel{},
		&VehicleModel{},
		&SaleModel{},
		&TradeInModel{},
		&GoalModel{},
		&PromotionModel{},
		&FinancialCategoryModel{},
		&PendenciaModel{},
		&SinalModel{},
		&LocationModel{},
		&RefreshTokenModel{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	log.Info("database schema migrated")
	return nil
}

// seedCategory descreve um nó do plano de contas padrão
type seedCategory struct {
	Code     string
	Name     string
	Kind     entities.CategoryKind
	Children []seedCategory
}

// defaultChartOfAccounts é o plano de contas padrão de 4 níveis da loja
var defaultChartOfAccounts = []seedCategory{
	{Code: "1", Name: "Receitas", Kind: entities.CategoryRevenue, Children: []seedCategory{
		{Code: "1.1", Name: "Receitas Operacionais", Kind: entities.CategoryRevenue, Children: []seedCategory{
			{Code: "1.1.1", Name: "Venda de Veículos", Kind: entities.CategoryRevenue, Children: []seedCategory{
				{Code: "1.1.1.01", Name: "Venda de Seminovos", Kind: entities.CategoryRevenue},
				{Code: "1.1.1.02", Name: "Venda de Novos", Kind: entities.CategoryRevenue},
				{Code: "1.1.1.03", Name: "Venda de Veículos de Troca", Kind: entities.CategoryRevenue},
			}},
			{Code: "1.1.2", Name: "Serviços", Kind: entities.CategoryRevenue, Children: []seedCategory{
				{Code: "1.1.2.01", Name: "Comissão de Financiamento", Kind: entities.CategoryRevenue},
				{Code: "1.1.2.02", Name: "Despachante", Kind: entities.CategoryRevenue},
			}},
		}},
		{Code: "1.2", Name: "Receitas Não Operacionais", Kind: entities.CategoryRevenue, Children: []seedCategory{
			{Code: "1.2.1", Name: "Financeiras", Kind: entities.CategoryRevenue, Children: []seedCategory{
				{Code: "1.2.1.01", Name: "Rendimentos de Aplicação", Kind: entities.CategoryRevenue},
			}},
		}},
	}},
	{Code: "2", Name: "Despesas", Kind: entities.CategoryExpense, Children: []seedCategory{
		{Code: "2.1", Name: "Custo de Veículos", Kind: entities.CategoryExpense, Children: []seedCategory{
			{Code: "2.1.1", Name: "Aquisição", Kind: entities.CategoryExpense, Children: []seedCategory{
				{Code: "2.1.1.01", Name: "Compra de Veículos", Kind: entities.CategoryExpense},
				{Code: "2.1.1.02", Name: "Avaliação de Troca", Kind: entities.CategoryExpense},
			}},
			{Code: "2.1.2", Name: "Preparação", Kind: entities.CategoryExpense, Children: []seedCategory{
				{Code: "2.1.2.01", Name: "Mecânica", Kind: entities.CategoryExpense},
				{Code: "2.1.2.02", Name: "Funilaria e Pintura", Kind: entities.CategoryExpense},
				{Code: "2.1.2.03", Name: "Higienização", Kind: entities.CategoryExpense},
			}},
		}},
		{Code: "2.2", Name: "Despesas Administrativas", Kind: entities.CategoryExpense, Children: []seedCategory{
			{Code: "2.2.1", Name: "Pessoal", Kind: entities.CategoryExpense, Children: []seedCategory{
				{Code: "2.2.1.01", Name: "Salários", Kind: entities.CategoryExpense},
				{Code: "2.2.1.02", Name: "Comissões", Kind: entities.CategoryExpense},
			}},
			{Code: "2.2.2", Name: "Estrutura", Kind: entities.CategoryExpense, Children: []seedCategory{
				{Code: "2.2.2.01", Name: "Aluguel", Kind: entities.CategoryExpense},
				{Code: "2.2.2.02", Name: "Energia e Água", Kind: entities.CategoryExpense},
				{Code: "2.2.2.03", Name: "Marketing", Kind: entities.CategoryExpense},
			}},
		}},
	}},
}

// SeedChartOfAccounts insere o plano de contas padrão quando a tabela está vazia
func SeedChartOfAccounts(ctx context.Context, repo repositories.FinancialCategoryRepository, log ports.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var insert func(nodes []seedCategory, parent *entities.FinancialCategory, level int) error
	insert = func(nodes []seedCategory, parent *entities.FinancialCategory, level int) error {
		for _, node := range nodes {
			category := &entities.FinancialCategory{
				Code:  node.Code,
				Name:  node.Name,
				Kind:  node.Kind,
				Level: level,
			}
			if parent != nil {
				parentID := parent.ID
				category.ParentID = &parentID
			}

			if err := repo.Create(ctx, category); err != nil {
				return fmt.Errorf("seed category %s: %w", node.Code, err)
			}

			if err := insert(node.Children, category, level+1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := insert(defaultChartOfAccounts, nil, 1); err != nil {
		return err
	}

	log.Info("chart of accounts seeded")
	return nil
}
