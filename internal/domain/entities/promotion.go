package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromotionStatus representa a situação de uma promoção
type PromotionStatus string

const (
	PromotionActive   PromotionStatus = "ativa"
	PromotionInactive PromotionStatus = "inativa"
	PromotionExpired  PromotionStatus = "expirada"
)

// Valid verifica se o status é um dos valores conhecidos
func (s PromotionStatus) Valid() bool {
	switch s {
	case PromotionActive, PromotionInactive, PromotionExpired:
		return true
	}
	return false
}

// DiscountType representa a forma de desconto de uma promoção
type DiscountType string

const (
	DiscountPercent DiscountType = "percentual"
	DiscountFixed   DiscountType = "valor_fixo"
)

// Valid verifica se o tipo é um dos valores conhecidos
func (t DiscountType) Valid() bool {
	return t == DiscountPercent || t == DiscountFixed
}

// Promotion representa uma campanha de desconto
type Promotion struct {
	ID            uuid.UUID
	Name          string
	Description   string
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time
	Status        PromotionStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsExpiredAt informa se a promoção já passou da data final
func (p *Promotion) IsExpiredAt(now time.Time) bool {
	return now.After(p.EndDate)
}

// Expire marca a promoção como expirada
func (p *Promotion) Expire() {
	p.Status = PromotionExpired
}

// Apply aplica o desconto da promoção sobre um preço
func (p *Promotion) Apply(price decimal.Decimal) decimal.Decimal {
	var discounted decimal.Decimal
	switch p.DiscountType {
	case DiscountPercent:
		factor := decimal.NewFromInt(100).Sub(p.DiscountValue).Div(decimal.NewFromInt(100))
		discounted = price.Mul(factor).Round(2)
	case DiscountFixed:
		discounted = price.Sub(p.DiscountValue)
	default:
		return price
	}

	if discounted.IsNegative() {
		return decimal.Zero
	}
	return discounted
}

// Validate valida regras de negócio da entidade Promotion
func (p *Promotion) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}

	if !p.DiscountType.Valid() {
		return errors.New("invalid discount type")
	}

	if p.DiscountValue.IsNegative() || p.DiscountValue.IsZero() {
		return errors.New("discount value must be positive")
	}

	if p.DiscountType == DiscountPercent && p.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("percent discount must not exceed 100")
	}

	if p.EndDate.Before(p.StartDate) {
		return errors.New("end date must be after start date")
	}

	if !p.Status.Valid() {
		return errors.New("invalid status")
	}

	return nil
}
