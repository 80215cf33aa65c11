package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email             string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name              string          `gorm:"type:varchar(500);not null"`
	PasswordHash      string          `gorm:"type:varchar(255);not null"`
	Role              string          `gorm:"type:varchar(50);not null;index"`
	AvatarURL         *string         `gorm:"type:varchar(500)"`
	CommissionPercent decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	CreatedAt         int64           `gorm:"autoCreateTime;index"`
	UpdatedAt         int64           `gorm:"autoUpdateTime"`
	DeletedAt         *int64          `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// CustomerModel é o model GORM para clientes
type CustomerModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string     `gorm:"type:varchar(500);not null;index"`
	Phone     string     `gorm:"type:varchar(20);not null"`
	Email     *string    `gorm:"type:varchar(255)"`
	CPF       *string    `gorm:"type:varchar(11);uniqueIndex"`
	BirthDate *time.Time `gorm:"type:date"`
	Address   string     `gorm:"type:varchar(500)"`
	City      string     `gorm:"type:varchar(100);index"`
	State     string     `gorm:"type:varchar(2)"`
	Notes     string     `gorm:"type:text"`
	CreatedAt int64      `gorm:"autoCreateTime;index"`
	UpdatedAt int64      `gorm:"autoUpdateTime"`
	DeletedAt *int64     `gorm:"index"` // Soft delete
}

func (CustomerModel) TableName() string {
	return "customers"
}

// VehicleModel é o model GORM para veículos.
// Photos guarda um array JSON serializado em coluna text.
type VehicleModel struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Brand      string           `gorm:"type:varchar(100);not null;index"`
	Model      string           `gorm:"type:varchar(100);not null"`
	Year       int              `gorm:"not null"`
	Km         int              `gorm:"not null;default:0"`
	Color      string           `gorm:"type:varchar(50)"`
	Plate      string           `gorm:"type:varchar(10);index"`
	Price      decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Cost       decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	FipeValue  *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status     string           `gorm:"type:varchar(20);not null;index"`
	Photos     string           `gorm:"type:text"`
	LocationID *uuid.UUID       `gorm:"type:uuid;index"`
	CreatedAt  int64            `gorm:"autoCreateTime;index"`
	UpdatedAt  int64            `gorm:"autoUpdateTime"`
}

func (VehicleModel) TableName() string {
	return "vehicles"
}

// SaleModel é o model GORM para vendas
type SaleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	VehicleID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	TradeInID     *uuid.UUID      `gorm:"type:uuid;index"`
	SalePrice     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EntryCash     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	FinancedValue decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Commission    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	ContractURL   *string         `gorm:"type:varchar(500)"`
	SaleDate      time.Time       `gorm:"not null;index"`
	CreatedAt     int64           `gorm:"autoCreateTime"`
	UpdatedAt     int64           `gorm:"autoUpdateTime"`
}

func (SaleModel) TableName() string {
	return "sales"
}

// TradeInModel é o model GORM para veículos de troca
type TradeInModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Brand      string          `gorm:"type:varchar(100);not null"`
	Model      string          `gorm:"type:varchar(100);not null"`
	Year       int             `gorm:"not null"`
	Km         int             `gorm:"not null;default:0"`
	ValueFipe  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ValueOffer decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Status     string          `gorm:"type:varchar(20);not null;index"`
	Notes      string          `gorm:"type:text"`
	CreatedAt  int64           `gorm:"autoCreateTime"`
	UpdatedAt  int64           `gorm:"autoUpdateTime"`
}

func (TradeInModel) TableName() string {
	return "trade_ins"
}

// GoalModel é o model GORM para metas
type GoalModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type         string          `gorm:"type:varchar(20);not null"`
	TargetValue  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CurrentValue decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Period       string          `gorm:"type:varchar(50)"`
	StartDate    time.Time       `gorm:"type:date;not null"`
	EndDate      time.Time       `gorm:"type:date;not null"`
	CreatedAt    int64           `gorm:"autoCreateTime"`
	UpdatedAt    int64           `gorm:"autoUpdateTime"`
}

func (GoalModel) TableName() string {
	return "goals"
}

// PromotionModel é o model GORM para promoções
type PromotionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Description   string          `gorm:"type:text"`
	DiscountType  string          `gorm:"type:varchar(20);not null"`
	DiscountValue decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	EndDate       time.Time       `gorm:"type:date;not null;index"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt     int64           `gorm:"autoCreateTime"`
	UpdatedAt     int64           `gorm:"autoUpdateTime"`
}

func (PromotionModel) TableName() string {
	return "promotions"
}

// FinancialCategoryModel é o model GORM para o plano de contas
type FinancialCategoryModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
	Code     string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	Name     string     `gorm:"type:varchar(255);not null"`
	Kind     string     `gorm:"type:varchar(20);not null"`
	Level    int        `gorm:"not null"`
}

func (FinancialCategoryModel) TableName() string {
	return "financial_categories"
}

// PendenciaModel é o model GORM para pendências
type PendenciaModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VehicleID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ResponsavelID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Descricao     string     `gorm:"type:text;not null"`
	Status        string     `gorm:"type:varchar(20);not null;index"`
	DataLimite    *time.Time `gorm:"index"`
	Marcador      string     `gorm:"type:varchar(100);index"`
	CreatedAt     int64      `gorm:"autoCreateTime"`
	UpdatedAt     int64      `gorm:"autoUpdateTime"`
}

func (PendenciaModel) TableName() string {
	return "pendencias"
}

// SinalModel é o model GORM para sinais de negócio
type SinalModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	VehicleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	SaleID       *uuid.UUID      `gorm:"type:uuid"`
	Valor        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DataValidade time.Time       `gorm:"not null"`
	Status       string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt    int64           `gorm:"autoCreateTime"`
	UpdatedAt    int64           `gorm:"autoUpdateTime"`
}

func (SinalModel) TableName() string {
	return "sinais_negocio"
}

// LocationModel é o model GORM para pátios/filiais
type LocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:varchar(500)"`
	CreatedAt int64     `gorm:"autoCreateTime"`
	UpdatedAt int64     `gorm:"autoUpdateTime"`
}

func (LocationModel) TableName() string {
	return "locations"
}

// RefreshTokenModel é o model GORM para refresh tokens
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"not null;default:false"`
	CreatedAt int64     `gorm:"autoCreateTime"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
