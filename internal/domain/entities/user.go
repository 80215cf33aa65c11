package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/valueobjects"
)

// User representa um usuário do sistema (vendedor, gerente ou admin)
type User struct {
	ID                uuid.UUID
	Name              string
	Email             valueobjects.Email
	PasswordHash      string
	Role              Role
	AvatarURL         *string
	CommissionPercent decimal.Decimal // percentual padrão de comissão sobre vendas
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time // Soft delete
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete marca o usuário como deletado
func (u *User) SoftDelete() {
	now := time.Now()
	u.DeletedAt = &now
}

// Restore restaura um usuário deletado
func (u *User) Restore() {
	u.DeletedAt = nil
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if len(u.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if !u.Role.Valid() {
		return errors.New("invalid role")
	}

	if u.CommissionPercent.IsNegative() || u.CommissionPercent.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("commission percent must be between 0 and 100")
	}

	return nil
}
