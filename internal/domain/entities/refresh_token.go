package entities

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken representa um refresh token persistido e revogável
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// IsValid informa se o token ainda pode ser trocado por um access token
func (t *RefreshToken) IsValid(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}

// Revoke invalida o token (logout, rotação)
func (t *RefreshToken) Revoke() {
	t.Revoked = true
}
