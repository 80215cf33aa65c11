package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/domain/entities"
)

// RefreshTokenRepository define a interface para persistência de refresh tokens
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entities.RefreshToken) error
	FindByHash(ctx context.Context, tokenHash string) (*entities.RefreshToken, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}
