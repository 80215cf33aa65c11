package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Location representa um pátio ou filial onde veículos ficam estocados
type Location struct {
	ID        uuid.UUID
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l *Location) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
