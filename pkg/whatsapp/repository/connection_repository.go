package repository

import (
	"context"

	"fasal/entities"
)

type ConnectionRepository interface {
	// Find returns nil without error when the session has no connection yet.
	Find(ctx context.Context, sessionID string) (*entities.Connection, error)
	Save(ctx context.Context, c *entities.Connection) error
}
