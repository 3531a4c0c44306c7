package repository

import (
	"context"
	"errors"

	"fasal/entities"
)

var ErrNotFound = errors.New("guide session not found")

type SessionRepository interface {
	Find(ctx context.Context, sessionID string) (*entities.GuideSession, error)
	Save(ctx context.Context, s *entities.GuideSession) error
	Delete(ctx context.Context, sessionID string) error
}
