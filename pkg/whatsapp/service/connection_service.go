package service

import (
	"context"

	"fasal/pkg/whatsapp"
)

type ConnView struct {
	whatsapp.Conn
	Hint string `json:"hint"`
}

type ConnectionService interface {
	Get(ctx context.Context, sessionID string) (*ConnView, error)
	Connect(ctx context.Context, sessionID, phone string) (*ConnView, error)
	Acknowledge(ctx context.Context, sessionID, phone string) (*ConnView, error)
	Disconnect(ctx context.Context, sessionID string) (*ConnView, error)
}
