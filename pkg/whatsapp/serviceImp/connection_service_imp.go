package serviceImp

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"fasal/entities"
	"fasal/pkg/whatsapp"
	repo "fasal/pkg/whatsapp/repository"
	"fasal/pkg/whatsapp/service"
)

type connSvc struct {
	r   repo.ConnectionRepository
	log *zap.Logger
	mu  sync.Mutex
}

func NewConnectionService(r repo.ConnectionRepository, log *zap.Logger) service.ConnectionService {
	return &connSvc{r: r, log: log}
}

func (s *connSvc) load(ctx context.Context, sessionID string) (*whatsapp.Conn, error) {
	row, err := s.r.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if row == nil || !whatsapp.ConnState(row.State).Valid() {
		return whatsapp.NewConn(), nil
	}
	return &whatsapp.Conn{Phone: row.Phone, State: whatsapp.ConnState(row.State)}, nil
}

func view(c *whatsapp.Conn) *service.ConnView {
	return &service.ConnView{Conn: *c, Hint: whatsapp.StatusHint(c.State)}
}

// apply runs one transition and persists the result when it succeeds.
func (s *connSvc) apply(ctx context.Context, sessionID, event string, fn func(*whatsapp.Conn) error) (*service.ConnView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	from := c.State
	if err := fn(c); err != nil {
		s.log.Warn("whatsapp transition rejected",
			zap.String("session", sessionID),
			zap.String("event", event),
			zap.String("state", string(from)),
			zap.Error(err))
		return nil, err
	}
	if err := s.r.Save(ctx, &entities.Connection{SessionID: sessionID, Phone: c.Phone, State: string(c.State)}); err != nil {
		return nil, err
	}
	s.log.Info("whatsapp transition",
		zap.String("session", sessionID),
		zap.String("event", event),
		zap.String("from", string(from)),
		zap.String("to", string(c.State)))
	return view(c), nil
}

func (s *connSvc) Get(ctx context.Context, sessionID string) (*service.ConnView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return view(c), nil
}

func (s *connSvc) Connect(ctx context.Context, sessionID, phone string) (*service.ConnView, error) {
	return s.apply(ctx, sessionID, "connect", func(c *whatsapp.Conn) error { return c.Connect(phone) })
}

func (s *connSvc) Acknowledge(ctx context.Context, sessionID, phone string) (*service.ConnView, error) {
	return s.apply(ctx, sessionID, "ack", func(c *whatsapp.Conn) error { return c.Acknowledge(phone) })
}

func (s *connSvc) Disconnect(ctx context.Context, sessionID string) (*service.ConnView, error) {
	return s.apply(ctx, sessionID, "disconnect", func(c *whatsapp.Conn) error {
		c.Disconnect()
		return nil
	})
}
