package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"fasal/entities"
	"fasal/pkg/guide"
	repo "fasal/pkg/guide/repository"
	"fasal/pkg/guide/service"
	"fasal/pkg/workflow"
)

// GuideSvc serves a guide catalog to many sessions. Each session's guide and
// open set are loaded, mutated through workflow.State and written back under mu.
type GuideSvc struct {
	cat    *guide.Catalog
	r      repo.SessionRepository
	log    *zap.Logger
	strict bool
	mu     sync.Mutex
}

func NewGuideService(cat *guide.Catalog, r repo.SessionRepository, log *zap.Logger, strict bool) *GuideSvc {
	return &GuideSvc{cat: cat, r: r, log: log, strict: strict}
}

var _ service.GuideService = (*GuideSvc)(nil)

func (s *GuideSvc) load(ctx context.Context, sessionID string) (*guide.Guide, *workflow.State, error) {
	row, err := s.r.Find(ctx, sessionID)
	if errors.Is(err, repo.ErrNotFound) {
		g := s.cat.Default()
		st, err := g.NewState(s.strict)
		return g, st, err
	}
	if err != nil {
		return nil, nil, err
	}
	g, ok := s.cat.Get(row.GuideID)
	if !ok {
		g = s.cat.Default()
		s.log.Info("unknown guide, resetting session",
			zap.String("session", sessionID),
			zap.String("from", row.GuideID),
			zap.String("to", g.ID))
		st, err := g.NewState(s.strict)
		return g, st, err
	}
	st, err := g.RestoreState(row.OpenSteps, s.strict)
	return g, st, err
}

func (s *GuideSvc) save(ctx context.Context, sessionID string, g *guide.Guide, st *workflow.State) error {
	return s.r.Save(ctx, &entities.GuideSession{
		SessionID: sessionID,
		GuideID:   g.ID,
		OpenSteps: st.OpenIDs(),
	})
}

func (s *GuideSvc) List(_ context.Context, sel guide.Selector) ([]service.GuideSummary, error) {
	found := s.cat.Filter(sel)
	out := make([]service.GuideSummary, 0, len(found))
	for _, g := range found {
		out = append(out, service.GuideSummary{
			ID:     g.ID,
			Title:  g.Title,
			Crop:   g.Crop,
			Region: g.Region,
			Soil:   g.Soil,
			Season: g.Season,
			Steps:  len(g.Steps),
		})
	}
	return out, nil
}

func (s *GuideSvc) View(ctx context.Context, sessionID string) (*service.GuideView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, st, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return render(g, st), nil
}

func (s *GuideSvc) Select(ctx context.Context, sessionID string, sel guide.Selector) (*service.GuideView, error) {
	g, err := s.cat.Match(sel)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := g.NewState(s.strict)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, sessionID, g, st); err != nil {
		return nil, err
	}
	s.log.Debug("guide selected", zap.String("session", sessionID), zap.String("guide", g.ID))
	return render(g, st), nil
}

func (s *GuideSvc) Toggle(ctx context.Context, sessionID, stepID string) (*service.GuideView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, st, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// Unknown ids come from the network here, so they are rejected before
	// they reach the state (where strict mode would panic).
	if !st.Has(stepID) {
		return nil, fmt.Errorf("%w: %q", service.ErrUnknownStep, stepID)
	}
	st.Toggle(stepID)
	if err := s.save(ctx, sessionID, g, st); err != nil {
		return nil, err
	}
	s.log.Debug("step toggled",
		zap.String("session", sessionID),
		zap.String("guide", g.ID),
		zap.String("step", stepID),
		zap.Bool("open", st.IsOpen(stepID)))
	return render(g, st), nil
}

func (s *GuideSvc) Reset(ctx context.Context, sessionID string) (*service.GuideView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.r.Delete(ctx, sessionID); err != nil {
		return nil, err
	}
	g := s.cat.Default()
	st, err := g.NewState(s.strict)
	if err != nil {
		return nil, err
	}
	return render(g, st), nil
}

func render(g *guide.Guide, st *workflow.State) *service.GuideView {
	steps := st.Steps()
	views := make([]service.StepView, 0, len(steps))
	for _, step := range steps {
		views = append(views, service.StepView{
			Step: step,
			Open: st.IsOpen(step.ID),
			Hint: workflow.StatusColorHint(step.Status),
		})
	}
	return &service.GuideView{
		ID:       g.ID,
		Title:    g.Title,
		Crop:     g.Crop,
		Region:   g.Region,
		Soil:     g.Soil,
		Season:   g.Season,
		Steps:    views,
		Open:     st.OpenIDs(),
		Progress: st.Progress(),
		Calendar: g.Calendar,
	}
}
