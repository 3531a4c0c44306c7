package serviceImp

import (
	"context"

	"go.uber.org/zap"

	"fasal/pkg/alert"
	repo "fasal/pkg/alert/repository"
	"fasal/pkg/alert/service"
)

type alertSvc struct {
	r   repo.AlertRepository
	log *zap.Logger
}

func NewAlertService(r repo.AlertRepository, log *zap.Logger) service.AlertService {
	return &alertSvc{r: r, log: log}
}

func toView(r alert.Record) service.View {
	return service.View{
		Record: r,
		Badge:  alert.SeverityBadge(r.Severity),
		Icon:   alert.VariableIcon(r.Variable),
		Bars:   alert.SparklineHeights(r.Sparkline),
	}
}

func (s *alertSvc) Search(ctx context.Context, c alert.Criteria) (*service.SearchResult, error) {
	all, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := alert.ApplyFilters(all, c)
	views := make([]service.View, 0, len(filtered))
	for _, r := range filtered {
		views = append(views, toView(r))
	}
	s.log.Debug("alert search",
		zap.String("severity", string(c.Severity)),
		zap.String("variable", string(c.Variable)),
		zap.String("range", string(c.DateRange)),
		zap.Int("matched", len(filtered)),
		zap.Int("total", len(all)),
	)
	return &service.SearchResult{
		Criteria: c,
		Alerts:   views,
		Summary:  alert.Summarize(filtered),
		Total:    len(all),
	}, nil
}

func (s *alertSvc) Get(ctx context.Context, id int) (*service.View, error) {
	r, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := toView(*r)
	return &v, nil
}
