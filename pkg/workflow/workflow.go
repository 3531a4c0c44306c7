package workflow

import (
	"errors"
	"fmt"
	"slices"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusCurrent   Status = "current"
	StatusUpcoming  Status = "upcoming"
)

// rank orders statuses along a season: completed < current < upcoming.
func (s Status) rank() (int, bool) {
	switch s {
	case StatusCompleted:
		return 0, true
	case StatusCurrent:
		return 1, true
	case StatusUpcoming:
		return 2, true
	}
	return 0, false
}

func (s Status) Valid() bool {
	_, ok := s.rank()
	return ok
}

type Step struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Duration    string   `json:"duration" yaml:"duration"`
	Tasks       []string `json:"tasks" yaml:"tasks"`
	Status      Status   `json:"status" yaml:"status"`
}

var ErrInvalidSteps = errors.New("invalid step sequence")

// Validate rejects sequences that break the season ordering
// (completed* current? upcoming*) or reuse an id.
func Validate(steps []Step) error {
	if len(steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidSteps)
	}
	seen := make(map[string]struct{}, len(steps))
	prev, current := 0, 0
	for i, st := range steps {
		if st.ID == "" {
			return fmt.Errorf("%w: step %d has empty id", ErrInvalidSteps, i)
		}
		if _, dup := seen[st.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidSteps, st.ID)
		}
		seen[st.ID] = struct{}{}

		r, ok := st.Status.rank()
		if !ok {
			return fmt.Errorf("%w: step %q has unknown status %q", ErrInvalidSteps, st.ID, st.Status)
		}
		if r < prev {
			return fmt.Errorf("%w: step %q is %s after a later stage", ErrInvalidSteps, st.ID, st.Status)
		}
		if st.Status == StatusCurrent {
			current++
			if current > 1 {
				return fmt.Errorf("%w: more than one current step", ErrInvalidSteps)
			}
		}
		prev = r
	}
	return nil
}

// State is the disclosure state of one guide view. Steps are fixed at
// construction; only Toggle mutates the open set.
type State struct {
	steps  []Step
	index  map[string]int
	open   map[string]struct{}
	strict bool
}

type Option func(*State)

// WithStrict makes contract violations (unknown step ids) panic instead of
// being ignored. Intended for development builds.
func WithStrict(strict bool) Option {
	return func(s *State) { s.strict = strict }
}

func New(steps []Step, open []string, opts ...Option) (*State, error) {
	if err := Validate(steps); err != nil {
		return nil, err
	}
	s := &State{
		steps: cloneSteps(steps),
		index: make(map[string]int, len(steps)),
		open:  make(map[string]struct{}, len(open)),
	}
	for _, o := range opts {
		o(s)
	}
	for i, st := range s.steps {
		s.index[st.ID] = i
	}
	for _, id := range open {
		if _, ok := s.index[id]; ok {
			s.open[id] = struct{}{}
		}
	}
	return s, nil
}

func cloneSteps(steps []Step) []Step {
	out := make([]Step, len(steps))
	for i, st := range steps {
		st.Tasks = slices.Clone(st.Tasks)
		out[i] = st
	}
	return out
}

// Steps returns a copy of the step list; callers may modify it freely.
func (s *State) Steps() []Step { return cloneSteps(s.steps) }

func (s *State) Has(stepID string) bool {
	_, ok := s.index[stepID]
	return ok
}

// Toggle flips stepID between open and closed and reports whether the id
// belongs to this workflow.
func (s *State) Toggle(stepID string) bool {
	if !s.Has(stepID) {
		if s.strict {
			panic(fmt.Sprintf("workflow: toggle of unknown step %q", stepID))
		}
		return false
	}
	if _, ok := s.open[stepID]; ok {
		delete(s.open, stepID)
	} else {
		s.open[stepID] = struct{}{}
	}
	return true
}

func (s *State) IsOpen(stepID string) bool {
	_, ok := s.open[stepID]
	return ok
}

// OpenIDs returns the open step ids in step order.
func (s *State) OpenIDs() []string {
	out := make([]string, 0, len(s.open))
	for _, st := range s.steps {
		if _, ok := s.open[st.ID]; ok {
			out = append(out, st.ID)
		}
	}
	return out
}

type Progress struct {
	Position int    `json:"position"`
	Total    int    `json:"total"`
	Percent  int    `json:"percent"`
	Current  string `json:"current,omitempty"`
	Next     string `json:"next,omitempty"`
}

// Progress locates the current step. Without one, the position counts the
// completed steps, so a finished season reports 100%.
func (s *State) Progress() Progress {
	p := Progress{Total: len(s.steps)}
	cur := -1
	for i, st := range s.steps {
		switch st.Status {
		case StatusCompleted:
			p.Position = i + 1
		case StatusCurrent:
			cur = i
		}
	}
	if cur >= 0 {
		p.Position = cur + 1
		p.Current = s.steps[cur].ID
	}
	if p.Position < len(s.steps) {
		p.Next = s.steps[p.Position].ID
	}
	p.Percent = p.Position * 100 / p.Total
	return p
}
