package workflow

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func season() []Step {
	return []Step{
		{ID: "prep", Status: StatusCompleted},
		{ID: "variety", Status: StatusCurrent},
		{ID: "sowing", Status: StatusUpcoming},
		{ID: "irrigation", Status: StatusUpcoming},
		{ID: "nutrition", Status: StatusUpcoming},
		{ID: "pest", Status: StatusUpcoming},
		{ID: "harvest", Status: StatusUpcoming},
	}
}

func TestNew_DefaultOpen(t *testing.T) {
	s, err := New(season(), []string{"variety"})
	require.NoError(t, err)

	assert.Equal(t, []string{"variety"}, s.OpenIDs())
	assert.True(t, s.IsOpen("variety"))
	assert.False(t, s.IsOpen("prep"))
}

func TestNew_DropsUnknownOpenIDs(t *testing.T) {
	s, err := New(season(), []string{"variety", "ghost"})
	require.NoError(t, err)
	assert.Equal(t, []string{"variety"}, s.OpenIDs())
}

func TestToggle_Sequence(t *testing.T) {
	s, err := New(season(), []string{"variety"})
	require.NoError(t, err)

	assert.True(t, s.Toggle("variety"))
	assert.Empty(t, s.OpenIDs())

	assert.True(t, s.Toggle("prep"))
	assert.Equal(t, []string{"prep"}, s.OpenIDs())
}

func TestToggle_OpenIDsFollowStepOrder(t *testing.T) {
	s, err := New(season(), nil)
	require.NoError(t, err)

	s.Toggle("harvest")
	s.Toggle("prep")
	s.Toggle("pest")
	assert.Equal(t, []string{"prep", "pest", "harvest"}, s.OpenIDs())
}

func TestToggle_UnknownIsNoop(t *testing.T) {
	s, err := New(season(), []string{"variety"})
	require.NoError(t, err)

	assert.False(t, s.Toggle("ghost"))
	assert.Equal(t, []string{"variety"}, s.OpenIDs())
}

func TestToggle_UnknownPanicsWhenStrict(t *testing.T) {
	s, err := New(season(), nil, WithStrict(true))
	require.NoError(t, err)

	assert.Panics(t, func() { s.Toggle("ghost") })
	assert.NotPanics(t, func() { s.Toggle("prep") })
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
		ok    bool
	}{
		{"sample season", season(), true},
		{"all upcoming", []Step{{ID: "a", Status: StatusUpcoming}, {ID: "b", Status: StatusUpcoming}}, true},
		{"all completed", []Step{{ID: "a", Status: StatusCompleted}, {ID: "b", Status: StatusCompleted}}, true},
		{"empty", nil, false},
		{"empty id", []Step{{Status: StatusCurrent}}, false},
		{"duplicate id", []Step{{ID: "a", Status: StatusCompleted}, {ID: "a", Status: StatusCurrent}}, false},
		{"unknown status", []Step{{ID: "a", Status: "paused"}}, false},
		{"two current", []Step{{ID: "a", Status: StatusCurrent}, {ID: "b", Status: StatusCurrent}}, false},
		{"completed after upcoming", []Step{{ID: "a", Status: StatusUpcoming}, {ID: "b", Status: StatusCompleted}}, false},
		{"completed after current", []Step{{ID: "a", Status: StatusCurrent}, {ID: "b", Status: StatusCompleted}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.steps)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidSteps)
		})
	}
}

func TestNew_RejectsInvalidSteps(t *testing.T) {
	_, err := New([]Step{{ID: "a", Status: StatusCurrent}, {ID: "b", Status: StatusCurrent}}, nil)
	assert.ErrorIs(t, err, ErrInvalidSteps)
}

func TestProgress(t *testing.T) {
	s, err := New(season(), nil)
	require.NoError(t, err)

	assert.Equal(t, Progress{Position: 2, Total: 7, Percent: 28, Current: "variety", Next: "sowing"}, s.Progress())

	done, err := New([]Step{{ID: "a", Status: StatusCompleted}, {ID: "b", Status: StatusCompleted}}, nil)
	require.NoError(t, err)
	assert.Equal(t, Progress{Position: 2, Total: 2, Percent: 100}, done.Progress())

	fresh, err := New([]Step{{ID: "a", Status: StatusUpcoming}, {ID: "b", Status: StatusUpcoming}}, nil)
	require.NoError(t, err)
	assert.Equal(t, Progress{Position: 0, Total: 2, Percent: 0, Next: "a"}, fresh.Progress())
}

func TestStatusColorHint(t *testing.T) {
	assert.Equal(t, HintSuccess, StatusColorHint(StatusCompleted))
	assert.Equal(t, HintPrimary, StatusColorHint(StatusCurrent))
	assert.Equal(t, HintMuted, StatusColorHint(StatusUpcoming))
	assert.Panics(t, func() { StatusColorHint("paused") })
}

func TestStepsReturnsCopy(t *testing.T) {
	s, err := New(season(), nil)
	require.NoError(t, err)

	steps := s.Steps()
	steps[0].ID = "mutated"
	assert.True(t, s.Has("prep"))
	assert.False(t, s.Has("mutated"))
}

func TestStepsDoesNotShareTasks(t *testing.T) {
	in := season()
	in[0].Tasks = []string{"soil test", "plough"}
	s, err := New(in, nil)
	require.NoError(t, err)

	in[0].Tasks[0] = "changed by caller"
	steps := s.Steps()
	assert.Equal(t, []string{"soil test", "plough"}, steps[0].Tasks)

	steps[0].Tasks[1] = "changed by reader"
	assert.Equal(t, []string{"soil test", "plough"}, s.Steps()[0].Tasks)
}

func TestToggleProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	ids := []string{"prep", "variety", "sowing", "irrigation", "nutrition", "pest", "harvest", "ghost"}

	properties.Property("double toggle restores IsOpen", prop.ForAll(
		func(history []int, target int) bool {
			s, err := New(season(), []string{"variety"})
			if err != nil {
				return false
			}
			for _, i := range history {
				s.Toggle(ids[i])
			}
			before := s.IsOpen(ids[target])
			s.Toggle(ids[target])
			s.Toggle(ids[target])
			return s.IsOpen(ids[target]) == before
		},
		gen.SliceOf(gen.IntRange(0, len(ids)-1)),
		gen.IntRange(0, len(ids)-1),
	))

	properties.Property("open set stays within step ids", prop.ForAll(
		func(history []int) bool {
			s, err := New(season(), nil)
			if err != nil {
				return false
			}
			for _, i := range history {
				s.Toggle(ids[i])
			}
			for _, id := range s.OpenIDs() {
				if !s.Has(id) {
					return false
				}
			}
			return !s.IsOpen("ghost")
		},
		gen.SliceOf(gen.IntRange(0, len(ids)-1)),
	))

	properties.TestingRun(t)
}
