package service

import (
	"context"
	"errors"

	"fasal/pkg/guide"
	"fasal/pkg/workflow"
)

var ErrUnknownStep = errors.New("unknown step")

type StepView struct {
	workflow.Step
	Open bool               `json:"open"`
	Hint workflow.ColorHint `json:"hint"`
}

type GuideView struct {
	ID       string                `json:"id"`
	Title    string                `json:"title"`
	Crop     string                `json:"crop"`
	Region   string                `json:"region"`
	Soil     string                `json:"soil"`
	Season   string                `json:"season"`
	Steps    []StepView            `json:"steps"`
	Open     []string              `json:"open"`
	Progress workflow.Progress     `json:"progress"`
	Calendar []guide.CalendarEntry `json:"calendar"`
}

// GuideSummary is a catalog entry without its steps.
type GuideSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Crop   string `json:"crop"`
	Region string `json:"region"`
	Soil   string `json:"soil"`
	Season string `json:"season"`
	Steps  int    `json:"steps"`
}

type GuideService interface {
	List(ctx context.Context, sel guide.Selector) ([]GuideSummary, error)
	View(ctx context.Context, sessionID string) (*GuideView, error)
	// Select switches the session to the matching guide with its default open steps.
	Select(ctx context.Context, sessionID string, sel guide.Selector) (*GuideView, error)
	Toggle(ctx context.Context, sessionID, stepID string) (*GuideView, error)
	// Reset drops the session back to the default guide.
	Reset(ctx context.Context, sessionID string) (*GuideView, error)
}
