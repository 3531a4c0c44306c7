package alert

import (
	"errors"
	"fmt"
	"time"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

type Variable string

const (
	VariableSoil     Variable = "soil"
	VariableNDVI     Variable = "ndvi"
	VariableTemp     Variable = "temp"
	VariableRainfall Variable = "rainfall"
)

func (v Variable) Valid() bool {
	switch v {
	case VariableSoil, VariableNDVI, VariableTemp, VariableRainfall:
		return true
	}
	return false
}

// All is the wildcard accepted by the severity and variable filters.
const All = "all"

type SeverityFilter string

type VariableFilter string

type DateRange string

const (
	Range1d  DateRange = "1d"
	Range7d  DateRange = "7d"
	Range30d DateRange = "30d"
	Range90d DateRange = "90d"
)

func (d DateRange) Valid() bool {
	switch d {
	case Range1d, Range7d, Range30d, Range90d:
		return true
	}
	return false
}

// Record is one alert as served to the dashboard. BBox is
// (min-lon, min-lat, max-lon, max-lat).
type Record struct {
	ID        int        `json:"id"`
	Severity  Severity   `json:"severity"`
	Variable  Variable   `json:"variable"`
	Title     string     `json:"title"`
	Summary   string     `json:"summary"`
	Region    string     `json:"region"`
	Timestamp time.Time  `json:"timestamp"`
	Sparkline []float64  `json:"sparkline"`
	BBox      [4]float64 `json:"bbox"`
}

var ErrInvalidRecord = errors.New("invalid alert record")

// Validate checks the closed enums that the filter, summary and hint
// functions rely on.
func (r Record) Validate() error {
	if !r.Severity.Valid() {
		return fmt.Errorf("%w: alert %d has severity %q", ErrInvalidRecord, r.ID, r.Severity)
	}
	if !r.Variable.Valid() {
		return fmt.Errorf("%w: alert %d has variable %q", ErrInvalidRecord, r.ID, r.Variable)
	}
	return nil
}

type Criteria struct {
	Severity  SeverityFilter `json:"severity"`
	Variable  VariableFilter `json:"variable"`
	DateRange DateRange      `json:"dateRange"`
}

func DefaultCriteria() Criteria {
	return Criteria{Severity: All, Variable: All, DateRange: Range7d}
}

var ErrInvalidCriteria = errors.New("invalid filter criteria")

// ParseCriteria reads criteria from external input. Empty values take the
// defaults; anything outside the enums is rejected.
func ParseCriteria(severity, variable, dateRange string) (Criteria, error) {
	c := DefaultCriteria()
	if severity != "" {
		if severity != All && !Severity(severity).Valid() {
			return c, fmt.Errorf("%w: severity %q", ErrInvalidCriteria, severity)
		}
		c.Severity = SeverityFilter(severity)
	}
	if variable != "" {
		if variable != All && !Variable(variable).Valid() {
			return c, fmt.Errorf("%w: variable %q", ErrInvalidCriteria, variable)
		}
		c.Variable = VariableFilter(variable)
	}
	if dateRange != "" {
		if !DateRange(dateRange).Valid() {
			return c, fmt.Errorf("%w: date range %q", ErrInvalidCriteria, dateRange)
		}
		c.DateRange = DateRange(dateRange)
	}
	return c, nil
}
