package alert

import "fmt"

// ApplyFilters keeps the records matching the severity and variable criteria,
// in their original order.
//
// TODO: apply c.DateRange to Timestamp once product confirms whether the
// window is relative to now or to the newest alert.
func ApplyFilters(records []Record, c Criteria) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if c.Severity != All && string(r.Severity) != string(c.Severity) {
			continue
		}
		if c.Variable != All && string(r.Variable) != string(c.Variable) {
			continue
		}
		out = append(out, r)
	}
	return out
}

type Summary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

func (s Summary) Total() int { return s.High + s.Medium + s.Low }

func Summarize(records []Record) Summary {
	var s Summary
	for _, r := range records {
		switch r.Severity {
		case SeverityHigh:
			s.High++
		case SeverityMedium:
			s.Medium++
		case SeverityLow:
			s.Low++
		default:
			panic(fmt.Sprintf("alert: record %d has unknown severity %q", r.ID, string(r.Severity)))
		}
	}
	return s
}

// SeverityBadge returns the badge token used for a severity.
func SeverityBadge(s Severity) string {
	switch s {
	case SeverityHigh:
		return "destructive"
	case SeverityMedium:
		return "outline"
	case SeverityLow:
		return "secondary"
	}
	panic(fmt.Sprintf("alert: unknown severity %q", string(s)))
}

// VariableIcon returns the icon token used for a variable.
func VariableIcon(v Variable) string {
	switch v {
	case VariableSoil, VariableRainfall:
		return "droplets"
	case VariableNDVI:
		return "trending-down"
	case VariableTemp:
		return "thermometer"
	}
	panic(fmt.Sprintf("alert: unknown variable %q", string(v)))
}
