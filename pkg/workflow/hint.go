package workflow

import "fmt"

type ColorHint string

const (
	HintSuccess ColorHint = "success"
	HintPrimary ColorHint = "primary"
	HintMuted   ColorHint = "muted"
)

// StatusColorHint maps a step status to its presentation token.
// Status is a closed enum; any other value is a programming error.
func StatusColorHint(s Status) ColorHint {
	switch s {
	case StatusCompleted:
		return HintSuccess
	case StatusCurrent:
		return HintPrimary
	case StatusUpcoming:
		return HintMuted
	}
	panic(fmt.Sprintf("workflow: unknown status %q", string(s)))
}
