package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tile-blast/internal/games/blast/core"
)

var (
	ErrMissingID       = errors.New("level has no id")
	ErrNoGoals         = errors.New("level has no goals and can never be won")
	ErrNegativeMoves   = errors.New("move limit must not be negative")
	ErrNonPositiveGoal = errors.New("goal amount should be positive")
)

// Warning marks a validation issue that does not stop a level from being played.
type Warning struct {
	Err error
}

func (w Warning) Error() string { return "warning: " + w.Err.Error() }
func (w Warning) Unwrap() error { return w.Err }

// Validate checks a level with the rules the core applies when it starts.
//
// Unknown color and goal codes are returned as warnings wrapping a
// *core.ConfigError: the core degrades them to empty cells and skipped goals.
func Validate(l Level) []error {
	var errs []error

	if l.ID == "" {
		errs = append(errs, ErrMissingID)
	}
	if err := l.Spec.Validate(); err != nil {
		errs = append(errs, err)
	} else if !l.Spec.Random {
		for i, code := range l.Spec.Layout {
			if _, ok := core.ParseColor(code); !ok {
				errs = append(errs, Warning{&core.ConfigError{
					Code:  core.CodeInvalidColor,
					Field: "starting_grid",
					Token: code,
					Index: i,
				}})
			}
		}
	}

	if l.MoveLimit < 0 {
		errs = append(errs, ErrNegativeMoves)
	}

	valid := 0
	for i, g := range l.Goals {
		if _, ok := core.ParseGoalType(g.Type); !ok {
			errs = append(errs, Warning{&core.ConfigError{
				Code:  core.CodeInvalidGoal,
				Field: "goals",
				Token: g.Type,
				Index: i,
			}})
			continue
		}
		valid++
		if g.Amount <= 0 {
			errs = append(errs, Warning{fmt.Errorf("goals[%d]: %w", i, ErrNonPositiveGoal)})
		}
	}
	if valid == 0 {
		errs = append(errs, Warning{ErrNoGoals})
	}

	return errs
}

// HasFatal returns true if any error is not a Warning.
func HasFatal(errs []error) bool {
	for _, err := range errs {
		var w Warning
		if !errors.As(err, &w) {
			return true
		}
	}
	return false
}
