package core

import (
	"errors"
	"fmt"
)

// Move rejection reasons. Use errors.Is against a returned *MoveError.
var (
	ErrOutOfBounds = errors.New("tap is out of bounds")
	ErrEmptyCell   = errors.New("cell is empty")
	ErrNoMatch     = errors.New("single cell cannot be removed")
)

// MoveError describes a rejected tap. The grid is unchanged when one is returned.
type MoveError struct {
	Row int
	Col int
	Err error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("invalid move at (%d,%d): %v", e.Row, e.Col, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Configuration error codes.
const (
	CodeInvalidColor = "INVALID_COLOR"
	CodeInvalidGoal  = "INVALID_GOAL"
)

// ConfigError reports one bad token in a level configuration.
// Construction continues past it with a safe default.
type ConfigError struct {
	Code  string
	Field string
	Token string
	Index int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s[%d]: unrecognized code %q", e.Code, e.Field, e.Index, e.Token)
}

// Validation error codes.
const (
	CodeInvalidLength  = "INVALID_LENGTH"
	CodeInvalidPalette = "INVALID_PALETTE"
	CodeLayoutSize     = "LAYOUT_SIZE"
)

// ValidationError contains details about a structural configuration fault.
// Unlike ConfigError these stop the grid from being built.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
