package competition

import (
	"errors"
	"fmt"
)

var (
	ErrTeamNotFound       = errors.New("team not found")
	ErrCompetitorNotFound = errors.New("competitor not found")
	ErrDisciplineNotFound = errors.New("discipline not found")
	ErrResultNotFound     = errors.New("result not found")
	ErrTeamFull           = fmt.Errorf("team already has %d members", MaxTeamMembers)
)

// ValidationError is returned when input is rejected before any write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is one of the not-found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTeamNotFound) ||
		errors.Is(err, ErrCompetitorNotFound) ||
		errors.Is(err, ErrDisciplineNotFound) ||
		errors.Is(err, ErrResultNotFound)
}
