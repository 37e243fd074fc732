package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// TeamNotFoundError reports an unknown team id together with close matches
// from the directory.
type TeamNotFoundError struct {
	TeamID      string
	Suggestions []string
}

func (e *TeamNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%s: team=%s", ErrNotFound, e.TeamID)
	}
	return fmt.Sprintf("%s: team=%s (did you mean %s?)", ErrNotFound, e.TeamID, strings.Join(e.Suggestions, ", "))
}

func (e *TeamNotFoundError) Unwrap() error {
	return ErrNotFound
}
