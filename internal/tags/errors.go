// Package tags provides the read-only registry of skill tags.
package tags

import "fmt"

// UnknownTagError indicates a tag id that is not in the registry
type UnknownTagError struct {
	ID int
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag: %d", e.ID)
}

// LoadError represents a failure reading or parsing a tag file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tag load error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("tag load error: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
