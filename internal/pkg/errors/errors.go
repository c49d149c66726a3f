package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrElaborationRenamed signals an attempt to rename an elaboration
	// that already has lots issued against it.
	ErrElaborationRenamed = errors.New("elaboration name is frozen once lots reference it")
)

// CompositionError reports the composition entry that aborted a lot creation.
type CompositionError struct {
	Index        int
	IngredientID uint
}

func (e *CompositionError) Error() string {
	if e.IngredientID == 0 {
		return fmt.Sprintf("composition entry %d: missing ingredient reference", e.Index)
	}
	return fmt.Sprintf("composition entry %d: unknown ingredient %d", e.Index, e.IngredientID)
}

func (e *CompositionError) Unwrap() error { return ErrInvalidArgument }
