package quiz

import "errors"

var (
	ErrUnknownGameType = errors.New("unknown game type")
	// ErrEmptyReferenceSet means no usable subject was found within the
	// resample budget.
	ErrEmptyReferenceSet = errors.New("no usable reference subject")
	ErrInvalidChoice     = errors.New("choice is not one of the offered options")
)
