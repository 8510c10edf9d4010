package scheduler

import "errors"

var (
	// ErrNoProgress indicates a term could not admit any course while
	// unpassed courses remain.
	ErrNoProgress = errors.New("no progress possible")

	// ErrTermLimit indicates the simulation ran past its term cap without
	// passing every course.
	ErrTermLimit = errors.New("term limit reached before completion")

	ErrInvalidConfiguration = errors.New("invalid configuration")
)
