package dashboard

import (
	"errors"
	"fmt"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

var ErrInvalidTransition = errors.New("invalid transition")

// Source is the state of one data source of the dashboard.
//
//	idle -> loading -> loaded | failed
//	loaded | failed -> loading       (refreshable sources only)
//
// Pending counts loads that have begun but not completed. A completion always
// applies, so when refreshes overlap the response that resolves last wins and
// the first completion already clears the loading flag.
type Source[E any] struct {
	Status  Status
	Value   []E
	Err     error
	Pending int
}

// Loading reports whether the source is waiting on a load.
func (s Source[E]) Loading() bool {
	return s.Status == StatusLoading
}

// Items returns the loaded value, or an empty list for every other state.
func (s Source[E]) Items() []E {
	if s.Status != StatusLoaded || s.Value == nil {
		return []E{}
	}
	return s.Value
}

// Phase is the externally visible state: idle, loading, populated, empty or failed.
func (s Source[E]) Phase() string {
	switch s.Status {
	case StatusLoaded:
		if len(s.Value) == 0 {
			return "empty"
		}
		return "populated"
	case StatusFailed:
		return "failed"
	}
	return s.Status.String()
}

func (s Source[E]) begin(refreshable bool) (Source[E], error) {
	switch s.Status {
	case StatusIdle:
	case StatusLoading, StatusLoaded, StatusFailed:
		if !refreshable {
			return s, fmt.Errorf("%w: %s -> loading on a source that cannot refresh", ErrInvalidTransition, s.Status)
		}
	}
	return Source[E]{
		Status:  StatusLoading,
		Value:   s.Value,
		Err:     s.Err,
		Pending: s.Pending + 1,
	}, nil
}

func (s Source[E]) resolve(value []E) (Source[E], error) {
	if s.Pending <= 0 {
		return s, fmt.Errorf("%w: resolve without a pending load", ErrInvalidTransition)
	}
	if value == nil {
		value = []E{}
	}
	return Source[E]{
		Status:  StatusLoaded,
		Value:   value,
		Pending: s.Pending - 1,
	}, nil
}

func (s Source[E]) fail(err error) (Source[E], error) {
	if s.Pending <= 0 {
		return s, fmt.Errorf("%w: fail without a pending load", ErrInvalidTransition)
	}
	return Source[E]{
		Status:  StatusFailed,
		Err:     err,
		Pending: s.Pending - 1,
	}, nil
}
