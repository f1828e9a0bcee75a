// Package upstream classifies failures of the remote data sources the dashboard
// depends on. The dashboard presents every failure as an empty list, the kinds
// exist so logs and tests can still tell them apart.
package upstream

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindNetwork means the request never produced a response (refused, reset, timed out).
	KindNetwork Kind = iota + 1
	// KindStatus means the upstream answered with a non-success HTTP status.
	KindStatus
	// KindParse means the response body could not be understood.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindParse:
		return "parse"
	}
	return "unknown"
}

type Error struct {
	// Source names the upstream, ex. "list_product" or "area_table".
	Source string
	Kind   Kind
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s failure: %s", e.Source, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Network(source string, err error) *Error {
	return &Error{Source: source, Kind: KindNetwork, Err: err}
}

func Status(source string, code int, status string) *Error {
	return &Error{Source: source, Kind: KindStatus, Err: fmt.Errorf("unexpected status %d (%s)", code, status)}
}

func Parse(source string, err error) *Error {
	return &Error{Source: source, Kind: KindParse, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or 0 when there is none.
func KindOf(err error) Kind {
	var uerr *Error
	if errors.As(err, &uerr) {
		return uerr.Kind
	}
	return 0
}
