// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ccurpc

import (
	"errors"
	"fmt"
)

// Kind classifies client failures. Callers branch on the kind of an
// error rather than on concrete error types.
type Kind int

const (
	// KindUnknown is the zero kind, reported for errors that did not
	// originate in this package.
	KindUnknown Kind = iota

	// KindConfiguration means the client was constructed with bad
	// input, such as a missing address. Not retryable.
	KindConfiguration

	// KindConnection means the transport could not be opened or
	// failed mid-call. The caller owns any retry policy.
	KindConnection

	// KindProtocol means the controller understood the request but
	// rejected it with a fault response.
	KindProtocol

	// KindNotFound means the requested local method name is not in
	// the catalog.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindConnection:
		return "connection"
	case KindProtocol:
		return "protocol"
	case KindNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// Error is the single error type surfaced by this package. Address is
// set for connection errors, Name for protocol and not-found errors.
type Error struct {
	Kind    Kind
	Address string
	Name    string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindConnection:
		return fmt.Sprintf("unable to open %q: %v", e.Address, e.Err)
	case KindProtocol:
		return fmt.Sprintf("server error calling %q: %v", e.Name, e.Err)
	case KindNotFound:
		return fmt.Sprintf("method %q is not a valid method", e.Name)
	case KindConfiguration:
		if e.Err != nil {
			return fmt.Sprintf("configuration: %v", e.Err)
		}
		return "configuration error"
	default:
		return fmt.Sprintf("ccurpc: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err, or KindUnknown if err is nil or was
// not produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func configErr(format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Err: fmt.Errorf(format, args...)}
}

func connErr(address string, cause error) *Error {
	return &Error{Kind: KindConnection, Address: address, Err: cause}
}

func protoErr(name string, cause error) *Error {
	return &Error{Kind: KindProtocol, Name: name, Err: cause}
}

func notFoundErr(name string) *Error {
	return &Error{Kind: KindNotFound, Name: name}
}
