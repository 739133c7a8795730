package client

import (
	"errors"
	"fmt"
)

// Category of a failed dispatch. Exactly one kind is reported per call.
type ErrorKind int

const (
	// The request never produced an interpretable envelope (network fault, timeout, malformed JSON)
	KindTransport ErrorKind = iota + 1
	// The service reported an upstream 404 inside a "done" envelope
	KindNotFound
	// Any other envelope which does not carry a payload
	KindBadResponse
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport error"
	case KindNotFound:
		return "not found"
	case KindBadResponse:
		return "bad response"
	default:
		return "unknown error"
	}
}

var (
	ErrTransport   = errors.New("transport error")
	ErrNotFound    = errors.New("not found")
	ErrBadResponse = errors.New("bad response")
)

type APIError struct {
	Kind ErrorKind

	// Method path which was called
	Method string

	// Full response envelope. Set for KindNotFound and KindBadResponse.
	Envelope *Envelope

	// Underlying transport failure. Set for KindTransport.
	Err error
}

func (ae *APIError) Error() string {
	switch ae.Kind {
	case KindTransport:
		return fmt.Sprintf("API request failed (%s): %s: %s", ae.Method, ae.Kind, ae.Err)
	case KindNotFound, KindBadResponse:
		if ae.Envelope != nil && ae.Envelope.Status != StatusDone {
			return fmt.Sprintf("API request failed (%s): %s (status %q)", ae.Method, ae.Kind, ae.Envelope.Status)
		}
		if ae.Envelope != nil && ae.Envelope.Response.StatusCode > 0 {
			return fmt.Sprintf("API request failed (%s): %s (HTTP %d)", ae.Method, ae.Kind, ae.Envelope.Response.StatusCode)
		}
		return fmt.Sprintf("API request failed (%s): %s", ae.Method, ae.Kind)
	}
	return "API request failed"
}

func (ae *APIError) Unwrap() error {
	return ae.Err
}

// Matches the sentinel error for this kind ([ErrTransport], [ErrNotFound], [ErrBadResponse]).
func (ae *APIError) Is(target error) bool {
	switch ae.Kind {
	case KindTransport:
		return target == ErrTransport
	case KindNotFound:
		return target == ErrNotFound
	case KindBadResponse:
		return target == ErrBadResponse
	}
	return false
}
