package client

import (
	"encoding/json"
)

const (
	// Outer envelope status indicating the service finished proxying the request.
	StatusDone = "done"

	// Inner content type required for a successful payload.
	ContentTypeJSON = "application/json"
)

// Provider response wrapper. The outer Status reports delivery; the inner Response carries the upstream status and body.
//
// Only a "done" envelope with an inner 200 status and JSON content type carries a usable payload.
type Envelope struct {
	Status   string
	Response EnvelopeResponse

	// Raw document the envelope was parsed from
	Raw json.RawMessage
}

type EnvelopeResponse struct {
	StatusCode  int
	ContentType string

	// nil if the field was absent
	Body json.RawMessage
}

// Parses a raw response document in to an [Envelope]. Never fails: missing fields, or fields of the wrong JSON type, are left at their zero value.
func ParseEnvelope(raw json.RawMessage) *Envelope {
	env := Envelope{Raw: raw}

	var outer map[string]json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil {
		return &env
	}
	decodeField(outer, "status", &env.Status)

	var inner map[string]json.RawMessage
	if v, ok := outer["response"]; ok {
		if err := json.Unmarshal(v, &inner); err != nil {
			return &env
		}
	}
	decodeField(inner, "status_code", &env.Response.StatusCode)
	decodeField(inner, "content_type", &env.Response.ContentType)
	if b, ok := inner["body"]; ok {
		env.Response.Body = b
	}
	return &env
}

// decodes a single field, leaving the destination untouched if missing or mistyped
func decodeField[T any](obj map[string]json.RawMessage, key string, dest *T) {
	v, ok := obj[key]
	if !ok {
		return
	}
	var val T
	if err := json.Unmarshal(v, &val); err != nil {
		return
	}
	*dest = val
}

// Whether this envelope carries a usable payload.
func (e *Envelope) IsSuccess() bool {
	return e.Status == StatusDone && e.Response.StatusCode == 200 && e.Response.ContentType == ContentTypeJSON
}

// Whether the service explicitly reported the upstream resource as missing.
func (e *Envelope) IsNotFound() bool {
	return e.Status == StatusDone && e.Response.StatusCode == 404
}
