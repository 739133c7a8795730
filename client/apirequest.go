package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

type APIRequest struct {
	// Method path relative to the service base endpoint, eg "instagram/user/get_info" (required)
	Method string

	// Optional request body (may be nil). If this is provided, then 'Content-Type' header should be specified
	Body io.Reader

	// Optional HTTP headers (field may be nil). Only the first value will be included for each header key ("Set" behavior).
	Headers http.Header
}

// Initializes a new request struct, with Headers ready to be manipulated. Body may be nil.
func NewAPIRequest(method string, body io.Reader) *APIRequest {
	return &APIRequest{
		Method:  method,
		Body:    body,
		Headers: map[string][]string{},
	}
}

// Creates an [http.Request] for this API request. Every request is a POST.
//
// `host` is the base endpoint, including scheme and a trailing slash. The method path is appended as-is, with no normalization or escaping.
func (r *APIRequest) HTTPRequest(ctx context.Context, host string) (*http.Request, error) {
	if host == "" {
		return nil, fmt.Errorf("empty host")
	}
	if r.Method == "" {
		return nil, fmt.Errorf("empty request method path")
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, host+r.Method, r.Body)
	if err != nil {
		return nil, err
	}

	if r.Headers != nil {
		for k := range r.Headers {
			httpReq.Header.Set(k, r.Headers.Get(k))
		}
	}

	return httpReq, nil
}
