package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Base endpoint of the RocketAPI service. Method paths are appended directly.
const DefaultHost = "https://v1.rocketapi.io/"

// Sends a JSON payload to a method path and returns the raw JSON response document.
//
// Implementations must not interpret the document; classification is the job of [Dispatcher]. An error means no document was received (network fault, timeout, or a body which is not JSON).
type Transport interface {
	Send(ctx context.Context, method string, payload any) (json.RawMessage, error)
}

// HTTP transport for the RocketAPI service.
type APIClient struct {
	// Inner HTTP client. May be replaced after the overall [APIClient] struct is created; if nil, [http.DefaultClient] is used.
	HTTPClient *http.Client

	// Optional auth client "middleware".
	Auth AuthMethod

	// Applies to the entire request/response cycle of each call, including reading the response body. Zero means no timeout beyond the context.
	Timeout time.Duration

	host string
}

var _ Transport = (*APIClient)(nil)

// Creates an APIClient for the RocketAPI service, authenticated with the provided token.
//
// The inner HTTP client is instrumented with OpenTelemetry tracing. Please don't use timeouts lower than 15 seconds; the service may take a while to proxy requests.
func NewAPIClient(token string, timeout time.Duration) *APIClient {
	return &APIClient{
		HTTPClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Auth:    &TokenAuth{Token: token},
		Timeout: timeout,
		host:    DefaultHost,
	}
}

// Full-featured method for API requests. Returns the HTTP response regardless of status code; the caller is responsible for closing the body.
func (c *APIClient) Do(ctx context.Context, req *APIRequest) (*http.Response, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	httpReq, err := req.HTTPRequest(ctx, c.host)
	if err != nil {
		return nil, err
	}

	var resp *http.Response
	if c.Auth != nil {
		resp, err = c.Auth.DoWithAuth(httpClient, httpReq, req.Method)
	} else {
		resp, err = httpClient.Do(httpReq)
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Performs a single JSON-to-JSON POST call to the indicated method path.
//
// Any HTTP response with a JSON body is returned as-is, including non-2xx responses. Errors are only returned when no JSON document could be obtained.
func (c *APIClient) Send(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	bodyJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request payload: %w", err)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req := NewAPIRequest(method, bytes.NewReader(bodyJSON))
	req.Headers.Set("Content-Type", "application/json")

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body (HTTP %d): %w", resp.StatusCode, err)
	}

	// the whole body must be a single JSON document; trailing data is malformed
	var ret json.RawMessage
	if err := json.Unmarshal(respBytes, &ret); err != nil {
		return nil, fmt.Errorf("decoding JSON response body (HTTP %d): %w", resp.StatusCode, err)
	}
	return ret, nil
}
