package instagram

import (
	"time"

	"github.com/rocketapi-io/rocketapi-go/client"
)

// Method path prefix for all Instagram endpoints.
const Namespace = "instagram/"

// Page size sent when the caller passes a count of zero or less.
const DefaultCount = 12

// Instagram API client.
//
// The embedded [client.Dispatcher] provides LastResponse() and Counter() for debugging, and Dispatch() for endpoints without a dedicated method.
type Client struct {
	*client.Dispatcher
}

// Creates a client authenticated with a RocketAPI token. Please don't use timeouts lower than 15 seconds.
func NewClient(token string, timeout time.Duration) *Client {
	return NewClientWithTransport(client.NewAPIClient(token, timeout))
}

// Creates a client on top of an existing transport, eg one shared with a threads client.
func NewClientWithTransport(t client.Transport) *Client {
	return &Client{
		Dispatcher: client.NewDispatcher(t, Namespace),
	}
}

// Zero means "not specified" for count arguments, so an explicit 0 is sent as DefaultCount.
func countOrDefault(count int) int {
	if count <= 0 {
		return DefaultCount
	}
	return count
}
