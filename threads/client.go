package threads

import (
	"time"

	"github.com/rocketapi-io/rocketapi-go/client"
)

const Namespace = "threads/"

// Threads API client. The embedded [client.Dispatcher] carries LastResponse() and Counter() for debugging.
type Client struct {
	*client.Dispatcher
}

func NewClient(token string, timeout time.Duration) *Client {
	return NewClientWithTransport(client.NewAPIClient(token, timeout))
}

func NewClientWithTransport(t client.Transport) *Client {
	return &Client{
		Dispatcher: client.NewDispatcher(t, Namespace),
	}
}
