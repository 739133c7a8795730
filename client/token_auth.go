package client

import (
	"net/http"
)

// Interface for auth implementations which can be used with [APIClient].
type AuthMethod interface {
	// Method parameter is the method path being called, for auth methods which need to scope credentials
	DoWithAuth(c *http.Client, req *http.Request, method string) (*http.Response, error)
}

// Simple [AuthMethod] implementation for RocketAPI access tokens.
type TokenAuth struct {
	Token string
}

func (a *TokenAuth) DoWithAuth(c *http.Client, req *http.Request, method string) (*http.Response, error) {
	req.Header.Set("Authorization", "Token "+a.Token)
	return c.Do(req)
}
