package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Header.Get("Authorization") == "Token secret" {
		fmt.Fprintln(w, `{"status":"done","response":{"status_code":200,"content_type":"application/json","body":{"ok":true}}}`)
		return
	}
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintln(w, `{"detail":"Invalid token."}`)
}

func TestTokenAuth(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(tokenHandler))
	defer srv.Close()

	{
		c := NewAPIClient("wrong", time.Second)
		c.host = srv.URL + "/"
		_, err := NewDispatcher(c, "").Dispatch(ctx, "instagram/search", map[string]any{"query": "x"})
		// the HTTP 401 still carries a JSON document, so this is an envelope failure, not a transport one
		assert.ErrorIs(err, ErrBadResponse)
	}

	{
		c := NewAPIClient("secret", time.Second)
		c.host = srv.URL + "/"
		out, err := NewDispatcher(c, "").Dispatch(ctx, "instagram/search", map[string]any{"query": "x"})
		require.NoError(t, err)
		assert.JSONEq(`{"ok":true}`, string(out))
	}
}
