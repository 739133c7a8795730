package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	assert := assert.New(t)

	params, err := parseParams([]string{
		"username=instagram",
		"id=12345",
		"can_support_threading=false",
		`max_id="678"`,
		"query=a=b",
	})
	require.NoError(t, err)
	assert.Equal("instagram", params["username"])
	assert.Equal(int64(12345), params["id"])
	assert.Equal(false, params["can_support_threading"])
	assert.Equal("678", params["max_id"])
	assert.Equal("a=b", params["query"])

	params, err = parseParams(nil)
	require.NoError(t, err)
	assert.Empty(params)

	_, err = parseParams([]string{"novalue"})
	assert.Error(err)
}

func TestParseParamsEncodesAsJSONObject(t *testing.T) {
	params, err := parseParams([]string{"id=7", "name=x"})
	require.NoError(t, err)

	b, err := json.Marshal(params)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"x"}`, string(b))
}

func TestPrintJSON(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(printJSON(&buf, json.RawMessage(`{"a":[1,2]}`)))
	assert.Equal("{\n  \"a\": [\n    1,\n    2\n  ]\n}\n", buf.String())

	buf.Reset()
	assert.NoError(printJSON(&buf, json.RawMessage(`null`)))
	assert.Equal("null\n", buf.String())

	assert.Error(printJSON(&buf, json.RawMessage(`{`)))
}
