package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)
	return rec
}

func TestHTTP_Liveness(t *testing.T) {
	for _, path := range []string{"/", "/health"} {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(t, http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "ok", body["status"])
			assert.Equal(t, serverName, body["server"])
			assert.Equal(t, serverVersion, body["version"])
		})
	}
}

func TestHTTP_CORSHeaders(t *testing.T) {
	paths := []string{"/", "/health", "/mcp/tools", "/mcp/stream"}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(t, http.MethodGet, path, "")
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestHTTP_CORSPreflight(t *testing.T) {
	rec := doRequest(t, http.MethodOptions, "/mcp/stream", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestHTTP_ToolListing(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/mcp/tools", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tools []Tool `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Tools, 2)
	assert.Equal(t, "generate_chart", body.Tools[0].Name)
	assert.Equal(t, "download_chart", body.Tools[1].Name)
}

func TestHTTP_StreamSessionDescriptor(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/mcp/stream", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["sessionId"])
	assert.Equal(t, "/mcp/stream", body["endpoint"])
}

func TestHTTP_StreamEnvelopeExchange(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/mcp/stream",
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"generate_chart","arguments":{"type":"wordcloud","text":"hello world"}}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MCPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)

	result := resp.Result.(map[string]any)
	content := result["content"].([]any)
	text := content[0].(map[string]any)["text"].(string)
	assert.Contains(t, text, "text=hello+world")
}

func TestHTTP_StreamInvalidParams(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/mcp/stream",
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"generate_chart","arguments":{"type":"bogus"}}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MCPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32602, resp.Error.Code)
}

func TestHTTP_StreamParseError(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/mcp/stream", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp MCPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32700, resp.Error.Code)
}

func TestHTTP_StreamNotification(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/mcp/stream",
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHTTP_UnknownRoute(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
