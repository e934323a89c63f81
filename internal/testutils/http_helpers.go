package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/deckgen-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer starts an httptest server for handler and closes it on cleanup.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// CleanupResponseBody closes the response body when the test ends.
func CleanupResponseBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if resp != nil && resp.Body != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Warning: failed to close response body: %v", err)
			}
		})
	}
}

// ExecuteJSONRequest sends body as a JSON request to server and registers
// cleanup for the response body. An empty body sends no payload.
func ExecuteJSONRequest(
	t *testing.T,
	server *httptest.Server,
	method, path, body string,
) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err, "Failed to create request")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	CleanupResponseBody(t, resp)
	return resp
}

// DecodeResponse asserts the status code and decodes the JSON body into T.
func DecodeResponse[T any](t *testing.T, resp *http.Response, expectedStatus int) T {
	t.Helper()

	var out T
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	require.Equal(t, expectedStatus, resp.StatusCode, "unexpected status, body: %s", string(body))
	require.NoError(t, json.Unmarshal(body, &out), "Failed to unmarshal response: %s", string(body))
	return out
}

// AssertErrorResponse checks the status code and that the error message
// contains expectedErrorMsgPart. It returns the decoded body.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedErrorMsgPart string,
) shared.ErrorResponse {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	assert.Equal(t, expectedStatus, resp.StatusCode, "body: %s", string(body))

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "Failed to unmarshal error response: %s", string(body))
	assert.Contains(t, errResp.Error, expectedErrorMsgPart)
	assert.NotEmpty(t, errResp.TraceID, "error responses carry a trace id")
	return errResp
}
