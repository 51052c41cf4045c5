package tests

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/echterhof/roadie/pkg"
)

// serveRouter finalizes the router, starts an httptest server around it
// and returns the server. The caller owns the shutdown.
func serveRouter(t *testing.T, router *pkg.Router) *httptest.Server {
	t.Helper()

	service, err := pkg.NewRouterService(router)
	if err != nil {
		t.Fatalf("NewRouterService returned error: %v", err)
	}

	return httptest.NewServer(service)
}

// doRequest issues one request against the test server and returns the
// status, body and headers.
func doRequest(t *testing.T, server *httptest.Server, method, path string) (int, string, http.Header) {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return resp.StatusCode, string(body), resp.Header
}

// textOK is a handler returning 200 with the given body.
func textOK(body string) pkg.RouteHandler {
	return func(_ *http.Request) (*http.Response, error) {
		return pkg.NewTextResponse(http.StatusOK, body), nil
	}
}
