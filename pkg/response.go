package pkg

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// NewResponse builds a response with the given status code, content type
// and body. An empty content type leaves the header unset.
func NewResponse(statusCode int, contentType string, body []byte) *http.Response {
	header := make(http.Header)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		StatusCode:    statusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
	}
}

// NewTextResponse builds a text/plain response.
func NewTextResponse(statusCode int, body string) *http.Response {
	return NewResponse(statusCode, "text/plain", []byte(body))
}

// NewEmptyResponse builds a response with an empty body.
func NewEmptyResponse(statusCode int) *http.Response {
	return NewResponse(statusCode, "", nil)
}

// WriteResponse serializes a handler response onto an
// http.ResponseWriter: headers first, then the status code, then the
// body. The response body is closed.
func WriteResponse(w http.ResponseWriter, resp *http.Response) error {
	for key, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}

	w.WriteHeader(resp.StatusCode)

	if resp.Body == nil {
		return nil
	}
	defer resp.Body.Close()

	_, err := io.Copy(w, resp.Body)
	return err
}

// ReadResponseBody drains and returns a response body, closing it.
func ReadResponseBody(resp *http.Response) ([]byte, error) {
	if resp.Body == nil {
		return nil, nil
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}
