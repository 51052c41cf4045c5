package pkg

import (
	"fmt"
	"net/http"
	"net/url"
)

// RequestInfo is an immutable snapshot of an incoming request's headers,
// method, URI and protocol version, taken at pipeline entry. It keeps
// handles to the request's scoped data maps and to its still-mutable
// RequestContext so post-middleware and error handlers can read context
// mutations performed earlier in the pipeline.
//
// It is materialized only when the router carries an info-taking post
// middleware or an info-taking error handler; otherwise it is never
// constructed.
type RequestInfo struct {
	inner          *requestInfoInner
	sharedDataMaps []SharedDataMap
	context        *RequestContext
}

type requestInfoInner struct {
	headers http.Header
	method  string
	url     *url.URL
	proto   string
}

// newRequestInfo snapshots the request and binds the given context handle.
func newRequestInfo(r *http.Request, ctx *RequestContext) RequestInfo {
	u := *r.URL
	return RequestInfo{
		inner: &requestInfoInner{
			headers: r.Header.Clone(),
			method:  r.Method,
			url:     &u,
			proto:   r.Proto,
		},
		context: ctx,
	}
}

// Headers returns the snapshotted request headers.
func (info RequestInfo) Headers() http.Header {
	return info.inner.headers
}

// Method returns the snapshotted request method.
func (info RequestInfo) Method() string {
	return info.inner.method
}

// URL returns the snapshotted request URL.
func (info RequestInfo) URL() *url.URL {
	return info.inner.url
}

// Proto returns the snapshotted HTTP protocol version, e.g. "HTTP/1.1".
func (info RequestInfo) Proto() string {
	return info.inner.proto
}

// Context returns the request's mutable context handle.
func (info RequestInfo) Context() *RequestContext {
	return info.context
}

func (info RequestInfo) String() string {
	return fmt.Sprintf("{ method: %s, url: %s, proto: %s }", info.inner.method, info.inner.url, info.inner.proto)
}

// InfoData scans the snapshot's scoped data maps in registration order and
// returns the first value of type T found.
func InfoData[T any](info RequestInfo) (T, bool) {
	for _, sdm := range info.sharedDataMaps {
		if val, ok := dataMapGet[T](sdm.inner); ok {
			return val, true
		}
	}
	var zero T
	return zero, false
}

// InfoContextValue reads a typed value from the request context reachable
// through the snapshot.
func InfoContextValue[T any](info RequestInfo) (T, bool) {
	if info.context == nil {
		var zero T
		return zero, false
	}
	return requestContextGet[T](info.context)
}
