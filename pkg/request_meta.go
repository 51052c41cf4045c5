package pkg

import (
	"context"
	"net/http"
)

// requestMetaKey is the unexported context key under which the router
// stores its per-request side channel on the request.
type requestMetaKey struct{}

// RequestMeta is the per-request side channel the dispatch engine attaches
// to the request: the remote address, a generated request id, the
// extracted route parameters, the scoped data maps applicable to the
// request and the mutable request context.
//
// The struct is attached by pointer once, so later pipeline stages mutate
// it without re-wrapping the request.
type RequestMeta struct {
	remoteAddr     string
	requestID      string
	routeParams    *RouteParams
	sharedDataMaps []SharedDataMap
	context        *RequestContext
}

// extend merges another meta into this one; set fields of the other meta
// win over existing ones, and route params merge entry-wise.
func (m *RequestMeta) extend(other *RequestMeta) {
	if other.remoteAddr != "" {
		m.remoteAddr = other.remoteAddr
	}
	if other.requestID != "" {
		m.requestID = other.requestID
	}
	if other.sharedDataMaps != nil {
		m.sharedDataMaps = other.sharedDataMaps
	}
	if other.context != nil {
		m.context = other.context
	}
	if other.routeParams != nil {
		if m.routeParams != nil {
			m.routeParams.Extend(other.routeParams)
		} else {
			m.routeParams = other.routeParams
		}
	}
}

// requestMetaFrom returns the meta attached to the request, or nil.
func requestMetaFrom(r *http.Request) *RequestMeta {
	meta, _ := r.Context().Value(requestMetaKey{}).(*RequestMeta)
	return meta
}

// updateRequestMeta attaches new meta to the request, merging into any
// meta already present. Returns the request carrying the meta.
func updateRequestMeta(r *http.Request, newMeta *RequestMeta) *http.Request {
	if existing := requestMetaFrom(r); existing != nil {
		existing.extend(newMeta)
		return r
	}
	return r.WithContext(context.WithValue(r.Context(), requestMetaKey{}, newMeta))
}
