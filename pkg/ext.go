package pkg

import "net/http"

// Extension surface over *http.Request. The router stores its side
// channel in the request's context, so these accessors keep working on a
// request whose body has been split off or replaced: only the context is
// consulted.

// Params returns the route parameters extracted for the request. It
// returns an empty map when called before the route phase or for a
// request that never reached a route.
func Params(r *http.Request) *RouteParams {
	if meta := requestMetaFrom(r); meta != nil && meta.routeParams != nil {
		return meta.routeParams
	}
	return NewRouteParams()
}

// Param returns the value of one route parameter, or "" when absent.
func Param(r *http.Request, name string) string {
	val, _ := Params(r).Get(name)
	return val
}

// RemoteAddr returns the remote network address of the connection the
// request arrived on.
func RemoteAddr(r *http.Request) string {
	if meta := requestMetaFrom(r); meta != nil {
		return meta.remoteAddr
	}
	return ""
}

// RequestID returns the id the dispatch engine generated for the request.
func RequestID(r *http.Request) string {
	if meta := requestMetaFrom(r); meta != nil {
		return meta.requestID
	}
	return ""
}

// Data scans the scoped data maps attached to the request in registration
// order and returns the first value of type T found.
func Data[T any](r *http.Request) (T, bool) {
	if meta := requestMetaFrom(r); meta != nil {
		for _, sdm := range meta.sharedDataMaps {
			if val, ok := dataMapGet[T](sdm.inner); ok {
				return val, true
			}
		}
	}
	var zero T
	return zero, false
}

// ContextValue reads a typed value from the request's mutable context.
// The caller receives an independent copy of the stored value.
func ContextValue[T any](r *http.Request) (T, bool) {
	if meta := requestMetaFrom(r); meta != nil && meta.context != nil {
		return requestContextGet[T](meta.context)
	}
	var zero T
	return zero, false
}

// SetContextValue writes a value into the request's mutable context,
// keyed by its runtime type. The value is visible to every later pipeline
// phase, including info-taking post middleware and error handlers.
func SetContextValue(r *http.Request, val interface{}) {
	if meta := requestMetaFrom(r); meta != nil && meta.context != nil {
		meta.context.Set(val)
	}
}
