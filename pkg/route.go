package pkg

import (
	"net/http"
	"regexp"
)

// RouteHandler consumes a request and produces a response or an error.
type RouteHandler func(*http.Request) (*http.Response, error)

// Route binds a path pattern and a method set to a handler.
type Route struct {
	path       string
	regex      *regexp.Regexp
	paramNames []string
	methods    []string
	handler    RouteHandler
	scopeDepth int
}

// NewRoute compiles the path pattern and creates a route for the given
// methods. The methods list must be non-empty.
func NewRoute(path string, methods []string, handler RouteHandler) (*Route, error) {
	if len(methods) == 0 {
		return nil, NewConfigurationError("methods", "a route requires at least one HTTP method")
	}

	path = normalizeRoutePath(path)
	re, params, err := generateExactMatchRegex(path)
	if err != nil {
		return nil, err
	}

	ms := make([]string, len(methods))
	copy(ms, methods)

	return &Route{
		path:       path,
		regex:      re,
		paramNames: params,
		methods:    ms,
		handler:    handler,
		scopeDepth: 1,
	}, nil
}

// Path returns the route's registered path pattern.
func (rt *Route) Path() string {
	return rt.path
}

// Methods returns the route's method set.
func (rt *Route) Methods() []string {
	methods := make([]string, len(rt.methods))
	copy(methods, rt.methods)
	return methods
}

func (rt *Route) matchesMethod(method string) bool {
	for _, m := range rt.methods {
		if m == method {
			return true
		}
	}
	return false
}

// isCatchAll reports whether the route is the "/*" route with the
// universal method set. Routes compare equal for shadow-checking by
// exactly this pair.
func (rt *Route) isCatchAll() bool {
	return rt.path == "/*" && isUniversalMethodSet(rt.methods)
}

// extractParams runs the route's exact regex against the normalized
// target path and zips the capture groups with the parameter-name list.
// A repeated name overwrites, so "**" collapses to the second capture.
func (rt *Route) extractParams(targetPath string) *RouteParams {
	if len(rt.paramNames) == 0 {
		return NewRouteParams()
	}

	params := newRouteParamsWithCapacity(len(rt.paramNames))
	caps := rt.regex.FindStringSubmatch(targetPath)
	if caps == nil {
		return params
	}

	for i, name := range rt.paramNames {
		if i+1 < len(caps) {
			params.Set(name, caps[i+1])
		}
	}

	return params
}
