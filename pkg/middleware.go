package pkg

import (
	"net/http"
	"regexp"
)

// PreMiddlewareHandler transforms a request before routing. It must
// return the same or a derived request.
type PreMiddlewareHandler func(*http.Request) (*http.Request, error)

// PostMiddlewareHandler transforms a response after the route handler.
type PostMiddlewareHandler func(*http.Response) (*http.Response, error)

// PostMiddlewareWithInfoHandler transforms a response and additionally
// receives the request's RequestInfo snapshot.
type PostMiddlewareWithInfoHandler func(*http.Response, RequestInfo) (*http.Response, error)

// PreMiddleware runs before routing for every request whose normalized
// path matches its exact regex.
type PreMiddleware struct {
	path       string
	regex      *regexp.Regexp
	handler    PreMiddlewareHandler
	scopeDepth int
}

// NewPreMiddleware creates a pre-middleware at the given path.
func NewPreMiddleware(path string, handler PreMiddlewareHandler) (*PreMiddleware, error) {
	path = normalizeRoutePath(path)
	re, _, err := generateExactMatchRegex(path)
	if err != nil {
		return nil, err
	}

	return &PreMiddleware{
		path:       path,
		regex:      re,
		handler:    handler,
		scopeDepth: 1,
	}, nil
}

// PostMiddleware runs after the route handler for every request whose
// normalized path matches its exact regex. It has two variants: a
// response-only handler, or a handler that additionally receives the
// RequestInfo snapshot.
type PostMiddleware struct {
	path            string
	regex           *regexp.Regexp
	handler         PostMiddlewareHandler
	handlerWithInfo PostMiddlewareWithInfoHandler
	scopeDepth      int
}

// NewPostMiddleware creates a response-only post-middleware at the given path.
func NewPostMiddleware(path string, handler PostMiddlewareHandler) (*PostMiddleware, error) {
	path = normalizeRoutePath(path)
	re, _, err := generateExactMatchRegex(path)
	if err != nil {
		return nil, err
	}

	return &PostMiddleware{
		path:       path,
		regex:      re,
		handler:    handler,
		scopeDepth: 1,
	}, nil
}

// NewPostMiddlewareWithInfo creates an info-taking post-middleware at the
// given path. Its presence makes the dispatch engine materialize
// RequestInfo for every request.
func NewPostMiddlewareWithInfo(path string, handler PostMiddlewareWithInfoHandler) (*PostMiddleware, error) {
	path = normalizeRoutePath(path)
	re, _, err := generateExactMatchRegex(path)
	if err != nil {
		return nil, err
	}

	return &PostMiddleware{
		path:            path,
		regex:           re,
		handlerWithInfo: handler,
		scopeDepth:      1,
	}, nil
}

func (m *PostMiddleware) takesInfo() bool {
	return m.handlerWithInfo != nil
}

// Middleware is the tagged variant over the two middleware kinds accepted
// by the router builder.
type Middleware struct {
	pre  *PreMiddleware
	post *PostMiddleware
	err  error
}

// Pre creates a pre-middleware at the "/*" path.
func Pre(handler PreMiddlewareHandler) Middleware {
	return PreWithPath("/*", handler)
}

// Post creates a response-only post-middleware at the "/*" path.
func Post(handler PostMiddlewareHandler) Middleware {
	return PostWithPath("/*", handler)
}

// PostWithInfo creates an info-taking post-middleware at the "/*" path.
func PostWithInfo(handler PostMiddlewareWithInfoHandler) Middleware {
	return PostWithInfoWithPath("/*", handler)
}

// PreWithPath creates a pre-middleware at the specified path.
func PreWithPath(path string, handler PreMiddlewareHandler) Middleware {
	pre, err := NewPreMiddleware(path, handler)
	return Middleware{pre: pre, err: err}
}

// PostWithPath creates a response-only post-middleware at the specified path.
func PostWithPath(path string, handler PostMiddlewareHandler) Middleware {
	post, err := NewPostMiddleware(path, handler)
	return Middleware{post: post, err: err}
}

// PostWithInfoWithPath creates an info-taking post-middleware at the
// specified path.
func PostWithInfoWithPath(path string, handler PostMiddlewareWithInfoHandler) Middleware {
	post, err := NewPostMiddlewareWithInfo(path, handler)
	return Middleware{post: post, err: err}
}
