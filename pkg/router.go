package pkg

import (
	"net/http"
	"strings"
)

// ErrHandler converts a request-processing error into a response.
type ErrHandler func(error) *http.Response

// ErrHandlerWithInfo converts a request-processing error into a response
// and additionally receives the request's RequestInfo snapshot.
type ErrHandlerWithInfo func(error, RequestInfo) *http.Response

// Router holds the participants accumulated by a RouterBuilder. After
// Build the participant vectors are frozen; the combined regex set and
// the request-info bit are filled in at service construction, after the
// default participants have been injected.
//
// A router that has been mounted into a parent via Scope is drained and
// must not be mounted or served again.
type Router struct {
	preMiddlewares  []*PreMiddleware
	routes          []*Route
	postMiddlewares []*PostMiddleware
	scopedDataMaps  []*ScopedDataMap

	// The error handler only takes effect on the root router. A handler
	// attached to a scoped router is dropped when the router is mounted.
	errHandler         ErrHandler
	errHandlerWithInfo ErrHandlerWithInfo

	regexSet             *regexSet
	shouldGenRequestInfo bool
	mounted              bool
	finalized            bool
}

// NewRouterBuilder creates an empty router builder.
func NewRouterBuilder() *RouterBuilder {
	return &RouterBuilder{}
}

// RouterBuilder accumulates participants for a Router. Registration
// methods chain; the first failure is remembered and reported by Build.
type RouterBuilder struct {
	preMiddlewares  []*PreMiddleware
	routes          []*Route
	postMiddlewares []*PostMiddleware
	scopedDataMaps  []*ScopedDataMap

	// Lazily created "/*" map receiving Data values for this router.
	rootData *ScopedDataMap

	errHandler         ErrHandler
	errHandlerWithInfo ErrHandlerWithInfo

	err   error
	built bool
}

// normalizeRoutePath ensures a registration path ends with "/" or "*",
// appending "/" when necessary. Request target paths get the same suffix
// before matching, so lookups are independent of trailing slashes.
func normalizeRoutePath(path string) string {
	if path == "" {
		return "/"
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "*") {
		return path
	}
	return path + "/"
}

// Get registers a GET route
func (b *RouterBuilder) Get(path string, handler RouteHandler) *RouterBuilder {
	return b.Add(path, []string{http.MethodGet}, handler)
}

// Post registers a POST route
func (b *RouterBuilder) Post(path string, handler RouteHandler) *RouterBuilder {
	return b.Add(path, []string{http.MethodPost}, handler)
}

// Put registers a PUT route
func (b *RouterBuilder) Put(path string, handler RouteHandler) *RouterBuilder {
	return b.Add(path, []string{http.MethodPut}, handler)
}

// Patch registers a PATCH route
func (b *RouterBuilder) Patch(path string, handler RouteHandler) *RouterBuilder {
	return b.Add(path, []string{http.MethodPatch}, handler)
}

// Delete registers a DELETE route
func (b *RouterBuilder) Delete(path string, handler RouteHandler) *RouterBuilder {
	return b.Add(path, []string{http.MethodDelete}, handler)
}

// Connect registers a CONNECT route
func (b *RouterBuilder) Connect(path string, handler RouteHandler) *RouterBuilder {
	return b.Add(path, []string{http.MethodConnect}, handler)
}

// Head registers a HEAD route
func (b *RouterBuilder) Head(path string, handler RouteHandler) *RouterBuilder {
	return b.Add(path, []string{http.MethodHead}, handler)
}

// Options registers an OPTIONS route
func (b *RouterBuilder) Options(path string, handler RouteHandler) *RouterBuilder {
	return b.Add(path, []string{http.MethodOptions}, handler)
}

// Trace registers a TRACE route
func (b *RouterBuilder) Trace(path string, handler RouteHandler) *RouterBuilder {
	return b.Add(path, []string{http.MethodTrace}, handler)
}

// Any registers a route accepting the universal method set.
func (b *RouterBuilder) Any(handler RouteHandler) *RouterBuilder {
	return b.Add("/*", UniversalMethods(), handler)
}

// AnyMethod registers a route at the given path accepting the universal
// method set.
func (b *RouterBuilder) AnyMethod(path string, handler RouteHandler) *RouterBuilder {
	return b.Add(path, UniversalMethods(), handler)
}

// Add registers a route for an explicit list of HTTP methods.
func (b *RouterBuilder) Add(path string, methods []string, handler RouteHandler) *RouterBuilder {
	if b.err != nil {
		return b
	}

	route, err := NewRoute(path, methods, handler)
	if err != nil {
		b.err = err
		return b
	}

	b.routes = append(b.routes, route)
	return b
}

// Middleware registers a pre- or post-middleware.
func (b *RouterBuilder) Middleware(m Middleware) *RouterBuilder {
	if b.err != nil {
		return b
	}
	if m.err != nil {
		b.err = m.err
		return b
	}

	switch {
	case m.pre != nil:
		b.preMiddlewares = append(b.preMiddlewares, m.pre)
	case m.post != nil:
		b.postMiddlewares = append(b.postMiddlewares, m.post)
	default:
		b.err = NewConfigurationError("middleware", "a middleware must carry a pre or post handler")
	}

	return b
}

// Data shares a value with every request this router serves. The value is
// stored in the router's "/*" scoped data map keyed by its runtime type;
// a second value of the same type replaces the first. When the router is
// mounted at a prefix the map follows it, so values shared on a
// sub-router are only visible below its mount point.
func (b *RouterBuilder) Data(val interface{}) *RouterBuilder {
	if b.err != nil {
		return b
	}

	if b.rootData == nil {
		sdm, err := newScopedDataMap("/*", NewDataMap())
		if err != nil {
			b.err = err
			return b
		}
		b.rootData = sdm
		b.scopedDataMaps = append(b.scopedDataMaps, sdm)
	}

	b.rootData.dataMap.Insert(val)
	return b
}

// ErrHandler installs an error handler converting request-processing
// failures into responses. Only effective on the root router.
func (b *RouterBuilder) ErrHandler(handler ErrHandler) *RouterBuilder {
	if b.err != nil {
		return b
	}
	b.errHandler = handler
	b.errHandlerWithInfo = nil
	return b
}

// ErrHandlerWithInfo installs an info-taking error handler. Its presence
// makes the dispatch engine materialize RequestInfo for every request.
// Only effective on the root router.
func (b *RouterBuilder) ErrHandlerWithInfo(handler ErrHandlerWithInfo) *RouterBuilder {
	if b.err != nil {
		return b
	}
	b.errHandlerWithInfo = handler
	b.errHandler = nil
	return b
}

// Scope mounts a sub-router at the given path prefix. Every participant
// of the sub-router is moved out, re-registered with the prefixed path, a
// recompiled regex and an incremented scope depth; afterwards the flat
// router behaves identically to a tree walk. The sub-router is left
// drained and must not be mounted, built or served again.
//
// An error handler installed on the sub-router does not follow it: error
// handling belongs to the root router alone.
func (b *RouterBuilder) Scope(path string, sub *Router) *RouterBuilder {
	if b.err != nil {
		return b
	}
	if sub == nil {
		b.err = NewConfigurationError("scope", "the sub-router must not be nil")
		return b
	}
	if sub.mounted {
		b.err = NewReusedSubRouterError()
		return b
	}

	prefix := strings.TrimSuffix(path, "/")

	for _, pm := range sub.preMiddlewares {
		if pm.handler == nil {
			b.err = NewReusedSubRouterError()
			return b
		}

		npm, err := NewPreMiddleware(prefix+pm.path, pm.handler)
		if err != nil {
			b.err = err
			return b
		}
		npm.scopeDepth = pm.scopeDepth + 1
		pm.handler = nil

		b.preMiddlewares = append(b.preMiddlewares, npm)
	}

	for _, rt := range sub.routes {
		if rt.handler == nil {
			b.err = NewReusedSubRouterError()
			return b
		}

		nrt, err := NewRoute(prefix+rt.path, rt.methods, rt.handler)
		if err != nil {
			b.err = err
			return b
		}
		nrt.scopeDepth = rt.scopeDepth + 1
		rt.handler = nil

		b.routes = append(b.routes, nrt)
	}

	for _, pm := range sub.postMiddlewares {
		if pm.handler == nil && pm.handlerWithInfo == nil {
			b.err = NewReusedSubRouterError()
			return b
		}

		var npm *PostMiddleware
		var err error
		if pm.takesInfo() {
			npm, err = NewPostMiddlewareWithInfo(prefix+pm.path, pm.handlerWithInfo)
		} else {
			npm, err = NewPostMiddleware(prefix+pm.path, pm.handler)
		}
		if err != nil {
			b.err = err
			return b
		}
		npm.scopeDepth = pm.scopeDepth + 1
		pm.handler = nil
		pm.handlerWithInfo = nil

		b.postMiddlewares = append(b.postMiddlewares, npm)
	}

	for _, sdm := range sub.scopedDataMaps {
		dm, err := sdm.takeDataMap()
		if err != nil {
			b.err = err
			return b
		}

		nsdm, err := newScopedDataMap(prefix+sdm.path, dm)
		if err != nil {
			b.err = err
			return b
		}

		b.scopedDataMaps = append(b.scopedDataMaps, nsdm)
	}

	sub.mounted = true
	return b
}

// Build produces the Router. The builder must not be built twice.
//
// Default routes, the default error handler and the combined regex set
// are deliberately not added here: a router only becomes a root at
// service construction, and sub-routers must stay total compositional
// units that inject no defaults of their own.
func (b *RouterBuilder) Build() (*Router, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return nil, NewReusedSubRouterError()
	}
	b.built = true

	return &Router{
		preMiddlewares:     b.preMiddlewares,
		routes:             b.routes,
		postMiddlewares:    b.postMiddlewares,
		scopedDataMaps:     b.scopedDataMaps,
		errHandler:         b.errHandler,
		errHandlerWithInfo: b.errHandlerWithInfo,
	}, nil
}
