package pkg

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ServiceOption customizes service construction.
type ServiceOption func(*RequestServiceBuilder)

// WithLogger installs a logger on the service.
func WithLogger(logger Logger) ServiceOption {
	return func(b *RequestServiceBuilder) {
		b.logger = logger
	}
}

// WithConfig installs a configuration on the service.
func WithConfig(cfg *Config) ServiceOption {
	return func(b *RequestServiceBuilder) {
		b.config = cfg
	}
}

// RequestServiceBuilder finalizes a root router exactly once and hands
// out one cheap RequestService per connection. Finalization injects the
// default OPTIONS route, the default 404 catch-all and the default error
// handler, compiles the combined regex set and caches the request-info
// bit; afterwards the router is immutable and shared by reference among
// all request invocations.
type RequestServiceBuilder struct {
	router *Router
	logger Logger
	config *Config
}

// NewRequestServiceBuilder finalizes the router and creates the builder.
func NewRequestServiceBuilder(router *Router, opts ...ServiceOption) (*RequestServiceBuilder, error) {
	b := &RequestServiceBuilder{
		router: router,
		config: DefaultConfig(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	if b.logger == nil {
		logger, err := b.config.BuildLogger()
		if err != nil {
			return nil, err
		}
		b.logger = logger
	}

	if err := router.finalize(); err != nil {
		return nil, err
	}

	if b.config.Router.ValidatePatterns {
		rv := NewRegexValidator(b.config.Router.RegexTimeoutDuration())
		if err := router.verifyParticipantRegexes(rv); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Build creates a request service bound to a connection's remote address.
func (b *RequestServiceBuilder) Build(remoteAddr string) *RequestService {
	return &RequestService{
		router:      b.router,
		remoteAddr:  remoteAddr,
		logger:      b.logger,
		logRequests: b.config.Log.Requests,
	}
}

// RequestService processes the requests of one connection.
type RequestService struct {
	router      *Router
	remoteAddr  string
	logger      Logger
	logRequests bool
}

// Call dispatches one request through the router and returns the
// response. Failures the installed error handler converted come back as
// responses. Everything else (a path that fails percent-decoding, a
// request no route accepted in a build without the default catch-all, a
// cancelled request context) comes back as an error for the host to
// handle.
func (s *RequestService) Call(req *http.Request) (*http.Response, error) {
	start := time.Now()

	meta := &RequestMeta{
		remoteAddr: s.remoteAddr,
		requestID:  uuid.NewString(),
		context:    newRequestContext(),
	}
	req = updateRequestMeta(req, meta)

	targetPath, err := percentDecodeRequestPath(req.URL.EscapedPath())
	if err != nil {
		return nil, err
	}
	targetPath = normalizeTargetPath(targetPath)

	var info *RequestInfo
	if s.router.shouldGenRequestInfo {
		ri := newRequestInfo(req, meta.context)
		info = &ri
	}

	matched := s.router.regexSet.matches(targetPath)

	resp, err := s.router.process(targetPath, req, info, matched)
	if err != nil {
		if s.logRequests && s.logger != nil {
			s.logger.WithRequestID(meta.requestID).Error("request failed",
				"method", req.Method,
				"path", req.URL.Path,
				"remote_addr", s.remoteAddr,
				"error", err.Error(),
			)
		}
		return nil, err
	}

	if s.logRequests && s.logger != nil {
		s.logger.WithRequestID(meta.requestID).Info("request processed",
			"method", req.Method,
			"path", req.URL.Path,
			"status", resp.StatusCode,
			"remote_addr", s.remoteAddr,
			"duration", time.Since(start).String(),
		)
	}

	return resp, nil
}

// RouterService adapts a finalized router to net/http: one http.Handler
// serving every connection, building a per-request service from the
// request's remote address.
type RouterService struct {
	builder *RequestServiceBuilder
}

// NewRouterService finalizes the router and wraps it as an http.Handler.
func NewRouterService(router *Router, opts ...ServiceOption) (*RouterService, error) {
	builder, err := NewRequestServiceBuilder(router, opts...)
	if err != nil {
		return nil, err
	}
	return &RouterService{builder: builder}, nil
}

// ServeHTTP implements http.Handler.
func (s *RouterService) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	svc := s.builder.Build(req.RemoteAddr)

	resp, err := svc.Call(req)
	if err != nil {
		status := http.StatusInternalServerError
		if re, ok := GetRouterError(err); ok && re.StatusCode != 0 {
			status = re.StatusCode
		}
		http.Error(w, err.Error(), status)
		return
	}

	if err := WriteResponse(w, resp); err != nil && svc.logger != nil {
		svc.logger.Error("failed to write response", "error", err.Error())
	}
}
