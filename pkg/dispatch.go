package pkg

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// finalize prepares a root router for serving. It runs exactly once, at
// service construction:
//
//  1. inject a default OPTIONS route unless one exists at "/*" with the
//     method set exactly {OPTIONS}
//  2. inject the default 404 catch-all unless a "/*" route with the
//     universal method set exists
//  3. install the default error handler if none is installed
//  4. compile the combined regex set over pre, routes, post and data
//     maps, in that order
//  5. cache whether RequestInfo must be materialized per request
func (r *Router) finalize() error {
	if r.finalized {
		return nil
	}
	if r.mounted {
		return NewReusedSubRouterError()
	}

	hasDefaultOptions := false
	hasCatchAll := false
	for _, rt := range r.routes {
		if rt.path == "/*" && len(rt.methods) == 1 && rt.methods[0] == http.MethodOptions {
			hasDefaultOptions = true
		}
		if rt.isCatchAll() {
			hasCatchAll = true
		}
	}

	if !hasDefaultOptions {
		rt, err := NewRoute("/*", []string{http.MethodOptions}, defaultOptionsHandler)
		if err != nil {
			return err
		}
		r.routes = append(r.routes, rt)
	}

	if !hasCatchAll {
		rt, err := NewRoute("/*", UniversalMethods(), defaultNotFoundHandler)
		if err != nil {
			return err
		}
		r.routes = append(r.routes, rt)
	}

	if r.errHandler == nil && r.errHandlerWithInfo == nil {
		r.errHandler = defaultErrorHandler
	}

	patterns := make([]string, 0, len(r.preMiddlewares)+len(r.routes)+len(r.postMiddlewares)+len(r.scopedDataMaps))
	for _, pm := range r.preMiddlewares {
		patterns = append(patterns, pm.regex.String())
	}
	for _, rt := range r.routes {
		patterns = append(patterns, rt.regex.String())
	}
	for _, pm := range r.postMiddlewares {
		patterns = append(patterns, pm.regex.String())
	}
	for _, sdm := range r.scopedDataMaps {
		patterns = append(patterns, sdm.regex.String())
	}

	rs, err := newRegexSet(patterns,
		len(r.preMiddlewares), len(r.routes), len(r.postMiddlewares), len(r.scopedDataMaps))
	if err != nil {
		return err
	}
	r.regexSet = rs

	r.shouldGenRequestInfo = r.errHandlerWithInfo != nil
	for _, pm := range r.postMiddlewares {
		if pm.takesInfo() {
			r.shouldGenRequestInfo = true
			break
		}
	}

	r.finalized = true
	return nil
}

// verifyParticipantRegexes asserts that every participant's regex matches
// its own stored path, with a timeout budget per match. Enabled through
// Config.Router.ValidatePatterns.
func (r *Router) verifyParticipantRegexes(rv *RegexValidator) error {
	for _, pm := range r.preMiddlewares {
		matched, err := rv.Match(pm.regex, pm.path)
		if err != nil {
			return err
		}
		if !matched {
			return NewBadRoutePatternError(pm.path, nil)
		}
	}
	for _, rt := range r.routes {
		matched, err := rv.Match(rt.regex, rt.path)
		if err != nil {
			return err
		}
		if !matched {
			return NewBadRoutePatternError(rt.path, nil)
		}
	}
	for _, pm := range r.postMiddlewares {
		matched, err := rv.Match(pm.regex, pm.path)
		if err != nil {
			return err
		}
		if !matched {
			return NewBadRoutePatternError(pm.path, nil)
		}
	}
	for _, sdm := range r.scopedDataMaps {
		matched, err := rv.Match(sdm.regex, sdm.path)
		if err != nil {
			return err
		}
		if !matched {
			return NewBadRoutePatternError(sdm.path, nil)
		}
	}

	return nil
}

// percentDecodeRequestPath percent-decodes an incoming request path.
func percentDecodeRequestPath(val string) (string, error) {
	decoded, err := url.PathUnescape(val)
	if err != nil {
		return "", NewBadRequestPathError(val, err)
	}
	return decoded, nil
}

// normalizeTargetPath suffixes the target path with "/" so matching is
// independent of whether the original URL carried the trailing slash.
func normalizeTargetPath(path string) string {
	if path == "" || !strings.HasSuffix(path, "/") {
		return path + "/"
	}
	return path
}

func defaultOptionsHandler(_ *http.Request) (*http.Response, error) {
	return NewEmptyResponse(http.StatusNoContent), nil
}

func defaultNotFoundHandler(_ *http.Request) (*http.Response, error) {
	return NewTextResponse(http.StatusNotFound, http.StatusText(http.StatusNotFound)), nil
}

func defaultErrorHandler(err error) *http.Response {
	return NewTextResponse(http.StatusInternalServerError, fmt.Sprintf("Internal Server Error: %v", err))
}
