package pkg

import "net/http"

// process drives one request through the pipeline: the matched
// pre-middlewares in order, the first method-matching route, then the
// matched post-middlewares in order. Execution is strictly sequential;
// cancellation of the request context is checked before each participant
// runs.
//
// Depth gating: when a genuine (non-catch-all) route was chosen, no
// middleware of deeper scope than the chosen route may run. A catch-all
// middleware registered in a deep scope must fire for requests that fall
// to that scope, but not when the request is handled by a shallow route
// that happens to syntactically match the deep regex.
func (r *Router) process(targetPath string, req *http.Request, info *RequestInfo, m matchedIndexes) (*http.Response, error) {
	meta := requestMetaFrom(req)

	shared := make([]SharedDataMap, 0, len(m.data))
	for _, di := range m.data {
		shared = append(shared, r.scopedDataMaps[di].cloneDataMap())
	}
	meta.sharedDataMaps = shared
	if info != nil {
		info.sharedDataMaps = shared
	}

	chosenDepth := 0
	haveChosen := false
	for _, ri := range m.routes {
		rt := r.routes[ri]
		if rt.matchesMethod(req.Method) && !rt.isCatchAll() {
			chosenDepth = rt.scopeDepth
			haveChosen = true
			break
		}
	}

	// Depth 1 middleware runs for everything; the gate only applies when
	// a genuine route was chosen.
	runs := func(depth int) bool {
		return !haveChosen || depth <= chosenDepth
	}

	var resp *http.Response
	handled := false

	for _, pi := range m.pre {
		pm := r.preMiddlewares[pi]
		if !runs(pm.scopeDepth) {
			continue
		}
		if err := req.Context().Err(); err != nil {
			return nil, err
		}

		transformed, err := pm.handler(req)
		if err != nil {
			herr := NewHandlerError("one of the pre middlewares couldn't process the request", err)
			h, ok := r.invokeErrHandler(herr, info)
			if !ok {
				return nil, herr
			}
			resp = h
			handled = true
			break
		}
		req = transformed
	}

	if !handled {
		var chosen *Route
		for _, ri := range m.routes {
			rt := r.routes[ri]
			if rt.matchesMethod(req.Method) {
				chosen = rt
				break
			}
		}
		if chosen == nil {
			// Only reachable when the default catch-all was overridden by
			// a non-total route set.
			return nil, NewNoRouteMatchedError(targetPath)
		}

		meta.routeParams = chosen.extractParams(targetPath)

		if err := req.Context().Err(); err != nil {
			return nil, err
		}

		routeResp, err := chosen.handler(req)
		if err != nil {
			herr := NewHandlerError("one of the routes couldn't process the request", err)
			h, ok := r.invokeErrHandler(herr, info)
			if !ok {
				return nil, herr
			}
			resp = h
		} else {
			resp = routeResp
		}
	}

	for _, pi := range m.post {
		pm := r.postMiddlewares[pi]
		if !runs(pm.scopeDepth) {
			continue
		}
		if err := req.Context().Err(); err != nil {
			return nil, err
		}

		var transformed *http.Response
		var err error
		if pm.takesInfo() {
			transformed, err = pm.handlerWithInfo(resp, *info)
		} else {
			transformed, err = pm.handler(resp)
		}
		if err != nil {
			herr := NewHandlerError("one of the post middlewares couldn't process the response", err)
			h, ok := r.invokeErrHandler(herr, info)
			if !ok {
				return nil, herr
			}
			// The error handler's response becomes the current response
			// and the remaining post middlewares keep running.
			resp = h
			continue
		}
		resp = transformed
	}

	return resp, nil
}

// invokeErrHandler converts an error into a response through the
// installed error handler, reporting whether one was installed.
func (r *Router) invokeErrHandler(err error, info *RequestInfo) (*http.Response, bool) {
	if r.errHandlerWithInfo != nil {
		return r.errHandlerWithInfo(err, *info), true
	}
	if r.errHandler != nil {
		return r.errHandler(err), true
	}
	return nil, false
}
