package pkg

import (
	"net/http/httptest"
	"testing"
)

// TestExtMetaAccessors tests the request extension surface over attached meta
func TestExtMetaAccessors(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.com/users/42", nil)

	// Before attachment everything is zero-valued
	if RemoteAddr(req) != "" {
		t.Error("expected empty remote addr before attachment")
	}
	if Params(req).Len() != 0 {
		t.Error("expected empty params before attachment")
	}

	params := NewRouteParams()
	params.Set("id", "42")

	meta := &RequestMeta{
		remoteAddr:  "10.0.0.1:9000",
		requestID:   "req-1",
		routeParams: params,
		context:     newRequestContext(),
	}
	req = updateRequestMeta(req, meta)

	if RemoteAddr(req) != "10.0.0.1:9000" {
		t.Errorf("expected remote addr, got %q", RemoteAddr(req))
	}
	if RequestID(req) != "req-1" {
		t.Errorf("expected request id, got %q", RequestID(req))
	}
	if Param(req, "id") != "42" {
		t.Errorf("expected id=42, got %q", Param(req, "id"))
	}
	if Param(req, "missing") != "" {
		t.Error("expected empty string for a missing param")
	}
}

// TestExtMetaExtend tests that attaching meta twice merges rather than replaces
func TestExtMetaExtend(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.com/", nil)

	first := NewRouteParams()
	first.Set("a", "1")
	req = updateRequestMeta(req, &RequestMeta{remoteAddr: "1.1.1.1:1", routeParams: first})

	second := NewRouteParams()
	second.Set("b", "2")
	req = updateRequestMeta(req, &RequestMeta{routeParams: second})

	if RemoteAddr(req) != "1.1.1.1:1" {
		t.Errorf("expected the original remote addr to survive, got %q", RemoteAddr(req))
	}
	if Param(req, "a") != "1" || Param(req, "b") != "2" {
		t.Errorf("expected merged params, got a=%q b=%q", Param(req, "a"), Param(req, "b"))
	}
}

// TestExtDataLookupOrder tests that Data scans attached maps in order and
// returns the first hit
func TestExtDataLookupOrder(t *testing.T) {
	scoped := NewDataMap()
	scoped.Insert(testState{n: 1})

	root := NewDataMap()
	root.Insert(testState{n: 99})
	root.Insert(testName("root-only"))

	req := httptest.NewRequest("GET", "http://example.com/", nil)
	req = updateRequestMeta(req, &RequestMeta{
		sharedDataMaps: []SharedDataMap{newSharedDataMap(scoped), newSharedDataMap(root)},
		context:        newRequestContext(),
	})

	state, ok := Data[testState](req)
	if !ok || state.n != 1 {
		t.Errorf("expected the first map to win, got %v (ok=%v)", state, ok)
	}

	name, ok := Data[testName](req)
	if !ok || name != "root-only" {
		t.Errorf("expected fall-through to the root map, got %v (ok=%v)", name, ok)
	}

	if _, ok := Data[int](req); ok {
		t.Error("expected no value for an unregistered type")
	}
}

// TestExtContextRoundTrip tests SetContextValue followed by ContextValue
func TestExtContextRoundTrip(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.com/", nil)
	req = updateRequestMeta(req, &RequestMeta{context: newRequestContext()})

	SetContextValue(req, ctxID(7))

	id, ok := ContextValue[ctxID](req)
	if !ok || id != 7 {
		t.Errorf("expected ctxID(7), got %v (ok=%v)", id, ok)
	}

	if _, ok := ContextValue[testName](req); ok {
		t.Error("expected no value for an unrelated type")
	}
}

// TestExtSurvivesBodySplit tests that the surface still works on a
// request whose body has been replaced
func TestExtSurvivesBodySplit(t *testing.T) {
	req := httptest.NewRequest("POST", "http://example.com/", nil)
	req = updateRequestMeta(req, &RequestMeta{remoteAddr: "2.2.2.2:2", context: newRequestContext()})
	SetContextValue(req, testName("kept"))

	split := req.Clone(req.Context())
	split.Body = nil

	if RemoteAddr(split) != "2.2.2.2:2" {
		t.Error("expected remote addr to survive a body split")
	}
	if val, ok := ContextValue[testName](split); !ok || val != "kept" {
		t.Error("expected context values to survive a body split")
	}
}
