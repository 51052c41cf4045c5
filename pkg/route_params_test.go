package pkg

import "testing"

// TestRouteParamsBasics tests set, get, has and len
func TestRouteParamsBasics(t *testing.T) {
	params := NewRouteParams()
	params.Set("userName", "alice")
	params.Set("bookName", "dune")

	if params.Len() != 2 {
		t.Errorf("expected 2 params, got %d", params.Len())
	}

	val, ok := params.Get("userName")
	if !ok || val != "alice" {
		t.Errorf("expected userName=alice, got %q (ok=%v)", val, ok)
	}

	if !params.Has("bookName") {
		t.Error("expected bookName to be present")
	}
	if params.Has("missing") {
		t.Error("expected missing to be absent")
	}
}

// TestRouteParamsExtend tests merging with overwrite semantics
func TestRouteParamsExtend(t *testing.T) {
	params := NewRouteParams()
	params.Set("a", "1")
	params.Set("b", "2")

	other := NewRouteParams()
	other.Set("b", "20")
	other.Set("c", "3")

	params.Extend(other)

	if params.Len() != 3 {
		t.Errorf("expected 3 params after extend, got %d", params.Len())
	}
	if val, _ := params.Get("b"); val != "20" {
		t.Errorf("expected the other map's entry to win, got %q", val)
	}
	if val, _ := params.Get("c"); val != "3" {
		t.Errorf("expected c=3, got %q", val)
	}

	// Extending with nil is a no-op
	params.Extend(nil)
	if params.Len() != 3 {
		t.Errorf("expected extend(nil) to be a no-op, got %d params", params.Len())
	}
}

// TestRouteExtractParams tests zipping captures with the name list
func TestRouteExtractParams(t *testing.T) {
	rt, err := NewRoute("/api/:first/plus/:second", []string{"GET"}, nil)
	if err != nil {
		t.Fatalf("NewRoute returned error: %v", err)
	}

	params := rt.extractParams("/api/40/plus/2/")
	if params.Len() != 2 {
		t.Fatalf("expected 2 params, got %d", params.Len())
	}
	if val, _ := params.Get("first"); val != "40" {
		t.Errorf("expected first=40, got %q", val)
	}
	if val, _ := params.Get("second"); val != "2" {
		t.Errorf("expected second=2, got %q", val)
	}
}

// TestRouteExtractParamsDoubleGlob tests that "**" collapses to the
// second capture under the "*" name
func TestRouteExtractParamsDoubleGlob(t *testing.T) {
	rt, err := NewRoute("/files/**", []string{"GET"}, nil)
	if err != nil {
		t.Fatalf("NewRoute returned error: %v", err)
	}

	params := rt.extractParams("/files/a/b/c/")
	if params.Len() != 1 {
		t.Fatalf("expected the two globs to collapse to one param, got %d", params.Len())
	}
	if !params.Has("*") {
		t.Error("expected the glob param to be named *")
	}
}
