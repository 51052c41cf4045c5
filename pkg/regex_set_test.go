package pkg

import "testing"

// TestRegexSetPartition tests that hit indices partition contiguously
// into the four participant classes in pre, routes, post, data order.
func TestRegexSetPartition(t *testing.T) {
	patterns := []string{
		`(?s)^/(.*)$`,       // pre 0
		`(?s)^/api/(.*)$`,   // pre 1
		`(?s)^/users/$`,     // route 0
		`(?s)^/api/users/$`, // route 1
		`(?s)^/(.*)$`,       // route 2 (catch-all)
		`(?s)^/(.*)$`,       // post 0
		`(?s)^/api/(.*)$`,   // data 0
	}

	rs, err := newRegexSet(patterns, 2, 3, 1, 1)
	if err != nil {
		t.Fatalf("newRegexSet returned error: %v", err)
	}
	if rs.size() != len(patterns) {
		t.Fatalf("expected %d patterns, got %d", len(patterns), rs.size())
	}

	m := rs.matches("/api/users/")

	if len(m.pre) != 2 || m.pre[0] != 0 || m.pre[1] != 1 {
		t.Errorf("expected pre hits [0 1], got %v", m.pre)
	}
	if len(m.routes) != 2 || m.routes[0] != 1 || m.routes[1] != 2 {
		t.Errorf("expected route hits [1 2], got %v", m.routes)
	}
	if len(m.post) != 1 || m.post[0] != 0 {
		t.Errorf("expected post hits [0], got %v", m.post)
	}
	if len(m.data) != 1 || m.data[0] != 0 {
		t.Errorf("expected data hits [0], got %v", m.data)
	}
}

// TestRegexSetNoHits tests a target that matches no pattern in the set
func TestRegexSetNoHits(t *testing.T) {
	rs, err := newRegexSet([]string{`(?s)^/users/$`}, 0, 1, 0, 0)
	if err != nil {
		t.Fatalf("newRegexSet returned error: %v", err)
	}

	m := rs.matches("/missing/")
	if len(m.pre) != 0 || len(m.routes) != 0 || len(m.post) != 0 || len(m.data) != 0 {
		t.Errorf("expected no hits, got %+v", m)
	}
}

// TestRegexSetBadPattern tests that a bad pattern surfaces as BadRoutePattern
func TestRegexSetBadPattern(t *testing.T) {
	_, err := newRegexSet([]string{`(`}, 1, 0, 0, 0)
	if err == nil {
		t.Fatal("expected an error for an invalid pattern")
	}

	re, ok := GetRouterError(err)
	if !ok || re.Code != ErrCodeBadRoutePattern {
		t.Errorf("expected %s, got %v", ErrCodeBadRoutePattern, err)
	}
}
