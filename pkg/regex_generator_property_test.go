package pkg

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProperty_ExactRegexRoundTrip tests that for a generated path with
// named parameters, the compiled exact regex matches a concrete URL built
// from segment values and the captures reproduce those values in order.
func TestProperty_ExactRegexRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)

	segmentGen := gen.RegexMatch(`[a-z][a-z0-9_-]{0,8}`)

	properties.Property("captures zip back to the concrete segments", prop.ForAll(
		func(names []string, values []string) bool {
			if len(names) == 0 || len(values) < len(names) {
				return true
			}
			values = values[:len(names)]

			var pattern, target strings.Builder
			for i, name := range names {
				pattern.WriteString("/:" + name)
				target.WriteString("/" + values[i])
			}

			re, params, err := generateExactMatchRegex(pattern.String())
			if err != nil {
				t.Logf("compile failed for %q: %v", pattern.String(), err)
				return false
			}

			if len(params) != len(names) {
				t.Logf("expected %d params, got %v", len(names), params)
				return false
			}

			caps := re.FindStringSubmatch(target.String())
			if caps == nil {
				t.Logf("regex for %q did not match %q", pattern.String(), target.String())
				return false
			}

			for i := range names {
				if caps[i+1] != values[i] {
					t.Logf("capture %d: expected %q, got %q", i, values[i], caps[i+1])
					return false
				}
			}

			return true
		},
		gen.SliceOf(segmentGen),
		gen.SliceOf(segmentGen),
	))

	properties.Property("exact regex rejects the path plus a suffix", prop.ForAll(
		func(segments []string, extra string) bool {
			if len(segments) == 0 || extra == "" {
				return true
			}

			path := "/" + strings.Join(segments, "/")
			re, _, err := generateExactMatchRegex(path)
			if err != nil {
				t.Logf("compile failed for %q: %v", path, err)
				return false
			}

			if !re.MatchString(path) {
				t.Logf("exact regex should match its own path %q", path)
				return false
			}
			if re.MatchString(path + "/" + extra) {
				t.Logf("exact regex for %q should not match a longer path", path)
				return false
			}

			return true
		},
		gen.SliceOf(segmentGen),
		segmentGen,
	))

	// Run all properties with 100 iterations minimum
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	properties.TestingRun(t, params)
}

// TestProperty_RouteParamsDuplicatesOverwrite tests that setting the same
// name twice keeps the last value.
func TestProperty_RouteParamsDuplicatesOverwrite(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("last Set wins for a repeated name", prop.ForAll(
		func(name, first, second string) bool {
			params := NewRouteParams()
			params.Set(name, first)
			params.Set(name, second)

			got, ok := params.Get(name)
			return ok && got == second && params.Len() == 1
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	properties.TestingRun(t, params)
}
