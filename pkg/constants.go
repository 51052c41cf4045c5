package pkg

import "net/http"

// allPossibleHTTPMethods is the universal method set: a route registered
// with it accepts every request method the router understands.
var allPossibleHTTPMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodHead,
	http.MethodOptions,
	http.MethodTrace,
}

// UniversalMethods returns a copy of the universal HTTP method set.
func UniversalMethods() []string {
	methods := make([]string, len(allPossibleHTTPMethods))
	copy(methods, allPossibleHTTPMethods)
	return methods
}

func isUniversalMethodSet(methods []string) bool {
	if len(methods) != len(allPossibleHTTPMethods) {
		return false
	}
	seen := make(map[string]bool, len(methods))
	for _, m := range methods {
		seen[m] = true
	}
	for _, m := range allPossibleHTTPMethods {
		if !seen[m] {
			return false
		}
	}
	return true
}
