package pkg

// RouteParams maps the parameter names specified in a route path to the
// values captured from the request path. Duplicate names overwrite; the
// "*" glob parameter may appear more than once in a path, in which case
// the last capture wins.
type RouteParams struct {
	inner map[string]string
}

// NewRouteParams creates an empty route parameters map.
func NewRouteParams() *RouteParams {
	return &RouteParams{inner: make(map[string]string)}
}

// newRouteParamsWithCapacity creates an empty map sized for n parameters.
func newRouteParamsWithCapacity(n int) *RouteParams {
	return &RouteParams{inner: make(map[string]string, n)}
}

// Set stores a parameter entry, replacing any prior value for the name.
func (p *RouteParams) Set(name, value string) {
	p.inner[name] = value
}

// Get returns the value for a parameter name and whether it exists.
func (p *RouteParams) Get(name string) (string, bool) {
	val, ok := p.inner[name]
	return val, ok
}

// Has checks if a route parameter exists.
func (p *RouteParams) Has(name string) bool {
	_, ok := p.inner[name]
	return ok
}

// Len returns the number of route parameters.
func (p *RouteParams) Len() int {
	return len(p.inner)
}

// Names returns the parameter names.
func (p *RouteParams) Names() []string {
	names := make([]string, 0, len(p.inner))
	for name := range p.inner {
		names = append(names, name)
	}
	return names
}

// Iter calls fn for every parameter entry.
func (p *RouteParams) Iter(fn func(name, value string)) {
	for name, value := range p.inner {
		fn(name, value)
	}
}

// Extend merges another parameters map into this one; entries from the
// other map overwrite existing names.
func (p *RouteParams) Extend(other *RouteParams) {
	if other == nil {
		return
	}
	for name, value := range other.inner {
		p.inner[name] = value
	}
}
