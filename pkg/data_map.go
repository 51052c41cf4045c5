package pkg

import (
	"fmt"
	"reflect"
	"regexp"
)

// DataMap is a typed map keyed by runtime type identity. At most one value
// is stored per type.
type DataMap struct {
	inner map[reflect.Type]interface{}
}

// NewDataMap creates an empty typed data map.
func NewDataMap() *DataMap {
	return &DataMap{inner: make(map[reflect.Type]interface{})}
}

// Insert stores a value keyed by its runtime type, replacing any prior
// value of the same type.
func (m *DataMap) Insert(val interface{}) {
	m.inner[reflect.TypeOf(val)] = val
}

func (m *DataMap) get(t reflect.Type) (interface{}, bool) {
	val, ok := m.inner[t]
	return val, ok
}

// dataMapGet retrieves the value of type T from the map, if present.
func dataMapGet[T any](m *DataMap) (T, bool) {
	var zero T
	val, ok := m.get(reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	typed, ok := val.(T)
	return typed, ok
}

// SharedDataMap is a read-only, reference-shared view of a DataMap handed
// to requests whose path matched the owning scope.
type SharedDataMap struct {
	inner *DataMap
}

// newSharedDataMap wraps a data map for sharing across requests.
func newSharedDataMap(dm *DataMap) SharedDataMap {
	return SharedDataMap{inner: dm}
}

// ScopedDataMap binds a typed data map to a path prefix: every request
// whose normalized path matches the exact regex sees the map.
//
// The dataMap field becomes nil when the owning router is mounted into a
// parent, so the map can be taken without moving the whole router.
type ScopedDataMap struct {
	path    string
	regex   *regexp.Regexp
	dataMap *DataMap
}

// newScopedDataMap compiles the prefix path into an exact-match regex and
// binds the data map to it.
func newScopedDataMap(path string, dm *DataMap) (*ScopedDataMap, error) {
	path = normalizeRoutePath(path)
	re, _, err := generateExactMatchRegex(path)
	if err != nil {
		return nil, err
	}

	return &ScopedDataMap{
		path:    path,
		regex:   re,
		dataMap: dm,
	}, nil
}

// cloneDataMap returns a shared handle to the underlying map.
func (s *ScopedDataMap) cloneDataMap() SharedDataMap {
	if s.dataMap == nil {
		panic("roadie: the data map must not be nil at this point")
	}
	return newSharedDataMap(s.dataMap)
}

// takeDataMap empties the scoped map for re-hosting in an enclosing
// router. Returns an error if the map was already taken.
func (s *ScopedDataMap) takeDataMap() (*DataMap, error) {
	if s.dataMap == nil {
		return nil, NewReusedSubRouterError()
	}
	dm := s.dataMap
	s.dataMap = nil
	return dm, nil
}

func (s *ScopedDataMap) String() string {
	return fmt.Sprintf("{ path: %q, regex: %q }", s.path, s.regex)
}
