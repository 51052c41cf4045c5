package pkg

import (
	"reflect"
	"sync"
)

// RequestContext is a per-request mutable typed map shared among
// pre-middleware, the route handler, post-middleware and the error
// handler.
//
// Strictly speaking the map is per request and sees no concurrent access
// from the pipeline itself, which is sequential. It is still guarded by a
// mutex because the handle is clonable and reachable from RequestInfo, so
// user code that spawns its own goroutines within a request stays safe.
// No lock is ever held across a handler invocation.
type RequestContext struct {
	mu    sync.Mutex
	inner *DataMap
}

// newRequestContext creates an empty per-request context.
func newRequestContext() *RequestContext {
	return &RequestContext{inner: NewDataMap()}
}

// Set stores a value in the context keyed by its runtime type. Values are
// read back by copy, so they should be plain values or handles that are
// safe to share.
func (c *RequestContext) Set(val interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Insert(val)
}

func (c *RequestContext) get(t reflect.Type) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.get(t)
}

// requestContextGet reads a typed value from the context. The caller
// receives an independent copy of the stored value.
func requestContextGet[T any](c *RequestContext) (T, bool) {
	var zero T
	val, ok := c.get(reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	typed, ok := val.(T)
	return typed, ok
}
