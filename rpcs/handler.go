package rpcs

import (
	"context"
	"math/rand"
	"strconv"
)

// Handler handles a decoded request body and returns the value
// that is encoded as the response body. A nil value produces a
// response without body
type Handler interface {
	Handle(ctx context.Context, v interface{}) (interface{}, error)
}

// HandlerFunc allows functions to act as a Handler
type HandlerFunc func(ctx context.Context, v interface{}) (interface{}, error)

// Handle is the implementation of Handler for HandlerFunc
func (f HandlerFunc) Handle(ctx context.Context, v interface{}) (interface{}, error) {
	return f(ctx, v)
}

// EntityFactory creates the values into which request bodies are
// decoded. Factories for requests without body return nil
type EntityFactory interface {
	Create() interface{}
}

// EntityFactoryFunc allows functions to act as an EntityFactory
type EntityFactoryFunc func() interface{}

// Create is the implementation of EntityFactory for EntityFactoryFunc
func (f EntityFactoryFunc) Create() interface{} {
	return f()
}

// ParseTraceID parses the trace ID sent by a client. A new trace ID
// is generated when the client did not send a valid one
func ParseTraceID(s string) int64 {
	traceID, err := strconv.ParseInt(s, 10, 64)
	if err != nil || traceID <= 0 {
		return rand.Int63n(1<<62) + 1
	}
	return traceID
}
