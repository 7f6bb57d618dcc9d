package concurrent

import "context"

// Supplier defines an arbitrary operation
type Supplier interface {
	Supply(ctx context.Context) (interface{}, error)
}

// SupplierFunc allows a function to act as a Supplier
type SupplierFunc func(ctx context.Context) (interface{}, error)

// Supply is the implementation of Supplier for SupplierFunc
func (f SupplierFunc) Supply(ctx context.Context) (interface{}, error) {
	return f(ctx)
}

// Result of a supplier
type Result struct {
	value interface{}
	err   error
}

// Value returned by the supplier
func (r Result) Value() interface{} {
	return r.value
}

// Err returned by the supplier
func (r Result) Err() error {
	return r.err
}
