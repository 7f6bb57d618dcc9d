package playground

import (
	"context"
	stderr "errors"
	"net/http"

	"github.com/csePriyanshu/tree-visualizer/container/tree"
	errs "github.com/csePriyanshu/tree-visualizer/errors"
	"github.com/csePriyanshu/tree-visualizer/rpcs"
	"github.com/pkg/errors"
)

// KindRequest selects the tree variant of the session
type KindRequest struct {
	Kind string `json:"kind"`
}

// ValueRequest carries the value to insert
type ValueRequest struct {
	Value *int `json:"value"`
}

// DeleteRequest carries the value to delete. Strict deletions
// fail when the value is not in the tree
type DeleteRequest struct {
	Value  *int `json:"value"`
	Strict bool `json:"strict"`
}

// TraverseRequest selects the traversal order
type TraverseRequest struct {
	Order string `json:"order"`
}

// Bind registers the playground routes on the binder
func Bind(binder *rpcs.HttpBinder, session *Session) {
	binder.Bind(http.MethodGet, "/tree", rpcs.HandlerFunc(func(ctx context.Context, v interface{}) (interface{}, error) {
		return session.State(), nil
	}), nil)

	binder.Bind(http.MethodPut, "/tree", rpcs.HandlerFunc(func(ctx context.Context, v interface{}) (interface{}, error) {
		body := v.(*KindRequest)
		kind, err := tree.ParseKind(body.Kind)
		if err != nil {
			return nil, rpcs.HttpBadRequest(ctx, errs.New(errs.ErrorCodeInvalidKind, err.Error()))
		}

		return session.Select(ctx, kind), nil
	}), rpcs.EntityFactoryFunc(func() interface{} { return &KindRequest{} }))

	binder.Bind(http.MethodPost, "/tree/insert", rpcs.HandlerFunc(func(ctx context.Context, v interface{}) (interface{}, error) {
		body := v.(*ValueRequest)
		if body.Value == nil {
			return nil, invalidValue(ctx)
		}

		state, _ := session.Insert(ctx, *body.Value)
		return state, nil
	}), rpcs.EntityFactoryFunc(func() interface{} { return &ValueRequest{} }))

	binder.Bind(http.MethodPost, "/tree/delete", rpcs.HandlerFunc(func(ctx context.Context, v interface{}) (interface{}, error) {
		body := v.(*DeleteRequest)
		if body.Value == nil {
			return nil, invalidValue(ctx)
		}

		state, err := session.Delete(ctx, *body.Value, body.Strict)
		if stderr.Is(err, tree.ErrNotFound) {
			return nil, rpcs.HttpNotFound(ctx, errs.New(errs.ErrorCodeNotFound, err.Error()))
		} else if err != nil {
			return nil, errors.Wrap(err, "failed to delete value")
		}

		return state, nil
	}), rpcs.EntityFactoryFunc(func() interface{} { return &DeleteRequest{} }))

	binder.Bind(http.MethodPost, "/tree/traverse", rpcs.HandlerFunc(func(ctx context.Context, v interface{}) (interface{}, error) {
		body := v.(*TraverseRequest)
		order, err := tree.ParseOrder(body.Order)
		if err != nil {
			return nil, rpcs.HttpBadRequest(ctx, errs.New(errs.ErrorCodeInvalidOrder, err.Error()))
		}

		return session.Traverse(ctx, order), nil
	}), rpcs.EntityFactoryFunc(func() interface{} { return &TraverseRequest{} }))
}

func invalidValue(ctx context.Context) error {
	return rpcs.HttpBadRequest(ctx, errs.New(errs.ErrorCodeInvalidValue, tree.ErrInvalidValue.Error()))
}
