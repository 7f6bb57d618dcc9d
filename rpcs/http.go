// Package rpcs serves the playground operations over HTTP. Requests carry
// JSON bodies, errors are answered with an errors.Error body and every
// response echoes the trace id used in the logs of the request.
package rpcs

import (
	"bytes"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/csePriyanshu/tree-visualizer/logs"
	stderr "github.com/pkg/errors"
)

// HttpHeaderTraceID is the header that carries the trace id of a request,
// so a client can match a tree operation with its log lines
const HttpHeaderTraceID = "X-TRACE-ID"

type HttpPreProcessorResult struct {
	Request  *http.Request
	Continue bool
}

// HttpPreProcessor runs before the handler of a route and can answer the
// request itself, as CORS preflight requests from the browser are.
type HttpPreProcessor interface {
	// ServeHTTP returns Continue false when the response has already been
	// written. The request in the result replaces the incoming one
	ServeHTTP(w http.ResponseWriter, req *http.Request) (HttpPreProcessorResult, error)
}

// HttpMiddleware decodes a request and runs the tree operation bound to it.
// The value it returns is encoded as the response body
type HttpMiddleware interface {
	// ServeHTTP returns the response body, or an error that the route
	// reports with its status code
	ServeHTTP(req *http.Request) (interface{}, error)
}

// HttpMiddlewareFunc allows functions to implement the HttpMiddleware interface
type HttpMiddlewareFunc func(req *http.Request) (interface{}, error)

func (f HttpMiddlewareFunc) ServeHTTP(req *http.Request) (interface{}, error) {
	return f(req)
}

// MethodHandlers keeps the handlers for each of the methods
type MethodHandlers map[string]HttpMiddleware

// Add a new handler to the set
func (h MethodHandlers) Add(method string, middleware HttpMiddleware) {
	h[method] = middleware
}

// HttpRoute is a single path of the playground, such as /tree, with one
// handler per accepted method
type HttpRoute struct {
	logger        logs.Logger
	handlers      map[string]HttpMiddleware
	preProcessors []HttpPreProcessor
	encoder       Encoder
}

// HttpRouteProps are the required properties to create
// a new HttpRoute instance
type HttpRouteProps struct {
	Logger        logs.Logger
	Encoder       Encoder
	Handlers      MethodHandlers
	PreProcessors []HttpPreProcessor
}

// NewHttpRoute creates a new route instance
func NewHttpRoute(props HttpRouteProps) *HttpRoute {
	return &HttpRoute{
		logger:        props.Logger,
		handlers:      props.Handlers,
		preProcessors: props.PreProcessors,
		encoder:       props.Encoder,
	}
}

// HasHandler returns true if the route has a handler that
// would handle the provided method
func (h *HttpRoute) HasHandler(method string) bool {
	_, ok := h.handlers[method]
	return ok
}

// ServeHTTP runs the pre processors and the handler for the method, and
// logs the outcome at a level that follows the status code
func (h *HttpRoute) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	result := HttpPreProcessorResult{Continue: true, Request: req}
	var err error
	for _, preProcessor := range h.preProcessors {
		result, err = preProcessor.ServeHTTP(res, result.Request)
		if err != nil {
			h.logger.Warn(req.Context(), "pre processor failed", logs.MapFields{
				"path":   req.URL.Path,
				"method": req.Method,
				"err":    err.Error(),
			})
			return
		}

		if !result.Continue {
			return
		}
	}

	req = result.Request
	status, err := h.serveHTTP(res, req)
	fields := logs.MapFields{
		"path":   req.URL.Path,
		"method": req.Method,
		"status": status,
	}
	if err != nil {
		fields["err"] = err.Error()
	}

	switch {
	case status >= http.StatusOK && status <= 299:
		h.logger.Info(req.Context(), "success", fields)
	case status >= 400:
		h.logger.Warn(req.Context(), "error", fields)
	default:
		h.logger.Debug(req.Context(), "logic", fields)
	}
}

func (h *HttpRoute) serveHTTP(res http.ResponseWriter, req *http.Request) (int, error) {
	handler, ok := h.handlers[req.Method]
	if !ok {
		return reportError(h.encoder, res, req, HttpMethodNotAllowed(req.Context(), nil))
	}

	v, err := handler.ServeHTTP(req)
	if err != nil {
		return reportAnyError(h.encoder, res, req, err)
	}

	return h.reportSuccess(res, req, v)
}

func (h *HttpRoute) reportSuccess(
	res http.ResponseWriter,
	req *http.Request,
	body interface{},
) (int, error) {
	res.Header().Add(HttpHeaderTraceID, strconv.FormatInt(logs.GetTraceID(req.Context()), 10))

	if body == nil {
		res.WriteHeader(http.StatusNoContent)
		return http.StatusNoContent, nil
	}

	// encode before writing the header so that encoding failures
	// can still be reported with the right status
	var buf bytes.Buffer
	if err := h.encoder.Encode(&buf, body); err != nil {
		res.WriteHeader(http.StatusInternalServerError)
		return 0, err
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)
	if _, err := res.Write(buf.Bytes()); err != nil {
		return http.StatusOK, err
	}

	return http.StatusOK, nil
}

func reportAnyError(enc Encoder, res http.ResponseWriter, req *http.Request, err error) (int, error) {
	var httpErr *HttpError
	if stderr.As(err, &httpErr) {
		return reportError(enc, res, req, httpErr)
	}

	return reportError(enc, res, req, HttpInternalServerError(req.Context(), err))
}

func reportError(enc Encoder, res http.ResponseWriter, req *http.Request, err *HttpError) (int, error) {
	res.Header().Add(HttpHeaderTraceID, strconv.FormatInt(logs.GetTraceID(req.Context()), 10))

	if err.Cause == nil {
		res.WriteHeader(err.StatusCode)
		return err.StatusCode, err
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(err.StatusCode)
	if eerr := enc.Encode(res, err.body()); eerr != nil {
		return err.StatusCode, stderr.Wrap(eerr, "failed to encode error response")
	}

	return err.StatusCode, err
}

// HttpRouter dispatches requests to the routes by exact path. It assigns
// the trace id of each request and turns panics in handlers into 500
// responses
type HttpRouter struct {
	encoder Encoder
	mux     map[string]*HttpRoute
	logger  logs.Logger
}

// HasRoute returns true if the router has a route to
// handle a request to the path
func (h *HttpRouter) HasRoute(path string) bool {
	_, ok := h.mux[path]
	return ok
}

// HasHandler returns true if the router has a handle to
// handle a request to the path and method
func (h *HttpRouter) HasHandler(path, method string) bool {
	route, ok := h.mux[path]
	if !ok {
		return false
	}

	return route.HasHandler(method)
}

// ServeHTTP is the implementation of http.Handler for HttpRouter
func (h *HttpRouter) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	path := req.URL.EscapedPath()
	method := req.Method
	traceID := ParseTraceID(req.Header.Get(HttpHeaderTraceID))
	req = req.WithContext(logs.WithTraceID(req.Context(), traceID))

	h.logger.Debug(req.Context(), "", logs.MapFields{
		"path":      path,
		"method":    method,
		"call_type": "HttpRequestHandleAttempt",
	})

	defer func() {
		if r := recover(); r != nil {
			var err error
			stacktrace := debug.Stack()

			switch x := r.(type) {
			case string:
				err = stderr.New(x)
			case error:
				err = x
			default:
				err = fmt.Errorf("unknown panic %+v", r)
			}

			h.logger.Error(req.Context(), "unexpected panic caught", logs.MapFields{
				"path":       path,
				"method":     method,
				"call_type":  "HttpRequestHandleFailure",
				"err":        err.Error(),
				"stacktrace": string(stacktrace),
			})
			// the `err` generated above is an internal error that should not
			// be exposed to the client. Instead, this we just return a generic
			// error
			reportAnyError(h.encoder, res, req, stderr.New("Unexpected error occurred."))
		}
	}()

	route, ok := h.mux[path]
	if !ok {
		reportError(h.encoder, res, req, HttpNotFound(req.Context(), nil))
		return
	}

	route.ServeHTTP(res, req)
}

// HttpHandlerFactory wraps an rpc Handler into the HttpMiddleware that
// decodes its request body
type HttpHandlerFactory interface {
	Make(factory EntityFactory, handler Handler) HttpMiddleware
}

// HttpHandlerFactoryFunc to allow functions to act as an HttpHandlerFactory
type HttpHandlerFactoryFunc func(factory EntityFactory, handler Handler) HttpMiddleware

// Make is the implementation of HttpHandlerFactory for HttpHandlerFactoryFunc
func (f HttpHandlerFactoryFunc) Make(factory EntityFactory, handler Handler) HttpMiddleware {
	return f(factory, handler)
}

// HttpBinder collects the playground routes and builds the HttpRouter
// that serves them. Routes cannot be added to a router once built
type HttpBinder struct {
	handlers      map[string]MethodHandlers
	preProcessors []HttpPreProcessor
	encoder       Encoder
	logger        logs.Logger
	factory       HttpHandlerFactory
}

// Bind registers the handler for requests with the method to the uri
func (b *HttpBinder) Bind(method string, uri string, handler Handler, factory EntityFactory) {
	route, ok := b.handlers[uri]
	if !ok {
		route = make(MethodHandlers)
		b.handlers[uri] = route
	}

	route.Add(method, b.factory.Make(factory, handler))
}

// AddPreProcessor adds a pre processor that is run by every route
// before its handler
func (b *HttpBinder) AddPreProcessor(preProcessor HttpPreProcessor) {
	b.preProcessors = append(b.preProcessors, preProcessor)
}

// Build creates the HttpRouter with the routes bound so far. The binder
// starts empty again afterwards
func (b *HttpBinder) Build() *HttpRouter {
	mux := make(map[string]*HttpRoute)

	for path, handlers := range b.handlers {
		mux[path] = NewHttpRoute(HttpRouteProps{
			Logger:        b.logger.ForClass("http", "route"),
			Encoder:       b.encoder,
			Handlers:      handlers,
			PreProcessors: b.preProcessors,
		})
	}

	// routes bound from now on belong to the next router
	b.handlers = make(map[string]MethodHandlers)

	return &HttpRouter{
		encoder: b.encoder,
		logger:  b.logger.ForClass("http", "router"),
		mux:     mux,
	}
}

// HttpBinderProperties are the properties used to create
// a new instance of an HttpBinder
type HttpBinderProperties struct {
	Encoder        Encoder
	Logger         logs.Logger
	HandlerFactory HttpHandlerFactory
}

// NewHttpBinder creates an empty HttpBinder. It panics when one of
// the properties is missing
func NewHttpBinder(properties HttpBinderProperties) *HttpBinder {
	if properties.Encoder == nil {
		panic("Encoder must be set")
	}

	if properties.Logger == nil {
		panic("Logger must be set")
	}

	if properties.HandlerFactory == nil {
		panic("HandlerFactory must be set")
	}

	return &HttpBinder{
		handlers: make(map[string]MethodHandlers),
		encoder:  properties.Encoder,
		logger:   properties.Logger,
		factory:  properties.HandlerFactory,
	}
}
