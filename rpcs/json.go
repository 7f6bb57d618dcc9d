package rpcs

import (
	"net/http"
	"strings"

	"github.com/csePriyanshu/tree-visualizer/logs"
	rw "github.com/csePriyanshu/tree-visualizer/readwrite"
)

// HttpJsonHandler handles requests that expect a body in the JSON format,
// handles the body and executes the final handler with the expected type
type HttpJsonHandler struct {
	limit   uint
	decoder JsonDecoder
	handler Handler
	logger  logs.Logger
	factory EntityFactory
}

type HttpJsonHandlerProperties struct {
	// Limit is the maximum number of bytes an Http body can have. Bodies
	// with a higher limit will fail to deserialize and be rejected
	Limit uint

	// Handler is the rpc handler that will be used to handle the request
	Handler Handler

	// Logger
	Logger logs.Logger

	// Factory for creating new instances of objects to which the Http body
	// will be deserialized. Those instances will be passed to the handler.
	// A nil Factory is used for requests without body
	Factory EntityFactory
}

// NewHttpJsonHandler creates a new instance of an rpc handler
// that deserializes json objects into Go objects
func NewHttpJsonHandler(properties HttpJsonHandlerProperties) *HttpJsonHandler {
	limit := properties.Limit

	// set a reasonable default limit in case Limit is not set
	if limit == 0 {
		limit = 1 << 14 // 16 KB
	}

	if properties.Handler == nil {
		panic("handler must be set")
	}

	if properties.Logger == nil {
		panic("logger must be set")
	}

	factory := properties.Factory
	if factory == nil {
		factory = EntityFactoryFunc(func() interface{} { return nil })
	}

	return &HttpJsonHandler{
		limit:   limit,
		decoder: JsonDecoder{},
		handler: properties.Handler,
		logger:  properties.Logger.ForClass("http", "HttpJsonHandler"),
		factory: factory,
	}
}

// NewHttpJsonHandlerFactory returns a factory that wraps handlers in
// an HttpJsonHandler with the provided body limit
func NewHttpJsonHandlerFactory(logger logs.Logger, limit uint) HttpHandlerFactory {
	return HttpHandlerFactoryFunc(func(factory EntityFactory, handler Handler) HttpMiddleware {
		return NewHttpJsonHandler(HttpJsonHandlerProperties{
			Limit:   limit,
			Handler: handler,
			Logger:  logger,
			Factory: factory,
		})
	})
}

// ServeHTTP is the implementation of HttpMiddleware for HttpJsonHandler
func (h *HttpJsonHandler) ServeHTTP(req *http.Request) (interface{}, error) {
	// verify that content length is set and it is correct
	if req.ContentLength < 0 {
		return nil, &HttpError{Cause: ErrHttpContentLengthMissing, StatusCode: http.StatusBadRequest, Message: "Bad Request"}
	}

	if uint64(req.ContentLength) > uint64(h.limit) {
		return nil, &HttpError{Cause: ErrHttpContentLengthExceeds, StatusCode: http.StatusBadRequest, Message: "Bad Request"}
	}

	// verify that content type is set and it is correct
	contentType := req.Header.Get("Content-Type")
	if req.ContentLength > 0 && !strings.HasPrefix(contentType, "application/json") {
		return nil, &HttpError{Cause: ErrHttpContentTypeNotJSON, StatusCode: http.StatusBadRequest, Message: "Bad Request"}
	}

	// parse body into Go object
	body := h.factory.Create()
	if body == nil && req.ContentLength > 0 {
		return nil, &HttpError{Cause: ErrHttpHandleExpectsNoBody, StatusCode: http.StatusBadRequest, Message: "Bad Request"}
	}

	if body != nil && req.ContentLength > 0 {
		if err := h.decoder.DecodeWithLimit(req.Body, body, rw.ReadLimitProps{
			Limit:        req.ContentLength,
			FailOnExceed: true,
		}); err != nil {
			h.logger.Debug(req.Context(), "failed to decode json", logs.MapFields{
				"path":           req.URL.EscapedPath(),
				"method":         req.Method,
				"content_length": req.ContentLength,
				"call_type":      "HttpJsonRequestHandleFailure",
				"err":            err.Error(),
			})
			return nil, &HttpError{Cause: ErrHttpDecodeJSON, StatusCode: http.StatusBadRequest, Message: "Bad Request"}
		}
	}

	// provide the parsed body to the handler and handle execution
	return h.handler.Handle(req.Context(), body)
}
