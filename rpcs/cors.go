package rpcs

import (
	"net/http"

	"github.com/rs/cors"
)

// HttpCorsPreProcessorProps properties used to define the behaviour
// of the CORS implementation
type HttpCorsPreProcessorProps struct {
	// Enabled if true the HttpCorsHandler will verify requests, if false
	// the handler will just pass on a request to the next middleware
	Enabled bool

	// AllowedOrigins is a list of origins a cross-domain request can be executed from.
	// If the special "*" value is present in the list, all origins will be allowed.
	// An origin may contain a wildcard (*) to replace 0 or more characters
	// (i.e.: http://*.domain.com). Only one wildcard can be used per origin.
	AllowedOrigins []string

	// AllowedMethods is a list of methods the client is allowed to use with
	// cross-domain requests. Default value is simple methods (HEAD, GET and POST).
	AllowedMethods []string

	// AllowedHeaders is list of non simple headers the client is allowed to use with
	// cross-domain requests.
	AllowedHeaders []string

	// ExposedHeaders indicates which headers are safe to expose to the API of a CORS
	// API specification
	ExposedHeaders []string

	// MaxAge indicates how long (in seconds) the results of a preflight request
	// can be cached
	MaxAge int
}

// HttpCorsPreProcessor handles CORS https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS
// for requests
type HttpCorsPreProcessor struct {
	cors    *cors.Cors
	enabled bool
}

// NewHttpCorsPreProcessor creates a new instance of a Cors Http PreProcessor
func NewHttpCorsPreProcessor(props HttpCorsPreProcessorProps) *HttpCorsPreProcessor {
	preProcessor := cors.New(cors.Options{
		AllowedOrigins:     props.AllowedOrigins,
		AllowedMethods:     props.AllowedMethods,
		AllowedHeaders:     props.AllowedHeaders,
		ExposedHeaders:     props.ExposedHeaders,
		MaxAge:             props.MaxAge,
		OptionsPassthrough: true,
	})

	return &HttpCorsPreProcessor{
		cors:    preProcessor,
		enabled: props.Enabled,
	}
}

// ServeHTTP is the implementation of HttpPreProcessor for HttpCorsPreProcessor
func (h *HttpCorsPreProcessor) ServeHTTP(w http.ResponseWriter, req *http.Request) (HttpPreProcessorResult, error) {
	if !h.enabled {
		return HttpPreProcessorResult{Request: req, Continue: true}, nil
	}

	result := HttpPreProcessorResult{Request: req}
	h.cors.ServeHTTP(w, req, func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodOptions {
			// preflight requests are answered here, the cors headers
			// have already been written
			w.WriteHeader(http.StatusOK)
			return
		}

		result.Continue = true
		result.Request = req
	})

	return result, nil
}
