package webserver

import (
	"net/http"
)

// defaultHeaders are set on every response before the wrapped handler runs.
// X-Clacks-Overhead echoes Terry's name as proposed in
// http://www.gnuterrypratchett.com/
//
//	"A man is not dead while his name is still spoken."
var defaultHeaders = map[string]string{
	"X-Clacks-Overhead":      "GNU Terry Pratchett",
	"X-Content-Type-Options": "nosniff",
	"Referrer-Policy":        "same-origin",
}

// HeadersHandler sets the default response headers. It wraps around the actual
// handler which may still override them.
type HeadersHandler struct {
	wrapped http.Handler
}

// ServeHTTP satisfies the http.Handler interface.
func (hh HeadersHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	for name, value := range defaultHeaders {
		writer.Header().Set(name, value)
	}
	hh.wrapped.ServeHTTP(writer, req)
}

// NewHeadersHandler returns a new HeadersHandler, ready for use.
func NewHeadersHandler(handler http.Handler) http.Handler {
	return &HeadersHandler{wrapped: handler}
}
