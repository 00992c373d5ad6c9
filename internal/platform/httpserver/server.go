// Package httpserver builds the console's net/http server with conservative timeouts.
package httpserver

import (
	"net/http"
	"time"
)

// New returns an *http.Server for handler. Write timeout leaves room for report rendering.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
