package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

// Wrap applies middlewares in order, so the last one listed handles the
// request first.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}
