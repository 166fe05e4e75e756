package middleware

import (
	"fmt"
	"log"
	"net/http"
)

// Handler is an http handler that signals failure by returning an error
// instead of writing its own failure response.
type Handler func(w http.ResponseWriter, r *http.Request) error

// Report is the terminal error stage. It logs the error and answers with a
// fixed-shape 500, regardless of the error kind.
func Report(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("%s %s failed: %v", r.Method, r.URL.Path, err)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintf(w, "Something went wrong: %v", err)
}

// WrapError adapts a Handler to http.HandlerFunc, routing any returned error
// to Report.
func WrapError(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			Report(w, r, err)
		}
	}
}
