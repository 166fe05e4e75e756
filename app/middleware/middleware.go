// Package middleware implements the ordered request pipeline: static assets,
// body decoding, logging, panic recovery and the terminal error reporter.
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const bodyKey contextKey = "decodedBody"

// Chain wraps h in the given stages. The first stage runs first.
func Chain(h http.Handler, stages ...func(http.Handler) http.Handler) http.Handler {
	for i := len(stages) - 1; i >= 0; i-- {
		h = stages[i](h)
	}
	return h
}

// Recover converts a panicking stage into a reported error instead of
// killing the process.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				Report(w, r, fmt.Errorf("%v", v))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Static serves files from dir when the request path names one, and falls
// through to the next stage otherwise.
func Static(dir string) func(http.Handler) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				name := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
				if info, err := os.Stat(name); err == nil && !info.IsDir() {
					fs.ServeHTTP(w, r)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// JSONBody decodes an application/json request body into a flat string map
// carried on the request context. A malformed body is reported, not ignored.
func JSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if ct == "application/json" && r.Body != nil {
			var body map[string]string
			err := json.NewDecoder(r.Body).Decode(&body)
			if err != nil && err != io.EOF {
				Report(w, r, err)
				return
			}
			if body != nil {
				r = r.WithContext(context.WithValue(r.Context(), bodyKey, body))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// FormBody parses url-encoded form submissions ahead of the handlers.
func FormBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if ct == "application/x-www-form-urlencoded" {
			if err := r.ParseForm(); err != nil {
				Report(w, r, err)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequestLog records the method and path of each request with a short
// per-request ID.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[%s] %s %s", uuid.New().String()[:8], r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// Timestamp records the wall-clock time each request arrived.
func Timestamp(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Println("Request at", time.Now().Format(time.RFC3339))
		next.ServeHTTP(w, r)
	})
}

// BodyValue returns the named field from the decoded JSON body, falling back
// to the parsed form.
func BodyValue(r *http.Request, key string) string {
	if body, ok := r.Context().Value(bodyKey).(map[string]string); ok {
		if v, ok := body[key]; ok {
			return v
		}
	}
	return r.PostFormValue(key)
}
