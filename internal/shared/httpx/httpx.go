package httpx

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

type HandlerFunc func(http.ResponseWriter, *http.Request) error

var ErrUnauthorized = errors.New("unauthorized")

type badRequestError struct{ msg string }

func (e *badRequestError) Error() string { return e.msg }

// BadRequestf marks an error as a client fault so Wrap answers 400 instead of 500.
func BadRequestf(format string, args ...any) error {
	return &badRequestError{msg: fmt.Sprintf(format, args...)}
}

// Wrap turns an error-returning handler into an http.Handler, mapping
// the error to a status code and a JSON body.
func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		code := http.StatusInternalServerError
		var br *badRequestError
		switch {
		case errors.Is(err, ErrUnauthorized):
			code = http.StatusUnauthorized
		case errors.As(err, &br):
			code = http.StatusBadRequest
		}
		WriteJSON(w, map[string]string{"error": err.Error()}, code)
	})
}

func Decode[T any](r *http.Request) (T, error) {
	var t T
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		return t, BadRequestf("invalid json body: %v", err)
	}
	return t, nil
}

func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func QueryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// AdminMiddleware gates mutating routes behind the x-admin-password header.
// Constant-time compare to prevent timing attacks.
func AdminMiddleware(password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("x-admin-password")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(password)) != 1 {
				WriteJSON(w, map[string]string{"error": "unauthorized"}, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORS allows any origin; the blog frontend is served from a different host.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, x-admin-password")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
