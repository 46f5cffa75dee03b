// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the small amount of JSON plumbing shared by
// the API handlers: response writing and strict request decoding.
package httpjson

import (
	"encoding/json"
	"io"
	"net/http"
)

// Write sends v as a JSON response with the given status code.
// Encoding failures after the header is written can only be logged by
// the caller's middleware; the error is intentionally dropped here.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// NoContent sends an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Decode reads the request body into dst. Unknown fields are rejected,
// matching the strict payload schemas of this API. The body is drained
// so the connection can be reused.
func Decode(r *http.Request, dst any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
