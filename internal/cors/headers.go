// Package cors holds the fixed header set attached to every response the
// project handler produces.
package cors

import "net/http"

const (
	AllowOrigin  = "*"
	AllowHeaders = "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token"
	AllowMethods = "GET,POST,PUT,DELETE,OPTIONS"
	ContentType  = "application/json"
)

// headers is built once and shared by reference. Nothing may write to it.
var headers = map[string]string{
	"Content-Type":                 ContentType,
	"Access-Control-Allow-Origin":  AllowOrigin,
	"Access-Control-Allow-Headers": AllowHeaders,
	"Access-Control-Allow-Methods": AllowMethods,
}

// Headers returns the shared CORS header set. Callers must treat the map as
// read-only.
func Headers() map[string]string {
	return headers
}

// Apply copies the header set onto an outgoing net/http header.
func Apply(h http.Header) {
	for k, v := range headers {
		h.Set(k, v)
	}
}
