// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, the operation dispatcher, and middleware used by
// the query API. Cross-cutting concerns such as the authentication gate,
// request tracing, and access logging are handled in this package before
// requests are delegated to the service layer.
package http
