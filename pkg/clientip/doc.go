// Package clientip extracts the originating client IP from an HTTP request,
// preferring proxy headers over the socket address. Session rows record the
// result for audit purposes.
package clientip
