// Package httpserver wraps http.Server with graceful shutdown, env-driven
// configuration, and a health handler usable as liveness or readiness probe.
package httpserver
