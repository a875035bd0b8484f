// Package redis connects to the Redis server backing the shared rate
// limiter and exposes a readiness probe for the health endpoint.
package redis
