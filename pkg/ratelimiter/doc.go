// Package ratelimiter implements a token bucket rate limiter with pluggable
// storage. The in-memory store serves a single instance; the redis store
// shares the budget across replicas. The HTTP middleware guards sensitive
// routes (the magic-link login endpoint) and answers over-budget requests
// with a 429 envelope.
package ratelimiter
