// Package pg manages the PostgreSQL connection pool: connect with retry,
// schema migrations via goose, and a readiness probe for the health
// endpoint.
package pg
