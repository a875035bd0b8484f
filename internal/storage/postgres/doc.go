// Package postgres implements auth.Store on a pgx connection pool and
// carries the goose schema migrations for the auth tables.
package postgres
