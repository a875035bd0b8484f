// Package schema declares request shapes and validates inbound requests
// against them before a handler runs.
//
// A Schema names the expected fields of a request's JSON body, URL params,
// and query string. Each field carries a parse function that both validates
// and type-coerces the raw value. Schemas compose: merging the email schema
// with the password schema yields the login schema, and a field name that
// appears in both sides is rejected at registration time, never at request
// time.
//
// Middleware runs the fields in declared order (body, then query, then URL
// params) and stops at the first failure, answering 400 with that field's
// message. On success the coerced values are attached to the request context
// as a Validated value; handlers read them with FromContext and never touch
// the raw request payload again.
package schema
