// Package jwt issues and verifies the platform's HS256 access tokens.
//
// Tokens are standard three-part JWTs signed with HMAC-SHA256. The claims
// payload carries the account identity (user id, email, admin flag) plus the
// expiration timestamp. Verification recovers exactly the identity the token
// was issued for, or fails; there is no refresh or revocation at this layer,
// sessions handle that.
//
// Middleware guards routes that require an authenticated caller. It accepts
// the token from the Authorization header ("Bearer <token>") or, as a
// fallback, from the "token" query parameter; the header always wins when
// both are present.
package jwt
