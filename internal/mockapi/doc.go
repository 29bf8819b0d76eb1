// Package mockapi is an in-memory stand-in for the events backend.
//
// It serves the same REST contract under /api so the seeder can run without
// the real service:
//
//	POST  /api/auth/register          201 account, 409 duplicate email
//	POST  /api/auth/login             200 {token|access_token, user}, 401
//	GET   /api/eventos                200 events in creation order
//	POST  /api/eventos                201 draft event (bearer)
//	PATCH /api/eventos/{id}/publicar  200 published event (bearer), 404
//
// Errors are RFC 9457 problem documents. Passwords are stored as bcrypt
// hashes and sessions are HS256 tokens from pkg/jwt carrying the granted
// roles in the "rol" claim, comma separated.
//
// Routing uses gin; request ids, access logging, panic recovery and optional
// per-client rate limiting come from internal/middleware wrapped around the
// router.
package mockapi
