// Package jwt provides JSON Web Token utilities for the seeder and the mock
// backend.
//
// # Claim Inspection
//
// The seeder never verifies tokens; it decodes them to report what the
// backend granted:
//
//	claims, err := jwt.Inspect(token)
//	if err == nil && !claims.HasRole("ADMIN") {
//	    // registered, but not as an administrator
//	}
//
// Opaque tokens are not JWTs and make Inspect return ErrInvalidToken.
//
// # Token Generation
//
// The mock backend issues HS256 tokens:
//
//	service, err := jwt.NewService(jwt.Config{
//	    Secret:     "mockapi-dev-secret",
//	    Issuer:     "eventos-mockapi",
//	    Expiration: 24 * time.Hour,
//	})
//	token, err := service.Sign(jwt.Claims{Email: email, Rol: "COMPRADOR"})
//	claims, err := service.Validate(token)
//
// # Roles
//
// Roles may arrive as "role", "rol" (comma separated) or "roles". RoleNames
// merges them; ADMIN and ADMINISTRADOR are treated as the same role.
package jwt
