package mockapi

import (
	"errors"
	"strings"

	"github.com/cudeca/eventos-seed/internal/model"
	"github.com/cudeca/eventos-seed/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// authenticate validates the bearer token and stores its claims in the
// gin context
func (s *Server) authenticate(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		writeProblem(c, model.NewUnauthorizedError("missing authorization header"))
		return
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		writeProblem(c, model.NewUnauthorizedError("invalid authorization header format"))
		return
	}

	claims, err := s.tokens.Validate(parts[1])
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			writeProblem(c, model.NewUnauthorizedError("token expired"))
		case errors.Is(err, jwt.ErrInvalidSignature):
			writeProblem(c, model.NewUnauthorizedError("invalid token signature"))
		default:
			writeProblem(c, model.NewUnauthorizedError("invalid token"))
		}
		return
	}

	c.Set(claimsKey, claims)
	c.Next()
}

// requireRole rejects authenticated requests whose token lacks role
func requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !claimsFrom(c).HasRole(role) {
			writeProblem(c, model.NewForbiddenError("role "+role+" required"))
			return
		}
		c.Next()
	}
}

// claimsFrom returns the claims set by authenticate, or empty claims
func claimsFrom(c *gin.Context) *jwt.Claims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*jwt.Claims); ok {
			return claims
		}
	}
	return &jwt.Claims{}
}
