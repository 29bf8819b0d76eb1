package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidKey       = errors.New("invalid key")
)

// roleAliases maps role names that mean the same thing across backends
var roleAliases = map[string]string{
	"ADMIN": "ADMINISTRADOR",
}

// Claims represents JWT claims issued by the events backend
type Claims struct {
	gojwt.RegisteredClaims

	// Custom claims
	Email  string   `json:"email,omitempty"`
	UserID string   `json:"user_id,omitempty"`
	Role   string   `json:"role,omitempty"`
	Rol    string   `json:"rol,omitempty"`
	Roles  []string `json:"roles,omitempty"`
}

// RoleNames returns every granted role, upper-cased, without the Spring
// Security ROLE_ prefix and without duplicates.
func (c *Claims) RoleNames() []string {
	var raw []string
	raw = append(raw, strings.Split(c.Role, ",")...)
	raw = append(raw, strings.Split(c.Rol, ",")...)
	raw = append(raw, c.Roles...)

	seen := make(map[string]bool)
	var roles []string
	for _, r := range raw {
		r = normalizeRole(r)
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		roles = append(roles, r)
	}
	return roles
}

// HasRole reports whether role was granted, treating ADMIN and
// ADMINISTRADOR as the same role
func (c *Claims) HasRole(role string) bool {
	want := canonicalRole(normalizeRole(role))
	if want == "" {
		return false
	}
	for _, r := range c.RoleNames() {
		if canonicalRole(r) == want {
			return true
		}
	}
	return false
}

// ExpiresIn returns the remaining lifetime at now, or 0 when the token has
// no expiry or is already expired
func (c *Claims) ExpiresIn(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	d := c.ExpiresAt.Time.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Inspect decodes the claims of a token without verifying its signature.
// The seeder never holds the backend key; claims are only reported.
func Inspect(token string) (*Claims, error) {
	var claims Claims
	if _, _, err := gojwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return &claims, nil
}

// Service signs and validates HS256 tokens
type Service struct {
	secret     []byte
	issuer     string
	expiration time.Duration
}

// Config holds JWT service configuration
type Config struct {
	Secret     string
	Issuer     string
	Expiration time.Duration
}

// NewService creates a new JWT service
func NewService(cfg Config) (*Service, error) {
	if cfg.Secret == "" {
		return nil, ErrInvalidKey
	}
	if cfg.Expiration <= 0 {
		return nil, fmt.Errorf("expiration must be positive, got %v", cfg.Expiration)
	}
	return &Service{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		expiration: cfg.Expiration,
	}, nil
}

// Sign creates a signed JWT token
func (s *Service) Sign(claims Claims) (string, error) {
	now := time.Now()

	claims.Issuer = s.issuer
	claims.IssuedAt = gojwt.NewNumericDate(now)
	claims.NotBefore = gojwt.NewNumericDate(now)
	if claims.ExpiresAt == nil {
		claims.ExpiresAt = gojwt.NewNumericDate(now.Add(s.expiration))
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign: %w", err)
	}
	return signed, nil
}

// Validate validates a JWT token and returns the claims
func (s *Service) Validate(tokenString string) (*Claims, error) {
	var claims Claims
	_, err := gojwt.ParseWithClaims(tokenString, &claims, func(*gojwt.Token) (any, error) {
		return s.secret, nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithIssuer(s.issuer),
		gojwt.WithExpirationRequired(),
	)
	switch {
	case err == nil:
		return &claims, nil
	case errors.Is(err, gojwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
		return nil, ErrInvalidSignature
	default:
		return nil, ErrInvalidToken
	}
}

// GetExpiration returns the token expiration duration
func (s *Service) GetExpiration() time.Duration {
	return s.expiration
}

func normalizeRole(role string) string {
	role = strings.ToUpper(strings.TrimSpace(role))
	return strings.TrimPrefix(role, "ROLE_")
}

func canonicalRole(role string) string {
	if alias, ok := roleAliases[role]; ok {
		return alias
	}
	return role
}
