package model

import (
	"encoding/json"
	"strings"
)

// Credentials is the account registered against /auth/register
type Credentials struct {
	Name     string `json:"nombre"`
	Surname  string `json:"apellidos"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"rol,omitempty"`
}

// Login reduces the credentials to what /auth/login accepts
func (c Credentials) Login() LoginRequest {
	return LoginRequest{Email: c.Email, Password: c.Password}
}

// LoginRequest is the body of /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenFields lists the login response fields that may carry the session
// token, in lookup order.
var tokenFields = []string{"token", "access_token"}

// LoginResponse is the decoded body of a successful login. The backend is
// not consistent about the token field name, so the raw object is kept.
type LoginResponse map[string]json.RawMessage

// Token returns the session token, or "" when no known field carries a
// non-empty string.
func (r LoginResponse) Token() string {
	for _, field := range tokenFields {
		if s := rawString(r[field]); s != "" {
			return s
		}
	}
	return ""
}

// User returns the account summary embedded in the response, if any
func (r LoginResponse) User() *UserSummary {
	raw, ok := r["user"]
	if !ok {
		return nil
	}
	var u UserSummary
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil
	}
	return &u
}

// UserSummary is the account the backend returns alongside a token
type UserSummary struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Email  string          `json:"email"`
	Nombre string          `json:"nombre"`
	Rol    string          `json:"rol,omitempty"`
	Roles  []string        `json:"roles,omitempty"`
}

// RoleNames returns the granted roles. The backend sends either a roles
// array or a comma separated rol string.
func (u *UserSummary) RoleNames() []string {
	if u == nil {
		return nil
	}
	if len(u.Roles) > 0 {
		return u.Roles
	}
	var roles []string
	for _, r := range strings.Split(u.Rol, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
