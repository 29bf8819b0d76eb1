// Package main signs session tokens for the mock backend, or decodes the
// claims of any backend token.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cudeca/eventos-seed/internal/config"
	"github.com/cudeca/eventos-seed/pkg/jwt"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inspect := fs.String("inspect", "", "Decode the claims of this token instead of signing one")
	userID := fs.String("user", "1", "User ID for the token")
	email := fs.String("email", cfg.User.Email, "Email for the token")
	roles := fs.String("rol", "COMPRADOR,ADMINISTRADOR", "Comma separated roles")
	expMins := fs.Int("exp", 60*24, "Token expiration in minutes")
	outputJSON := fs.Bool("json", false, "Output as JSON")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *inspect != "" {
		claims, err := jwt.Inspect(*inspect)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		printClaims(stdout, claims, *outputJSON)
		return 0
	}

	if *expMins <= 0 {
		fmt.Fprintln(stderr, "Error: -exp must be positive")
		return 1
	}

	jwtService, err := jwt.NewService(jwt.Config{
		Secret:     cfg.MockAPI.JWTSecret,
		Issuer:     "eventos-mockapi",
		Expiration: time.Duration(*expMins) * time.Minute,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error creating JWT service: %v\n", err)
		return 1
	}

	claims := jwt.Claims{
		UserID: *userID,
		Email:  *email,
		Rol:    *roles,
	}
	claims.Subject = *userID

	token, err := jwtService.Sign(claims)
	if err != nil {
		fmt.Fprintf(stderr, "Error signing token: %v\n", err)
		return 1
	}

	ttl := jwtService.GetExpiration()
	if *outputJSON {
		output := map[string]any{
			"token":      token,
			"token_type": "Bearer",
			"expires_in": int(ttl.Seconds()),
			"user_id":    *userID,
			"email":      *email,
			"rol":        *roles,
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
		return 0
	}

	fmt.Fprintln(stdout, "Mock Backend Token")
	fmt.Fprintln(stdout, "==================")
	fmt.Fprintf(stdout, "User ID:  %s\n", *userID)
	fmt.Fprintf(stdout, "Email:    %s\n", *email)
	fmt.Fprintf(stdout, "Roles:    %s\n", *roles)
	fmt.Fprintf(stdout, "Expires:  %s\n", time.Now().Add(ttl).Format(time.RFC3339))
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Token:")
	fmt.Fprintln(stdout, token)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  curl -X PATCH -H 'Authorization: Bearer %s' %s/eventos/1/publicar\n", abbreviate(token), cfg.API.BaseURL)
	return 0
}

func printClaims(w io.Writer, c *jwt.Claims, asJSON bool) {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(c)
		return
	}

	fmt.Fprintf(w, "Subject:  %s\n", c.Subject)
	fmt.Fprintf(w, "Email:    %s\n", c.Email)
	fmt.Fprintf(w, "Roles:    %s\n", strings.Join(c.RoleNames(), ","))
	if c.ExpiresAt != nil {
		fmt.Fprintf(w, "Expires:  %s (in %s)\n", c.ExpiresAt.Time.Format(time.RFC3339), c.ExpiresIn(time.Now()).Round(time.Second))
	}
	fmt.Fprintf(w, "Admin:    %t\n", c.HasRole("ADMIN"))
}

func abbreviate(token string) string {
	if len(token) <= 50 {
		return token
	}
	return token[:50] + "..."
}
