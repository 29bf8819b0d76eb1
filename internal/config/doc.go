// Package config manages configuration for the seeder and the mock backend.
//
// Configuration is read from environment variables. A .env file in the
// working directory is loaded first when present; variables already set in
// the environment win.
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - APIConfig: target backend base URL, HTTP timeout, request pacing
//   - UserConfig: the account that is registered and logged in
//   - LogConfig: slog level and handler format
//   - MockAPIConfig: the in-memory backend served by cmd/mockapi
//
// # Environment Variables
//
//	SEED_API_URL         - backend base URL including /api (default: http://localhost:8080/api)
//	SEED_HTTP_TIMEOUT    - per-request timeout, 0 disables (default: 30s)
//	SEED_RATE_LIMIT      - requests per second, 0 disables (default: 0)
//	SEED_USER_EMAIL      - login email (default: admin@test.com)
//	SEED_USER_PASSWORD   - login password (default: Password123!)
//	SEED_USER_ROLE       - role requested at registration (default: ADMIN)
//	LOG_LEVEL            - debug, info, warn, error (default: info)
//	LOG_FORMAT           - text or json (default: text)
//	MOCKAPI_PORT         - mock backend port (default: 8080)
//	MOCKAPI_TOKEN_FIELD  - login response field carrying the token (default: token)
package config
