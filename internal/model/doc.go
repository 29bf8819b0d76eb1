// Package model defines the payloads exchanged with the events backend.
//
// # Requests
//
//   - Credentials: account sent to /auth/register; Login() reduces it to
//     the LoginRequest sent to /auth/login
//   - Event: fundraising event sent to POST /eventos
//
// # Responses
//
//   - LoginResponse: raw login object; Token() looks the session token up
//     under "token" then "access_token"
//   - CreatedEvent: creation response; ID() normalises numeric and string
//     identifiers
//
// # Amounts
//
// Fundraising targets are held in cents and written as JSON numbers with
// two decimals:
//
//	model.Euros(5000) // 5000.00
//
// # Error Types
//
// Non-success responses surface as *APIError. When the backend answers with
// RFC 9457 Problem Details the decoded body is attached:
//
//	var apiErr *model.APIError
//	if errors.As(err, &apiErr) && apiErr.Problem != nil {
//	    log.Println(apiErr.Problem.Detail)
//	}
package model
