// Package client is a thin REST client for the events backend.
//
// Endpoints, relative to the configured base URL (host:port + /api):
//
//	POST  /auth/register          Register      200/201
//	POST  /auth/login             Login         200
//	POST  /eventos                CreateEvent   200/201, bearer
//	PATCH /eventos/{id}/publicar  PublishEvent  200, bearer
//
// Any other status is returned as *model.APIError with the response body.
// Transport failures are wrapped with the operation name. The client never
// retries.
package client
