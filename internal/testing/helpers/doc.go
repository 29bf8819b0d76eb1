// Package helpers provides test utilities shared by the seeder and CLI
// tests.
//
// # Mock Backend
//
// Start an in-memory backend reachable over HTTP:
//
//	backend, baseURL := helpers.StartMockBackend(t, mockapi.Config{})
//	url := helpers.DownBackendURL(t) // refuses every connection
//
// # Logging
//
//	logger := helpers.DiscardLogger()
//	logger := helpers.NewLogger(&buf)
package helpers
