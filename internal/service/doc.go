// Package service implements the seeding workflow.
//
// The Seeder drives the backend through the API interface in two steps:
//
//  1. RegisterAndLogin registers the configured account, ignoring any
//     failure, and logs in to obtain a session token.
//  2. CreateEvents creates each configured event in order and publishes the
//     ones the backend returned an id for.
//
// Nothing in the workflow is fatal. Failures are logged with slog and
// recorded per event in EventResult; Run returns a Report with the outcome of
// every step.
//
// # Example Usage
//
//	seeder := service.NewSeeder(service.SeederConfig{
//	    API:         client.New(client.Config{BaseURL: cfg.API.BaseURL}),
//	    Credentials: fixtures.Credentials(),
//	    Events:      fixtures.Events(),
//	    Logger:      logger,
//	})
//	report := seeder.Run(ctx)
package service
