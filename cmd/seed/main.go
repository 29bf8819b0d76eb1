// Package main provides a CLI that seeds a running events backend with a
// fixed account and a fixed set of published fundraising events.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/cudeca/eventos-seed/internal/client"
	"github.com/cudeca/eventos-seed/internal/config"
	"github.com/cudeca/eventos-seed/internal/fixtures"
	"github.com/cudeca/eventos-seed/internal/model"
	"github.com/cudeca/eventos-seed/internal/service"
	"github.com/cudeca/eventos-seed/internal/transport"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code. Seeding failures
// never change the exit code; only unusable configuration does.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var list, verbose bool
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.API.BaseURL, "api-url", cfg.API.BaseURL, "backend base URL including /api")
	fs.StringVar(&cfg.User.Email, "email", cfg.User.Email, "account email")
	fs.StringVar(&cfg.User.Password, "password", cfg.User.Password, "account password")
	fs.Float64Var(&cfg.API.RateLimit, "rate", cfg.API.RateLimit, "max requests per second (0 = unlimited)")
	fs.DurationVar(&cfg.API.Timeout, "timeout", cfg.API.Timeout, "per-request timeout")
	fs.BoolVar(&list, "list", false, "print the records that would be seeded and exit")
	fs.BoolVar(&verbose, "v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration:\n%v\n", err)
		return 1
	}

	creds := credentials(cfg.User)
	events := fixtures.Events()

	if list {
		printFixtures(stdout, creds, events)
		return 0
	}

	logger := cfg.Log.NewLogger(stderr)
	slog.SetDefault(logger)

	httpClient := transport.NewHTTPClient(transport.Options{
		Timeout:   cfg.API.Timeout,
		RateLimit: cfg.API.RateLimit,
		Logger:    logger,
	})
	seeder := service.NewSeeder(service.SeederConfig{
		API:         client.New(client.Config{BaseURL: cfg.API.BaseURL, HTTPClient: httpClient}),
		Credentials: creds,
		Events:      events,
		Logger:      logger,
	})

	logger.Info("seeding backend", "api_url", cfg.API.BaseURL, "events", len(events))
	report := seeder.Run(ctx)
	printReport(stdout, report)
	return 0
}

// credentials overlays the configured account on the fixture account
func credentials(u config.UserConfig) model.Credentials {
	creds := fixtures.Credentials()
	creds.Name = u.Name
	creds.Surname = u.Surname
	creds.Email = u.Email
	creds.Password = u.Password
	creds.Role = u.Role
	return creds
}

func printFixtures(w io.Writer, creds model.Credentials, events []model.Event) {
	fmt.Fprintf(w, "Account:\n  %s %s <%s> role=%s\n\n", creds.Name, creds.Surname, creds.Email, creds.Role)
	fmt.Fprintln(w, "Events:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range events {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s EUR\n",
			e.Title,
			e.StartsAt.UTC().Format("2006-01-02 15:04"),
			e.Venue,
			e.Target,
		)
	}
	_ = tw.Flush()
}

func printReport(w io.Writer, r service.Report) {
	fmt.Fprintln(w, "Seeding summary:")
	fmt.Fprintf(w, "  registered: %t\n", r.Registered)
	fmt.Fprintf(w, "  logged in:  %t\n", r.LoggedIn)
	if r.Role != "" {
		fmt.Fprintf(w, "  roles:      %s\n", r.Role)
	}
	if !r.LoggedIn {
		fmt.Fprintln(w, "  no events were submitted")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range r.Events {
		id := e.ID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", e.Title, id, e.Outcome)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "  %d/%d created, %d published\n", r.Created(), len(r.Events), r.Published())
}
