package parser

import (
	"log/slog"
	"time"

	"LeadScanner/internal/infrastructure/fetch"
	"LeadScanner/internal/scanner"
)

// NewRegistry builds the registry with every built-in scanner strategy
// registered under its name. timeout and delay apply to scanners that run
// their own collector instead of the shared client.
func NewRegistry(client *fetch.Client, timeout, delay time.Duration, baseLogger *slog.Logger) *scanner.Registry {
	reg := scanner.NewRegistry()
	reg.Register(NewTechCrunchScanner(client, scoped(baseLogger, "scanner.techcrunch")))
	reg.Register(NewAgencyScanner(timeout, delay, scoped(baseLogger, "scanner.agency")))
	reg.Register(NewFileScanner(scoped(baseLogger, "scanner.file")))
	return reg
}

func scoped(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With("component", component)
}
