package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"LeadScanner/internal/app"
	"LeadScanner/internal/config"
	"LeadScanner/internal/dedupe"
	"LeadScanner/internal/export"
	"LeadScanner/internal/logging"
	"LeadScanner/internal/usecase"
)

func main() {
	var (
		sourcesFlag = flag.String("sources", "", "comma-separated site names to scan (default: all configured)")
		formatFlag  = flag.String("format", "", "export format: csv, json or both")
		outputFlag  = flag.String("output", "", "output file name without extension")
		maxPages    = flag.Int("max-pages", 0, "maximum listing pages per source")
		recentDays  = flag.Int("recent-days", 0, "keep only funding dated within the last N days (0 disables)")
		dedupeFlag  = flag.String("dedupe", "company", "dedup key: company or company-round")
		verbose     = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	ctx := context.Background()
	cfg := config.Load()

	level := cfg.Logging.Level
	if *verbose {
		level = "debug"
	}
	logger := logging.New(level)

	opts := usecase.Options{
		OutputName: *outputFlag,
		MaxPages:   *maxPages,
		RecentDays: *recentDays,
	}

	formatValue := *formatFlag
	if formatValue == "" {
		formatValue = cfg.Output.Format
	}
	if formatValue != "" {
		format, err := export.ParseFormat(formatValue)
		if err != nil {
			fmt.Fprintf(os.Stderr, "leadscanner: %v\n", err)
			os.Exit(2)
		}
		opts.Format = format
	}

	switch *dedupeFlag {
	case "", "company":
		opts.DedupeKey = dedupe.ByCompany
	case "company-round":
		opts.DedupeKey = dedupe.ByCompanyRound
	default:
		fmt.Fprintf(os.Stderr, "leadscanner: unknown dedupe key %q (want company or company-round)\n", *dedupeFlag)
		os.Exit(2)
	}

	var sources []string
	if *sourcesFlag != "" {
		known := make(map[string]struct{})
		for _, site := range cfg.Sites {
			known[site.Name] = struct{}{}
			known[site.Scanner] = struct{}{}
		}
		for _, name := range strings.Split(*sourcesFlag, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := known[name]; !ok {
				fmt.Fprintf(os.Stderr, "leadscanner: unknown source %q (configured: %s)\n",
					name, strings.Join(app.Sites(cfg), ", "))
				os.Exit(2)
			}
			sources = append(sources, name)
		}
	}

	application := app.New(cfg, logger, opts, sources)

	if err := application.Run(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
