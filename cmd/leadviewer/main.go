package main

import (
	"flag"
	"net/http"
	"os"

	"LeadScanner/internal/config"
	"LeadScanner/internal/viewer"
	"LeadScanner/pkg/logger"
)

func main() {
	cfg := config.Load()

	addr := flag.String("addr", cfg.Viewer.Addr, "listen address")
	dataPath := flag.String("data", cfg.Viewer.DataFile, "path to the exported leads JSON file")
	flag.Parse()

	log := logger.New("viewer")

	srv := viewer.New(*dataPath, log)
	if err := srv.Load(); err != nil {
		// Missing data is not fatal: /refresh picks it up once a scan ran.
		log.Printf("no lead data loaded from %s: %v", *dataPath, err)
	}

	log.Printf("serving leads from %s on http://%s", *dataPath, *addr)
	if err := http.ListenAndServe(*addr, srv.Handler()); err != nil {
		log.Printf("server stopped: %v", err)
		os.Exit(1)
	}
}
