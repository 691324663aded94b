package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "LEAD_SCANNER_CONFIG"
	logLevelEnv   = "LEAD_SCANNER_LOG_LEVEL"
	outputNameEnv = "LEAD_SCANNER_OUTPUT"
	viewerAddrEnv = "LEAD_SCANNER_VIEWER_ADDR"
	viewerDataEnv = "LEAD_SCANNER_VIEWER_DATA"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Scraper ScraperConfig `yaml:"scraper"`
	Output  OutputConfig  `yaml:"output"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Sites   []SiteConfig  `yaml:"sites"`
}

// LoggingConfig controls slog verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ScraperConfig tunes the shared HTTP fetch policy.
type ScraperConfig struct {
	TimeoutSeconds int      `yaml:"timeoutSeconds"`
	MaxRetries     int      `yaml:"maxRetries"`
	DelaySeconds   int      `yaml:"delaySeconds"`
	MaxPages       int      `yaml:"maxPages"`
	UserAgents     []string `yaml:"userAgents"`
}

// Timeout resolves the configured fetch timeout.
func (s ScraperConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Delay resolves the polite delay between page fetches.
func (s ScraperConfig) Delay() time.Duration {
	return time.Duration(s.DelaySeconds) * time.Second
}

// OutputConfig names the default export files.
type OutputConfig struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
}

// ViewerConfig describes the local data viewer.
type ViewerConfig struct {
	Addr     string `yaml:"addr"`
	DataFile string `yaml:"dataFile"`
}

// SiteConfig describes a single source with its scanner strategy.
type SiteConfig struct {
	Name     string            `yaml:"name"`
	Scanner  string            `yaml:"scanner"`
	URL      string            `yaml:"url"`
	MaxPages int               `yaml:"maxPages"`
	Options  map[string]string `yaml:"options"`
}

// Load reads .env, YAML configuration (if present), and applies environment
// overrides.
func Load() Config {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Sites) == 0 {
		cfg.Sites = defaultConfig().Sites
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(outputNameEnv); v != "" {
		c.Output.Name = v
	}
	if v := os.Getenv(viewerAddrEnv); v != "" {
		c.Viewer.Addr = v
	}
	if v := os.Getenv(viewerDataEnv); v != "" {
		c.Viewer.DataFile = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Scraper.TimeoutSeconds > 0 {
		base.Scraper.TimeoutSeconds = override.Scraper.TimeoutSeconds
	}
	if override.Scraper.MaxRetries > 0 {
		base.Scraper.MaxRetries = override.Scraper.MaxRetries
	}
	if override.Scraper.DelaySeconds > 0 {
		base.Scraper.DelaySeconds = override.Scraper.DelaySeconds
	}
	if override.Scraper.MaxPages > 0 {
		base.Scraper.MaxPages = override.Scraper.MaxPages
	}
	if len(override.Scraper.UserAgents) > 0 {
		base.Scraper.UserAgents = override.Scraper.UserAgents
	}

	if override.Output.Name != "" {
		base.Output.Name = override.Output.Name
	}
	if override.Output.Format != "" {
		base.Output.Format = override.Output.Format
	}

	if override.Viewer.Addr != "" {
		base.Viewer.Addr = override.Viewer.Addr
	}
	if override.Viewer.DataFile != "" {
		base.Viewer.DataFile = override.Viewer.DataFile
	}

	if len(override.Sites) > 0 {
		base.Sites = override.Sites
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Scraper: ScraperConfig{
			TimeoutSeconds: 30,
			MaxRetries:     3,
			DelaySeconds:   2,
			MaxPages:       5,
		},
		Output: OutputConfig{Name: "funded_startups", Format: "csv"},
		Viewer: ViewerConfig{Addr: "127.0.0.1:8050", DataFile: "funded_startups.json"},
		Sites: []SiteConfig{
			{
				Name:    "techcrunch-funding",
				Scanner: "techcrunch",
				URL:     "https://techcrunch.com/tag/funding/",
			},
			{
				Name:    "clutch-agencies",
				Scanner: "agency",
				URL:     "https://clutch.co/agencies",
			},
		},
	}
}
