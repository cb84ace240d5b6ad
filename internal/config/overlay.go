package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// OverlayEnv applies JOBBOARD_* environment overrides on top of the file.
func OverlayEnv(cfg *Config) error {
	if v, ok := lookup("JOBBOARD_HOST"); ok {
		cfg.App.Host = v
	}
	if v, ok := lookup("JOBBOARD_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("JOBBOARD_PORT: %w", err)
		}
		cfg.App.Port = port
	}
	if v, ok := lookup("JOBBOARD_CATALOG"); ok {
		cfg.Catalog.Path = v
	}
	if v, ok := lookup("JOBBOARD_BASE_URL"); ok {
		cfg.Site.BaseURL = v
	}
	if v, ok := lookup("JOBBOARD_LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup("JOBBOARD_LOGOS"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("JOBBOARD_LOGOS: %w", err)
		}
		cfg.Logos.Enabled = enabled
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
