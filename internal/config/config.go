package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Host string `yaml:"host" json:"host"`
		Port int    `yaml:"port" json:"port"`
	} `yaml:"app" json:"app"`

	Site struct {
		Title   string `yaml:"title" json:"title"`
		BaseURL string `yaml:"base_url" json:"base_url"`
	} `yaml:"site" json:"site"`

	Catalog struct {
		// Empty means the dataset bundled with the binary.
		Path string `yaml:"path" json:"path"`
	} `yaml:"catalog" json:"catalog"`

	Log struct {
		Level  string `yaml:"level" json:"level"`   // debug | info | warn | error
		Format string `yaml:"format" json:"format"` // json | console
	} `yaml:"log" json:"log"`

	Logos struct {
		Enabled           bool     `yaml:"enabled" json:"enabled"`
		RequestsPerSecond float64  `yaml:"requests_per_second" json:"requests_per_second"`
		Burst             int      `yaml:"burst" json:"burst"`
		MaxBytes          int      `yaml:"max_bytes" json:"max_bytes"`
		WarmParallelism   int      `yaml:"warm_parallelism" json:"warm_parallelism"`
		RetryMinutes      int      `yaml:"retry_minutes" json:"retry_minutes"` // re-run warm-up for logos that failed
		AllowHosts        []string `yaml:"allow_hosts" json:"allow_hosts"`
	} `yaml:"logos" json:"logos"`
}

func Default() Config {
	var cfg Config
	cfg.App.Host = "127.0.0.1"
	cfg.App.Port = 38480
	cfg.Site.Title = "Job Board"
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	cfg.Logos.Enabled = true
	cfg.Logos.RequestsPerSecond = 2
	cfg.Logos.Burst = 2
	cfg.Logos.MaxBytes = 512 * 1024
	cfg.Logos.WarmParallelism = 4
	cfg.Logos.RetryMinutes = 30
	return cfg
}

// Load reads path over Default, so keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}
