package config

import (
	"time"

	"github.com/ziadkadry99/folio/internal/logging"
	"github.com/ziadkadry99/folio/internal/nav"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	ContentFile   string         `yaml:"content_file" koanf:"content_file"`
	Template      string         `yaml:"template" koanf:"template"`
	OutputDir     string         `yaml:"output_dir" koanf:"output_dir"`
	StaticDir     string         `yaml:"static_dir" koanf:"static_dir"`
	StaticInclude []string       `yaml:"static_include" koanf:"static_include"`
	StaticExclude []string       `yaml:"static_exclude" koanf:"static_exclude"`
	SiteTitle     string         `yaml:"site_title" koanf:"site_title"`
	BaseURL       string         `yaml:"base_url" koanf:"base_url"`
	HistoryDB     string         `yaml:"history_db" koanf:"history_db"`
	Navigation    nav.Config     `yaml:"navigation" koanf:"navigation"`
	Server        ServerConfig   `yaml:"server" koanf:"server"`
	Log           logging.Config `yaml:"log" koanf:"log"`
}

// ServerConfig holds settings for `folio serve`.
type ServerConfig struct {
	Port     int           `yaml:"port" koanf:"port"`
	AllowAll bool          `yaml:"allow_all" koanf:"allow_all"`
	Open     bool          `yaml:"open" koanf:"open"`
	Debounce time.Duration `yaml:"debounce" koanf:"debounce"`
}
