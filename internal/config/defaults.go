package config

import (
	"time"

	"github.com/ziadkadry99/folio/internal/logging"
	"github.com/ziadkadry99/folio/internal/nav"
)

// DefaultStaticExcludes are glob patterns never copied from the static dir.
var DefaultStaticExcludes = []string{
	"**/.DS_Store",
	"**/.git/**",
	"**/*.swp",
	"**/*~",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentFile:   "content.yml",
		OutputDir:     "public",
		StaticDir:     "static",
		StaticInclude: []string{"**"},
		StaticExclude: DefaultStaticExcludes,
		SiteTitle:     "Portfolio",
		HistoryDB:     ".folio/history.db",
		Navigation:    nav.DefaultConfig(),
		Server: ServerConfig{
			Port:     8080,
			Debounce: 500 * time.Millisecond,
		},
		Log: logging.Config{
			Level: "info",
		},
	}
}
