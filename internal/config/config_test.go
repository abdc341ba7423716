package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ziadkadry99/folio/internal/content"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ContentFile != "content.yml" {
		t.Errorf("expected default content_file %q, got %q", "content.yml", cfg.ContentFile)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Navigation.MobileBreakpoint != 768 {
		t.Errorf("expected default breakpoint 768, got %d", cfg.Navigation.MobileBreakpoint)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.folio.yml")

	original := DefaultConfig()
	original.SiteTitle = "Mira Okafor"
	original.OutputDir = "dist"
	original.StaticInclude = []string{"img/**", "*.pdf"}
	original.Navigation.MobileHeaderOffset = 64
	original.Navigation.DefaultTab = "community"
	original.Server.Debounce = 250 * time.Millisecond

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.SiteTitle != original.SiteTitle {
		t.Errorf("site_title: got %q, want %q", loaded.SiteTitle, original.SiteTitle)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.Navigation.MobileHeaderOffset != 64 {
		t.Errorf("mobile_header_offset: got %d, want 64", loaded.Navigation.MobileHeaderOffset)
	}
	if loaded.Navigation.DefaultTab != "community" {
		t.Errorf("default_tab: got %q, want community", loaded.Navigation.DefaultTab)
	}
	if loaded.Server.Debounce != 250*time.Millisecond {
		t.Errorf("debounce: got %v, want 250ms", loaded.Server.Debounce)
	}
	if len(loaded.StaticInclude) != len(original.StaticInclude) {
		t.Errorf("static_include length: got %d, want %d", len(loaded.StaticInclude), len(original.StaticInclude))
	}
	for i, v := range loaded.StaticInclude {
		if v != original.StaticInclude[i] {
			t.Errorf("static_include[%d]: got %q, want %q", i, v, original.StaticInclude[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir, got %q", cfg.OutputDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FOLIO_OUTPUT_DIR", "site")
	t.Setenv("FOLIO_SERVER__PORT", "9090")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "site" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "site")
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("nested env override failed: got %d, want 9090", loaded.Server.Port)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"FOLIO_OUTPUT_DIR", "output_dir"},
		{"FOLIO_SERVER__PORT", "server.port"},
		{"FOLIO_NAVIGATION__MOBILE_BREAKPOINT", "navigation.mobile_breakpoint"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateEmptyContentFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContentFile = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty content_file")
	}
}

func TestValidateEmptyOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty output_dir")
	}
}

func TestValidateMissingTemplate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Template = filepath.Join(t.TempDir(), "missing.html")
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for missing template")
	}
}

func TestValidateBadPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestValidateBadNavigation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Navigation.MobileBreakpoint = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero breakpoint")
	}
}

func TestWizardAnswersConfig(t *testing.T) {
	a := WizardAnswers{SiteTitle: " Mira ", OutputDir: "out", DefaultTab: "projects", ExtraExcludes: "drafts/**, *.psd"}
	cfg := a.Config()
	if cfg.SiteTitle != "Mira" || cfg.OutputDir != "out" || cfg.Navigation.DefaultTab != "projects" {
		t.Errorf("unexpected config from answers: %+v", cfg)
	}
	if n := len(cfg.StaticExclude); n != len(DefaultStaticExcludes)+2 {
		t.Errorf("static_exclude length = %d, want %d", n, len(DefaultStaticExcludes)+2)
	}
}

func TestWriteStarterContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	if err := WriteStarterContent(path, WizardAnswers{Name: "Ada Lovelace"}); err != nil {
		t.Fatalf("WriteStarterContent: %v", err)
	}
	store, err := content.Load(path)
	if err != nil {
		t.Fatalf("loading starter content: %v", err)
	}
	if store.Profile.Name != "Ada Lovelace" {
		t.Errorf("name = %q", store.Profile.Name)
	}
	if _, ok := store.Socials[content.PlatformEmail]; ok {
		t.Error("email should be dropped when none was given")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.psd", []string{"**/*.psd"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
