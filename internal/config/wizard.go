package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/folio/internal/content"
)

// DefaultConfigPath is where `folio init` writes the configuration.
const DefaultConfigPath = ".folio.yml"

// WizardAnswers are the values collected by RunWizard.
type WizardAnswers struct {
	Name       string
	Email      string
	SiteTitle  string
	OutputDir  string
	DefaultTab string
	// ExtraExcludes is a comma-separated list of static globs to skip.
	ExtraExcludes string
}

// RunWizard runs an interactive configuration wizard. It saves the config
// to .folio.yml and, unless one already exists, a starter content file.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to folio! Let's set up your portfolio.")
	fmt.Println()

	var a WizardAnswers
	var err error

	namePrompt := promptui.Prompt{
		Label: "Your name",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("name is required")
			}
			return nil
		},
	}
	if a.Name, err = namePrompt.Run(); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}

	emailPrompt := promptui.Prompt{Label: "Contact email (blank to skip)"}
	if a.Email, err = emailPrompt.Run(); err != nil {
		return nil, fmt.Errorf("email: %w", err)
	}

	titlePrompt := promptui.Prompt{Label: "Site title", Default: a.Name}
	if a.SiteTitle, err = titlePrompt.Run(); err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}

	outputPrompt := promptui.Prompt{Label: "Output directory", Default: "public"}
	if a.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	tabPrompt := promptui.Select{
		Label: "Tab shown first in the projects section",
		Items: []string{"all", "projects", "community"},
	}
	if _, a.DefaultTab, err = tabPrompt.Run(); err != nil {
		return nil, fmt.Errorf("default tab: %w", err)
	}

	excludePrompt := promptui.Prompt{
		Label:   "Extra static exclude patterns (comma-separated, blank for defaults)",
		Default: "",
	}
	if a.ExtraExcludes, err = excludePrompt.Run(); err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}

	cfg := a.Config()
	if err := cfg.Save(DefaultConfigPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigPath)

	if _, statErr := os.Stat(cfg.ContentFile); os.IsNotExist(statErr) {
		if err := WriteStarterContent(cfg.ContentFile, a); err != nil {
			return nil, err
		}
		fmt.Printf("Starter content written to %s\n", cfg.ContentFile)
	} else {
		fmt.Printf("Keeping existing %s\n", cfg.ContentFile)
	}

	return cfg, nil
}

// Config turns the wizard answers into a configuration.
func (a WizardAnswers) Config() *Config {
	cfg := DefaultConfig()
	if t := strings.TrimSpace(a.SiteTitle); t != "" {
		cfg.SiteTitle = t
	}
	if o := strings.TrimSpace(a.OutputDir); o != "" {
		cfg.OutputDir = o
	}
	if a.DefaultTab != "" {
		cfg.Navigation.DefaultTab = a.DefaultTab
	}
	if extra := splitAndTrim(a.ExtraExcludes); len(extra) > 0 {
		cfg.StaticExclude = append(append([]string{}, DefaultStaticExcludes...), extra...)
	}
	return cfg
}

// WriteStarterContent writes the sample content store, personalised with
// the wizard answers, to path.
func WriteStarterContent(path string, a WizardAnswers) error {
	store := content.Sample()
	store.Profile.Name = strings.TrimSpace(a.Name)
	store.Profile.NameAlt = ""
	if email := strings.TrimSpace(a.Email); email != "" {
		store.Socials[content.PlatformEmail] = email
	} else {
		delete(store.Socials, content.PlatformEmail)
	}

	data, err := yamlv3.Marshal(store)
	if err != nil {
		return fmt.Errorf("marshalling starter content: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing starter content to %s: %w", path, err)
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
