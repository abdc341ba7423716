// Package nav implements the page navigation controllers: anchor navigation
// with smooth scrolling, scroll-spy, tab switching and keyboard section
// traversal. Browser facilities are reached only through the small
// interfaces in platform.go, so every controller runs without a document.
package nav

import "fmt"

// Config holds the layout constants shared by the controllers and by the
// generated client script.
type Config struct {
	// MobileBreakpoint is the widest viewport, in CSS pixels, treated as mobile.
	MobileBreakpoint int `yaml:"mobile_breakpoint" koanf:"mobile_breakpoint" json:"mobileBreakpoint"`
	// MobileHeaderOffset compensates for the fixed header shown on mobile.
	MobileHeaderOffset int `yaml:"mobile_header_offset" koanf:"mobile_header_offset" json:"mobileHeaderOffset"`
	SpyOffsetDesktop   int `yaml:"spy_offset_desktop" koanf:"spy_offset_desktop" json:"spyOffsetDesktop"`
	SpyOffsetMobile    int `yaml:"spy_offset_mobile" koanf:"spy_offset_mobile" json:"spyOffsetMobile"`
	// BottomThreshold is how close to the document end forces the last section.
	BottomThreshold int `yaml:"bottom_threshold" koanf:"bottom_threshold" json:"bottomThreshold"`
	// TopThreshold is how close to the top falls back to the first section.
	TopThreshold int    `yaml:"top_threshold" koanf:"top_threshold" json:"topThreshold"`
	NextKey      string `yaml:"next_key" koanf:"next_key" json:"nextKey"`
	PrevKey      string `yaml:"prev_key" koanf:"prev_key" json:"prevKey"`
	DefaultTab   string `yaml:"default_tab" koanf:"default_tab" json:"defaultTab"`
}

// DefaultConfig returns the stock layout constants.
func DefaultConfig() Config {
	return Config{
		MobileBreakpoint:   768,
		MobileHeaderOffset: 70,
		SpyOffsetDesktop:   100,
		SpyOffsetMobile:    150,
		BottomThreshold:    100,
		TopThreshold:       100,
		NextKey:            "j",
		PrevKey:            "k",
		DefaultTab:         "all",
	}
}

// Validate rejects constants no layout could use.
func (c Config) Validate() error {
	if c.MobileBreakpoint <= 0 {
		return fmt.Errorf("mobile_breakpoint must be positive")
	}
	for name, v := range map[string]int{
		"mobile_header_offset": c.MobileHeaderOffset,
		"spy_offset_desktop":   c.SpyOffsetDesktop,
		"spy_offset_mobile":    c.SpyOffsetMobile,
		"bottom_threshold":     c.BottomThreshold,
		"top_threshold":        c.TopThreshold,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative", name)
		}
	}
	if c.NextKey == "" || c.PrevKey == "" {
		return fmt.Errorf("next_key and prev_key are required")
	}
	if c.NextKey == c.PrevKey {
		return fmt.Errorf("next_key and prev_key must differ")
	}
	return nil
}

// IsMobile reports whether a viewport of the given width uses the mobile layout.
func (c Config) IsMobile(width int) bool {
	return width <= c.MobileBreakpoint
}
