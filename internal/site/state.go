package site

import (
	"encoding/json"
	"fmt"

	"github.com/ziadkadry99/folio/internal/nav"
)

// buildView is the viewport assumed while generating: a desktop-width
// window scrolled to the top of a document of unknown length.
type buildView struct{ cfg nav.Config }

func (v buildView) Width() int          { return v.cfg.MobileBreakpoint + 1 }
func (v buildView) Height() int         { return 0 }
func (v buildView) ScrollY() int        { return 0 }
func (v buildView) DocumentHeight() int { return 1 << 30 }

// noScroll and immediateFrames satisfy the controllers' platform
// interfaces; nothing scrolls at build time.
type noScroll struct{}

func (noScroll) ScrollTo(int, nav.Behavior) {}

type immediateFrames struct{}

func (immediateFrames) RequestFrame(fn func()) { fn() }

// initialPage runs the controllers once so the generated page already
// shows the state the client script would compute on load.
func initialPage(cfg nav.Config, sections, tabs []string) *nav.Page {
	p := nav.NewPage(cfg, nav.Stack(sections, nil), buildView{cfg}, noScroll{}, immediateFrames{}, tabs)
	p.Init()
	return p
}

func navConfigJSON(cfg nav.Config) (string, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encoding navigation config: %w", err)
	}
	return string(b), nil
}
