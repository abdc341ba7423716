package site

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ziadkadry99/folio/internal/logging"
	"github.com/ziadkadry99/folio/internal/nav"
)

// InjectOptions controls what Inject adds besides the fragments.
type InjectOptions struct {
	Nav nav.Config
	// Tabs are the tab ids the document is expected to carry.
	Tabs       []string
	LiveReload bool
	Logger     logging.Logger
}

// InjectResult reports which placeholders were filled.
type InjectResult struct {
	Injected []string `json:"injected"`
	// Missing lists placeholder ids with no matching element.
	Missing []string `json:"missing"`
	// Invalid lists fragments that could not be parsed as HTML.
	Invalid       []string `json:"invalid,omitempty"`
	ActiveSection string   `json:"active_section,omitempty"`
	ActiveTab     string   `json:"active_tab,omitempty"`
}

// Inject parses doc and replaces the children of each element whose id is
// a key of fragments. Ids are visited in order. A missing element is
// logged and skipped; the remaining placeholders are still filled. Empty
// fragments do not need an element.
//
// The initial navigation state is also written into the document: the
// active nav link, the active tab and the hidden tab panels.
func Inject(doc []byte, fragments map[string]string, order []string, opts InjectOptions) ([]byte, InjectResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, InjectResult{}, fmt.Errorf("parsing document: %w", err)
	}

	byID := make(map[string]*html.Node)
	walk(root, func(n *html.Node) {
		if id, ok := attr(n, "id"); ok && id != "" {
			if _, seen := byID[id]; !seen {
				byID[id] = n
			}
		}
	})

	var res InjectResult
	for _, id := range order {
		frag, ok := fragments[id]
		if !ok {
			continue
		}
		target, ok := byID[id]
		if !ok && frag == "" {
			// Nothing would be written, so the template may leave it out.
			logger.Debug("empty placeholder has no element", logging.String("placeholder", id))
			continue
		}
		if !ok {
			logger.Warn("placeholder element missing from document", logging.String("placeholder", id))
			res.Missing = append(res.Missing, id)
			continue
		}
		nodes, err := html.ParseFragment(strings.NewReader(frag), target)
		if err != nil {
			logger.Warn("fragment is not valid HTML",
				logging.String("placeholder", id),
				logging.Err(err),
			)
			res.Invalid = append(res.Invalid, id)
			continue
		}
		for c := target.FirstChild; c != nil; {
			next := c.NextSibling
			target.RemoveChild(c)
			c = next
		}
		for _, c := range nodes {
			target.AppendChild(c)
		}
		res.Injected = append(res.Injected, id)
	}

	res.ActiveSection, res.ActiveTab = markInitialState(root, byID, opts)

	if body := findFirst(root, atom.Body); body != nil {
		if _, ok := attr(body, "data-nav"); !ok {
			navJSON, err := navConfigJSON(opts.Nav)
			if err != nil {
				return nil, res, err
			}
			setAttr(body, "data-nav", navJSON)
		}
		if opts.LiveReload {
			setAttr(body, "data-livereload", "true")
		}
	}
	ensureAssets(root)

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return nil, res, fmt.Errorf("rendering document: %w", err)
	}
	return buf.Bytes(), res, nil
}

// markInitialState runs the navigation controllers once against the
// document's nav links and tabs, as the page would at scroll position 0,
// and records the outcome as classes and hidden attributes.
func markInitialState(root *html.Node, byID map[string]*html.Node, opts InjectOptions) (section, tab string) {
	var links []*html.Node
	var sections []string
	walk(root, func(n *html.Node) {
		if n.DataAtom != atom.A || !hasClass(n, "nav-link") {
			return
		}
		href, _ := attr(n, "href")
		if !strings.HasPrefix(href, "#") {
			return
		}
		links = append(links, n)
		sections = append(sections, strings.TrimPrefix(href, "#"))
	})

	var tabButtons []*html.Node
	var tabs []string
	walk(root, func(n *html.Node) {
		if t, ok := attr(n, "data-tab"); ok && t != "" {
			tabButtons = append(tabButtons, n)
			tabs = append(tabs, t)
		}
	})
	if len(tabs) == 0 {
		tabs = opts.Tabs
	}

	page := initialPage(opts.Nav, sections, tabs)
	section = page.Active.ID()
	tab = page.Tabs.Active()

	for i, n := range links {
		toggleClass(n, "active", sections[i] == section)
	}
	for _, n := range tabButtons {
		t, _ := attr(n, "data-tab")
		toggleClass(n, "active", t == tab)
		if t == tab {
			setAttr(n, "aria-selected", "true")
		} else {
			setAttr(n, "aria-selected", "false")
		}
	}
	visible := make(map[string]bool)
	for _, p := range page.Tabs.Visible() {
		visible[p] = true
	}
	for _, t := range page.Tabs.IDs() {
		panel, ok := byID[nav.PanelID(t)]
		if !ok {
			continue
		}
		if visible[nav.PanelID(t)] {
			removeAttr(panel, "hidden")
		} else {
			setAttr(panel, "hidden", "")
		}
	}
	return section, tab
}

// ensureAssets links style.css and script.js when a user template does not.
func ensureAssets(root *html.Node) {
	hasCSS, hasJS := false, false
	walk(root, func(n *html.Node) {
		switch n.DataAtom {
		case atom.Link:
			if href, _ := attr(n, "href"); href == "style.css" {
				hasCSS = true
			}
		case atom.Script:
			if src, _ := attr(n, "src"); src == "script.js" {
				hasJS = true
			}
		}
	})

	if head := findFirst(root, atom.Head); head != nil && !hasCSS {
		head.AppendChild(&html.Node{
			Type:     html.ElementNode,
			Data:     "link",
			DataAtom: atom.Link,
			Attr:     []html.Attribute{{Key: "rel", Val: "stylesheet"}, {Key: "href", Val: "style.css"}},
		})
	}
	if body := findFirst(root, atom.Body); body != nil && !hasJS {
		body.AppendChild(&html.Node{
			Type:     html.ElementNode,
			Data:     "script",
			DataAtom: atom.Script,
			Attr:     []html.Attribute{{Key: "src", Val: "script.js"}},
		})
	}
}

func walk(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findFirst(root *html.Node, a atom.Atom) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) {
		if found == nil && n.DataAtom == a {
			found = n
		}
	})
	return found
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
}

func hasClass(n *html.Node, class string) bool {
	v, _ := attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func toggleClass(n *html.Node, class string, on bool) {
	v, _ := attr(n, "class")
	var kept []string
	for _, c := range strings.Fields(v) {
		if c != class {
			kept = append(kept, c)
		}
	}
	if on {
		kept = append(kept, class)
	}
	if len(kept) == 0 {
		removeAttr(n, "class")
		return
	}
	setAttr(n, "class", strings.Join(kept, " "))
}
