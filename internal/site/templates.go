package site

// cssContent is the stylesheet for the portfolio page.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #fbfaf7;
  --bg-card: #ffffff;
  --text: #1f2328;
  --text-muted: #5d6470;
  --border: #e4e2dc;
  --accent: #2f5bd3;
  --blue: #2f5bd3;
  --blue-bg: #e8eefc;
  --green: #1f7a4d;
  --green-bg: #e3f4ea;
  --orange: #b8520f;
  --orange-bg: #fcede1;
  --header-height: 56px;
  --radius: 10px;
  --font: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  --mono: "SFMono-Regular", Consolas, "Liberation Mono", Menlo, monospace;
}

@media (prefers-color-scheme: dark) {
  :root {
    --bg: #14161a;
    --bg-card: #1c1f24;
    --text: #e6e6e6;
    --text-muted: #9aa1ab;
    --border: #2c3038;
    --accent: #7aa2ff;
    --blue: #7aa2ff;
    --blue-bg: #1d2740;
    --green: #5fd19a;
    --green-bg: #16302a;
    --orange: #ffa15c;
    --orange-bg: #3a2516;
  }
}

/* ============ Base ============ */
*, *::before, *::after { box-sizing: border-box; }

html { scroll-behavior: smooth; }

body {
  margin: 0;
  font-family: var(--font);
  font-size: 17px;
  line-height: 1.65;
  color: var(--text);
  background: var(--bg);
}

a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }

code, pre { font-family: var(--mono); font-size: 0.9em; }
pre { padding: 12px 16px; border-radius: var(--radius); overflow-x: auto; }

/* ============ Header ============ */
.site-header {
  position: sticky;
  top: 0;
  z-index: 10;
  display: flex;
  align-items: center;
  justify-content: space-between;
  gap: 24px;
  height: var(--header-height);
  padding: 0 32px;
  background: var(--bg);
  border-bottom: 1px solid var(--border);
}

.site-title { font-weight: 700; color: var(--text); }

.site-nav { display: flex; gap: 18px; overflow-x: auto; }

.nav-link {
  color: var(--text-muted);
  font-size: 0.92rem;
  white-space: nowrap;
  border-bottom: 2px solid transparent;
  padding: 4px 0;
}

.nav-link:hover { color: var(--text); text-decoration: none; }

.nav-link.active {
  color: var(--accent);
  border-bottom-color: var(--accent);
}

/* ============ Layout ============ */
.page { max-width: 780px; margin: 0 auto; padding: 0 24px 96px; }

.section { padding-top: 72px; }
.section[hidden] { display: none; }

.section h2 {
  font-size: 1.1rem;
  text-transform: uppercase;
  letter-spacing: 0.08em;
  color: var(--text-muted);
  margin: 0 0 20px;
}

.name { font-size: 2.4rem; margin: 0; line-height: 1.2; }
.name-alt { margin: 4px 0 24px; color: var(--text-muted); }
.name-alt:empty { display: none; }

.socials { display: flex; flex-wrap: wrap; gap: 12px; margin: 20px 0; }

.social-link {
  padding: 4px 12px;
  border: 1px solid var(--border);
  border-radius: 999px;
  font-size: 0.88rem;
  color: var(--text);
}

.achievements { padding-left: 20px; }
.achievement { margin: 6px 0; }

/* ============ Highlights ============ */
.highlight { font-weight: 600; border-radius: 4px; padding: 0 3px; }
.highlight-blue { color: var(--blue); background: var(--blue-bg); }
.highlight-green { color: var(--green); background: var(--green-bg); }
.highlight-orange { color: var(--orange); background: var(--orange-bg); }

/* ============ Experience ============ */
.experience-item { padding: 16px 0; border-bottom: 1px solid var(--border); }
.experience-item:last-child { border-bottom: none; }

.experience-header {
  display: flex;
  flex-wrap: wrap;
  align-items: baseline;
  gap: 8px 16px;
}

.experience-title { font-size: 1.05rem; margin: 0; }
.experience-org { font-weight: 500; }
.experience-dates { margin-left: auto; color: var(--text-muted); font-size: 0.88rem; }
.experience-summary { margin: 6px 0; }
.experience-detail summary { cursor: pointer; color: var(--text-muted); font-size: 0.9rem; }

/* ============ Tabs ============ */
.tabs { display: flex; gap: 8px; margin-bottom: 20px; }

.tab {
  font: inherit;
  font-size: 0.9rem;
  padding: 6px 14px;
  border: 1px solid var(--border);
  border-radius: 999px;
  background: transparent;
  color: var(--text-muted);
  cursor: pointer;
}

.tab.active {
  background: var(--accent);
  border-color: var(--accent);
  color: #fff;
}

.tab-panel[hidden] { display: none; }

.entry-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(220px, 1fr));
  gap: 16px;
}

.entry-card {
  padding: 16px;
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-top: 3px solid var(--border);
  border-radius: var(--radius);
}

.entry-card.highlight-blue { border-top-color: var(--blue); background: var(--bg-card); }
.entry-card.highlight-green { border-top-color: var(--green); background: var(--bg-card); }
.entry-card.highlight-orange { border-top-color: var(--orange); background: var(--bg-card); }

.entry-name { font-size: 1rem; margin: 0 0 6px; }
.entry-summary { margin: 0; color: var(--text-muted); font-size: 0.92rem; }
.entry-detail { font-size: 0.9rem; }

/* ============ Lists ============ */
.thoughts-list, .consumption-list, .fun-facts-list { list-style: none; padding: 0; }

.thought, .consumption-item, .fun-fact {
  display: flex;
  gap: 12px;
  align-items: baseline;
  padding: 6px 0;
}

.thought-year, .consumption-category {
  min-width: 90px;
  color: var(--text-muted);
  font-size: 0.88rem;
}

.consumption-author { color: var(--text-muted); font-size: 0.88rem; }
.consumption-author::before { content: "by "; }

.fun-fact-emoji { font-size: 1.3rem; }

/* ============ Philosophy ============ */
.philosophy-quote {
  margin: 0 0 20px;
  padding-left: 16px;
  border-left: 3px solid var(--accent);
  font-size: 1.2rem;
  font-style: italic;
}

.philosophy-quote:empty { display: none; }

/* ============ Footer ============ */
.site-footer {
  text-align: center;
  padding: 32px;
  color: var(--text-muted);
  font-size: 0.85rem;
  border-top: 1px solid var(--border);
}

/* ============ Mobile ============ */
@media (max-width: 768px) {
  :root { --header-height: 70px; }

  body { font-size: 16px; }

  .site-header {
    position: fixed;
    left: 0;
    right: 0;
    flex-direction: column;
    align-items: flex-start;
    justify-content: center;
    gap: 4px;
    padding: 8px 16px;
  }

  .site-nav { width: 100%; gap: 14px; }

  .page { padding-top: var(--header-height); }

  .section { padding-top: 48px; }

  .name { font-size: 1.9rem; }

  .experience-dates { margin-left: 0; width: 100%; }
}
`

// jsContent is the client script: anchor navigation, scroll-spy, tabs,
// keyboard navigation and live reload. Its rules and constants match
// internal/nav; the constants arrive in the body's data-nav attribute.
const jsContent = `(function() {
  "use strict";

  var defaults = {
    mobileBreakpoint: 768,
    mobileHeaderOffset: 70,
    spyOffsetDesktop: 100,
    spyOffsetMobile: 150,
    bottomThreshold: 100,
    topThreshold: 100,
    nextKey: "j",
    prevKey: "k",
    defaultTab: "all"
  };

  function readConfig() {
    var cfg = {};
    var key;
    for (key in defaults) { cfg[key] = defaults[key]; }
    var raw = document.body.getAttribute("data-nav");
    if (raw) {
      try {
        var parsed = JSON.parse(raw);
        for (key in parsed) { cfg[key] = parsed[key]; }
      } catch (e) {}
    }
    return cfg;
  }

  function isMobile(cfg) {
    return window.innerWidth <= cfg.mobileBreakpoint;
  }

  // ===== Active link =====
  function targetID(href) {
    return href && href.charAt(0) === "#" ? href.slice(1) : href;
  }

  function setActive(links, id) {
    links.forEach(function(link) {
      link.classList.toggle("active", targetID(link.getAttribute("href")) === id);
    });
  }

  function activeID(links) {
    for (var i = 0; i < links.length; i++) {
      if (links[i].classList.contains("active")) {
        return targetID(links[i].getAttribute("href"));
      }
    }
    return null;
  }

  // ===== Anchor navigation =====
  function navigate(cfg, links, id) {
    var target = document.getElementById(id);
    if (!target) { return false; }
    var offset = isMobile(cfg) ? cfg.mobileHeaderOffset : 0;
    window.scrollTo({ top: target.offsetTop - offset, behavior: "smooth" });
    setActive(links, id);
    return true;
  }

  // ===== Scroll-spy =====
  function selectSection(cfg, sections) {
    if (!sections.length) { return null; }
    var y = window.scrollY || window.pageYOffset || 0;
    var docHeight = document.documentElement.scrollHeight;
    if (y + window.innerHeight >= docHeight - cfg.bottomThreshold) {
      return sections[sections.length - 1].id;
    }
    var offset = isMobile(cfg) ? cfg.spyOffsetMobile : cfg.spyOffsetDesktop;
    var current = null;
    sections.forEach(function(section) {
      var top = section.offsetTop - offset;
      if (y >= top && y < top + section.offsetHeight) { current = section.id; }
    });
    if (current === null && y < cfg.topThreshold) { current = sections[0].id; }
    return current;
  }

  function setupScrollSpy(cfg, links, sections) {
    var pending = false;
    function update() {
      pending = false;
      var id = selectSection(cfg, sections);
      if (id !== null) { setActive(links, id); }
    }
    function schedule() {
      if (pending) { return; }
      pending = true;
      window.requestAnimationFrame(update);
    }
    window.addEventListener("scroll", schedule, { passive: true });
    // Crossing the breakpoint changes the spy offset.
    window.addEventListener("resize", schedule);
    update();
  }

  // ===== Tabs =====
  function setupTabs(cfg) {
    var buttons = Array.prototype.slice.call(document.querySelectorAll("[data-tab]"));
    if (!buttons.length) { return; }
    var ids = buttons.map(function(b) { return b.getAttribute("data-tab"); });
    var active = null;

    function activate(id) {
      if (id === active || ids.indexOf(id) < 0) { return false; }
      buttons.forEach(function(b) {
        var on = b.getAttribute("data-tab") === id;
        b.classList.toggle("active", on);
        b.setAttribute("aria-selected", on ? "true" : "false");
      });
      ids.forEach(function(tab) {
        var panel = document.getElementById(tab + "-panel");
        if (panel) { panel.hidden = tab !== id; }
      });
      active = id;
      return true;
    }

    buttons.forEach(function(b) {
      b.addEventListener("click", function() { activate(b.getAttribute("data-tab")); });
    });
    activate(ids.indexOf(cfg.defaultTab) >= 0 ? cfg.defaultTab : ids[0]);
  }

  // ===== Keyboard navigation =====
  function inTextInput(el) {
    if (!el) { return false; }
    var tag = el.tagName;
    return tag === "INPUT" || tag === "TEXTAREA" || tag === "SELECT" || el.isContentEditable;
  }

  function setupKeyboard(cfg, links, sections) {
    var ids = sections.map(function(s) { return s.id; });
    document.addEventListener("keydown", function(e) {
      if (e.ctrlKey || e.metaKey || e.altKey || inTextInput(e.target)) { return; }
      var step = 0;
      if (e.key === cfg.nextKey) { step = 1; }
      if (e.key === cfg.prevKey) { step = -1; }
      if (!step) { return; }
      var next = ids.indexOf(activeID(links)) + step;
      if (next < 0 || next >= ids.length) { return; }
      navigate(cfg, links, ids[next]);
    });
  }

  // ===== Live reload =====
  function setupLiveReload() {
    if (document.body.getAttribute("data-livereload") !== "true" || !window.WebSocket) { return; }
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/livereload");
    ws.onmessage = function(e) {
      if (e.data === "reload") { location.reload(); }
    };
  }

  function init() {
    var cfg = readConfig();
    var links = Array.prototype.slice.call(document.querySelectorAll("a.nav-link[href^='#']"));
    var sections = links
      .map(function(link) { return document.getElementById(targetID(link.getAttribute("href"))); })
      .filter(function(el) { return el !== null; });

    links.forEach(function(link) {
      link.addEventListener("click", function(e) {
        if (navigate(cfg, links, targetID(link.getAttribute("href")))) { e.preventDefault(); }
      });
    });

    setupTabs(cfg);
    setupKeyboard(cfg, links, sections);
    setupScrollSpy(cfg, links, sections);
    setupLiveReload();
  }

  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", init);
  } else {
    init();
  }
})();
`
