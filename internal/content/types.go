package content

// ColorTag selects one of the three highlight palettes.
type ColorTag string

const (
	ColorBlue   ColorTag = "blue"
	ColorGreen  ColorTag = "green"
	ColorOrange ColorTag = "orange"
)

// Valid reports whether c belongs to the closed set of color tags.
func (c ColorTag) Valid() bool {
	switch c {
	case ColorBlue, ColorGreen, ColorOrange:
		return true
	}
	return false
}

// Class returns the CSS class for the tag, or "" for an unrecognized tag.
func (c ColorTag) Class() string {
	if !c.Valid() {
		return ""
	}
	return "highlight-" + string(c)
}

// Platform identifies a social link.
type Platform string

const (
	PlatformLinkedIn   Platform = "linkedin"
	PlatformTwitter    Platform = "twitter"
	PlatformNewsletter Platform = "newsletter"
	PlatformEmail      Platform = "email"
	PlatformResume     Platform = "resume"
)

// Platforms is the closed, display-ordered set of social platforms.
var Platforms = []Platform{
	PlatformLinkedIn,
	PlatformTwitter,
	PlatformNewsletter,
	PlatformEmail,
	PlatformResume,
}

// Store is the whole content of the site. It is decoded once and never
// mutated afterwards.
type Store struct {
	Profile      Profile             `yaml:"profile" json:"profile"`
	Socials      map[Platform]string `yaml:"socials" json:"socials"`
	Achievements []Achievement       `yaml:"achievements" json:"achievements"`
	Experience   []Experience        `yaml:"experience" json:"experience"`
	Projects     []Entry             `yaml:"projects" json:"projects"`
	Community    []Entry             `yaml:"community" json:"community"`
	Thoughts     []Thought           `yaml:"thoughts" json:"thoughts"`
	Philosophy   Philosophy          `yaml:"philosophy" json:"philosophy"`
	Consumption  []Consumption       `yaml:"consumption" json:"consumption"`
	FunFacts     []FunFact           `yaml:"fun_facts" json:"fun_facts"`
	Photos       []Photo             `yaml:"photos" json:"photos"`
	Calendar     []CalendarEntry     `yaml:"calendar" json:"calendar"`
}

// Profile is the person the site is about.
type Profile struct {
	Name    string `yaml:"name" json:"name"`
	NameAlt string `yaml:"name_alt" json:"name_alt"`
	// Intro is markdown and may carry inline links.
	Intro string `yaml:"intro" json:"intro"`
}

// Achievement is a one-line brag with highlighted words.
type Achievement struct {
	// Text is trusted HTML.
	Text       string      `yaml:"text" json:"text"`
	Highlights []Highlight `yaml:"highlights" json:"highlights"`
}

// Highlight wraps Word inside an Achievement's text with a colored link.
// When Start is set only the occurrence at that byte offset is wrapped.
type Highlight struct {
	Word  string   `yaml:"word" json:"word"`
	Color ColorTag `yaml:"color" json:"color"`
	URL   string   `yaml:"url,omitempty" json:"url,omitempty"`
	Start *int     `yaml:"start,omitempty" json:"start,omitempty"`
}

// Experience is one role in the work history.
type Experience struct {
	Title   string `yaml:"title" json:"title"`
	Org     string `yaml:"org" json:"org"`
	OrgURL  string `yaml:"org_url" json:"org_url"`
	Dates   string `yaml:"dates" json:"dates"`
	Summary string `yaml:"summary" json:"summary"`
	Detail  string `yaml:"detail" json:"detail"`
}

// Entry is shared by the projects and community collections.
type Entry struct {
	Name    string   `yaml:"name" json:"name"`
	Color   ColorTag `yaml:"color" json:"color"`
	Summary string   `yaml:"summary" json:"summary"`
	URL     string   `yaml:"url" json:"url"`
	Detail  string   `yaml:"detail" json:"detail"`
}

// Thought links to a piece of writing.
type Thought struct {
	Year  int    `yaml:"year" json:"year"`
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

// Philosophy is a quote followed by markdown paragraphs.
type Philosophy struct {
	Quote      string   `yaml:"quote" json:"quote"`
	Paragraphs []string `yaml:"paragraphs" json:"paragraphs"`
}

// Consumption is a book, podcast, or similar the person recommends.
type Consumption struct {
	Category string `yaml:"category" json:"category"`
	Title    string `yaml:"title" json:"title"`
	Author   string `yaml:"author" json:"author"`
	URL      string `yaml:"url" json:"url"`
}

// FunFact pairs an emoji with a markdown sentence.
type FunFact struct {
	Emoji string `yaml:"emoji" json:"emoji"`
	Text  string `yaml:"text" json:"text"`
}

// Photo is reserved for a gallery section that is not rendered yet.
type Photo struct {
	Src     string `yaml:"src" json:"src"`
	Alt     string `yaml:"alt" json:"alt"`
	Caption string `yaml:"caption" json:"caption"`
}

// CalendarEntry is reserved for a content calendar that is not rendered yet.
type CalendarEntry struct {
	Date  string `yaml:"date" json:"date"`
	Title string `yaml:"title" json:"title"`
	Kind  string `yaml:"kind" json:"kind"`
	URL   string `yaml:"url" json:"url"`
}
