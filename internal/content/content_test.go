package content

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSampleIsClean(t *testing.T) {
	s := Sample()
	if s.Profile.Name == "" {
		t.Fatal("sample profile name should not be empty")
	}
	if len(s.Projects) == 0 || len(s.Community) == 0 {
		t.Fatal("sample should have projects and community entries")
	}
	if len(s.Photos) != 0 || len(s.Calendar) != 0 {
		t.Error("photos and calendar are placeholder collections and should be empty")
	}
	if ws := s.Validate(); len(ws) != 0 {
		t.Errorf("sample should validate cleanly, got %v", ws)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	if err := os.WriteFile(path, SampleYAML(), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Socials[PlatformEmail] != "mira@okafor.dev" {
		t.Errorf("email = %q", s.Socials[PlatformEmail])
	}
	if got := s.Achievements[1].Highlights[1].Word; got != "event bus" {
		t.Errorf("second highlight word = %q, want %q", got, "event bus")
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	s, err := Decode(strings.NewReader(""), true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(s.Thoughts) != 0 {
		t.Error("empty document should decode to an empty store")
	}
}

func TestDecodeStrictRejectsUnknownKeys(t *testing.T) {
	doc := "profile:\n  nmae: typo\n"
	if _, err := Decode(strings.NewReader(doc), true); err == nil {
		t.Error("strict decode should reject unknown key")
	}
	if _, err := Decode(strings.NewReader(doc), false); err != nil {
		t.Errorf("lenient decode should accept unknown key, got %v", err)
	}
}

func TestColorTag(t *testing.T) {
	tests := []struct {
		tag   ColorTag
		valid bool
		class string
	}{
		{ColorBlue, true, "highlight-blue"},
		{ColorGreen, true, "highlight-green"},
		{ColorOrange, true, "highlight-orange"},
		{"purple", false, ""},
		{"", false, ""},
	}
	for _, tt := range tests {
		if tt.tag.Valid() != tt.valid {
			t.Errorf("%q.Valid() = %v, want %v", tt.tag, tt.tag.Valid(), tt.valid)
		}
		if tt.tag.Class() != tt.class {
			t.Errorf("%q.Class() = %q, want %q", tt.tag, tt.tag.Class(), tt.class)
		}
	}
}

func TestValidateWarnings(t *testing.T) {
	start := 3
	huge := math.MaxInt - 1
	s := &Store{
		Socials: map[Platform]string{"myspace": "x", PlatformEmail: ""},
		Achievements: []Achievement{{
			Text: "Built Foo and Bar",
			Highlights: []Highlight{
				{Word: "Baz", Color: ColorBlue},
				{Word: "Foo", Color: "purple"},
				{Word: "Bar", Color: ColorGreen, Start: &start},
				{Word: "Foo", Color: ColorBlue, Start: &huge},
			},
		}},
		Projects: []Entry{{Name: "p", Color: "pink"}},
		Thoughts: []Thought{{Year: 2024, Title: "t"}},
	}

	ws := s.Validate()
	joined := make([]string, len(ws))
	for i, w := range ws {
		joined[i] = w.String()
	}
	all := strings.Join(joined, "\n")

	for _, want := range []string{
		"profile.name: name is empty",
		"socials.myspace: unknown platform",
		"socials.email: empty address",
		`word "Baz" not found in text`,
		`unknown color "purple"`,
		`word "Bar" not found at offset 3`,
		fmt.Sprintf(`word "Foo" not found at offset %d`, huge),
		"projects[0].url: missing url",
		`projects[0].color: unknown color "pink"`,
		"thoughts[0].url: missing url",
	} {
		if !strings.Contains(all, want) {
			t.Errorf("warnings missing %q\ngot:\n%s", want, all)
		}
	}
}

func TestValidateNilStore(t *testing.T) {
	var s *Store
	if ws := s.Validate(); len(ws) != 1 {
		t.Errorf("nil store should produce one warning, got %v", ws)
	}
}
