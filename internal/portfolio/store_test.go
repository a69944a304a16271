package portfolio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	s := Default()

	if s.Personal().Name != "Santanu Raj" {
		t.Errorf("Name = %q, want %q", s.Personal().Name, "Santanu Raj")
	}
	if got := len(s.Skills()); got != 4 {
		t.Errorf("len(Skills) = %d, want 4", got)
	}
	if got := len(s.Experience()); got != 3 {
		t.Errorf("len(Experience) = %d, want 3", got)
	}
	if got := len(s.Projects()); got != 3 {
		t.Errorf("len(Projects) = %d, want 3", got)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := Default()

	skills := s.Skills()
	skills[0].Items[0] = "changed"
	skills[0].Category = "changed"

	exp := s.Experience()
	exp[0].Tags[0] = "changed"

	proj := s.Projects()
	proj[0].Tags = append(proj[0].Tags[:0], "changed")

	if diff := cmp.Diff(fixture, s.Data()); diff != "" {
		t.Errorf("store mutated through accessor (-want +got):\n%s", diff)
	}
}

func TestNewCopiesInput(t *testing.T) {
	d := Data{Skills: []SkillGroup{{Category: "Go", Items: []string{"gin"}}}}
	s := New(d)
	d.Skills[0].Items[0] = "changed"

	if got := s.Skills()[0].Items[0]; got != "gin" {
		t.Errorf("Items[0] = %q, want %q", got, "gin")
	}
}

const content = `---
personal:
  name: Ada Lovelace
  email: ada@example.com
skills:
  - category: Math
    icon: cpu
    items: [Analysis, Engines]
projects:
  - id: 7
    title: Notes
    tech: [Bernoulli]
    links:
      github: https://example.com/notes
---
I write *programs* for engines.
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := Data{
		Personal: PersonalInfo{Name: "Ada Lovelace", Email: "ada@example.com"},
		About:    "I write *programs* for engines.",
		Skills:   []SkillGroup{{Category: "Math", Icon: "cpu", Items: []string{"Analysis", "Engines"}}},
		Projects: []ProjectEntry{{
			ID:    7,
			Title: "Notes",
			Tags:  []string{"Bernoulli"},
			Links: Links{Repository: "https://example.com/notes"},
		}},
	}
	if diff := cmp.Diff(want, s.Data()); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWithoutFrontMatter(t *testing.T) {
	_, err := Parse(strings.NewReader("just text\n"))
	if err == nil {
		t.Error("Expected error parsing content without front matter, got nil")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.md")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write content file: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Personal().Name != "Ada Lovelace" {
		t.Errorf("Name = %q, want %q", s.Personal().Name, "Ada Lovelace")
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/portfolio.md")
	if err == nil {
		t.Error("Expected error loading nonexistent content file, got nil")
	}
}

func TestDumpRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	s, err := Parse(strings.NewReader("---\n" + buf.String() + "---\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(fixture, s.Data()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSampleContent(t *testing.T) {
	s, err := Load(filepath.Join("..", "..", "content", "portfolio.md"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Personal().Name != "Ada Lovelace" {
		t.Errorf("Name = %q", s.Personal().Name)
	}
	if got := len(s.Experience()); got != 1 {
		t.Errorf("len(Experience) = %d, want 1", got)
	}
	if got := s.Projects()[0].Links.Repository; got != "" {
		t.Errorf("Repository = %q, want empty", got)
	}
	if !strings.HasPrefix(s.About(), "I write *programs*") {
		t.Errorf("About = %q", s.About())
	}
}
