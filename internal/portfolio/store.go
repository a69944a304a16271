// Package portfolio holds the read-only content the site is rendered from.
package portfolio

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Store is an immutable snapshot of the portfolio content. Accessors hand out
// copies, so callers can never change what other readers see.
type Store struct {
	data Data
}

// New copies d into a Store.
func New(d Data) *Store {
	return &Store{data: clone(d)}
}

// Default returns the content compiled into the binary.
func Default() *Store {
	return New(fixture)
}

// Load reads a markdown file whose YAML front matter holds the data and whose
// body, when present, replaces the about text.
func Load(path string) (store *Store, err error) {
	var f *os.File
	f, err = os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open content file: %s", path)
		return store, err
	}
	defer f.Close()

	store, err = Parse(f)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse content file: %s", path)
		return store, err
	}

	return store, err
}

// Parse decodes front matter delimited by "---" lines from r.
func Parse(r io.Reader) (store *Store, err error) {
	var d Data
	var body []byte
	body, err = frontmatter.MustParse(r, &d, frontmatter.NewFormat("---", "---", yaml.Unmarshal))
	if err != nil {
		err = errors.Wrap(err, "failed to decode front matter")
		return store, err
	}

	if about := strings.TrimSpace(string(body)); about != "" {
		d.About = about
	}

	store = New(d)
	return store, err
}

// Dump writes the store back out as YAML.
func (s *Store) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s.data); err != nil {
		return errors.Wrap(err, "failed to encode portfolio")
	}
	return enc.Close()
}

func (s *Store) Personal() PersonalInfo { return s.data.Personal }
func (s *Store) About() string          { return s.data.About }
func (s *Store) Roles() []string        { return slices.Clone(s.data.Roles) }

func (s *Store) Highlights() []Highlight {
	return slices.Clone(s.data.Highlights)
}

func (s *Store) Skills() []SkillGroup {
	return clone(s.data).Skills
}

func (s *Store) Experience() []ExperienceEntry {
	return clone(s.data).Experience
}

func (s *Store) Projects() []ProjectEntry {
	return clone(s.data).Projects
}

// Data returns a full copy, used for the JSON API and exports.
func (s *Store) Data() Data {
	return clone(s.data)
}

func clone(d Data) Data {
	out := d
	out.Roles = slices.Clone(d.Roles)
	out.Highlights = slices.Clone(d.Highlights)

	out.Skills = slices.Clone(d.Skills)
	for i := range out.Skills {
		out.Skills[i].Items = slices.Clone(out.Skills[i].Items)
	}
	out.Experience = slices.Clone(d.Experience)
	for i := range out.Experience {
		out.Experience[i].Tags = slices.Clone(out.Experience[i].Tags)
	}
	out.Projects = slices.Clone(d.Projects)
	for i := range out.Projects {
		out.Projects[i].Tags = slices.Clone(out.Projects[i].Tags)
	}
	return out
}
