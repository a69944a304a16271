package web

import (
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/Zachkp/cyber-portfolio/internal/contact"
	"github.com/Zachkp/cyber-portfolio/internal/cursor"
	"github.com/Zachkp/cyber-portfolio/internal/motion"
	"github.com/Zachkp/cyber-portfolio/internal/nav"
	"github.com/Zachkp/cyber-portfolio/internal/portfolio"
	"github.com/Zachkp/cyber-portfolio/internal/section"
)

// SectionOrder is the fixed order sections appear on the page. Every entry
// is also a template name with ".html" appended.
var SectionOrder = []string{"home", "about", "skills", "experience", "projects", "contact"}

func isSection(id string) bool {
	return slices.Contains(SectionOrder, id)
}

// NavState is the navigation bar as first rendered.
type NavState struct {
	Links     []nav.Link
	Scrolled  bool
	MenuOpen  bool
	Threshold int
}

// Page is the view model of the whole site.
type Page struct {
	Title     string
	Year      int
	Sections  []string
	Nav       NavState
	Cursor    [2]cursor.Ring
	Progress  float64
	Spring    motion.SpringConfig
	Personal  portfolio.PersonalInfo
	FirstName string
	LastName  string
	Roles     []string

	About      section.AboutView
	Skills     []section.Fragment[portfolio.SkillGroup]
	Experience []section.Fragment[portfolio.ExperienceEntry]
	Projects   []section.Fragment[portfolio.ProjectEntry]
	Form       contact.Snapshot
}

// Compose builds the page from the store. images is used to check that
// referenced images exist and may be nil.
func Compose(content *portfolio.Store, images fs.FS, spring motion.SpringConfig) (*Page, error) {
	about, err := section.About(content, images)
	if err != nil {
		return nil, err
	}

	var bar nav.Bar
	bar.HandleScroll(0)

	var pointer cursor.Cursor

	personal := content.Personal()
	first, last := splitName(personal.Name)

	return &Page{
		Title:    personal.Name + " | " + personal.Title,
		Year:     time.Now().Year(),
		Sections: slices.Clone(SectionOrder),
		Nav: NavState{
			Links:     nav.Links(),
			Scrolled:  bar.Scrolled(),
			MenuOpen:  bar.MenuOpen(),
			Threshold: nav.ScrollThreshold,
		},
		Cursor:     pointer.Marker(),
		Progress:   motion.NewProgressBar(spring).Scale(),
		Spring:     spring,
		Personal:   personal,
		FirstName:  first,
		LastName:   last,
		Roles:      content.Roles(),
		About:      about,
		Skills:     slices.Collect(section.Skills(content)),
		Experience: slices.Collect(section.Experience(content)),
		Projects:   slices.Collect(section.Projects(content)),
		Form:       contact.NewForm(nil).Snapshot(),
	}, nil
}

// splitName splits at the first space; the second half gets the accent
// colour in the hero.
func splitName(name string) (first, rest string) {
	first, rest, _ = strings.Cut(strings.TrimSpace(name), " ")
	return first, rest
}
