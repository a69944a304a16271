package portfolio

// PersonalInfo describes the site owner.
type PersonalInfo struct {
	Name     string `yaml:"name" json:"name"`
	Title    string `yaml:"title" json:"title"`
	Email    string `yaml:"email" json:"email"`
	LinkedIn string `yaml:"linkedin" json:"linkedin,omitempty"`
	Location string `yaml:"location" json:"location"`
	Summary  string `yaml:"summary" json:"summary"`
	Image    string `yaml:"image" json:"image,omitempty"`
}

// SkillGroup is one card in the skills grid. Item order is display order.
type SkillGroup struct {
	Category string   `yaml:"category" json:"category"`
	Icon     string   `yaml:"icon" json:"icon"`
	Items    []string `yaml:"items" json:"items"`
}

// ExperienceEntry is one job on the timeline.
type ExperienceEntry struct {
	ID          int      `yaml:"id" json:"id"`
	Role        string   `yaml:"role" json:"role"`
	Company     string   `yaml:"company" json:"company"`
	Date        string   `yaml:"date" json:"date"`
	Location    string   `yaml:"location" json:"location"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tech" json:"tech"`
}

// Links holds the external links of a project.
type Links struct {
	Repository string `yaml:"github" json:"github"`
	Demo       string `yaml:"demo" json:"demo"`
}

// ProjectEntry is one card in the projects grid.
type ProjectEntry struct {
	ID          int      `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Category    string   `yaml:"category" json:"category"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tech" json:"tech"`
	Links       Links    `yaml:"links" json:"links"`
}

// Highlight is a stat card in the about section, e.g. "2+ YEARS EXPERIENCE".
type Highlight struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Data is the whole fixture.
type Data struct {
	Personal   PersonalInfo      `yaml:"personal" json:"personal"`
	Roles      []string          `yaml:"roles" json:"roles"`
	About      string            `yaml:"about" json:"about"`
	Highlights []Highlight       `yaml:"highlights" json:"highlights"`
	Skills     []SkillGroup      `yaml:"skills" json:"skills"`
	Experience []ExperienceEntry `yaml:"experience" json:"experience"`
	Projects   []ProjectEntry    `yaml:"projects" json:"projects"`
}
