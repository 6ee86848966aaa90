// Package content holds the static records the portfolio renders and the registry that
// derives the merged experience timeline from them.
package content

import "github.com/gosimple/slug"

// Category tells which source list an experience came from.
type Category string

const (
	CategoryAcademic Category = "academic"
	CategoryIndustry Category = "industry"
)

// Experience is one academic or industry position.
type Experience struct {
	Title        string   `yaml:"title" validate:"required"`
	Organization string   `yaml:"organization" validate:"required"`
	Start        Month    `yaml:"start" validate:"required"`
	End          EndDate  `yaml:"end"`
	Bullets      []string `yaml:"bullets" validate:"dive,required"`
	Logo         string   `yaml:"logo,omitempty"`
	Category     Category `yaml:"-"`
}

// Project is one gallery entry. Name is the unique key.
type Project struct {
	Name        string   `yaml:"name" validate:"required"`
	Blurb       string   `yaml:"blurb" validate:"required"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags" validate:"dive,required"`
	Link        string   `yaml:"link" validate:"required"`
	Image       string   `yaml:"image,omitempty"`

	key string
}

// Slug is the project's URL key. Projects built by a Registry carry a key that
// is unique within it; otherwise the key is derived from the name.
func (p Project) Slug() string {
	if p.key != "" {
		return p.key
	}
	return Slugify(p.Name)
}

// Publication is a titled paper with its venue.
type Publication struct {
	Title string `yaml:"title" validate:"required"`
	Venue string `yaml:"venue" validate:"required"`
	Link  string `yaml:"link" validate:"required"`
}

// Honor is an award or distinction.
type Honor struct {
	Title  string `yaml:"title" validate:"required"`
	Issuer string `yaml:"issuer"`
	Term   string `yaml:"term"`
}

// Section is one in-page navigation target.
type Section struct {
	ID    string `yaml:"id" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

// Link is an outbound link rendered verbatim.
type Link struct {
	Label    string `yaml:"label" validate:"required"`
	URL      string `yaml:"url" validate:"required"`
	External bool   `yaml:"external"`
}

// Chip is a hero meta entry; URL is optional.
type Chip struct {
	Label    string `yaml:"label" validate:"required"`
	URL      string `yaml:"url,omitempty"`
	External bool   `yaml:"external"`
}

// Profile is the owner-level copy used by the hero, about, contact and footer.
type Profile struct {
	Name         string   `yaml:"name" validate:"required"`
	Initials     string   `yaml:"initials"`
	Roles        []string `yaml:"roles"`
	Lede         string   `yaml:"lede"`
	About        string   `yaml:"about"`
	Skills       []string `yaml:"skills"`
	Chips        []Chip   `yaml:"chips" validate:"dive"`
	Availability []string `yaml:"availability"`
	ContactNote  string   `yaml:"contact_note"`
	Contact      []Link   `yaml:"contact" validate:"dive"`
	CV           string   `yaml:"cv"`
	Copyright    string   `yaml:"copyright"`
}

// Document is the on-disk shape of a content file.
type Document struct {
	Profile      Profile       `yaml:"profile"`
	Sections     []Section     `yaml:"sections" validate:"dive"`
	Experience   Experiences   `yaml:"experience"`
	Projects     []Project     `yaml:"projects" validate:"dive"`
	Publications []Publication `yaml:"publications" validate:"dive"`
	Honors       []Honor       `yaml:"honors" validate:"dive"`
}

// Experiences holds the two category lists the timeline is merged from.
type Experiences struct {
	Academic []Experience `yaml:"academic" validate:"dive"`
	Industry []Experience `yaml:"industry" validate:"dive"`
}

// Slugify transliterates s into a lowercase, dash-separated URL segment.
func Slugify(s string) string {
	return slug.Make(s)
}
