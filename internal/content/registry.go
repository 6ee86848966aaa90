package content

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

// Registry is the immutable set of records for one page session.
// Accessors return copies; callers must not mutate nested slices.
type Registry struct {
	profile      Profile
	sections     []Section
	academic     []Experience
	industry     []Experience
	timeline     []Experience
	projects     []Project
	publications []Publication
	honors       []Honor
}

// New validates doc and builds a registry, merging the timeline once.
func New(doc Document) (*Registry, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(doc); err != nil {
		return nil, &ValidationError{Message: "invalid content", Cause: err}
	}

	academic := withCategory(doc.Experience.Academic, CategoryAcademic)
	industry := withCategory(doc.Experience.Industry, CategoryIndustry)
	for _, exp := range slices.Concat(academic, industry) {
		if end, ok := exp.End.Month(); ok && end.Before(exp.Start) {
			return nil, &ValidationError{
				Message: fmt.Sprintf("experience %q ends (%s) before it starts (%s)", exp.Title, end, exp.Start),
			}
		}
	}

	projects, err := keyProjects(doc.Projects)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]bool, len(doc.Sections))
	for _, s := range doc.Sections {
		if ids[s.ID] {
			return nil, &ValidationError{Message: fmt.Sprintf("duplicate section id %q", s.ID)}
		}
		ids[s.ID] = true
	}

	return &Registry{
		profile:      doc.Profile,
		sections:     slices.Clone(doc.Sections),
		academic:     academic,
		industry:     industry,
		timeline:     MergeTimeline(academic, industry),
		projects:     projects,
		publications: slices.Clone(doc.Publications),
		honors:       slices.Clone(doc.Honors),
	}, nil
}

// MergeTimeline concatenates academic then industry and sorts by start month, most
// recent first. Entries with the same start keep their concatenation order.
func MergeTimeline(academic, industry []Experience) []Experience {
	merged := make([]Experience, 0, len(academic)+len(industry))
	merged = append(merged, academic...)
	merged = append(merged, industry...)
	slices.SortStableFunc(merged, func(a, b Experience) int {
		return b.Start.Compare(a.Start)
	})
	return merged
}

// keyProjects gives every project a unique URL key. Names that slug to the same
// key get -2, -3, ... suffixes in list order.
func keyProjects(in []Project) ([]Project, error) {
	out := slices.Clone(in)
	names := make(map[string]bool, len(out))
	used := make(map[string]bool, len(out))
	for i := range out {
		if names[out[i].Name] {
			return nil, &ValidationError{Message: fmt.Sprintf("duplicate project name %q", out[i].Name)}
		}
		names[out[i].Name] = true

		base := Slugify(out[i].Name)
		if base == "" {
			base = "project"
		}
		key := base
		for n := 2; used[key]; n++ {
			key = fmt.Sprintf("%s-%d", base, n)
		}
		used[key] = true
		out[i].key = key
	}
	return out, nil
}

func withCategory(in []Experience, c Category) []Experience {
	out := slices.Clone(in)
	for i := range out {
		out[i].Category = c
	}
	return out
}

func (r *Registry) Profile() Profile { return r.profile }

func (r *Registry) Sections() []Section { return slices.Clone(r.sections) }

func (r *Registry) Academic() []Experience { return slices.Clone(r.academic) }

func (r *Registry) Industry() []Experience { return slices.Clone(r.industry) }

// Timeline returns the merged experience list computed at construction.
func (r *Registry) Timeline() []Experience { return slices.Clone(r.timeline) }

func (r *Registry) Projects() []Project { return slices.Clone(r.projects) }

func (r *Registry) Publications() []Publication { return slices.Clone(r.publications) }

func (r *Registry) Honors() []Honor { return slices.Clone(r.honors) }

// ProjectBySlug looks a project up by its URL key.
func (r *Registry) ProjectBySlug(slug string) (Project, bool) {
	for _, p := range r.projects {
		if p.Slug() == slug {
			return p, true
		}
	}
	return Project{}, false
}
