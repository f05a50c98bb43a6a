package form

import (
	"leadform/config"
	"leadform/models"
)

// Built-in page slugs.
const (
	PageMain   = "main"
	PageCourse = "course"
)

// PageRegistry resolves page slugs to their form definitions.
type PageRegistry struct {
	pages map[string]models.FormDefinition
	order []string
}

// NewPageRegistry builds a registry from the given definitions.
func NewPageRegistry(defs ...models.FormDefinition) *PageRegistry {
	r := &PageRegistry{pages: make(map[string]models.FormDefinition)}
	for _, def := range defs {
		if _, exists := r.pages[def.Page]; !exists {
			r.order = append(r.order, def.Page)
		}
		r.pages[def.Page] = def
	}
	return r
}

// Get returns the definition registered under a page slug.
func (r *PageRegistry) Get(page string) (models.FormDefinition, bool) {
	def, ok := r.pages[page]
	return def, ok
}

// List returns all registered definitions in registration order.
func (r *PageRegistry) List() []models.FormDefinition {
	defs := make([]models.FormDefinition, 0, len(r.order))
	for _, page := range r.order {
		defs = append(defs, r.pages[page])
	}
	return defs
}

// DefaultPages returns the two built-in landing pages. The main page opens
// directly on the contact step; the course page adds the course-selection
// step in front and requires a preferred start date.
func DefaultPages() []models.FormDefinition {
	return []models.FormDefinition{
		{
			Page:        PageMain,
			Campaign:    config.AppConfig.MainCampaign,
			InitialStep: models.StepContact,
		},
		{
			Page:         PageCourse,
			Campaign:     config.AppConfig.CourseCampaign,
			InitialStep:  models.StepCourse,
			CoursePicker: true,
			RequireDate:  true,
		},
	}
}
