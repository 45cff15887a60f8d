package controller

import (
	"slices"

	"bullprompt-backend/internal/models"
	"bullprompt-backend/internal/search"
)

type TagFilter struct {
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type FormView struct {
	Title       string   `json:"title"`
	SubmitLabel string   `json:"submitLabel"`
	Name        string   `json:"name"`
	Text        string   `json:"prompt"`
	Tags        []string `json:"tags"`
	Error       string   `json:"error,omitempty"`
	Saving      bool     `json:"saving"`
}

// View is what a presentation layer draws.
type View struct {
	Cards            []models.PromptDisplayData `json:"cards"`
	TagFilters       []TagFilter                `json:"tagFilters"`
	Empty            bool                       `json:"empty"`
	Unavailable      bool                       `json:"unavailable"`
	Loading          bool                       `json:"loading"`
	ShowClearFilters bool                       `json:"showClearFilters"`
	Form             *FormView                  `json:"form,omitempty"`
	Notification     *Notification              `json:"notification,omitempty"`
}

// Render derives the view from state. It has no side effects.
func Render(s State) View {
	visible := search.Filter(s.Prompts, s.Filters)

	filters := make([]TagFilter, 0, len(s.AllTags))
	for _, tag := range s.AllTags {
		filters = append(filters, TagFilter{
			Label:  tag,
			Active: slices.Contains(s.Filters.SelectedTags, tag),
		})
	}

	v := View{
		Cards:            search.Display(visible),
		TagFilters:       filters,
		Empty:            len(visible) == 0,
		Unavailable:      s.Unavailable,
		Loading:          s.Loading,
		ShowClearFilters: search.HasFilters(s.Filters),
	}

	if s.Form.Open {
		v.Form = renderForm(s.Form)
	}
	if s.Notification != nil {
		n := *s.Notification
		v.Notification = &n
	}
	return v
}

func renderForm(f FormState) *FormView {
	fv := &FormView{
		Title:       "Add New Prompt",
		SubmitLabel: "Save Prompt",
		Name:        f.Name,
		Text:        f.Text,
		Tags:        slices.Clone(f.Tags),
		Error:       f.Error,
		Saving:      f.Saving,
	}
	if f.Editing() {
		fv.Title = "Edit Prompt"
		fv.SubmitLabel = "Update Prompt"
	}
	if f.Saving {
		fv.SubmitLabel = "Saving..."
	}
	if fv.Tags == nil {
		fv.Tags = []string{}
	}
	return fv
}
