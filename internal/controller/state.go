package controller

import (
	"slices"

	"bullprompt-backend/internal/models"
)

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient message. It disappears on its own after the
// controller's notify timeout.
type Notification struct {
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`

	seq uint64
}

// FormState is the add/edit form. EditingID is empty while adding.
type FormState struct {
	Open      bool
	EditingID string
	Name      string
	Text      string
	Tags      []string
	Error     string
	Saving    bool
}

func (f FormState) Editing() bool {
	return f.EditingID != ""
}

// State is everything the controller knows. It is owned by one Controller
// and handed to Render by value.
type State struct {
	Prompts      []models.Prompt
	AllTags      []string
	Filters      models.SearchFilters
	Form         FormState
	Loading      bool
	Unavailable  bool
	Notification *Notification
}

// clone copies the slices so the caller cannot alias controller state.
func (s State) clone() State {
	out := s
	out.Prompts = slices.Clone(s.Prompts)
	out.AllTags = slices.Clone(s.AllTags)
	out.Filters.SelectedTags = slices.Clone(s.Filters.SelectedTags)
	out.Form.Tags = slices.Clone(s.Form.Tags)
	if s.Notification != nil {
		n := *s.Notification
		out.Notification = &n
	}
	return out
}
