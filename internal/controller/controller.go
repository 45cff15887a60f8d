// Package controller is the presentation-independent half of the prompt
// popup: it owns the view state, turns commands into Record Store calls and
// renders the result.
package controller

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"bullprompt-backend/internal/models"
	"bullprompt-backend/internal/search"
	"bullprompt-backend/internal/services"
	"bullprompt-backend/internal/utils"

	"go.uber.org/zap"
)

// DefaultNotifyTimeout is how long a notification stays up.
const DefaultNotifyTimeout = 3 * time.Second

const (
	msgFormIncomplete = "Name, prompt, and at least one tag are required"
	msgTooManyTags    = "Maximum 5 tags allowed"
	msgConfirmDelete  = "Are you sure you want to delete this prompt?"
)

// Store is the envelope side of the Record Store.
type Store interface {
	GetPrompts(ctx context.Context) utils.Result[[]models.Prompt]
	SavePrompt(ctx context.Context, in models.PromptInput) utils.Result[models.Prompt]
	UpdatePrompt(ctx context.Context, id string, in models.PromptInput) utils.Result[models.Prompt]
	DeletePrompt(ctx context.Context, id string) utils.Result[struct{}]
}

// Clipboard receives copied prompt text.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(message string) bool

// Failure is returned by Dispatch when a command could not be carried out.
// Message is the text the user was shown.
type Failure struct {
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

type Controller struct {
	store       Store
	clipboard   Clipboard
	confirm     ConfirmFunc
	notifyAfter time.Duration
	log         *zap.Logger

	mu    sync.Mutex
	state State
	seq   uint64
	timer *time.Timer
}

type Option func(*Controller)

func WithClipboard(cb Clipboard) Option {
	return func(c *Controller) { c.clipboard = cb }
}

func WithConfirm(confirm ConfirmFunc) Option {
	return func(c *Controller) { c.confirm = confirm }
}

// WithNotifyTimeout sets the auto-dismiss delay. Zero or less keeps
// notifications until dismissed.
func WithNotifyTimeout(d time.Duration) Option {
	return func(c *Controller) { c.notifyAfter = d }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

func New(store Store, opts ...Option) *Controller {
	c := &Controller{
		store:       store,
		confirm:     func(string) bool { return true },
		notifyAfter: DefaultNotifyTimeout,
		log:         zap.L(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dispatch runs one command to completion and returns the new view.
// Commands are serialized; a second Dispatch waits for the first.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.log.Debug("dispatch", zap.Stringer("command", cmd.Kind))

	var err error
	switch cmd.Kind {
	case CommandLoad:
		err = c.load(ctx)
	case CommandSearch:
		c.state.Filters.Query = cmd.Query
	case CommandToggleTag:
		c.toggleTag(cmd.Tag)
	case CommandClearFilters:
		c.state.Filters = models.SearchFilters{}
	case CommandOpenCreate:
		c.state.Form = FormState{Open: true}
	case CommandOpenEdit:
		err = c.openEdit(cmd.ID)
	case CommandCloseForm:
		c.state.Form = FormState{}
	case CommandAddFormTag:
		c.addFormTag(cmd.Tag)
	case CommandRemoveFormTag:
		c.removeFormTag(cmd.Tag)
	case CommandSubmit:
		err = c.submit(ctx, cmd.Name, cmd.Text)
	case CommandDelete:
		err = c.delete(ctx, cmd.ID)
	case CommandCopy:
		err = c.copy(ctx, cmd.ID)
	case CommandDismissNotification:
		c.clearNotification()
	default:
		err = &Failure{Message: "unknown command " + cmd.Kind.String()}
	}

	return Render(c.state), err
}

// View renders the current state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Render(c.state)
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Close stops a pending auto-dismiss timer.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) load(ctx context.Context) error {
	c.state.Loading = true
	defer func() { c.state.Loading = false }()

	res := c.store.GetPrompts(ctx)
	if !res.Success || res.Data == nil {
		// an unavailable library shows no cards
		c.state.Unavailable = true
		c.state.Prompts = nil
		c.state.AllTags = nil
		return c.fail(orDefault(res.Error, "Failed to load prompts"))
	}

	c.state.Unavailable = false
	c.state.Prompts = *res.Data
	c.state.AllTags = search.AllTags(c.state.Prompts)
	return nil
}

func (c *Controller) toggleTag(tag string) {
	selected := c.state.Filters.SelectedTags
	if i := slices.Index(selected, tag); i >= 0 {
		c.state.Filters.SelectedTags = slices.Delete(slices.Clone(selected), i, i+1)
		return
	}
	c.state.Filters.SelectedTags = append(slices.Clone(selected), tag)
}

func (c *Controller) openEdit(id string) error {
	p, ok := c.find(id)
	if !ok {
		return c.fail("Prompt not found")
	}
	c.state.Form = FormState{
		Open:      true,
		EditingID: p.ID,
		Name:      p.Name,
		Text:      p.Text,
		Tags:      slices.Clone(p.Tags),
	}
	return nil
}

// addFormTag ignores blank, duplicate and sixth tags.
func (c *Controller) addFormTag(tag string) {
	tag = strings.TrimSpace(tag)
	tags := c.state.Form.Tags
	if tag == "" || slices.Contains(tags, tag) || len(tags) >= services.MaxTags {
		return
	}
	c.state.Form.Tags = append(slices.Clone(tags), tag)
}

func (c *Controller) removeFormTag(tag string) {
	if i := slices.Index(c.state.Form.Tags, tag); i >= 0 {
		c.state.Form.Tags = slices.Delete(slices.Clone(c.state.Form.Tags), i, i+1)
	}
}

func (c *Controller) submit(ctx context.Context, name, text string) error {
	name = strings.TrimSpace(name)
	text = strings.TrimSpace(text)
	c.state.Form.Name = name
	c.state.Form.Text = text

	tags := make([]string, 0, len(c.state.Form.Tags))
	for _, tag := range c.state.Form.Tags {
		if strings.TrimSpace(tag) != "" {
			tags = append(tags, tag)
		}
	}

	if name == "" || text == "" || len(tags) == 0 {
		return c.formError(msgFormIncomplete)
	}
	if len(tags) > services.MaxTags {
		return c.formError(msgTooManyTags)
	}

	c.state.Form.Saving = true
	defer func() { c.state.Form.Saving = false }()

	in := models.PromptInput{Name: name, Text: text, Tags: tags}
	editing := c.state.Form.Editing()

	var res utils.Result[models.Prompt]
	if editing {
		res = c.store.UpdatePrompt(ctx, c.state.Form.EditingID, in)
	} else {
		res = c.store.SavePrompt(ctx, in)
	}
	if !res.Success {
		return c.formError(orDefault(res.Error, "Failed to save prompt"))
	}

	c.state.Form = FormState{}
	if editing {
		c.notify("Prompt updated successfully", NotificationSuccess)
	} else {
		c.notify("Prompt saved successfully", NotificationSuccess)
	}
	return c.load(ctx)
}

func (c *Controller) delete(ctx context.Context, id string) error {
	if !c.confirm(msgConfirmDelete) {
		return nil
	}

	res := c.store.DeletePrompt(ctx, id)
	if !res.Success {
		return c.fail(orDefault(res.Error, "Failed to delete prompt"))
	}

	c.notify("Prompt deleted successfully", NotificationSuccess)
	return c.load(ctx)
}

func (c *Controller) copy(ctx context.Context, id string) error {
	p, ok := c.find(id)
	if !ok {
		return c.fail("Prompt not found")
	}
	if c.clipboard == nil {
		return c.fail("Failed to copy prompt")
	}
	if err := c.clipboard.WriteText(ctx, p.Text); err != nil {
		c.log.Warn("clipboard write failed", zap.Error(err))
		return c.fail("Failed to copy prompt")
	}
	c.notify("Prompt copied to clipboard!", NotificationSuccess)
	return nil
}

func (c *Controller) find(id string) (models.Prompt, bool) {
	i := slices.IndexFunc(c.state.Prompts, func(p models.Prompt) bool { return p.ID == id })
	if i < 0 {
		return models.Prompt{}, false
	}
	return c.state.Prompts[i], true
}

// formError shows message inside the open form and as a notification.
func (c *Controller) formError(message string) error {
	c.state.Form.Error = message
	return c.fail(message)
}

func (c *Controller) fail(message string) error {
	c.notify(message, NotificationError)
	return &Failure{Message: message}
}

// notify replaces the current notification and schedules its dismissal.
// Callers hold c.mu.
func (c *Controller) notify(message string, kind NotificationKind) {
	c.seq++
	seq := c.seq
	c.state.Notification = &Notification{Message: message, Kind: kind, seq: seq}

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.notifyAfter <= 0 {
		return
	}
	c.timer = time.AfterFunc(c.notifyAfter, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if n := c.state.Notification; n != nil && n.seq == seq {
			c.state.Notification = nil
		}
	})
}

func (c *Controller) clearNotification() {
	c.state.Notification = nil
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

// IsFailure reports whether err came from a rejected command.
func IsFailure(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}
