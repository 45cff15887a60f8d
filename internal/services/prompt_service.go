package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bullprompt-backend/internal/database"
	"bullprompt-backend/internal/models"

	"go.uber.org/zap"
)

// DefaultStorageKey is the backend key holding the whole prompt collection.
const DefaultStorageKey = "prompts"

// PromptService is the validated CRUD layer over the persisted prompt
// collection. Every mutation is a single read-modify-write of the whole
// collection; concurrent writers are not coordinated.
type PromptService struct {
	backend database.Backend
	key     string
	now     func() time.Time
	log     *zap.Logger
}

type Option func(*PromptService)

func WithStorageKey(key string) Option {
	return func(s *PromptService) {
		if key != "" {
			s.key = key
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *PromptService) {
		s.now = now
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *PromptService) {
		if log != nil {
			s.log = log
		}
	}
}

func NewPromptService(backend database.Backend, opts ...Option) *PromptService {
	s := &PromptService{
		backend: backend,
		key:     DefaultStorageKey,
		now:     time.Now,
		log:     zap.L(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and sanitizes input and appends a new prompt.
func (s *PromptService) Create(ctx context.Context, in models.PromptInput) (*models.Prompt, error) {
	input, err := normalizeInput(in)
	if err != nil {
		return nil, err
	}

	prompts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	prompt := models.Prompt{
		ID:        newID(input.Name, now, prompts),
		Name:      input.Name,
		Text:      input.Text,
		Tags:      input.Tags,
		Timestamp: models.NewTimestamp(now),
	}

	if err := s.store(ctx, append(prompts, prompt)); err != nil {
		return nil, err
	}

	s.log.Debug("prompt created", zap.String("id", prompt.ID))
	return &prompt, nil
}

// List returns every prompt in insertion order.
func (s *PromptService) List(ctx context.Context) ([]models.Prompt, error) {
	return s.load(ctx)
}

// Get returns the prompt with the given id.
func (s *PromptService) Get(ctx context.Context, id string) (*models.Prompt, error) {
	prompts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(prompts, id)
	if i < 0 {
		return nil, ErrNotFound
	}
	return &prompts[i], nil
}

// Update replaces the content of an existing prompt in place, keeping its id
// and refreshing its timestamp.
func (s *PromptService) Update(ctx context.Context, id string, in models.PromptInput) (*models.Prompt, error) {
	input, err := normalizeInput(in)
	if err != nil {
		return nil, err
	}

	prompts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	i := indexOf(prompts, id)
	if i < 0 {
		return nil, ErrNotFound
	}

	prompts[i] = models.Prompt{
		ID:        id,
		Name:      input.Name,
		Text:      input.Text,
		Tags:      input.Tags,
		Timestamp: models.NewTimestamp(s.now()),
	}

	if err := s.store(ctx, prompts); err != nil {
		return nil, err
	}

	s.log.Debug("prompt updated", zap.String("id", id))
	updated := prompts[i]
	return &updated, nil
}

// Delete removes the prompt with the given id.
func (s *PromptService) Delete(ctx context.Context, id string) error {
	prompts, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(prompts) {
		return ErrNotFound
	}

	if err := s.store(ctx, kept); err != nil {
		return err
	}

	s.log.Debug("prompt deleted", zap.String("id", id))
	return nil
}

// load reads the whole collection. A missing key is an empty collection; an
// unreadable one is a StorageError.
func (s *PromptService) load(ctx context.Context) ([]models.Prompt, error) {
	values, err := s.backend.Get(ctx, s.key)
	if err != nil {
		return nil, &StorageError{Op: "read", Err: err}
	}

	prompts := []models.Prompt{}
	raw, ok := values[s.key]
	if !ok || len(raw) == 0 {
		return prompts, nil
	}
	if err := json.Unmarshal(raw, &prompts); err != nil {
		return nil, &StorageError{Op: "decode", Err: err}
	}
	if prompts == nil {
		prompts = []models.Prompt{}
	}
	for i := range prompts {
		if prompts[i].Tags == nil {
			prompts[i].Tags = []string{}
		}
	}
	return prompts, nil
}

func (s *PromptService) store(ctx context.Context, prompts []models.Prompt) error {
	if prompts == nil {
		prompts = []models.Prompt{}
	}
	raw, err := json.Marshal(prompts)
	if err != nil {
		return &StorageError{Op: "encode", Err: err}
	}
	if err := s.backend.Set(ctx, map[string][]byte{s.key: raw}); err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}

func indexOf(prompts []models.Prompt, id string) int {
	for i := range prompts {
		if prompts[i].ID == id {
			return i
		}
	}
	return -1
}

// newID builds slug_millis. The millisecond suffix is bumped until the id is
// free in the collection that is about to be written.
func newID(name string, now time.Time, existing []models.Prompt) string {
	slug := Slug(name)
	ms := now.UnixMilli()
	for {
		id := fmt.Sprintf("%s_%d", slug, ms)
		if indexOf(existing, id) < 0 {
			return id
		}
		ms++
	}
}

// errorMessage maps an operation error to the text shown to the user.
func errorMessage(err error, failure string) string {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, ErrNotFound):
		return "Prompt not found"
	default:
		return failure
	}
}
