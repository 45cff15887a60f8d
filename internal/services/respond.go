package services

import (
	"context"
	"errors"

	"bullprompt-backend/internal/models"
	"bullprompt-backend/internal/utils"

	"go.uber.org/zap"
)

const (
	failSave     = "Failed to save prompt"
	failRetrieve = "Failed to retrieve prompts"
	failUpdate   = "Failed to update prompt"
	failDelete   = "Failed to delete prompt"
)

// Respond converts an operation outcome into the response envelope. Storage
// failures are logged with their cause and reported as failure.
func Respond[T any](log *zap.Logger, failure string, data T, err error) utils.Result[T] {
	if err == nil {
		return utils.Ok(data)
	}
	if !IsValidation(err) && !errors.Is(err, ErrNotFound) {
		log.Error(failure, zap.Error(err))
	}
	return utils.Fail[T](errorMessage(err, failure))
}

// SavePrompt creates a prompt and answers with the envelope.
func (s *PromptService) SavePrompt(ctx context.Context, in models.PromptInput) utils.Result[models.Prompt] {
	p, err := s.Create(ctx, in)
	return Respond(s.log, failSave, deref(p), err)
}

// GetPrompts lists every prompt and answers with the envelope.
func (s *PromptService) GetPrompts(ctx context.Context) utils.Result[[]models.Prompt] {
	prompts, err := s.List(ctx)
	return Respond(s.log, failRetrieve, prompts, err)
}

// GetPrompt looks up one prompt and answers with the envelope.
func (s *PromptService) GetPrompt(ctx context.Context, id string) utils.Result[models.Prompt] {
	p, err := s.Get(ctx, id)
	return Respond(s.log, failRetrieve, deref(p), err)
}

// UpdatePrompt updates a prompt and answers with the envelope.
func (s *PromptService) UpdatePrompt(ctx context.Context, id string, in models.PromptInput) utils.Result[models.Prompt] {
	p, err := s.Update(ctx, id, in)
	return Respond(s.log, failUpdate, deref(p), err)
}

// DeletePrompt removes a prompt and answers with the envelope.
func (s *PromptService) DeletePrompt(ctx context.Context, id string) utils.Result[struct{}] {
	err := s.Delete(ctx, id)
	if err == nil {
		return utils.Done()
	}
	return Respond(s.log, failDelete, struct{}{}, err)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
