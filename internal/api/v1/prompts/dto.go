package prompts

import "bullprompt-backend/internal/models"

// PromptRequest is the body of create and update calls.
type PromptRequest struct {
	Name   string   `json:"name" example:"Greeting"`
	Prompt string   `json:"prompt" example:"Hello there"`
	Tags   []string `json:"tags" example:"intro,demo"`
}

func (r PromptRequest) ToInput() models.PromptInput {
	return models.PromptInput{Name: r.Name, Text: r.Prompt, Tags: r.Tags}
}

// Envelope types below exist for the swagger docs.

type PromptResponse struct {
	Success bool          `json:"success"`
	Data    models.Prompt `json:"data"`
	Error   string        `json:"error,omitempty"`
}

type PromptListResponse struct {
	Success bool            `json:"success"`
	Data    []models.Prompt `json:"data"`
	Error   string          `json:"error,omitempty"`
}

type TagListResponse struct {
	Success bool     `json:"success"`
	Data    []string `json:"data"`
	Error   string   `json:"error,omitempty"`
}

type EmptyResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
