package services

import (
	"bullprompt-backend/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	MinTags = 1
	MaxTags = 5

	msgNameRequired  = "name required"
	msgTextRequired  = "text required"
	msgTagCountRange = "tag count out of range"
)

// promptRules mirrors PromptInput after cleaning. Fields are checked in
// declaration order and the first failure wins.
type promptRules struct {
	Name string   `validate:"required"`
	Text string   `validate:"required"`
	Tags []string `validate:"required,min=1,max=5"`
}

var validate = validator.New()

var ruleMessages = map[string]string{
	"Name": msgNameRequired,
	"Text": msgTextRequired,
	"Tags": msgTagCountRange,
}

// normalizeInput validates raw input and returns its sanitized form. Blank
// tags are dropped after the count check.
func normalizeInput(in models.PromptInput) (models.PromptInput, error) {
	rules := promptRules{
		Name: clean(in.Name),
		Text: clean(in.Text),
		Tags: in.Tags,
	}

	if err := validate.Struct(rules); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			if msg, ok := ruleMessages[errs[0].StructField()]; ok {
				return models.PromptInput{}, newValidationError(msg)
			}
		}
		return models.PromptInput{}, newValidationError(err.Error())
	}

	tags := make([]string, 0, len(in.Tags))
	for _, tag := range in.Tags {
		if tag = clean(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) < MinTags {
		return models.PromptInput{}, newValidationError(msgTagCountRange)
	}

	return models.PromptInput{Name: rules.Name, Text: rules.Text, Tags: tags}, nil
}
