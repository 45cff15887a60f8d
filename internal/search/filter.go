// Package search holds the pure filtering helpers behind the prompt list.
package search

import (
	"slices"
	"strings"

	"bullprompt-backend/internal/models"
)

// PreviewLength is the number of characters shown on a prompt card.
const PreviewLength = 100

// Filter returns the records matching filters, in their original order.
// A non-empty query must occur, case-insensitively, in the name, the text
// or one of the tags. A non-empty tag selection requires at least one of the
// record's tags to be selected. Both conditions apply together.
func Filter(records []models.Prompt, filters models.SearchFilters) []models.Prompt {
	query := strings.ToLower(filters.Query)
	out := make([]models.Prompt, 0, len(records))
	for _, p := range records {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if len(filters.SelectedTags) > 0 && !hasAnyTag(p, filters.SelectedTags) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p models.Prompt, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) || strings.Contains(strings.ToLower(p.Text), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func hasAnyTag(p models.Prompt, selected []string) bool {
	for _, tag := range selected {
		if slices.Contains(p.Tags, tag) {
			return true
		}
	}
	return false
}

// AllTags returns every distinct, trimmed, non-empty tag in sorted order.
func AllTags(records []models.Prompt) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, p := range records {
		for _, tag := range p.Tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	slices.Sort(tags)
	return tags
}

// HasFilters reports whether any filter is active.
func HasFilters(filters models.SearchFilters) bool {
	return filters.Query != "" || len(filters.SelectedTags) > 0
}

// Preview shortens text to PreviewLength characters, marking the cut with "...".
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) <= PreviewLength {
		return text
	}
	return string(runes[:PreviewLength]) + "..."
}

// Display prepares records for list cards.
func Display(records []models.Prompt) []models.PromptDisplayData {
	out := make([]models.PromptDisplayData, 0, len(records))
	for _, p := range records {
		out = append(out, models.PromptDisplayData{
			ID:      p.ID,
			Name:    p.Name,
			Text:    p.Text,
			Tags:    p.Tags,
			Preview: Preview(p.Text),
		})
	}
	return out
}
