package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"bullprompt-backend/internal/models"

	"gopkg.in/yaml.v3"
)

// exportDocument is the YAML layout of an exported library.
type exportDocument struct {
	Prompts []exportPrompt `yaml:"prompts"`
}

type exportPrompt struct {
	ID        string    `yaml:"id,omitempty"`
	Name      string    `yaml:"name"`
	Prompt    string    `yaml:"prompt"`
	Tags      []string  `yaml:"tags,flow"`
	Timestamp time.Time `yaml:"timestamp,omitempty"`
}

// ImportFailure describes one document entry that was rejected.
type ImportFailure struct {
	Index  int
	Name   string
	Reason string
}

type ImportReport struct {
	Imported []models.Prompt
	Failures []ImportFailure
}

// ExportYAML writes the whole collection as a YAML document.
func (s *PromptService) ExportYAML(ctx context.Context, w io.Writer) (int, error) {
	prompts, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	doc := exportDocument{Prompts: make([]exportPrompt, 0, len(prompts))}
	for _, p := range prompts {
		doc.Prompts = append(doc.Prompts, exportPrompt{
			ID:        p.ID,
			Name:      p.Name,
			Prompt:    p.Text,
			Tags:      p.Tags,
			Timestamp: p.Timestamp.Time,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return 0, fmt.Errorf("encode export: %w", err)
	}
	return len(doc.Prompts), enc.Close()
}

// ImportYAML creates one prompt per document entry. Ids and timestamps in
// the document are ignored; every entry goes through Create. Invalid
// entries are reported and skipped. A storage failure stops the import.
func (s *PromptService) ImportYAML(ctx context.Context, r io.Reader) (*ImportReport, error) {
	var doc exportDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, newValidationError(fmt.Sprintf("invalid import document: %v", err))
	}

	report := &ImportReport{}
	for i, entry := range doc.Prompts {
		p, err := s.Create(ctx, models.PromptInput{Name: entry.Name, Text: entry.Prompt, Tags: entry.Tags})
		if err != nil {
			if IsStorage(err) {
				return report, err
			}
			report.Failures = append(report.Failures, ImportFailure{Index: i, Name: entry.Name, Reason: errorMessage(err, err.Error())})
			continue
		}
		report.Imported = append(report.Imported, *p)
	}
	return report, nil
}
