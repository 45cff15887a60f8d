package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the JSON form written for Timestamp. It matches the
// ISO string a browser produces for a Date.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Prompt is a named, tagged block of text the user wants to reuse.
type Prompt struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Text      string    `json:"prompt"`
	Tags      []string  `json:"tags"`
	Timestamp Timestamp `json:"timestamp,omitzero"`
}

// PromptInput is raw user input for create and update.
type PromptInput struct {
	Name string   `json:"name"`
	Text string   `json:"prompt"`
	Tags []string `json:"tags"`
}

// SearchFilters is the text query and the tag labels selected in the filter bar.
type SearchFilters struct {
	Query        string   `json:"query"`
	SelectedTags []string `json:"selectedTags"`
}

// PromptDisplayData is a Prompt prepared for a list card.
type PromptDisplayData struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Text    string   `json:"prompt"`
	Tags    []string `json:"tags"`
	Preview string   `json:"preview"`
}

// Timestamp is the single creation/modification time of a Prompt. Stored
// collections may carry it as an ISO string or as epoch milliseconds; it is
// always written back as a UTC string.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to millisecond precision, the resolution the
// persisted form can carry.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

func (ts Timestamp) IsZero() bool {
	return ts.Time.IsZero()
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.UTC().Format(TimestampLayout))
}

// timestampLayouts are tried in order on string timestamps. The last two
// are what a browser Date prints through toUTCString and toString.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.DateTime,
	time.DateOnly,
	time.RFC1123,
	time.RFC1123Z,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
}

// UnmarshalJSON never fails: a value it cannot read becomes the zero
// Timestamp, so one bad record does not make the collection unreadable.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	*ts = Timestamp{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*ts = ParseTimestamp(s)
		}
		return nil
	}

	if ms, err := strconv.ParseFloat(string(data), 64); err == nil {
		*ts = NewTimestamp(time.UnixMilli(int64(ms)))
	}
	return nil
}

// ParseTimestamp reads s with any of the known layouts. It returns the zero
// Timestamp when none match.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	// toString appends the zone name in parentheses
	if i := strings.Index(s, " ("); i > 0 {
		s = s[:i]
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(t)
		}
	}
	return Timestamp{}
}
