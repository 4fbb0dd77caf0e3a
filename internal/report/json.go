package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/JonMunkholm/culturize/internal/core"
)

// Document is the JSON form of a run.
type Document struct {
	RunID      string             `json:"runId"`
	Source     string             `json:"source"`
	StartedAt  string             `json:"startedAt"`
	DurationMS int64              `json:"durationMs"`
	Summary    core.Summary       `json:"summary"`
	Rows       []core.ReportEntry `json:"rows"`
}

// NewDocument builds the JSON form of result.
func NewDocument(result *core.RunResult) Document {
	return Document{
		RunID:      result.RunID,
		Source:     result.Source,
		StartedAt:  result.StartedAt.UTC().Format(time.RFC3339),
		DurationMS: result.Duration.Milliseconds(),
		Summary:    result.Summary,
		Rows:       result.Entries(),
	}
}

// WriteJSON writes result as indented JSON.
func WriteJSON(w io.Writer, result *core.RunResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(result))
}
