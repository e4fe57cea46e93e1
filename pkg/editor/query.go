package editor

import "github.com/grafana/surrealdb-datasource/pkg/models"

// CodeEditorOptions configures the code editor widget.
type CodeEditorOptions struct {
	Language        string `json:"language"`
	ShowMiniMap     bool   `json:"showMiniMap"`
	ShowLineNumbers bool   `json:"showLineNumbers"`
	Height          string `json:"height"`
}

// QueryEditor buffers edits to a query's text. Changes reach the query record
// only on Blur.
type QueryEditor struct {
	query  models.Query
	buffer string
}

func NewQueryEditor(q models.Query) *QueryEditor {
	return &QueryEditor{query: q, buffer: q.RawSQL}
}

// Change replaces the buffered text.
func (e *QueryEditor) Change(text string) {
	e.buffer = text
}

// Text returns the buffered text.
func (e *QueryEditor) Text() string {
	return e.buffer
}

// Blur commits the buffer and returns the resulting query along with whether
// its text changed.
func (e *QueryEditor) Blur() (models.Query, bool) {
	changed := e.buffer != e.query.RawSQL
	e.query = e.query.WithRawSQL(e.buffer)

	return e.query, changed
}

func (e *QueryEditor) Options() CodeEditorOptions {
	return CodeEditorOptions{
		Language:        "sql",
		ShowMiniMap:     false,
		ShowLineNumbers: true,
		Height:          "240px",
	}
}
