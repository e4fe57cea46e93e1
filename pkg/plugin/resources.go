package plugin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/grafana/grafana-plugin-sdk-go/backend"
	"github.com/grafana/grafana-plugin-sdk-go/backend/log"

	"github.com/grafana/surrealdb-datasource/pkg/editor"
	"github.com/grafana/surrealdb-datasource/pkg/internal"
	"github.com/grafana/surrealdb-datasource/pkg/models"
)

type fieldChange struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// settingsRequest is the datasource options plus an optional single-field edit.
type settingsRequest struct {
	editor.Options
	Change *fieldChange `json:"change,omitempty"`
}

type settingsResponse struct {
	Options editor.Options      `json:"options"`
	Fields  []editor.FieldState `json:"fields"`
}

// queryEdit is read from the same body as the query record.
type queryEdit struct {
	Text *string `json:"text"`
}

type queryEditResponse struct {
	Query   models.Query             `json:"query"`
	Changed bool                     `json:"changed"`
	Editor  editor.CodeEditorOptions `json:"editor"`
}

// CallResource implements backend.CallResourceHandler
func (d *SurrealDatasource) CallResource(_ context.Context, req *backend.CallResourceRequest, sender backend.CallResourceResponseSender) error {
	log.DefaultLogger.Debug("CallResource called", "path", req.Path, "method", req.Method)

	switch req.Path {
	case "defaults":
		if req.Method != http.MethodGet {
			return sendError(sender, http.StatusMethodNotAllowed, "method not allowed")
		}

		return sendJSON(sender, http.StatusOK, models.DefaultQuery())
	case "settings":
		if req.Method != http.MethodPost {
			return sendError(sender, http.StatusMethodNotAllowed, "method not allowed")
		}

		return d.settingsResource(req, sender)
	case "query":
		if req.Method != http.MethodPost {
			return sendError(sender, http.StatusMethodNotAllowed, "method not allowed")
		}

		return d.queryResource(req, sender)
	case "build-info":
		if req.Method != http.MethodGet {
			return sendError(sender, http.StatusMethodNotAllowed, "method not allowed")
		}

		return sendJSON(sender, http.StatusOK, internal.Info())
	default:
		return sender.Send(&backend.CallResourceResponse{
			Status: http.StatusNotFound,
		})
	}
}

func (d *SurrealDatasource) settingsResource(req *backend.CallResourceRequest, sender backend.CallResourceResponseSender) error {
	var body settingsRequest
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return sendError(sender, http.StatusBadRequest, fmt.Sprintf("invalid options: %v", err))
	}

	opts := body.Options
	if body.Change != nil {
		var err error
		if opts, err = editor.SetFieldByKey(opts, body.Change.Field, body.Change.Value); err != nil {
			return sendError(sender, http.StatusBadRequest, err.Error())
		}
	}

	return sendJSON(sender, http.StatusOK, settingsResponse{
		Options: opts,
		Fields:  editor.Render(opts),
	})
}

// queryResource takes a stored query record of any revision. An optional
// "text" key next to the record's own fields is the editor buffer to commit.
func (d *SurrealDatasource) queryResource(req *backend.CallResourceRequest, sender backend.CallResourceResponseSender) error {
	if len(bytes.TrimSpace(req.Body)) == 0 {
		return sendError(sender, http.StatusBadRequest, "query is required")
	}

	var edit queryEdit
	if err := json.Unmarshal(req.Body, &edit); err != nil {
		return sendError(sender, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
	}

	q, err := models.ParseQuery(req.Body)
	if err != nil {
		return sendError(sender, http.StatusBadRequest, err.Error())
	}

	e := editor.NewQueryEditor(q)
	if edit.Text != nil {
		e.Change(*edit.Text)
	}
	committed, changed := e.Blur()

	return sendJSON(sender, http.StatusOK, queryEditResponse{
		Query:   committed,
		Changed: changed,
		Editor:  e.Options(),
	})
}

func sendJSON(sender backend.CallResourceResponseSender, status int, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		log.DefaultLogger.Error("resource json marshal error", "err", err)
		return err
	}

	return sender.Send(&backend.CallResourceResponse{
		Status:  status,
		Headers: map[string][]string{"Content-Type": {"application/json"}},
		Body:    body,
	})
}

func sendError(sender backend.CallResourceResponseSender, status int, msg string) error {
	return sendJSON(sender, status, map[string]string{"message": msg})
}
