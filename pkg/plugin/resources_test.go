package plugin_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/grafana/grafana-plugin-sdk-go/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/surrealdb-datasource/pkg/client/fake"
	"github.com/grafana/surrealdb-datasource/pkg/editor"
	"github.com/grafana/surrealdb-datasource/pkg/models"
)

func callResource(t *testing.T, method, path string, body []byte) *backend.CallResourceResponse {
	t.Helper()

	ds, _ := newTestDatasource(testSettings(), &fake.FakeSurrealDBClient{})

	var got *backend.CallResourceResponse
	err := ds.CallResource(context.Background(), &backend.CallResourceRequest{
		Method: method,
		Path:   path,
		Body:   body,
	}, backend.CallResourceResponseSenderFunc(func(res *backend.CallResourceResponse) error {
		got = res
		return nil
	}))
	require.NoError(t, err)
	require.NotNil(t, got)

	return got
}

func TestCallResource_Defaults(t *testing.T) {
	res := callResource(t, http.MethodGet, "defaults", nil)
	require.Equal(t, http.StatusOK, res.Status)

	var q models.Query
	require.NoError(t, json.Unmarshal(res.Body, &q))
	assert.Equal(t, models.DefaultQuery(), q)
}

type settingsReply struct {
	Options editor.Options      `json:"options"`
	Fields  []editor.FieldState `json:"fields"`
}

func TestCallResource_Settings(t *testing.T) {
	body := []byte(`{"jsonData":{"endpoint":"ws://localhost:8000/rpc","namespace":"grafana"},"secureJsonFields":{"password":true}}`)

	res := callResource(t, http.MethodPost, "settings", body)
	require.Equal(t, http.StatusOK, res.Status)

	var got settingsReply
	require.NoError(t, json.Unmarshal(res.Body, &got))
	require.Len(t, got.Fields, len(models.Fields()))
	assert.Equal(t, "grafana", got.Options.JSONData.Namespace)

	errs := map[string]string{}
	for _, s := range got.Fields {
		if s.Invalid {
			errs[s.Key] = s.Error
		}
		if s.Key == "password" {
			assert.True(t, s.Configured)
		}
	}
	assert.Equal(t, map[string]string{
		"database": "Database name is required",
		"username": "Username is required",
	}, errs)
}

func TestCallResource_SettingsChange(t *testing.T) {
	body := []byte(`{"jsonData":{"endpoint":"ws://localhost:8000/rpc","namespace":"grafana","username":"root"},"change":{"field":"database","value":"sales"}}`)

	res := callResource(t, http.MethodPost, "settings", body)
	require.Equal(t, http.StatusOK, res.Status)

	var got settingsReply
	require.NoError(t, json.Unmarshal(res.Body, &got))
	assert.Equal(t, models.JSONData{
		Endpoint:  "ws://localhost:8000/rpc",
		Namespace: "grafana",
		Database:  "sales",
		Username:  "root",
	}, got.Options.JSONData)

	for _, s := range got.Fields {
		assert.False(t, s.Invalid, s.Key)
	}
}

func TestCallResource_SettingsErrors(t *testing.T) {
	res := callResource(t, http.MethodGet, "settings", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, res.Status)

	res = callResource(t, http.MethodPost, "settings", []byte(`{`))
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Contains(t, string(res.Body), "invalid options")

	res = callResource(t, http.MethodPost, "settings", []byte(`{"change":{"field":"port","value":"8000"}}`))
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.JSONEq(t, `{"message":"unknown field \"port\""}`, string(res.Body))
}

func TestCallResource_Query(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		rawSQL  string
		changed bool
	}{
		{
			name:   "migrates legacy record",
			body:   `{"refId":"A","queryText":"SELECT * FROM person","constant":6.5}`,
			rawSQL: "SELECT * FROM person",
		},
		{
			name:   "keeps canonical record",
			body:   `{"refId":"A","rawSql":"SELECT * FROM person","format":"table","version":1}`,
			rawSQL: "SELECT * FROM person",
		},
		{
			name:    "commits edited text",
			body:    `{"refId":"A","rawSql":"SELECT * FROM person","version":1,"text":"SELECT day, sum_sales FROM daily_sales"}`,
			rawSQL:  "SELECT day, sum_sales FROM daily_sales",
			changed: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callResource(t, http.MethodPost, "query", []byte(tt.body))
			require.Equal(t, http.StatusOK, res.Status)

			var got struct {
				Query   models.Query             `json:"query"`
				Changed bool                     `json:"changed"`
				Editor  editor.CodeEditorOptions `json:"editor"`
			}
			require.NoError(t, json.Unmarshal(res.Body, &got))

			assert.Equal(t, "A", got.Query.RefID)
			assert.Equal(t, tt.rawSQL, got.Query.RawSQL)
			assert.Equal(t, models.FormatTable, got.Query.Format)
			assert.Equal(t, models.QueryVersion, got.Query.Version)
			assert.Equal(t, tt.changed, got.Changed)
			assert.Equal(t, "sql", got.Editor.Language)
		})
	}
}

func TestCallResource_QueryErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{name: "unknown format", method: http.MethodPost, body: `{"rawSql":"SELECT 1","format":"logs"}`, status: http.StatusBadRequest},
		{name: "empty body", method: http.MethodPost, body: ``, status: http.StatusBadRequest},
		{name: "not an object", method: http.MethodPost, body: `["SELECT 1"]`, status: http.StatusBadRequest},
		{name: "wrong method", method: http.MethodPut, body: ``, status: http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callResource(t, tt.method, "query", []byte(tt.body))
			assert.Equal(t, tt.status, res.Status)
		})
	}
}

func TestCallResource_GetOnly(t *testing.T) {
	for _, path := range []string{"defaults", "build-info"} {
		t.Run(path, func(t *testing.T) {
			res := callResource(t, http.MethodPost, path, []byte(`{}`))
			assert.Equal(t, http.StatusMethodNotAllowed, res.Status)
			assert.JSONEq(t, `{"message":"method not allowed"}`, string(res.Body))
		})
	}
}

func TestCallResource_BuildInfo(t *testing.T) {
	res := callResource(t, http.MethodGet, "build-info", nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.JSONEq(t, `{"version":"dev","hash":""}`, string(res.Body))
}

func TestCallResource_NotFound(t *testing.T) {
	res := callResource(t, http.MethodGet, "tables", nil)
	assert.Equal(t, http.StatusNotFound, res.Status)
}
