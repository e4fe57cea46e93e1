package models_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/grafana/grafana-plugin-sdk-go/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/surrealdb-datasource/pkg/models"
)

func TestLoadSettings(t *testing.T) {
	s, err := models.LoadSettings(backend.DataSourceInstanceSettings{
		JSONData:                []byte(`{"endpoint":"ws://localhost:8000/rpc","namespace":"grafana","database":"grafana_ds_tests","username":"grafana","scope":"user"}`),
		DecryptedSecureJSONData: map[string]string{"password": "password"},
	})
	require.NoError(t, err)

	assert.Equal(t, "ws://localhost:8000/rpc", s.Endpoint)
	assert.Equal(t, "grafana", s.Namespace)
	assert.Equal(t, "grafana_ds_tests", s.Database)
	assert.Equal(t, "grafana", s.Username)
	assert.Equal(t, "user", s.Scope)
	assert.Equal(t, "password", s.Password)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	_, err := models.LoadSettings(backend.DataSourceInstanceSettings{
		JSONData: json.RawMessage(`invalid json`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to get settings from JSON config")
}

func TestLoadSettings_Empty(t *testing.T) {
	s, err := models.LoadSettings(backend.DataSourceInstanceSettings{})
	require.NoError(t, err)
	assert.Equal(t, models.JSONData{}, s.JSONData)
	assert.Empty(t, s.Password)
}

func TestValidate(t *testing.T) {
	valid := models.JSONData{
		Endpoint:  "ws://localhost:8000/rpc",
		Namespace: "grafana",
		Database:  "grafana",
		Username:  "root",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		field models.Field
		msg   string
	}{
		{name: "endpoint", field: models.FieldEndpoint, msg: "Endpoint URL is required"},
		{name: "database", field: models.FieldDatabase, msg: "Database name is required"},
		{name: "namespace", field: models.FieldNamespace, msg: "Namespace is required"},
		{name: "username", field: models.FieldUsername, msg: "Username is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := valid.With(tt.field, "  ").Validate()
			require.Error(t, err)
			assert.Equal(t, tt.msg, err.Error())

			var fe *models.FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestValidate_OptionalFields(t *testing.T) {
	d := models.JSONData{
		Endpoint:  "ws://localhost:8000/rpc",
		Namespace: "grafana",
		Database:  "grafana",
		Username:  "root",
	}
	assert.NoError(t, d.With(models.FieldScope, "").Validate())
}

func TestValidate_AllMissing(t *testing.T) {
	err := models.JSONData{Endpoint: "ws://localhost:8000/rpc"}.Validate()
	require.Error(t, err)
	assert.Equal(t, "Database name is required\nNamespace is required\nUsername is required", err.Error())
}

func TestWith_LeavesOtherFieldsUntouched(t *testing.T) {
	orig := models.JSONData{
		Endpoint:  "ws://localhost:8000/rpc",
		Namespace: "ns",
		Database:  "db",
		Username:  "user",
		Scope:     "scope",
	}

	for _, f := range models.Fields() {
		if f.Secret() {
			continue
		}
		updated := orig.With(f, "changed")
		assert.Equal(t, "changed", updated.Get(f), f.Key())
		for _, other := range models.Fields() {
			if other == f {
				continue
			}
			assert.Equal(t, orig.Get(other), updated.Get(other), "%s changed %s", f, other)
		}
	}
}

func TestFieldByKey(t *testing.T) {
	f, ok := models.FieldByKey("database")
	require.True(t, ok)
	assert.Equal(t, models.FieldDatabase, f)
	assert.Equal(t, "Database name", f.Label())

	_, ok = models.FieldByKey("port")
	assert.False(t, ok)
}
