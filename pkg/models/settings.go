package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/grafana/grafana-plugin-sdk-go/backend"
)

// JSONData holds the datasource options persisted by Grafana in plain text.
type JSONData struct {
	Endpoint  string `json:"endpoint"`
	Namespace string `json:"namespace,omitempty"`
	Database  string `json:"database,omitempty"`
	Username  string `json:"username,omitempty"`
	Scope     string `json:"scope,omitempty"`
}

// SecureJSONData holds values Grafana stores encrypted and never sends back to the browser.
type SecureJSONData struct {
	Password string `json:"password,omitempty"`
}

// Settings is the fully resolved configuration of a datasource instance.
type Settings struct {
	JSONData
	Password string `json:"-"` // read from secure json data
}

// LoadSettings reads the instance settings handed over by Grafana.
func LoadSettings(dsi backend.DataSourceInstanceSettings) (*Settings, error) {
	var jd JSONData
	if len(dsi.JSONData) > 0 {
		if err := json.Unmarshal(dsi.JSONData, &jd); err != nil {
			return nil, fmt.Errorf("unable to get settings from JSON config: %w", err)
		}
	}

	return &Settings{
		JSONData: jd,
		Password: dsi.DecryptedSecureJSONData[FieldPassword.Key()],
	}, nil
}

// FieldError reports a required field left empty.
type FieldError struct {
	Field Field
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field.Label())
}

// Validate checks that every required field is set. The returned error joins
// one *FieldError per missing field, in form order.
func (d JSONData) Validate() error {
	var errs []error
	for _, f := range Fields() {
		if !f.Required() {
			continue
		}
		if strings.TrimSpace(d.Get(f)) == "" {
			errs = append(errs, &FieldError{Field: f})
		}
	}

	return errors.Join(errs...)
}

// Get returns the value of a plain-text field. Secret fields always read as empty.
func (d JSONData) Get(f Field) string {
	switch f {
	case FieldEndpoint:
		return d.Endpoint
	case FieldNamespace:
		return d.Namespace
	case FieldDatabase:
		return d.Database
	case FieldUsername:
		return d.Username
	case FieldScope:
		return d.Scope
	default:
		return ""
	}
}

// With returns a copy of d where only f is set to value.
func (d JSONData) With(f Field, value string) JSONData {
	switch f {
	case FieldEndpoint:
		d.Endpoint = value
	case FieldNamespace:
		d.Namespace = value
	case FieldDatabase:
		d.Database = value
	case FieldUsername:
		d.Username = value
	case FieldScope:
		d.Scope = value
	}

	return d
}
