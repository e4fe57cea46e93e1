// Package editor holds the logic behind the datasource configuration form and
// the query editor. Every operation takes the host-owned record by value and
// returns a new one; nothing here keeps authoritative state.
package editor

import (
	"fmt"

	"github.com/grafana/surrealdb-datasource/pkg/models"
)

// Options mirrors the datasource options Grafana hands to the config editor.
type Options struct {
	JSONData         models.JSONData        `json:"jsonData"`
	SecureJSONData   *models.SecureJSONData `json:"secureJsonData,omitempty"`
	SecureJSONFields map[string]bool        `json:"secureJsonFields,omitempty"`
}

// FieldState is everything needed to draw one form input.
type FieldState struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
	Secret      bool   `json:"secret,omitempty"`
	Configured  bool   `json:"configured,omitempty"`
	Value       string `json:"value"`
	Invalid     bool   `json:"invalid"`
	Error       string `json:"error,omitempty"`
}

// SetField merges a single plain-text field into the options.
func SetField(o Options, f models.Field, value string) (Options, error) {
	if f.Secret() {
		return o, fmt.Errorf("%s is a secure field", f.Label())
	}

	out := o.clone()
	out.JSONData = o.JSONData.With(f, value)

	return out, nil
}

// SetFieldByKey applies a change addressed by the field's JSON key, the way the
// form reports it. The secret field goes through SetPassword.
func SetFieldByKey(o Options, key, value string) (Options, error) {
	f, ok := models.FieldByKey(key)
	if !ok {
		return o, fmt.Errorf("unknown field %q", key)
	}
	if f.Secret() {
		return SetPassword(o, value), nil
	}

	return SetField(o, f, value)
}

// SetPassword records a freshly typed password.
func SetPassword(o Options, password string) Options {
	out := o.clone()
	out.SecureJSONData = &models.SecureJSONData{Password: password}

	return out
}

// ResetPassword drops the stored password so it has to be entered again.
func ResetPassword(o Options) Options {
	out := o.clone()
	out.SecureJSONFields[models.FieldPassword.Key()] = false

	sd := models.SecureJSONData{}
	if o.SecureJSONData != nil {
		sd = *o.SecureJSONData
	}
	sd.Password = ""
	out.SecureJSONData = &sd

	return out
}

// Render computes the state of every form field. Required-field errors are
// advisory; saving is up to Grafana.
func Render(o Options) []FieldState {
	fields := models.Fields()
	states := make([]FieldState, 0, len(fields))

	for _, f := range fields {
		s := FieldState{
			Key:         f.Key(),
			Label:       f.Label(),
			Description: f.Description(),
			Placeholder: f.Placeholder(),
			Required:    f.Required(),
			Secret:      f.Secret(),
		}

		if f.Secret() {
			s.Configured = o.SecureJSONFields[f.Key()]
			if o.SecureJSONData != nil && !s.Configured {
				s.Value = o.SecureJSONData.Password
			}
		} else {
			s.Value = o.JSONData.Get(f)
		}

		if f.Required() && s.Value == "" {
			s.Invalid = true
			s.Error = (&models.FieldError{Field: f}).Error()
		}

		states = append(states, s)
	}

	return states
}

func (o Options) clone() Options {
	out := Options{
		JSONData:         o.JSONData,
		SecureJSONFields: make(map[string]bool, len(o.SecureJSONFields)),
	}
	for k, v := range o.SecureJSONFields {
		out.SecureJSONFields[k] = v
	}
	if o.SecureJSONData != nil {
		sd := *o.SecureJSONData
		out.SecureJSONData = &sd
	}

	return out
}
