package models

// Field identifies one input of the datasource configuration form.
type Field int

const (
	FieldEndpoint Field = iota
	FieldDatabase
	FieldNamespace
	FieldUsername
	FieldPassword
	FieldScope
)

type fieldDef struct {
	key         string
	label       string
	description string
	placeholder string
	required    bool
	secret      bool
}

// form order
var fieldDefs = []fieldDef{
	FieldEndpoint: {
		key:         "endpoint",
		label:       "Endpoint URL",
		description: "The address of the SurrealDB server to connect to.",
		placeholder: "ws://localhost:8000/rpc",
		required:    true,
	},
	FieldDatabase: {
		key:         "database",
		label:       "Database name",
		description: "The name of the database to connect to.",
		placeholder: "Database name",
		required:    true,
	},
	FieldNamespace: {
		key:         "namespace",
		label:       "Namespace",
		description: "The namespace to use for the connection.",
		placeholder: "Namespace",
		required:    true,
	},
	FieldUsername: {
		key:         "username",
		label:       "Username",
		description: "The username to use for the connection.",
		placeholder: "Username",
		required:    true,
	},
	FieldPassword: {
		key:         "password",
		label:       "Password",
		description: "The password to use for the connection.",
		placeholder: "Password",
		secret:      true,
	},
	FieldScope: {
		key:         "scope",
		label:       "Scope",
		description: "The scope to use for the connection.",
		placeholder: "Scope",
	},
}

// Fields returns every form field in display order.
func Fields() []Field {
	fields := make([]Field, len(fieldDefs))
	for i := range fieldDefs {
		fields[i] = Field(i)
	}
	return fields
}

// FieldByKey looks a field up by its JSON key.
func FieldByKey(key string) (Field, bool) {
	for i, s := range fieldDefs {
		if s.key == key {
			return Field(i), true
		}
	}
	return 0, false
}

func (f Field) def() fieldDef {
	if f < 0 || int(f) >= len(fieldDefs) {
		return fieldDef{}
	}
	return fieldDefs[f]
}

func (f Field) Key() string         { return f.def().key }
func (f Field) Label() string       { return f.def().label }
func (f Field) Description() string { return f.def().description }
func (f Field) Placeholder() string { return f.def().placeholder }
func (f Field) Required() bool      { return f.def().required }
func (f Field) Secret() bool        { return f.def().secret }

func (f Field) String() string { return f.Key() }
