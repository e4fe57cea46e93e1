package plugin

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/grafana/grafana-plugin-sdk-go/data"
)

type columnKind int

const (
	kindNull columnKind = iota
	kindFloat
	kindBool
	kindTime
	kindString
	kindJSON
)

// toDataFrame converts records into a frame with one field per key. Keys are
// sorted; a record missing a key gets a null in that field.
func toDataFrame(name string, rows []map[string]interface{}) *data.Frame {
	frame := data.NewFrame(name)

	for _, col := range columnNames(rows) {
		frame.Fields = append(frame.Fields, buildField(col, rows))
	}

	return frame
}

func columnNames(rows []map[string]interface{}) []string {
	seen := make(map[string]struct{})
	var names []string

	for _, row := range rows {
		for k := range row {
			if _, found := seen[k]; !found {
				seen[k] = struct{}{}
				names = append(names, k)
			}
		}
	}
	sort.Strings(names)

	return names
}

func buildField(name string, rows []map[string]interface{}) *data.Field {
	kind, nullable := inferKind(name, rows)

	switch kind {
	case kindFloat:
		return newField(name, rows, nullable, toFloat)
	case kindBool:
		return newField(name, rows, nullable, func(v interface{}) bool { return v.(bool) })
	case kindTime:
		return newField(name, rows, nullable, func(v interface{}) time.Time {
			t, _ := time.Parse(time.RFC3339Nano, v.(string))
			return t
		})
	case kindString:
		return newField(name, rows, nullable, func(v interface{}) string { return v.(string) })
	case kindJSON:
		return newField(name, rows, nullable, func(v interface{}) json.RawMessage {
			b, _ := json.Marshal(v)
			return b
		})
	default:
		// only nulls
		return data.NewField(name, nil, make([]*string, len(rows)))
	}
}

// inferKind picks a single type for a column. Mixed columns fall back to JSON,
// except times mixed with plain strings, which become strings.
func inferKind(name string, rows []map[string]interface{}) (kind columnKind, nullable bool) {
	for _, row := range rows {
		v, found := row[name]
		if !found || v == nil {
			nullable = true
			continue
		}

		k := kindOf(v)
		switch {
		case kind == kindNull || kind == k:
			kind = k
		case (kind == kindTime && k == kindString) || (kind == kindString && k == kindTime):
			kind = kindString
		default:
			kind = kindJSON
		}
	}

	return kind, nullable
}

func kindOf(v interface{}) columnKind {
	switch t := v.(type) {
	case float64, float32, int, int32, int64:
		return kindFloat
	case bool:
		return kindBool
	case string:
		if _, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return kindTime
		}
		return kindString
	default:
		return kindJSON
	}
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return 0
	}
}

// newField builds a field of T, using *T when the column has nulls.
func newField[T any](name string, rows []map[string]interface{}, nullable bool, conv func(interface{}) T) *data.Field {
	if !nullable {
		values := make([]T, len(rows))
		for i, row := range rows {
			values[i] = conv(row[name])
		}
		return data.NewField(name, nil, values)
	}

	values := make([]*T, len(rows))
	for i, row := range rows {
		if v, found := row[name]; found && v != nil {
			c := conv(v)
			values[i] = &c
		}
	}

	return data.NewField(name, nil, values)
}
