package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/grafana/grafana-plugin-sdk-go/backend"
	"github.com/grafana/grafana-plugin-sdk-go/data/sqlutil"
)

// QueryVersion is the schema version written by this plugin. Records without a
// version predate it and are migrated by ParseQuery.
const QueryVersion = 1

// DefaultQueryText seeds new queries.
const DefaultQueryText = "SELECT * FROM surreal LIMIT 10"

var ErrUnsupportedFormat = errors.New("unsupported format")

// Format selects how query results are shaped into frames.
type Format string

const (
	FormatTable      Format = "table"
	FormatTimeSeries Format = "time_series"
)

// Option maps the format to its sqlutil counterpart.
func (f Format) Option() sqlutil.FormatQueryOption {
	if f == FormatTimeSeries {
		return sqlutil.FormatOptionTimeSeries
	}
	return sqlutil.FormatOptionTable
}

type DatasourceRef struct {
	Type string `json:"type"`
	UID  string `json:"uid"`
}

type BaseQueryModel struct {
	Datasource    *DatasourceRef `json:"datasource,omitempty"`
	RefID         string         `json:"refId"`
	IntervalMs    int64          `json:"intervalMs,omitempty"`
	MaxDataPoints int64          `json:"maxDataPoints,omitempty"`
}

// Query is the canonical query record.
type Query struct {
	BaseQueryModel
	RawSQL  string `json:"rawSql"`
	Format  Format `json:"format"`
	Version int    `json:"version"`
}

// query record as stored by any plugin revision
type storedQuery struct {
	Query
	QueryText string   `json:"queryText"`
	Constant  *float64 `json:"constant"`
}

// DefaultQuery is used when a panel creates a query with no prior state.
func DefaultQuery() Query {
	return Query{
		RawSQL:  DefaultQueryText,
		Format:  FormatTable,
		Version: QueryVersion,
	}
}

// ParseQuery decodes a query record of any revision and migrates it to the
// canonical shape.
func ParseQuery(raw []byte) (Query, error) {
	var sq storedQuery
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &sq); err != nil {
			return Query{}, fmt.Errorf("failed to unmarshal query: %w", err)
		}
	}

	return migrate(sq)
}

// ParseDataQuery decodes the query of a data request; RefID, interval and max
// data points come from the request itself.
func ParseDataQuery(dq backend.DataQuery) (Query, error) {
	q, err := ParseQuery(dq.JSON)
	if err != nil {
		return q, err
	}

	q.RefID = dq.RefID
	q.IntervalMs = dq.Interval.Milliseconds()
	q.MaxDataPoints = dq.MaxDataPoints

	return q, nil
}

func migrate(sq storedQuery) (Query, error) {
	q := sq.Query
	if q.Version > QueryVersion {
		return q, fmt.Errorf("unsupported query version %d", q.Version)
	}

	// version 0 carried the text in queryText and a placeholder constant
	if q.Version == 0 && q.RawSQL == "" {
		q.RawSQL = sq.QueryText
	}

	switch q.Format {
	case "":
		q.Format = FormatTable
	case FormatTable, FormatTimeSeries:
	default:
		return q, fmt.Errorf("%w: %q", ErrUnsupportedFormat, q.Format)
	}

	q.Version = QueryVersion

	return q, nil
}

// WithRawSQL returns a copy of q holding text.
func (q Query) WithRawSQL(text string) Query {
	q.RawSQL = text
	return q
}
