package client

import (
	"errors"
	"fmt"
	"time"

	"github.com/surrealdb/surrealdb.go"
)

// StatusOK is the status of a statement that executed successfully.
const StatusOK = "OK"

// ErrInvalidResponse is the surrealdb.go sentinel, so errors.Is matches either name.
var ErrInvalidResponse = surrealdb.InvalidResponse

// Statement is the outcome of one statement of a SurrealQL query.
type Statement struct {
	Status string
	Result interface{}
	Time   time.Duration
	Detail string
}

// StatementError is returned for statements that did not succeed.
type StatementError struct {
	Index  int
	Status string
	Detail string
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("statement %d: %s: %s", e.Index+1, e.Status, e.Detail)
}

// DecodeStatements splits a raw query reply into its statements.
func DecodeStatements(raw interface{}) ([]Statement, error) {
	rawStmts := []surrealdb.RawQuery[interface{}]{}
	if err := surrealdb.Unmarshal(raw, &rawStmts); err != nil {
		if errors.Is(err, surrealdb.InvalidResponse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", surrealdb.InvalidResponse, err)
	}

	stmts := make([]Statement, 0, len(rawStmts))
	for i, r := range rawStmts {
		if r.Status == "" {
			return nil, fmt.Errorf("statement %d has no status: %w", i+1, surrealdb.InvalidResponse)
		}

		s := Statement{Status: r.Status, Result: r.Result, Detail: r.Detail}
		if d, err := time.ParseDuration(r.Time); err == nil {
			s.Time = d
		}

		stmts = append(stmts, s)
	}

	return stmts, nil
}

// Err reports a failed statement. index is the statement's position in the query.
func (s Statement) Err(index int) error {
	if s.Status == StatusOK {
		return nil
	}

	detail := s.Detail
	if detail == "" {
		// failed statements carry the message as their result
		if msg, ok := s.Result.(string); ok {
			detail = msg
		}
	}

	return &StatementError{Index: index, Status: s.Status, Detail: detail}
}

// Rows returns the statement result as a list of records. Values that are not
// records are wrapped under a "result" key.
func (s Statement) Rows() []map[string]interface{} {
	switch v := s.Result.(type) {
	case nil:
		return nil
	case []interface{}:
		rows := make([]map[string]interface{}, 0, len(v))
		for _, item := range v {
			if obj, ok := item.(map[string]interface{}); ok {
				rows = append(rows, obj)
			} else {
				rows = append(rows, map[string]interface{}{"result": item})
			}
		}
		return rows
	case map[string]interface{}:
		return []map[string]interface{}{v}
	default:
		return []map[string]interface{}{{"result": v}}
	}
}
