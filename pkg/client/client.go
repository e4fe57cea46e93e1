package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/gorilla/websocket"
	"github.com/grafana/grafana-plugin-sdk-go/backend/log"
	"github.com/surrealdb/surrealdb.go"

	"github.com/grafana/surrealdb-datasource/pkg/models"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// SurrealDBClient is the subset of the surrealdb.go client used by the plugin.
//
//counterfeiter:generate -o fake . SurrealDBClient
type SurrealDBClient interface {
	Close()
	Query(sql string, vars interface{}) (interface{}, error)
	Signin(vars interface{}) (interface{}, error)
	Use(namespace string, database string) (interface{}, error)
}

var _ SurrealDBClient = (*surrealdb.DB)(nil)

// Client wraps a SurrealDB connection.
type Client struct {
	db SurrealDBClient
}

// Use returns a new client for the SurrealDB database.
func Use(db SurrealDBClient) *Client {
	return &Client{db}
}

// Dial opens a websocket connection to the RPC endpoint. A connection that
// completes after ctx is done is closed.
func Dial(ctx context.Context, endpoint string) (SurrealDBClient, error) {
	db, err := withContext(ctx, func() (*surrealdb.DB, error) {
		return surrealdb.New(endpoint)
	}, func(db *surrealdb.DB) {
		log.DefaultLogger.Debug("closing SurrealDB connection opened after dial gave up", "endpoint", endpoint)
		db.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}

	return db, nil
}

// Connect signs in and selects the namespace and database.
func (c *Client) Connect(ctx context.Context, settings *models.Settings) error {
	log.DefaultLogger.Debug("connecting to SurrealDB",
		"endpoint", settings.Endpoint,
		"namespace", settings.Namespace,
		"database", settings.Database,
		"scope", settings.Scope)

	if _, err := withContext(ctx, func() (interface{}, error) {
		return c.db.Signin(credentials(settings))
	}, nil); err != nil {
		return fmt.Errorf("signin: %w", err)
	}

	if _, err := withContext(ctx, func() (interface{}, error) {
		return c.db.Use(settings.Namespace, settings.Database)
	}, nil); err != nil {
		return fmt.Errorf("use %s/%s: %w", settings.Namespace, settings.Database, err)
	}

	return nil
}

// QueryWithContext runs a SurrealQL query, giving up when ctx is done.
func (c *Client) QueryWithContext(ctx context.Context, sql string, vars map[string]interface{}) (interface{}, error) {
	return withContext(ctx, func() (interface{}, error) {
		return c.db.Query(sql, vars)
	}, nil)
}

// Close closes the underlying connection.
func (c *Client) Close() {
	c.db.Close()
}

func credentials(settings *models.Settings) map[string]interface{} {
	creds := map[string]interface{}{
		"user": settings.Username,
		"pass": settings.Password,
	}

	// scope users sign in against a namespace and database
	if settings.Scope != "" {
		creds["NS"] = settings.Namespace
		creds["DB"] = settings.Database
		creds["SC"] = settings.Scope
	}

	return creds
}

// IsConnectionError reports whether err came from the websocket transport
// rather than from the server, meaning the connection is no longer usable.
func IsConnectionError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var closeErr *websocket.CloseError
	var netErr net.Error

	return errors.Is(err, websocket.ErrCloseSent) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, io.EOF) ||
		errors.As(err, &closeErr) ||
		errors.As(err, &netErr)
}

// withContext runs fn in the background since the surrealdb.go client does not
// take a context. fn keeps running after ctx is done; a value it produces late
// is handed to abandon, when set.
func withContext[T any](ctx context.Context, fn func() (T, error), abandon func(T)) (T, error) {
	type result struct {
		val T
		err error
	}

	ch := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.DefaultLogger.Error("recovered from panic in SurrealDB client", "error", r)
				ch <- result{err: fmt.Errorf("surrealdb client panic: %v", r)}
			}
		}()

		v, err := fn()
		ch <- result{v, err}
	}()

	select {
	case <-ctx.Done():
		if abandon != nil {
			go func() {
				if r := <-ch; r.err == nil {
					abandon(r.val)
				}
			}()
		}

		var zero T
		return zero, ctx.Err()
	case r := <-ch:
		return r.val, r.err
	}
}
