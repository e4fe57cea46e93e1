package plugin

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/grafana/grafana-plugin-sdk-go/backend"
	"github.com/grafana/grafana-plugin-sdk-go/backend/instancemgmt"
	"github.com/grafana/grafana-plugin-sdk-go/backend/log"
	"github.com/grafana/grafana-plugin-sdk-go/experimental/slo"
	"golang.org/x/sync/errgroup"

	"github.com/grafana/surrealdb-datasource/pkg/client"
	"github.com/grafana/surrealdb-datasource/pkg/models"
)

// Make sure SurrealDatasource implements required interfaces. This is important to do
// since otherwise we will only get a not implemented error response from plugin in
// runtime.
var (
	_ backend.QueryDataHandler      = (*SurrealDatasource)(nil)
	_ backend.CheckHealthHandler    = (*SurrealDatasource)(nil)
	_ backend.CallResourceHandler   = (*SurrealDatasource)(nil)
	_ instancemgmt.InstanceDisposer = (*SurrealDatasource)(nil)
	_ instancemgmt.InstanceDisposer = (*instance)(nil)
)

const (
	healthQuery          = "BEGIN TRANSACTION; CANCEL TRANSACTION;"
	maxConcurrentQueries = 10
)

// ClientFactory opens a connection to the SurrealDB RPC endpoint.
type ClientFactory func(ctx context.Context, endpoint string) (client.SurrealDBClient, error)

// SurrealDatasource answers data queries, health checks and resource calls for
// one datasource instance. The connection is opened on first use and shared.
type SurrealDatasource struct {
	settings *models.Settings
	factory  ClientFactory

	mu     sync.Mutex
	client *client.Client
}

// instance is the datasource behind the SDK metrics wrapper, which does not
// forward Dispose itself.
type instance struct {
	*slo.MetricsWrapper
	ds *SurrealDatasource
}

func (i *instance) Dispose() {
	i.ds.Dispose()
}

// NewDatasource creates a new datasource instance. Query, health and resource
// calls are timed by the SDK's SLO metrics.
func NewDatasource(_ context.Context, dsi backend.DataSourceInstanceSettings) (instancemgmt.Instance, error) {
	settings, err := models.LoadSettings(dsi)
	if err != nil {
		return nil, err
	}

	ds := NewDatasourceInstance(settings, client.Dial)

	return &instance{
		MetricsWrapper: slo.NewMetricsWrapper(ds, dsi),
		ds:             ds,
	}, nil
}

// NewDatasourceInstance creates a datasource that connects through factory.
func NewDatasourceInstance(settings *models.Settings, factory ClientFactory) *SurrealDatasource {
	return &SurrealDatasource{
		settings: settings,
		factory:  factory,
	}
}

// Dispose here tells plugin SDK that plugin wants to clean up resources when a new instance
// created. As soon as datasource settings change detected by SDK old datasource instance will
// be disposed and a new one will be created using NewDatasource factory function.
func (d *SurrealDatasource) Dispose() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.client != nil {
		d.client.Close()
		d.client = nil
	}
}

// QueryData handles multiple queries and returns multiple responses.
// req contains the queries []DataQuery (where each query contains RefID as a unique identifier).
// The QueryDataResponse contains a map of RefID to the response for each query, and each response
// contains Frames ([]*Frame).
func (d *SurrealDatasource) QueryData(ctx context.Context, req *backend.QueryDataRequest) (*backend.QueryDataResponse, error) {
	// when logging at a non-Debug level, make sure you don't include sensitive information in the message
	// (like the *backend.QueryDataRequest)
	log.DefaultLogger.Debug("QueryData called", "numQueries", len(req.Queries))

	response := backend.NewQueryDataResponse()

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(maxConcurrentQueries)

	for _, q := range req.Queries {
		q := q
		g.Go(func() error {
			res := d.query(ctx, q)

			mu.Lock()
			response.Responses[q.RefID] = res
			mu.Unlock()

			return nil
		})
	}

	// query never returns an error, failures live in the responses
	_ = g.Wait()

	return response, nil
}

// CheckHealth handles health checks sent from Grafana to the plugin.
// The main use case for these health checks is the test button on the
// datasource configuration page which allows users to verify that
// a datasource is working as expected.
func (d *SurrealDatasource) CheckHealth(ctx context.Context, _ *backend.CheckHealthRequest) (*backend.CheckHealthResult, error) {
	log.DefaultLogger.Debug("CheckHealth called")

	if err := d.settings.Validate(); err != nil {
		return healthError("%s", err.Error()), nil
	}

	c, err := d.connect(ctx)
	if err != nil {
		log.DefaultLogger.Error("CheckHealth failed", "err", err)
		return healthError("unable to connect to database: %s", err.Error()), nil
	}

	start := time.Now()
	_, err = c.QueryWithContext(ctx, healthQuery, nil)
	recordDownstream(ctx, start, err)
	if err != nil {
		log.DefaultLogger.Error("CheckHealth failed", "err", err)
		if client.IsConnectionError(err) {
			d.dropClient(c)
		}
		return healthError("error while checking database health: %s", err.Error()), nil
	}
	log.DefaultLogger.Debug("CheckHealth successful", "endpoint", d.settings.Endpoint)

	return &backend.CheckHealthResult{
		Status:  backend.HealthStatusOk,
		Message: "Data source is working",
	}, nil
}

// connect returns the shared client, opening it on first use.
func (d *SurrealDatasource) connect(ctx context.Context) (*client.Client, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.client != nil {
		return d.client, nil
	}

	db, err := d.factory(ctx, d.settings.Endpoint)
	if err != nil {
		return nil, err
	}

	c := client.Use(db)
	if err := c.Connect(ctx, d.settings); err != nil {
		c.Close()
		return nil, err
	}
	d.client = c

	return c, nil
}

// dropClient closes c and forgets it, so the next call dials again. c is only
// dropped if it is still the shared client.
func (d *SurrealDatasource) dropClient(c *client.Client) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.client != c {
		return
	}

	log.DefaultLogger.Warn("dropping broken SurrealDB connection", "endpoint", d.settings.Endpoint)
	c.Close()
	d.client = nil
}

func healthError(msg string, args ...interface{}) *backend.CheckHealthResult {
	return &backend.CheckHealthResult{
		Status:  backend.HealthStatusError,
		Message: fmt.Sprintf(msg, args...),
	}
}
