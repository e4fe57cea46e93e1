package plugin

import (
	"context"
	"net/http"
	"time"

	"github.com/grafana/grafana-plugin-sdk-go/experimental/slo"
)

// recordDownstream adds the time spent waiting on SurrealDB to the request's
// SLO duration, so the metrics wrapper can report plugin time separately.
func recordDownstream(ctx context.Context, start time.Time, err error) {
	d, ok := ctx.Value(slo.DurationKey{}).(*slo.Duration)
	if !ok {
		return
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusBadGateway
	}
	d.Add(time.Since(start).Seconds(), slo.SourceDownstream, status, err)
}
