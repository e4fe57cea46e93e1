package plugin

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/grafana/grafana-plugin-sdk-go/backend"
	"github.com/grafana/grafana-plugin-sdk-go/backend/log"
	"github.com/grafana/grafana-plugin-sdk-go/data"
	"github.com/grafana/grafana-plugin-sdk-go/data/sqlutil"

	"github.com/grafana/surrealdb-datasource/pkg/client"
	"github.com/grafana/surrealdb-datasource/pkg/models"
)

var errEmptyQuery = errors.New("query text is empty")

// query executes a single data query.
func (d *SurrealDatasource) query(ctx context.Context, dq backend.DataQuery) (response backend.DataResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.DefaultLogger.Error("recovered from panic", "error", r, "refId", dq.RefID)
			log.DefaultLogger.Error(string(debug.Stack()))

			response = backend.ErrDataResponseWithSource(backend.StatusInternal, backend.ErrorSourcePlugin, "internal plugin error")
		}
	}()

	q, err := models.ParseDataQuery(dq)
	if err != nil {
		return backend.ErrDataResponseWithSource(backend.StatusBadRequest, backend.ErrorSourcePlugin, err.Error())
	}

	str, err := interpolate(dq, q)
	if err != nil {
		return backend.ErrDataResponseWithSource(backend.StatusBadRequest, backend.ErrorSourcePlugin, fmt.Sprintf("sql: %v", err))
	}

	if err := d.settings.Validate(); err != nil {
		return backend.ErrDataResponseWithSource(backend.StatusValidationFailed, backend.ErrorSourcePlugin, fmt.Sprintf("settings: %v", err))
	}

	c, err := d.connect(ctx)
	if err != nil {
		log.DefaultLogger.Error("connect failed", "refId", dq.RefID, "err", err)
		return backend.ErrDataResponseWithSource(backend.StatusBadGateway, backend.ErrorSourceDownstream, fmt.Sprintf("connect: %v", err))
	}

	log.DefaultLogger.Info("executing query", "refId", dq.RefID, "SQL", str)

	start := time.Now()
	result, err := c.QueryWithContext(ctx, str, nil)
	recordDownstream(ctx, start, err)
	if err != nil {
		log.DefaultLogger.Error("query error", "refId", dq.RefID, "err", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return backend.ErrDataResponseWithSource(backend.StatusTimeout, backend.ErrorSourceDownstream, fmt.Sprintf("query: %v", err))
		}
		if client.IsConnectionError(err) {
			d.dropClient(c)
			return backend.ErrDataResponseWithSource(backend.StatusBadGateway, backend.ErrorSourceDownstream, fmt.Sprintf("query: %v", err))
		}
		return backend.ErrDataResponseWithSource(backend.StatusBadRequest, backend.ErrorSourceDownstream, fmt.Sprintf("query: %v", err))
	}

	frames, err := buildFrames(str, q.Format, result)
	if err != nil {
		var se *client.StatementError
		if errors.As(err, &se) {
			return backend.ErrDataResponseWithSource(backend.StatusBadRequest, backend.ErrorSourceDownstream, fmt.Sprintf("query: %v", err))
		}
		return backend.ErrDataResponseWithSource(backend.StatusBadRequest, backend.ErrorSourcePlugin, fmt.Sprintf("response: %v", err))
	}

	response.Frames = frames

	return response
}

// interpolate applies the Grafana macros to the query text.
func interpolate(dq backend.DataQuery, q models.Query) (string, error) {
	if strings.TrimSpace(q.RawSQL) == "" {
		return "", errEmptyQuery
	}

	sq := &sqlutil.Query{
		RawSQL:        q.RawSQL,
		Format:        q.Format.Option(),
		RefID:         dq.RefID,
		Interval:      dq.Interval,
		TimeRange:     dq.TimeRange,
		MaxDataPoints: dq.MaxDataPoints,
	}

	return sqlutil.Interpolate(sq, sqlutil.DefaultMacros)
}

// buildFrames turns the statements of a query reply into frames. Statements
// without rows produce no frame.
func buildFrames(executed string, format models.Format, result interface{}) (data.Frames, error) {
	stmts, err := client.DecodeStatements(result)
	if err != nil {
		return nil, err
	}

	for i, s := range stmts {
		if err := s.Err(i); err != nil {
			return nil, err
		}
	}

	var frames data.Frames
	for i, s := range stmts {
		rows := s.Rows()
		if len(rows) == 0 {
			continue
		}

		frame := toDataFrame(frameName(i, len(stmts)), rows)
		frame.SetMeta(&data.FrameMeta{
			ExecutedQueryString: executed,
			Stats: []data.QueryStat{
				{
					FieldConfig: data.FieldConfig{DisplayName: "query time", Unit: "ms"},
					Value:       float64(s.Time) / float64(time.Millisecond),
				},
			},
		})

		if format == models.FormatTimeSeries {
			frame, err = toTimeSeries(frame)
			if err != nil {
				return nil, err
			}
		}

		frames = append(frames, frame)
	}

	return frames, nil
}

func frameName(i, total int) string {
	if total == 1 {
		return "response"
	}
	return fmt.Sprintf("response %d", i+1)
}

// toTimeSeries converts long frames to wide ones; anything else is kept as is.
func toTimeSeries(frame *data.Frame) (*data.Frame, error) {
	if frame.TimeSeriesSchema().Type != data.TimeSeriesTypeLong {
		return frame, nil
	}

	wide, err := data.LongToWide(frame, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to convert to time series, make sure rows are ordered by time: %w", err)
	}
	wide.Name = frame.Name
	wide.Meta = frame.Meta

	return wide, nil
}
