package plugin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grafana/grafana-plugin-sdk-go/experimental/slo"
	"github.com/stretchr/testify/assert"
)

func TestRecordDownstream(t *testing.T) {
	d := slo.NewDuration(0)
	ctx := context.WithValue(context.Background(), slo.DurationKey{}, d)

	recordDownstream(ctx, time.Now().Add(-time.Second), nil)
	assert.GreaterOrEqual(t, d.Value(), 1.0)

	recordDownstream(ctx, time.Now().Add(-time.Second), errors.New("broken pipe"))
	assert.GreaterOrEqual(t, d.Value(), 2.0)
}

func TestRecordDownstream_NoDuration(t *testing.T) {
	assert.NotPanics(t, func() {
		recordDownstream(context.Background(), time.Now(), nil)
	})
}
