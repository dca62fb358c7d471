package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/bobmcallan/reddable-mcp/internal/common"
	"github.com/bobmcallan/reddable-mcp/internal/config"
)

func restoreProvider(t *testing.T) {
	t.Helper()
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })
}

func TestSetup_NoEndpointIsNoop(t *testing.T) {
	restoreProvider(t)
	before := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background(), config.TracingConfig{}, common.NewSilentLogger())
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.Equal(t, before, otel.GetTracerProvider())
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_ExportsSpansOnShutdown(t *testing.T) {
	restoreProvider(t)

	var hits atomic.Int32
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/v1/traces" {
			hits.Add(1)
		}
		w.Header().Set("Content-Type", "application/x-protobuf")
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	cfg := config.TracingConfig{
		Endpoint: strings.TrimPrefix(collector.URL, "http://"),
		Insecure: true,
	}
	shutdown, err := Setup(context.Background(), cfg, nil)
	require.NoError(t, err)

	_, span := otel.Tracer("telemetry-test").Start(context.Background(), "tool/getCampaigns")
	span.End()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, shutdown(ctx))

	assert.GreaterOrEqual(t, hits.Load(), int32(1))
}
