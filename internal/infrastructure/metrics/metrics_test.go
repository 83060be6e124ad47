package metrics_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chipaflow-api/internal/application/settings"
	"github.com/jhoicas/chipaflow-api/internal/domain/theme"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/metrics"
)

func TestSaleRegistered(t *testing.T) {
	m := metrics.New()
	m.SaleRegistered("pix", decimal.RequireFromString("12.50"))
	m.SaleRegistered("pix", decimal.RequireFromString("7.50"))

	body := scrape(t, m)
	assert.Contains(t, body, `chipaflow_pdv_sales_total{method="pix"} 2`)
	assert.Contains(t, body, `chipaflow_pdv_sales_amount_total{method="pix"} 20`)
}

func TestWatchSettings(t *testing.T) {
	m := metrics.New()
	svc := settings.NewService(memory.NewSettingsStore())
	unsubscribe := m.WatchSettings(svc)

	require.NoError(t, svc.SetTheme(context.Background(), theme.Light))
	_, err := svc.ToggleTheme(context.Background())
	require.NoError(t, err)

	unsubscribe()
	require.NoError(t, svc.SetTheme(context.Background(), theme.System))

	assert.Contains(t, scrape(t, m), `chipaflow_settings_changes_total{key="theme"} 2`)
}

func TestObserveRequest(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest("GET", "/api/products", 200, 15*time.Millisecond)

	n, err := testutil.GatherAndCount(m.Registry(), "chipaflow_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, scrape(t, m), `chipaflow_http_requests_total{method="GET",route="/api/products",status="200"} 1`)
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	return strings.TrimSpace(rec.Body.String())
}
