package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, e *echo.Echo, path string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
}

func TestMiddlewareCountsByStatus(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})
	e.GET("/wrapped", func(c echo.Context) error {
		// The status must survive wrapping, not collapse to 500.
		return fmt.Errorf("lookup: %w", echo.NewHTTPError(http.StatusNotFound, "missing"))
	})
	e.GET("/boom", func(c echo.Context) error { return fmt.Errorf("boom") })

	before := map[string]float64{}
	for _, path := range []string{"/ok", "/missing", "/wrapped", "/boom"} {
		before[path+":200"] = testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, path, "200"))
		before[path+":404"] = testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, path, "404"))
		before[path+":500"] = testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, path, "500"))
		serve(t, e, path)
	}

	count := func(path, status string) float64 {
		return testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, path, status)) - before[path+":"+status]
	}

	assert.Equal(t, 1.0, count("/ok", "200"))
	assert.Equal(t, 1.0, count("/missing", "404"))
	assert.Equal(t, 1.0, count("/wrapped", "404"))
	assert.Equal(t, 0.0, count("/wrapped", "500"))
	assert.Equal(t, 1.0, count("/boom", "500"))

	require.Positive(t, testutil.CollectAndCount(requestDuration))
}
