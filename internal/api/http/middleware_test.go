package http_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	httptransport "github.com/spec-kit/guestbook-service/internal/api/http"
	"github.com/spec-kit/guestbook-service/internal/observability"
	apperrors "github.com/spec-kit/guestbook-service/pkg/util"
)

func requestLogs(logs *observer.ObservedLogs) []observer.LoggedEntry {
	return logs.FilterMessage("request handled").All()
}

func scrapeMetrics(t *testing.T, metrics *observability.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRequestLoggerObservesMappedErrorStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.New(core), metrics)
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("User")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	entries := requestLogs(logs)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(fiber.StatusNotFound), entries[0].ContextMap()["status"])

	scraped := scrapeMetrics(t, metrics)
	assert.Contains(t, scraped, `status="404"`)
	assert.NotContains(t, scraped, `status="200"`)
}

func TestRequestLoggerObservesPanicStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.New(core), metrics)
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	entries := requestLogs(logs)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(fiber.StatusInternalServerError), entries[0].ContextMap()["status"])

	scraped := scrapeMetrics(t, metrics)
	assert.Contains(t, scraped, `status="500"`)
}
