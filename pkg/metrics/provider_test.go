package metrics_test

import (
	"context"
	"launchpad/pkg/metrics"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProvider_ExportsContactInstruments(t *testing.T) {
	p, err := metrics.NewProvider()
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	c, err := metrics.NewContact(p.Meter())
	require.NoError(t, err)
	c.Submission(context.Background(), metrics.OutcomeAccepted)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "contact_submissions")
	require.Contains(t, body, `outcome="accepted"`)
	require.Contains(t, body, "go_goroutines")
}

func TestProvider_Independent(t *testing.T) {
	p1, err := metrics.NewProvider()
	require.NoError(t, err)
	p2, err := metrics.NewProvider()
	require.NoError(t, err)

	c, err := metrics.NewContact(p1.Meter())
	require.NoError(t, err)
	c.Submission(context.Background(), metrics.OutcomeFailed)

	rec := httptest.NewRecorder()
	p2.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NotContains(t, rec.Body.String(), "contact_submissions")
}
