package api_test

import (
	"context"
	"errors"
	"io"
	"launchpad/internal/api"
	"launchpad/internal/contact"
	"launchpad/pkg/domain"
	"launchpad/pkg/logger"
	"launchpad/pkg/metrics"
	"launchpad/pkg/notifier"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type recorded struct {
	mu        sync.Mutex
	inquiries []domain.Inquiry
}

func (r *recorded) all() []domain.Inquiry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]domain.Inquiry(nil), r.inquiries...)
}

func newTestServer(t *testing.T, deliverErr error, opts api.Options) (*httptest.Server, *recorded) {
	t.Helper()

	p, err := metrics.NewProvider()
	require.NoError(t, err)
	m, err := metrics.NewContact(p.Meter())
	require.NoError(t, err)

	rec := &recorded{}
	n := notifier.Func(func(_ context.Context, inquiry domain.Inquiry) error {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.inquiries = append(rec.inquiries, inquiry)

		return deliverErr
	})

	if opts.RequestTimeout == 0 {
		opts.RequestTimeout = 5 * time.Second
	}
	handler, err := api.NewHandler(api.Deps{Contact: contact.New(n, m), Metrics: p}, opts)
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv, rec
}

func do(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(b)
}

func TestContact_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "all fields",
			body:       `{"name":"Alex","email":"a@b.com","message":"Hi"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true}`,
		},
		{
			name:       "email not validated",
			body:       `{"name":"Alex","email":"not-an-email","message":"Hi"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true}`,
		},
		{
			name:       "empty message",
			body:       `{"name":"Alex","email":"a@b.com","message":""}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:       "missing field",
			body:       `{"name":"Alex","email":"a@b.com"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:       "empty object",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:       "falsy values",
			body:       `{"name":null,"email":false,"message":0}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:       "truthy non-strings",
			body:       `{"name":1,"email":true,"message":{"a":1}}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true}`,
		},
		{
			name:       "top-level array",
			body:       `["Alex","a@b.com","Hi"]`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:       "malformed body",
			body:       `name=Alex`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Something went wrong"}`,
		},
		{
			name:       "top-level null",
			body:       `null`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Something went wrong"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, nil, api.Options{})

			res, body := do(t, http.MethodPost, srv.URL+"/api/contact", tt.body)
			require.Equal(t, tt.wantStatus, res.StatusCode)
			require.Equal(t, "application/json", res.Header.Get("Content-Type"))
			require.JSONEq(t, tt.wantBody, body)
		})
	}
}

func TestContact_NotifierReceivesInquiry(t *testing.T) {
	srv, rec := newTestServer(t, nil, api.Options{})

	res, _ := do(t, http.MethodPost, srv.URL+"/api/contact", `{"name":"Alex","email":"a@b.com","message":"Hi","extra":1}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, []domain.Inquiry{{Name: "Alex", Email: "a@b.com", Message: "Hi"}}, rec.all())

	res, _ = do(t, http.MethodPost, srv.URL+"/api/contact", `{"name":"Alex"}`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Len(t, rec.all(), 1)
}

func TestContact_RepeatedSubmission(t *testing.T) {
	srv, rec := newTestServer(t, nil, api.Options{})

	const submissions = 5
	for i := 0; i < submissions; i++ {
		res, body := do(t, http.MethodPost, srv.URL+"/api/contact", `{"name":"Alex","email":"a@b.com","message":"Hi"}`)
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.JSONEq(t, `{"ok":true}`, body)
	}

	got := rec.all()
	require.Len(t, got, submissions)
	for _, inquiry := range got {
		require.Equal(t, domain.Inquiry{Name: "Alex", Email: "a@b.com", Message: "Hi"}, inquiry)
	}
}

func TestContact_RequestTimeout(t *testing.T) {
	blocked := notifier.Func(func(ctx context.Context, _ domain.Inquiry) error {
		<-ctx.Done()

		return ctx.Err()
	})
	handler, err := api.NewHandler(api.Deps{Contact: contact.New(blocked, nil)}, api.Options{
		RequestTimeout: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	res, body := do(t, http.MethodPost, srv.URL+"/api/contact", `{"name":"Alex","email":"a@b.com","message":"Hi"}`)
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))
	require.JSONEq(t, `{"error":"request timed out"}`, body)
}

func TestContact_DeliveryFailure(t *testing.T) {
	srv, _ := newTestServer(t, errors.New("mailgun: 401 forbidden key-abc"), api.Options{})

	res, body := do(t, http.MethodPost, srv.URL+"/api/contact", `{"name":"Alex","email":"a@b.com","message":"Hi"}`)
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.JSONEq(t, `{"error":"Something went wrong"}`, body)
	require.NotContains(t, body, "key-abc")
}

func TestContact_BodyLimit(t *testing.T) {
	srv, rec := newTestServer(t, nil, api.Options{MaxBodyBytes: 32})

	res, body := do(t, http.MethodPost, srv.URL+"/api/contact",
		`{"name":"Alex","email":"a@b.com","message":"`+strings.Repeat("x", 64)+`"}`)
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.JSONEq(t, `{"error":"Something went wrong"}`, body)
	require.Empty(t, rec.all())
}

func TestContact_CORS(t *testing.T) {
	srv, _ := newTestServer(t, nil, api.Options{CORSOrigin: "https://knox.ai"})

	res, _ := do(t, http.MethodOptions, srv.URL+"/api/contact", "")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "https://knox.ai", res.Header.Get("Access-Control-Allow-Origin"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "POST")

	res, _ = do(t, http.MethodPost, srv.URL+"/api/contact", `{"name":"Alex","email":"a@b.com","message":"Hi"}`)
	require.Equal(t, "https://knox.ai", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestContact_MethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t, nil, api.Options{})

	res, _ := do(t, http.MethodGet, srv.URL+"/api/contact", "")
	require.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestLandingAndAssets(t *testing.T) {
	srv, _ := newTestServer(t, nil, api.Options{})

	res, body := do(t, http.MethodGet, srv.URL+"/", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, res.Header.Get("Content-Type"), "text/html")
	require.Contains(t, body, `id="contact-form"`)
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))

	res, body = do(t, http.MethodGet, srv.URL+"/static/styles.css", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, ".hero")

	res, body = do(t, http.MethodGet, srv.URL+"/health", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"status":"ok"}`, body)
}

func TestDocsAndSpecs(t *testing.T) {
	srv, _ := newTestServer(t, nil, api.Options{})

	res, body := do(t, http.MethodGet, srv.URL+"/specs/contact.yaml", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "/api/contact:")

	res, body = do(t, http.MethodGet, srv.URL+"/docs/", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "swagger-ui")
}

func TestMetrics(t *testing.T) {
	srv, _ := newTestServer(t, nil, api.Options{MetricsPath: "/internal/metrics"})

	res, _ := do(t, http.MethodPost, srv.URL+"/api/contact", `{"name":"Alex","email":"a@b.com","message":"Hi"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = do(t, http.MethodPost, srv.URL+"/api/contact", `{}`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, body := do(t, http.MethodGet, srv.URL+"/internal/metrics", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `outcome="accepted"`)
	require.Contains(t, body, `outcome="invalid"`)
}

func TestPprof(t *testing.T) {
	srv, _ := newTestServer(t, nil, api.Options{})
	res, _ := do(t, http.MethodGet, srv.URL+"/debug/pprof/", "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	srv, _ = newTestServer(t, nil, api.Options{Pprof: true})
	res, body := do(t, http.MethodGet, srv.URL+"/debug/pprof/", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "goroutine")
}

func TestNewServer(t *testing.T) {
	s, err := api.NewServer(api.Deps{}, api.Options{
		Addr:           ":0",
		ReadTimeout:    time.Second,
		MaxHeaderBytes: 1 << 10,
	})
	require.NoError(t, err)
	require.Equal(t, ":0", s.Addr)
	require.Equal(t, time.Second, s.ReadTimeout)
	require.Equal(t, 1<<10, s.MaxHeaderBytes)
	require.NotNil(t, s.Handler)
}
