package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/eventplanner/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestRecorders(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordLogin(LoginSuccess)
	m.RecordLogin(LoginInvalidCredentials)
	m.RecordLogin(LoginInvalidCredentials)
	m.RecordRejection("expired")
	m.RecordDenied()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginsTotal.WithLabelValues(LoginSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LoginsTotal.WithLabelValues(LoginInvalidCredentials)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues("expired")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthzDenied))
}

func TestRecorders_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordLogin(LoginSuccess)
		m.RecordRejection("missing")
		m.RecordDenied()
	})
}

func TestHandler_Endpoints(t *testing.T) {
	s := NewServer("127.0.0.1:0", logging.Nop(), nil)
	s.Metrics().RecordDenied()
	h := s.Handler()

	code, body := get(t, h, "/healthz/liveness")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok\n", body)

	code, _ = get(t, h, "/healthz/readiness")
	assert.Equal(t, http.StatusOK, code)

	code, body = get(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, strings.Contains(body, "eventplanner_authz_denied_total 1"), body)
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestHandler_NotReady(t *testing.T) {
	s := NewServer("127.0.0.1:0", logging.Nop(), func(context.Context) bool { return false })

	code, _ := get(t, s.Handler(), "/healthz/readiness")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestServer_StartStop(t *testing.T) {
	s := NewServer("127.0.0.1:0", logging.Nop(), nil)

	errCh, err := s.Start()
	require.NoError(t, err)
	require.NotEmpty(t, s.Addr())

	_, err = s.Start()
	assert.Error(t, err)

	resp, err := http.Get("http://" + s.Addr() + "/healthz/liveness")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, s.Stop(context.Background()))
	_, open := <-errCh
	assert.False(t, open)

	assert.NoError(t, s.Stop(context.Background()))
}
