package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/pkg/log"
	"golang.org/x/time/rate"
)

func contextWithClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}

func TestResponseCache(t *testing.T) {
	var calls int32
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.URL.Query().Get("fail") != "" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[]}`))
	})

	handler := ResponseCache(cache.New(time.Minute, time.Minute), time.Minute)(next)

	serve := func(method, target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
		return rec
	}

	t.Run("segunda leitura vem do cache", func(t *testing.T) {
		first := serve(http.MethodGet, "/v1/directory/companies?category=bar")
		second := serve(http.MethodGet, "/v1/directory/companies?category=bar")

		assert.Equal(t, "MISS", first.Header().Get(cacheHeader))
		assert.Equal(t, "HIT", second.Header().Get(cacheHeader))
		assert.Equal(t, `{"data":[]}`, second.Body.String())
		assert.Equal(t, "application/json", second.Header().Get("Content-Type"))
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("query diferente é outra chave", func(t *testing.T) {
		before := atomic.LoadInt32(&calls)
		serve(http.MethodGet, "/v1/directory/companies?category=padaria")
		assert.Equal(t, before+1, atomic.LoadInt32(&calls))
	})

	t.Run("erros não são guardados", func(t *testing.T) {
		before := atomic.LoadInt32(&calls)
		serve(http.MethodGet, "/v1/directory/companies?fail=1")
		serve(http.MethodGet, "/v1/directory/companies?fail=1")
		assert.Equal(t, before+2, atomic.LoadInt32(&calls))
	})

	t.Run("métodos de escrita passam direto", func(t *testing.T) {
		before := atomic.LoadInt32(&calls)
		rec := serve(http.MethodPost, "/v1/directory/companies?category=bar")
		assert.Empty(t, rec.Header().Get(cacheHeader))
		assert.Equal(t, before+1, atomic.LoadInt32(&calls))
	})
}

type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (w brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("conexão encerrada pelo cliente")
}

func TestResponseCache_WriteFailureIsLogged(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})
	handler := ResponseCache(cache.New(time.Minute, time.Minute), time.Minute)(next)

	target := "/v1/directory/offers"
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))

	rec := brokenWriter{httptest.NewRecorder()}
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	assert.Equal(t, "HIT", rec.Header().Get(cacheHeader))
	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, target, entry.Data["key"])
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Every(time.Hour), 2)
	handler := RateLimiter(limiter)(okHandler())

	request := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/ai/bio", nil)
		req.RemoteAddr = ip + ":5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, request("10.0.0.1"))
	assert.Equal(t, http.StatusOK, request("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, request("10.0.0.1"))
	assert.Equal(t, http.StatusOK, request("10.0.0.2"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.0.10:1234"
	assert.Equal(t, "192.168.0.10", clientIP(req))

	req.Header.Set("X-Forwarded-For", "200.1.1.1, 10.0.0.1")
	assert.Equal(t, "200.1.1.1", clientIP(req))
}

func TestPerMinute(t *testing.T) {
	assert.Equal(t, rate.Inf, PerMinute(0))
	assert.InDelta(t, 0.5, float64(PerMinute(30)), 1e-9)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/directory/companies", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/directory/companies", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight não chega ao handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/companies/CMP001", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestLoggingMiddleware_CorrelationHeader(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(log.CorrelationHeader))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
