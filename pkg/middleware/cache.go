package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

const cacheHeader = "X-Cache"

type cachedResponse struct {
	status  int
	headers http.Header
	body    []byte
}

type bodyCacheWriter struct {
	http.ResponseWriter
	status int
	body   *bytes.Buffer
}

func (w *bodyCacheWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *bodyCacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// ResponseCache guarda em memória as respostas GET de sucesso pelo URI completo
func ResponseCache(store *cache.Cache, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := r.URL.RequestURI()
			if item, found := store.Get(key); found {
				cached := item.(cachedResponse)
				for k, v := range cached.headers {
					w.Header()[k] = v
				}
				w.Header().Set(cacheHeader, "HIT")
				w.WriteHeader(cached.status)
				if _, err := w.Write(cached.body); err != nil {
					logrus.WithError(err).WithField("key", key).Warn("Erro ao escrever resposta do cache")
				}
				return
			}

			w.Header().Set(cacheHeader, "MISS")
			bcw := &bodyCacheWriter{ResponseWriter: w, status: http.StatusOK, body: bytes.NewBuffer(nil)}
			next.ServeHTTP(bcw, r)

			if bcw.status >= 200 && bcw.status < 300 {
				headers := bcw.Header().Clone()
				headers.Del(cacheHeader)
				store.Set(key, cachedResponse{
					status:  bcw.status,
					headers: headers,
					body:    bcw.body.Bytes(),
				}, ttl)
				logrus.WithField("key", key).Debug("Resposta armazenada em cache")
			}
		})
	}
}
