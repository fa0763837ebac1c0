// Package middleware contains http middlewares shared by handlers.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const cacheSize = 256

type response struct {
	code   int
	header http.Header
	body   []byte
}

// Cached serves handler responses from a cache keyed by request URI.
// Only successful responses are cached.
func Cached(ttl time.Duration, handler http.HandlerFunc) http.HandlerFunc {
	cache := expirable.NewLRU[string, response](cacheSize, nil, ttl)

	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := cache.Get(r.RequestURI)
		if !ok {
			rec := httptest.NewRecorder()
			handler(rec, r)

			c = response{
				code:   rec.Code,
				header: rec.Header().Clone(),
				body:   rec.Body.Bytes(),
			}

			if c.code == http.StatusOK {
				cache.Add(r.RequestURI, c)
			}
		}

		for k, v := range c.header {
			w.Header()[k] = v
		}

		w.WriteHeader(c.code)
		_, _ = w.Write(c.body)
	}
}
