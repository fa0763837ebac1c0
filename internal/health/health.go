// Package health contains code for health checks.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var log = logrus.WithField("layer", "api").WithField("package", "health")

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "undefined"
)

// GetVersion returns service's version and commit.
func GetVersion() string {
	return fmt.Sprintf("%s-%s", version, commit)
}

// VersionResponse ...
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// Response ...
type Response struct {
	VersionResponse
	Meta   map[string]interface{} `json:"meta"`
	Errors map[string]string      `json:"errors"`
}

// Pinger pings a dependency.
type Pinger interface {
	// Ping returns object with meta information and error
	Ping(ctx context.Context) (interface{}, error)
	// Name returns name of pinger
	Name() string
}

type subjectPinger struct {
	f func(ctx context.Context) error
	s string
}

// Ping ...
func (p subjectPinger) Ping(ctx context.Context) (interface{}, error) {
	return nil, p.f(ctx)
}

func (p subjectPinger) Name() string {
	return p.s
}

// SubjectPinger wraps a plain ping function, e.g. (sql.DB).PingContext.
func SubjectPinger(s string, f func(ctx context.Context) error) Pinger {
	return subjectPinger{
		f: f,
		s: s,
	}
}

type metaPinger struct {
	f func(ctx context.Context) (interface{}, error)
	s string
}

func (p metaPinger) Ping(ctx context.Context) (interface{}, error) {
	return p.f(ctx)
}

func (p metaPinger) Name() string {
	return p.s
}

// MetaPinger wraps a function which reports meta information along with its health.
func MetaPinger(s string, f func(ctx context.Context) (interface{}, error)) Pinger {
	return metaPinger{
		f: f,
		s: s,
	}
}

// Handler runs all pingers concurrently and responds with 503 if any of them failed.
func Handler(timeout time.Duration, p ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		var gr errgroup.Group

		var mu sync.Mutex
		resp := Response{
			VersionResponse: VersionResponse{Version: version, Commit: commit},
			Meta:            map[string]interface{}{},
			Errors:          map[string]string{},
		}

		for i := range p {
			v := p[i]
			gr.Go(func() error {
				m, err := v.Ping(ctx)

				mu.Lock()
				defer mu.Unlock()

				if m != nil {
					resp.Meta[v.Name()] = m
				}

				if err != nil {
					log.WithError(err).WithField("subject", v.Name()).Error("health check failed")
					resp.Errors[v.Name()] = err.Error()
				}

				return nil
			})
		}

		// nolint:errcheck
		gr.Wait()

		w.Header().Set("Content-Type", "application/json")
		if len(resp.Errors) > 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		data, _ := json.Marshal(resp)
		_, _ = w.Write(data)
	}
}
