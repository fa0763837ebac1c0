// Package server Agora
//
// The Agora is a ledger service for platform tokens, communities and community voted products.
// Callers are identified by the X-Account header which is set by the trust boundary.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/abx-network/agora/internal/certificate"
	"github.com/abx-network/agora/internal/metrics"
	mm "github.com/abx-network/agora/internal/middleware"
	"github.com/abx-network/agora/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 1024

// AccountHeader carries the authenticated caller address.
const AccountHeader = "X-Account"

type server struct {
	s service.Service
	c certificate.Issuer
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, c certificate.Issuer, r chi.Router, timeout time.Duration) {
	r.Use(
		middleware.RequestID,
		mm.Logger,
		metrics.InstrumentHandler,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		mm.BodyLimiter(maxBodySize),
	)

	srv := server{
		s: s,
		c: c,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/accounts/{address}", srv.getAccount)
		r.Post("/abx", srv.buyABX)

		r.Get("/communities", srv.listCommunities)
		r.Post("/communities", srv.createCommunity)
		r.Route("/communities/{id}", func(r chi.Router) {
			r.Get("/", srv.getCommunity)
			r.Post("/join", srv.joinCommunity)
			r.Post("/tokens", srv.buyCommToken)
			r.Get("/members/{address}", srv.getMember)
			r.Get("/events", srv.listEvents)
			r.Get("/code", srv.getCode)
			r.Post("/products", srv.publishProduct)
			r.Get("/products/{code}", srv.getProduct)
			r.Post("/votes", srv.vote)
			r.Post("/settlements", srv.settle)
		})

		r.Get("/products", srv.listProducts)
		r.Get("/products/{code}/tally", srv.getTally)

		r.Get("/certificates/{code}", srv.getCertificate)
		r.Post("/certificates/{id}/approve", srv.approveCertificate)
		r.Post("/certificates/{id}/transfer", srv.transferCertificate)

		r.Get("/stats", mm.Cached(10*time.Second, srv.getStats))
	})
}
