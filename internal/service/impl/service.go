// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"

	"github.com/abx-network/agora/internal/certificate"
	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/funds"
	"github.com/abx-network/agora/internal/metrics"
	"github.com/abx-network/agora/internal/service"
	"github.com/abx-network/agora/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

// Config ...
type Config struct {
	// Owner is the platform owner, it receives native funds and can not buy ABX.
	Owner string
	// CreationThreshold is the ABX balance required to create a community,
	// zero lets any account create one.
	CreationThreshold uint64
}

// service ...
type srv struct {
	s      storage.Storage
	clock  clock.Clock
	funds  funds.Sink
	issuer certificate.Issuer
	cfg    Config
}

// New creates new instance of service.
func New(s storage.Storage, c clock.Clock, f funds.Sink, i certificate.Issuer, cfg Config) service.Service {
	return srv{
		s:      s,
		clock:  c,
		funds:  f,
		issuer: i,
		cfg:    cfg,
	}
}

func (s srv) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Second)
}

// exec applies f as a single transaction and records its outcome.
func (s srv) exec(ctx context.Context, op string, fields logrus.Fields, f func(s storage.Storage) error) error {
	start := time.Now()
	err := s.s.InTx(ctx, f)

	l := log.WithFields(fields).WithField("operation", op)

	kind := service.Kind(err)
	switch {
	case err == nil:
		l.Info("operation committed")
	case kind != "":
		l.WithField("kind", kind).Debug("operation rejected")
	default:
		kind = "error"
		l.WithError(err).Error("operation failed")
	}

	metrics.RecordOperation(op, kind, time.Since(start))

	return err
}

func getCommunity(ctx context.Context, s storage.Storage, id uint64) (*entities.Community, error) {
	c, err := s.GetCommunity(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrCommunityNotFound
		}

		return nil, fmt.Errorf("failed to get community: %w", err)
	}

	return c, nil
}

func getProduct(ctx context.Context, s storage.Storage, communityID uint64, code string) (*entities.Product, error) {
	p, err := s.GetProduct(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if p.CommunityID != communityID {
		return nil, service.ErrProductNotFound
	}

	return p, nil
}

func addEvent(ctx context.Context, s storage.Storage, e entities.Event) error {
	if err := s.AddEvent(ctx, &e); err != nil {
		return fmt.Errorf("failed to add %s event: %w", e.Kind, err)
	}

	return nil
}

func (s srv) GetStats(ctx context.Context) (*storage.Stats, error) {
	st, err := s.s.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats from storage: %w", err)
	}

	return st, nil
}
