// Package certificate contains the issuer of product certificates.
package certificate

import (
	"context"
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"

	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/storage"
)

//go:generate mockgen -destination=./mock/certificate.go -package=mock -source=certificate.go

var log = logrus.WithField("layer", "certificate")

var (
	// ErrNotFound ...
	ErrNotFound = errors.New("certificate not found")
	// ErrAlreadyMinted is returned when a certificate for the code exists.
	ErrAlreadyMinted = errors.New("certificate already minted")
	// ErrNotOwner is returned when approval is requested by someone except the holder.
	ErrNotOwner = errors.New("not certificate owner")
	// ErrNotApproved is returned when the operator has no approval from the holder.
	ErrNotApproved = errors.New("operator is not approved")
)

// Issuer mints one certificate per listed product and tracks its ownership.
type Issuer interface {
	// Mint is called inside the settlement transaction and gets the tx-bound storage,
	// so the certificate is created or discarded together with the settlement.
	Mint(ctx context.Context, s storage.Storage, code string, owner string) (uint64, error)
	GetID(ctx context.Context, code string) (uint64, error)
	Get(ctx context.Context, id uint64) (*entities.Certificate, error)
	GetOwner(ctx context.Context, id uint64) (string, error)
	// Approve allows operator to move the certificate once. Only the holder can approve.
	Approve(ctx context.Context, holder string, id uint64, operator string) error
	// ChangeOwner moves the certificate to newOwner on behalf of an approved operator.
	ChangeOwner(ctx context.Context, operator string, id uint64, newOwner string) error
}

// Registry is an Issuer which keeps certificates in the ledger storage.
type Registry struct {
	s     storage.Storage
	clock clock.Clock
}

// NewRegistry creates new instance of Registry.
func NewRegistry(s storage.Storage, c clock.Clock) *Registry {
	return &Registry{
		s:     s,
		clock: c,
	}
}

// Mint ...
func (r *Registry) Mint(ctx context.Context, s storage.Storage, code string, owner string) (uint64, error) {
	id, err := s.CreateCertificate(ctx, &entities.Certificate{
		Code:     code,
		Owner:    owner,
		MintedAt: r.clock.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return 0, ErrAlreadyMinted
		}

		return 0, fmt.Errorf("failed to create certificate: %w", err)
	}

	log.WithField("code", code).WithField("owner", owner).WithField("id", id).Info("certificate minted")

	return id, nil
}

// GetID ...
func (r *Registry) GetID(ctx context.Context, code string) (uint64, error) {
	c, err := r.s.GetCertificateByCode(ctx, code)
	if err != nil {
		return 0, wrapError(err)
	}

	return c.ID, nil
}

// Get ...
func (r *Registry) Get(ctx context.Context, id uint64) (*entities.Certificate, error) {
	c, err := r.s.GetCertificate(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}

	return c, nil
}

// GetOwner ...
func (r *Registry) GetOwner(ctx context.Context, id uint64) (string, error) {
	c, err := r.Get(ctx, id)
	if err != nil {
		return "", err
	}

	return c.Owner, nil
}

// Approve ...
func (r *Registry) Approve(ctx context.Context, holder string, id uint64, operator string) error {
	return r.s.InTx(ctx, func(s storage.Storage) error {
		c, err := s.GetCertificate(ctx, id)
		if err != nil {
			return wrapError(err)
		}

		if c.Owner != holder {
			return ErrNotOwner
		}

		c.Approved = operator

		if err := s.UpdateCertificate(ctx, c); err != nil {
			return fmt.Errorf("failed to update certificate: %w", err)
		}

		return nil
	})
}

// ChangeOwner ...
func (r *Registry) ChangeOwner(ctx context.Context, operator string, id uint64, newOwner string) error {
	return r.s.InTx(ctx, func(s storage.Storage) error {
		c, err := s.GetCertificate(ctx, id)
		if err != nil {
			return wrapError(err)
		}

		if c.Approved == "" || c.Approved != operator {
			return ErrNotApproved
		}

		log.WithField("id", id).WithField("from", c.Owner).WithField("to", newOwner).Info("certificate transferred")

		c.Owner = newOwner
		c.Approved = ""

		if err := s.UpdateCertificate(ctx, c); err != nil {
			return fmt.Errorf("failed to update certificate: %w", err)
		}

		return nil
	})
}

func wrapError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}

	return fmt.Errorf("failed to get certificate: %w", err)
}
