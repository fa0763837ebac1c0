// Package memory is an in-memory implementation of storage interface.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/storage"
)

type memberKey struct {
	CommunityID uint64
	Address     string
}

type voteKey struct {
	Code  string
	Voter string
}

type state struct {
	accounts     map[string]entities.Account
	communities  []entities.Community
	members      map[memberKey]time.Time
	balances     map[memberKey]uint64
	products     map[string]entities.Product
	productSeq   []string
	votes        map[voteKey]int64
	events       []entities.Event
	certificates []entities.Certificate
	certByCode   map[string]uint64
	abxIssued    uint64
}

func newState() *state {
	return &state{
		accounts:   make(map[string]entities.Account),
		members:    make(map[memberKey]time.Time),
		balances:   make(map[memberKey]uint64),
		products:   make(map[string]entities.Product),
		votes:      make(map[voteKey]int64),
		certByCode: make(map[string]uint64),
	}
}

// Storage keeps the whole ledger in memory. Writers are serialized and change
// the state in place. A failed transaction replays its undo log backwards.
type Storage struct {
	mu sync.RWMutex
	st *state
}

// New creates new instance of memory storage.
func New() *Storage {
	return &Storage{
		st: newState(),
	}
}

// InTx ...
func (s *Storage) InTx(_ context.Context, f func(s storage.Storage) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var undo []func()

	done := false
	defer func() {
		if done {
			return
		}

		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
	}()

	if err := f(tx{st: s.st, undo: &undo}); err != nil {
		return err
	}

	done = true

	return nil
}

func (s *Storage) read(f func(t tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return f(tx{st: s.st})
}

func (s *Storage) write(ctx context.Context, f func(t tx) error) error {
	return s.InTx(ctx, func(t storage.Storage) error {
		return f(t.(tx))
	})
}

// GetAccount ...
func (s *Storage) GetAccount(ctx context.Context, address string) (a *entities.Account, err error) {
	err = s.read(func(t tx) error {
		a, err = t.GetAccount(ctx, address)
		return err
	})
	return a, err
}

// SetAccount ...
func (s *Storage) SetAccount(ctx context.Context, a *entities.Account) error {
	return s.write(ctx, func(t tx) error {
		return t.SetAccount(ctx, a)
	})
}

// CreateCommunity ...
func (s *Storage) CreateCommunity(ctx context.Context, p *storage.CreateCommunityParams) (c *entities.Community, err error) {
	err = s.write(ctx, func(t tx) error {
		c, err = t.CreateCommunity(ctx, p)
		return err
	})
	return c, err
}

// GetCommunity ...
func (s *Storage) GetCommunity(ctx context.Context, id uint64) (c *entities.Community, err error) {
	err = s.read(func(t tx) error {
		c, err = t.GetCommunity(ctx, id)
		return err
	})
	return c, err
}

// ListCommunities ...
func (s *Storage) ListCommunities(ctx context.Context) (c []*entities.Community, err error) {
	err = s.read(func(t tx) error {
		c, err = t.ListCommunities(ctx)
		return err
	})
	return c, err
}

// AddMember ...
func (s *Storage) AddMember(ctx context.Context, communityID uint64, address string, joinedAt time.Time) error {
	return s.write(ctx, func(t tx) error {
		return t.AddMember(ctx, communityID, address, joinedAt)
	})
}

// IsMember ...
func (s *Storage) IsMember(ctx context.Context, communityID uint64, address string) (ok bool, err error) {
	err = s.read(func(t tx) error {
		ok, err = t.IsMember(ctx, communityID, address)
		return err
	})
	return ok, err
}

// GetCommTokenBalance ...
func (s *Storage) GetCommTokenBalance(ctx context.Context, communityID uint64, address string) (b uint64, err error) {
	err = s.read(func(t tx) error {
		b, err = t.GetCommTokenBalance(ctx, communityID, address)
		return err
	})
	return b, err
}

// SetCommTokenBalance ...
func (s *Storage) SetCommTokenBalance(ctx context.Context, communityID uint64, address string, balance uint64) error {
	return s.write(ctx, func(t tx) error {
		return t.SetCommTokenBalance(ctx, communityID, address, balance)
	})
}

// CreateProduct ...
func (s *Storage) CreateProduct(ctx context.Context, p *entities.Product) error {
	return s.write(ctx, func(t tx) error {
		return t.CreateProduct(ctx, p)
	})
}

// GetProduct ...
func (s *Storage) GetProduct(ctx context.Context, code string) (p *entities.Product, err error) {
	err = s.read(func(t tx) error {
		p, err = t.GetProduct(ctx, code)
		return err
	})
	return p, err
}

// ListProducts ...
func (s *Storage) ListProducts(ctx context.Context, params *storage.ListProductsParams) (p []*entities.Product, err error) {
	err = s.read(func(t tx) error {
		p, err = t.ListProducts(ctx, params)
		return err
	})
	return p, err
}

// SetTally ...
func (s *Storage) SetTally(ctx context.Context, code string, tally int64) error {
	return s.write(ctx, func(t tx) error {
		return t.SetTally(ctx, code, tally)
	})
}

// SetStatus ...
func (s *Storage) SetStatus(ctx context.Context, code string, status entities.ProductStatus, settledAt time.Time) error {
	return s.write(ctx, func(t tx) error {
		return t.SetStatus(ctx, code, status, settledAt)
	})
}

// AddVote ...
func (s *Storage) AddVote(ctx context.Context, code string, voter string, weight int64, votedAt time.Time) error {
	return s.write(ctx, func(t tx) error {
		return t.AddVote(ctx, code, voter, weight, votedAt)
	})
}

// HasVoted ...
func (s *Storage) HasVoted(ctx context.Context, code string, voter string) (ok bool, err error) {
	err = s.read(func(t tx) error {
		ok, err = t.HasVoted(ctx, code, voter)
		return err
	})
	return ok, err
}

// AddEvent ...
func (s *Storage) AddEvent(ctx context.Context, e *entities.Event) error {
	return s.write(ctx, func(t tx) error {
		return t.AddEvent(ctx, e)
	})
}

// ListEvents ...
func (s *Storage) ListEvents(ctx context.Context, communityID uint64) (e []*entities.Event, err error) {
	err = s.read(func(t tx) error {
		e, err = t.ListEvents(ctx, communityID)
		return err
	})
	return e, err
}

// CreateCertificate ...
func (s *Storage) CreateCertificate(ctx context.Context, c *entities.Certificate) (id uint64, err error) {
	err = s.write(ctx, func(t tx) error {
		id, err = t.CreateCertificate(ctx, c)
		return err
	})
	return id, err
}

// GetCertificate ...
func (s *Storage) GetCertificate(ctx context.Context, id uint64) (c *entities.Certificate, err error) {
	err = s.read(func(t tx) error {
		c, err = t.GetCertificate(ctx, id)
		return err
	})
	return c, err
}

// GetCertificateByCode ...
func (s *Storage) GetCertificateByCode(ctx context.Context, code string) (c *entities.Certificate, err error) {
	err = s.read(func(t tx) error {
		c, err = t.GetCertificateByCode(ctx, code)
		return err
	})
	return c, err
}

// UpdateCertificate ...
func (s *Storage) UpdateCertificate(ctx context.Context, c *entities.Certificate) error {
	return s.write(ctx, func(t tx) error {
		return t.UpdateCertificate(ctx, c)
	})
}

// AddIssuedABX ...
func (s *Storage) AddIssuedABX(ctx context.Context, amount uint64) error {
	return s.write(ctx, func(t tx) error {
		return t.AddIssuedABX(ctx, amount)
	})
}

// GetStats ...
func (s *Storage) GetStats(ctx context.Context) (st *storage.Stats, err error) {
	err = s.read(func(t tx) error {
		st, err = t.GetStats(ctx)
		return err
	})
	return st, err
}
