package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/storage"
)

// tx works on the state under the storage lock. Mutations push their inverse
// to undo; read-only tx has nil undo and must not mutate.
type tx struct {
	st   *state
	undo *[]func()
}

func (t tx) record(f func()) {
	*t.undo = append(*t.undo, f)
}

// restore returns a func putting m[k] back to its current value.
func restore[K comparable, V any](m map[K]V, k K) func() {
	v, ok := m[k]

	return func() {
		if ok {
			m[k] = v
			return
		}

		delete(m, k)
	}
}

func (t tx) InTx(_ context.Context, _ func(s storage.Storage) error) error {
	return storage.ErrNestedTx
}

func (t tx) GetAccount(_ context.Context, address string) (*entities.Account, error) {
	a, ok := t.st.accounts[address]
	if !ok {
		return &entities.Account{Address: address}, nil
	}

	return &a, nil
}

func (t tx) SetAccount(_ context.Context, a *entities.Account) error {
	t.record(restore(t.st.accounts, a.Address))
	t.st.accounts[a.Address] = *a

	return nil
}

func (t tx) CreateCommunity(_ context.Context, p *storage.CreateCommunityParams) (*entities.Community, error) {
	c := entities.Community{
		ID:          uint64(len(t.st.communities)) + 1,
		Name:        p.Name,
		Symbol:      p.Symbol,
		TokenName:   p.TokenName,
		TokenSymbol: p.TokenSymbol,
		Creator:     p.Creator,
		CreatedAt:   p.CreatedAt,
	}

	n := len(t.st.communities)
	t.record(func() { t.st.communities = t.st.communities[:n] })
	t.st.communities = append(t.st.communities, c)

	return &c, nil
}

func (t tx) GetCommunity(_ context.Context, id uint64) (*entities.Community, error) {
	if id == 0 || id > uint64(len(t.st.communities)) {
		return nil, storage.ErrNotFound
	}

	c := t.st.communities[id-1]

	return &c, nil
}

func (t tx) ListCommunities(_ context.Context) ([]*entities.Community, error) {
	out := make([]*entities.Community, len(t.st.communities))
	for i := range t.st.communities {
		c := t.st.communities[i]
		out[i] = &c
	}

	return out, nil
}

func (t tx) AddMember(_ context.Context, communityID uint64, address string, joinedAt time.Time) error {
	if communityID == 0 || communityID > uint64(len(t.st.communities)) {
		return fmt.Errorf("community %d: %w", communityID, storage.ErrNotFound)
	}

	k := memberKey{CommunityID: communityID, Address: address}
	if _, ok := t.st.members[k]; ok {
		return storage.ErrAlreadyExists
	}

	t.record(restore(t.st.members, k))
	t.st.members[k] = joinedAt

	return nil
}

func (t tx) IsMember(_ context.Context, communityID uint64, address string) (bool, error) {
	_, ok := t.st.members[memberKey{CommunityID: communityID, Address: address}]

	return ok, nil
}

func (t tx) GetCommTokenBalance(_ context.Context, communityID uint64, address string) (uint64, error) {
	return t.st.balances[memberKey{CommunityID: communityID, Address: address}], nil
}

func (t tx) SetCommTokenBalance(_ context.Context, communityID uint64, address string, balance uint64) error {
	k := memberKey{CommunityID: communityID, Address: address}

	t.record(restore(t.st.balances, k))
	t.st.balances[k] = balance

	return nil
}

func (t tx) CreateProduct(_ context.Context, p *entities.Product) error {
	if _, ok := t.st.products[p.Code]; ok {
		return storage.ErrAlreadyExists
	}

	n := len(t.st.productSeq)
	t.record(restore(t.st.products, p.Code))
	t.record(func() { t.st.productSeq = t.st.productSeq[:n] })

	t.st.products[p.Code] = *p
	t.st.productSeq = append(t.st.productSeq, p.Code)

	return nil
}

func (t tx) GetProduct(_ context.Context, code string) (*entities.Product, error) {
	p, ok := t.st.products[code]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &p, nil
}

func (t tx) ListProducts(_ context.Context, params *storage.ListProductsParams) ([]*entities.Product, error) {
	out := make([]*entities.Product, 0)

	for _, code := range t.st.productSeq {
		p := t.st.products[code]

		if params != nil && params.Status != nil && p.Status != *params.Status {
			continue
		}
		if params != nil && params.CommunityID != nil && p.CommunityID != *params.CommunityID {
			continue
		}

		out = append(out, &p)
	}

	return out, nil
}

func (t tx) SetTally(_ context.Context, code string, tally int64) error {
	p, ok := t.st.products[code]
	if !ok {
		return storage.ErrNotFound
	}

	t.record(restore(t.st.products, code))

	p.Tally = tally
	t.st.products[code] = p

	return nil
}

func (t tx) SetStatus(_ context.Context, code string, status entities.ProductStatus, settledAt time.Time) error {
	p, ok := t.st.products[code]
	if !ok {
		return storage.ErrNotFound
	}

	t.record(restore(t.st.products, code))

	p.Status = status
	p.SettledAt = &settledAt
	t.st.products[code] = p

	return nil
}

func (t tx) AddVote(_ context.Context, code string, voter string, weight int64, _ time.Time) error {
	if _, ok := t.st.products[code]; !ok {
		return storage.ErrNotFound
	}

	k := voteKey{Code: code, Voter: voter}
	if _, ok := t.st.votes[k]; ok {
		return storage.ErrAlreadyExists
	}

	t.record(restore(t.st.votes, k))
	t.st.votes[k] = weight

	return nil
}

func (t tx) HasVoted(_ context.Context, code string, voter string) (bool, error) {
	_, ok := t.st.votes[voteKey{Code: code, Voter: voter}]

	return ok, nil
}

func (t tx) AddEvent(_ context.Context, e *entities.Event) error {
	n := len(t.st.events)
	t.record(func() { t.st.events = t.st.events[:n] })
	t.st.events = append(t.st.events, *e)

	return nil
}

func (t tx) ListEvents(_ context.Context, communityID uint64) ([]*entities.Event, error) {
	out := make([]*entities.Event, 0)

	for i := range t.st.events {
		if t.st.events[i].CommunityID != communityID {
			continue
		}

		e := t.st.events[i]
		out = append(out, &e)
	}

	return out, nil
}

func (t tx) CreateCertificate(_ context.Context, c *entities.Certificate) (uint64, error) {
	if _, ok := t.st.products[c.Code]; !ok {
		return 0, fmt.Errorf("product %s: %w", c.Code, storage.ErrNotFound)
	}

	if _, ok := t.st.certByCode[c.Code]; ok {
		return 0, storage.ErrAlreadyExists
	}

	out := *c
	out.ID = uint64(len(t.st.certificates)) + 1

	n := len(t.st.certificates)
	t.record(func() { t.st.certificates = t.st.certificates[:n] })
	t.record(restore(t.st.certByCode, c.Code))

	t.st.certificates = append(t.st.certificates, out)
	t.st.certByCode[c.Code] = out.ID

	return out.ID, nil
}

func (t tx) GetCertificate(_ context.Context, id uint64) (*entities.Certificate, error) {
	if id == 0 || id > uint64(len(t.st.certificates)) {
		return nil, storage.ErrNotFound
	}

	c := t.st.certificates[id-1]

	return &c, nil
}

func (t tx) GetCertificateByCode(ctx context.Context, code string) (*entities.Certificate, error) {
	id, ok := t.st.certByCode[code]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return t.GetCertificate(ctx, id)
}

func (t tx) UpdateCertificate(_ context.Context, c *entities.Certificate) error {
	if c.ID == 0 || c.ID > uint64(len(t.st.certificates)) {
		return storage.ErrNotFound
	}

	i := c.ID - 1
	prev := t.st.certificates[i]
	t.record(func() { t.st.certificates[i] = prev })

	t.st.certificates[i].Owner = c.Owner
	t.st.certificates[i].Approved = c.Approved

	return nil
}

func (t tx) AddIssuedABX(_ context.Context, amount uint64) error {
	prev := t.st.abxIssued
	t.record(func() { t.st.abxIssued = prev })

	t.st.abxIssued += amount

	return nil
}

func (t tx) GetStats(_ context.Context) (*storage.Stats, error) {
	out := storage.Stats{
		Communities: uint64(len(t.st.communities)),
		Accounts:    uint64(len(t.st.accounts)),
		ABXIssued:   t.st.abxIssued,
		Products:    map[entities.ProductStatus]uint64{},
	}

	for _, a := range t.st.accounts {
		out.ABX += a.ABX
		out.Native += a.Native
	}

	for _, p := range t.st.products {
		out.Products[p.Status]++
	}

	return &out, nil
}
