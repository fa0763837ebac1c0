// Package storage contains a storage interface.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/abx-network/agora/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

var (
	// ErrNotFound ...
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists ...
	ErrAlreadyExists = errors.New("already exists")
	// ErrNestedTx is returned when InTx is called on a transaction-bound storage.
	ErrNestedTx = errors.New("can not run InTx in tx")
)

// Storage provides methods for interacting with database.
type Storage interface {
	// InTx runs f against a transaction-bound storage. Changes made by f are
	// visible to others only if f returns nil.
	InTx(ctx context.Context, f func(s Storage) error) error

	// GetAccount returns the account, a zero account is returned for unknown addresses.
	GetAccount(ctx context.Context, address string) (*entities.Account, error)
	SetAccount(ctx context.Context, a *entities.Account) error

	CreateCommunity(ctx context.Context, p *CreateCommunityParams) (*entities.Community, error)
	GetCommunity(ctx context.Context, id uint64) (*entities.Community, error)
	ListCommunities(ctx context.Context) ([]*entities.Community, error)

	AddMember(ctx context.Context, communityID uint64, address string, joinedAt time.Time) error
	IsMember(ctx context.Context, communityID uint64, address string) (bool, error)
	GetCommTokenBalance(ctx context.Context, communityID uint64, address string) (uint64, error)
	SetCommTokenBalance(ctx context.Context, communityID uint64, address string, balance uint64) error

	CreateProduct(ctx context.Context, p *entities.Product) error
	GetProduct(ctx context.Context, code string) (*entities.Product, error)
	ListProducts(ctx context.Context, p *ListProductsParams) ([]*entities.Product, error)
	SetTally(ctx context.Context, code string, tally int64) error
	SetStatus(ctx context.Context, code string, status entities.ProductStatus, settledAt time.Time) error

	AddVote(ctx context.Context, code string, voter string, weight int64, votedAt time.Time) error
	HasVoted(ctx context.Context, code string, voter string) (bool, error)

	AddEvent(ctx context.Context, e *entities.Event) error
	ListEvents(ctx context.Context, communityID uint64) ([]*entities.Event, error)

	// CreateCertificate stores c and returns its id. Ids start from 1.
	CreateCertificate(ctx context.Context, c *entities.Certificate) (uint64, error)
	GetCertificate(ctx context.Context, id uint64) (*entities.Certificate, error)
	GetCertificateByCode(ctx context.Context, code string) (*entities.Certificate, error)
	// UpdateCertificate stores owner and approved operator of c.
	UpdateCertificate(ctx context.Context, c *entities.Certificate) error

	// AddIssuedABX increases the total amount of ABX ever sold.
	AddIssuedABX(ctx context.Context, amount uint64) error

	GetStats(ctx context.Context) (*Stats, error)
}

// CreateCommunityParams ...
type CreateCommunityParams struct {
	Name        string
	Symbol      string
	TokenName   string
	TokenSymbol string
	Creator     string
	CreatedAt   time.Time
}

// ListProductsParams ...
type ListProductsParams struct {
	Status      *entities.ProductStatus
	CommunityID *uint64
}

// Stats ...
type Stats struct {
	Communities uint64
	Accounts    uint64
	// ABX is the amount currently held by accounts.
	ABX uint64
	// ABXIssued is the amount ever sold, spending ABX does not decrease it.
	ABXIssued uint64
	Native    uint64
	Products    map[entities.ProductStatus]uint64
}
