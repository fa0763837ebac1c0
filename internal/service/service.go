// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/storage"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

const (
	// ExchangeRate is the amount of native units paid for one ABX.
	ExchangeRate uint64 = 10
	// VotingWindow is the duration in seconds after publishing when votes are accepted.
	VotingWindow int64 = 172800
	// ListedFeePercent is paid to the creator when a product gets listed.
	ListedFeePercent uint64 = 50
	// RejectedFeePercent is paid to the creator when a product gets rejected.
	RejectedFeePercent uint64 = 25
	// DefaultCreationThreshold is the ABX balance required to create a community.
	DefaultCreationThreshold uint64 = 1000
)

// Every failed call returns exactly one of these errors.
var (
	// ErrInvalidAmount is returned when a payment does not match the required amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrUnauthorizedAccess is returned when the caller lacks the required role.
	ErrUnauthorizedAccess = errors.New("unauthorized access")
	// ErrInsufficientBalance is returned when the caller can not afford the action.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrCommunityNotFound ...
	ErrCommunityNotFound = errors.New("community not found")
	// ErrProductNotFound ...
	ErrProductNotFound = errors.New("product not found")
	// ErrProductAlreadyExists is returned when an identical product is published twice.
	ErrProductAlreadyExists = errors.New("product already exists")
	// ErrAlreadyMember ...
	ErrAlreadyMember = errors.New("already member")
	// ErrAlreadyVoted ...
	ErrAlreadyVoted = errors.New("already voted")
	// ErrAlreadySettled is returned when settlement is requested for a settled product.
	ErrAlreadySettled = errors.New("already settled")
	// ErrVotingTime is returned when an action happens outside of its time window.
	ErrVotingTime = errors.New("voting time error")
)

var kinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidAmount, "InvalidAmount"},
	{ErrUnauthorizedAccess, "UnauthorizedAccess"},
	{ErrInsufficientBalance, "InsufficientBalance"},
	{ErrCommunityNotFound, "CommunityNotFound"},
	{ErrProductNotFound, "ProductNotFound"},
	{ErrProductAlreadyExists, "ProductAlreadyExists"},
	{ErrAlreadyMember, "AlreadyMember"},
	{ErrAlreadyVoted, "AlreadyVoted"},
	{ErrAlreadySettled, "AlreadySettled"},
	{ErrVotingTime, "VotingTimeError"},
}

// Kind returns the stable name of a ledger error or empty string for others.
func Kind(err error) string {
	for _, v := range kinds {
		if errors.Is(err, v.err) {
			return v.kind
		}
	}

	return ""
}

// Direction ...
type Direction int8

const (
	// Up adds the weight to the tally.
	Up Direction = 1
	// Down subtracts the weight from the tally.
	Down Direction = -1
)

// CreateCommunityParams ...
type CreateCommunityParams struct {
	Name        string
	Symbol      string
	TokenSymbol string
	TokenName   string
}

// PublishProductParams ...
type PublishProductParams struct {
	Name        string
	Title       string
	CommunityID uint64
	ForSale     bool
	Price       uint64
}

// Service is the ledger. Callers are authenticated by the transport.
type Service interface {
	BuyABX(ctx context.Context, buyer string, native, abx uint64) error
	GetAccount(ctx context.Context, address string) (*entities.Account, error)

	CreateCommunity(ctx context.Context, creator string, p CreateCommunityParams) (*entities.Community, error)
	JoinCommunity(ctx context.Context, caller string, communityID uint64) error
	BuyCommToken(ctx context.Context, caller string, communityID, amount uint64) error
	GetCommTokenBalance(ctx context.Context, caller string, communityID uint64) (uint64, error)
	IsMember(ctx context.Context, address string, communityID uint64) (bool, error)
	GetCommunity(ctx context.Context, id uint64) (*entities.Community, error)
	ListCommunities(ctx context.Context) ([]*entities.Community, error)
	ListEvents(ctx context.Context, communityID uint64) ([]*entities.Event, error)

	PublishProduct(ctx context.Context, caller string, p PublishProductParams) (*entities.Product, error)
	GetCode(communityID uint64, name string, price uint64) string
	GetCommunityProduct(ctx context.Context, communityID uint64, code string) (*entities.Product, error)
	ListPendingProducts(ctx context.Context) ([]*entities.Product, error)
	ListListedProducts(ctx context.Context) ([]*entities.Product, error)
	ListRejectedProducts(ctx context.Context) ([]*entities.Product, error)
	GetTally(ctx context.Context, code string) (int64, error)

	Vote(ctx context.Context, voter, name string, communityID, price uint64, d Direction) error
	UpVote(ctx context.Context, voter, name string, communityID, price uint64) error
	DownVote(ctx context.Context, voter, name string, communityID, price uint64) error

	VotingResult(ctx context.Context, caller, name string, communityID, price uint64) (*entities.Product, error)

	GetStats(ctx context.Context) (*storage.Stats, error)
}
