// Package entities contains main entities of service.
package entities

import (
	"time"
)

// Account ...
type Account struct {
	Address string
	// ABX is the platform currency balance.
	ABX uint64
	// Native is the amount of external funds forwarded to the account.
	Native uint64
}

// Community ...
type Community struct {
	ID          uint64
	Name        string
	Symbol      string
	TokenName   string
	TokenSymbol string
	Creator     string
	CreatedAt   time.Time
}

// ProductStatus ...
type ProductStatus uint8

const (
	// ProductPending is a product awaiting settlement.
	ProductPending ProductStatus = iota
	// ProductListed is a product accepted by the community.
	ProductListed
	// ProductRejected is a product declined by the community.
	ProductRejected
)

func (s ProductStatus) String() string {
	switch s {
	case ProductPending:
		return "pending"
	case ProductListed:
		return "listed"
	case ProductRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Product ...
type Product struct {
	Code        string
	Name        string
	Title       string
	CommunityID uint64
	Price       uint64
	// ForSale is the creator supplied flag, it does not depend on voting.
	ForSale   bool
	ListedAt  time.Time
	Tally     int64
	Status    ProductStatus
	SettledAt *time.Time
}

// ListedForSale reports whether the community accepted the product.
func (p Product) ListedForSale() bool {
	return p.Status == ProductListed
}

// EventKind ...
type EventKind string

const (
	// CommunityCreatedEvent ...
	CommunityCreatedEvent EventKind = "CommunityCreated"
	// JoinedCommunityEvent ...
	JoinedCommunityEvent EventKind = "JoinedCommunity"
	// ProductPublishedEvent ...
	ProductPublishedEvent EventKind = "ProductPublished"
	// VotedEvent ...
	VotedEvent EventKind = "Voted"
	// ProductSettledEvent ...
	ProductSettledEvent EventKind = "ProductSettled"
)

// Event is a journal record written together with the mutation it describes.
type Event struct {
	Kind        EventKind
	CommunityID uint64
	Account     string
	Code        string
	Amount      int64
	CreatedAt   time.Time
}

// Certificate ...
type Certificate struct {
	ID       uint64
	Code     string
	Owner    string
	Approved string
	MintedAt time.Time
}
