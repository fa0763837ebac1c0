package server

import (
	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/storage"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
	// Kind is the stable ledger error name, e.g. InsufficientBalance.
	Kind string `json:"kind,omitempty"`
}

// Account ...
// swagger:model
type Account struct {
	Address string `json:"address"`
	ABX     uint64 `json:"abx"`
	Native  uint64 `json:"native"`
}

// BuyABXRequest ...
// swagger:model
type BuyABXRequest struct {
	// Native is the paid amount, it has to be exactly ABX * 10.
	Native uint64 `json:"native"`
	ABX    uint64 `json:"abx"`
}

// Community ...
// swagger:model
type Community struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	TokenName   string `json:"tokenName"`
	TokenSymbol string `json:"tokenSymbol"`
	Creator     string `json:"creator"`
	CreatedAt   int64  `json:"createdAt"`
}

// CreateCommunityRequest ...
// swagger:model
type CreateCommunityRequest struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	TokenName   string `json:"tokenName"`
	TokenSymbol string `json:"tokenSymbol"`
}

// BuyCommTokenRequest ...
// swagger:model
type BuyCommTokenRequest struct {
	Amount uint64 `json:"amount"`
}

// Member ...
// swagger:model
type Member struct {
	Member  bool   `json:"member"`
	Balance uint64 `json:"balance"`
}

// Event ...
// swagger:model
type Event struct {
	Kind      string `json:"kind"`
	Account   string `json:"account"`
	Code      string `json:"code,omitempty"`
	Amount    int64  `json:"amount,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// CodeResponse ...
// swagger:model
type CodeResponse struct {
	Code string `json:"code"`
}

// Product ...
// swagger:model
type Product struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	CommunityID uint64 `json:"communityId"`
	Price       uint64 `json:"price"`
	ForSale     bool   `json:"forSale"`
	// ListedForSale is true when the community voted for the product.
	ListedForSale bool   `json:"listedForSale"`
	Status        string `json:"status"`
	Tally         int64  `json:"tally"`
	ListedAt      int64  `json:"listedAt"`
	SettledAt     *int64 `json:"settledAt,omitempty"`
}

// PublishProductRequest ...
// swagger:model
type PublishProductRequest struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	ForSale bool   `json:"forSale"`
	Price   uint64 `json:"price"`
}

// VoteRequest ...
// swagger:model
type VoteRequest struct {
	Name  string `json:"name"`
	Price uint64 `json:"price"`
	// Direction is either up or down.
	Direction string `json:"direction"`
}

// SettleRequest ...
// swagger:model
type SettleRequest struct {
	Name  string `json:"name"`
	Price uint64 `json:"price"`
}

// TallyResponse ...
// swagger:model
type TallyResponse struct {
	Tally int64 `json:"tally"`
}

// Certificate ...
// swagger:model
type Certificate struct {
	ID       uint64 `json:"id"`
	Code     string `json:"code"`
	Owner    string `json:"owner"`
	Approved string `json:"approved,omitempty"`
	MintedAt int64  `json:"mintedAt"`
}

// ApproveRequest ...
// swagger:model
type ApproveRequest struct {
	Operator string `json:"operator"`
}

// TransferRequest ...
// swagger:model
type TransferRequest struct {
	To string `json:"to"`
}

// Stats ...
// swagger:model
type Stats struct {
	Communities uint64 `json:"communities"`
	Accounts    uint64 `json:"accounts"`
	// ABX held by accounts
	ABX uint64 `json:"abx"`
	// ABX ever sold
	ABXIssued uint64            `json:"abxIssued"`
	Native    uint64            `json:"native"`
	Products  map[string]uint64 `json:"products"`
}

func toAPIAccount(a *entities.Account) Account {
	return Account{
		Address: a.Address,
		ABX:     a.ABX,
		Native:  a.Native,
	}
}

func toAPICommunity(c *entities.Community) Community {
	return Community{
		ID:          c.ID,
		Name:        c.Name,
		Symbol:      c.Symbol,
		TokenName:   c.TokenName,
		TokenSymbol: c.TokenSymbol,
		Creator:     c.Creator,
		CreatedAt:   c.CreatedAt.Unix(),
	}
}

func toAPIProduct(p *entities.Product) Product {
	out := Product{
		Code:          p.Code,
		Name:          p.Name,
		Title:         p.Title,
		CommunityID:   p.CommunityID,
		Price:         p.Price,
		ForSale:       p.ForSale,
		ListedForSale: p.ListedForSale(),
		Status:        p.Status.String(),
		Tally:         p.Tally,
		ListedAt:      p.ListedAt.Unix(),
	}

	if p.SettledAt != nil {
		v := p.SettledAt.Unix()
		out.SettledAt = &v
	}

	return out
}

func toAPIProducts(p []*entities.Product) []Product {
	out := make([]Product, len(p))
	for i, v := range p {
		out[i] = toAPIProduct(v)
	}

	return out
}

func toAPIEvents(e []*entities.Event) []Event {
	out := make([]Event, len(e))
	for i, v := range e {
		out[i] = Event{
			Kind:      string(v.Kind),
			Account:   v.Account,
			Code:      v.Code,
			Amount:    v.Amount,
			CreatedAt: v.CreatedAt.Unix(),
		}
	}

	return out
}

func toAPICertificate(c *entities.Certificate) Certificate {
	return Certificate{
		ID:       c.ID,
		Code:     c.Code,
		Owner:    c.Owner,
		Approved: c.Approved,
		MintedAt: c.MintedAt.Unix(),
	}
}

func toAPIStats(s *storage.Stats) Stats {
	out := Stats{
		Communities: s.Communities,
		Accounts:    s.Accounts,
		ABX:         s.ABX,
		ABXIssued:   s.ABXIssued,
		Native:      s.Native,
		Products: map[string]uint64{
			entities.ProductPending.String():  0,
			entities.ProductListed.String():   0,
			entities.ProductRejected.String(): 0,
		},
	}

	for k, v := range s.Products {
		out.Products[k.String()] = v
	}

	return out
}
