// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

type pg struct {
	ext sqlx.ExtContext
}

type accountDTO struct {
	Address string `db:"address"`
	ABX     uint64 `db:"abx"`
	Native  uint64 `db:"native"`
}

type communityDTO struct {
	ID          uint64    `db:"id"`
	Name        string    `db:"name"`
	Symbol      string    `db:"symbol"`
	TokenName   string    `db:"token_name"`
	TokenSymbol string    `db:"token_symbol"`
	Creator     string    `db:"creator"`
	CreatedAt   time.Time `db:"created_at"`
}

type productDTO struct {
	Code        string       `db:"code"`
	Name        string       `db:"name"`
	Title       string       `db:"title"`
	CommunityID uint64       `db:"community_id"`
	Price       uint64       `db:"price"`
	ForSale     bool         `db:"for_sale"`
	ListedAt    time.Time    `db:"listed_at"`
	Tally       int64        `db:"tally"`
	Status      uint8        `db:"status"`
	SettledAt   sql.NullTime `db:"settled_at"`
}

type eventDTO struct {
	Kind        string    `db:"kind"`
	CommunityID uint64    `db:"community_id"`
	Account     string    `db:"account"`
	Code        string    `db:"code"`
	Amount      int64     `db:"amount"`
	CreatedAt   time.Time `db:"created_at"`
}

type certificateDTO struct {
	ID       uint64    `db:"id"`
	Code     string    `db:"code"`
	Owner    string    `db:"owner"`
	Approved string    `db:"approved"`
	MintedAt time.Time `db:"minted_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return storage.ErrNestedTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := func(s storage.Storage) error {
		// write transactions are applied one by one
		if _, err := tx.ExecContext(ctx, `LOCK TABLE sequencer IN ACCESS EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("failed to lock sequencer table: %w", err)
		}

		return f(s)
	}(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) GetAccount(ctx context.Context, address string) (*entities.Account, error) {
	var a accountDTO

	if err := sqlx.GetContext(ctx, s.ext, &a, `
			SELECT address, abx, native FROM account WHERE address = $1
		`, address,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &entities.Account{Address: address}, nil
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Account{
		Address: a.Address,
		ABX:     a.ABX,
		Native:  a.Native,
	}, nil
}

func (s pg) SetAccount(ctx context.Context, a *entities.Account) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO account(address, abx, native) VALUES(:address, :abx, :native)
			ON CONFLICT(address) DO UPDATE SET abx=excluded.abx, native=excluded.native
		`, accountDTO{Address: a.Address, ABX: a.ABX, Native: a.Native},
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreateCommunity(ctx context.Context, p *storage.CreateCommunityParams) (*entities.Community, error) {
	c := communityDTO{
		Name:        p.Name,
		Symbol:      p.Symbol,
		TokenName:   p.TokenName,
		TokenSymbol: p.TokenSymbol,
		Creator:     p.Creator,
		CreatedAt:   p.CreatedAt.UTC(),
	}

	if err := sqlx.GetContext(ctx, s.ext, &c.ID, `
			INSERT INTO community(name, symbol, token_name, token_symbol, creator, created_at)
			VALUES($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, c.Name, c.Symbol, c.TokenName, c.TokenSymbol, c.Creator, c.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toCommunity(&c), nil
}

func (s pg) GetCommunity(ctx context.Context, id uint64) (*entities.Community, error) {
	var c communityDTO

	if err := sqlx.GetContext(ctx, s.ext, &c, `
			SELECT id, name, symbol, token_name, token_symbol, creator, created_at
			FROM community
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toCommunity(&c), nil
}

func (s pg) ListCommunities(ctx context.Context) ([]*entities.Community, error) {
	var c []*communityDTO

	if err := sqlx.SelectContext(ctx, s.ext, &c, `
			SELECT id, name, symbol, token_name, token_symbol, creator, created_at
			FROM community
			ORDER BY id
		`,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Community, len(c))
	for i, v := range c {
		out[i] = toCommunity(v)
	}

	return out, nil
}

func (s pg) AddMember(ctx context.Context, communityID uint64, address string, joinedAt time.Time) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO member(community_id, address, joined_at) VALUES($1, $2, $3)
		`, communityID, address, joinedAt.UTC(),
	); err != nil {
		return wrapError(err)
	}

	return nil
}

func (s pg) IsMember(ctx context.Context, communityID uint64, address string) (bool, error) {
	var ok bool

	if err := sqlx.GetContext(ctx, s.ext, &ok, `
			SELECT EXISTS(SELECT 1 FROM member WHERE community_id = $1 AND address = $2)
		`, communityID, address,
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return ok, nil
}

func (s pg) GetCommTokenBalance(ctx context.Context, communityID uint64, address string) (uint64, error) {
	var b uint64

	if err := sqlx.GetContext(ctx, s.ext, &b, `
			SELECT balance FROM comm_balance WHERE community_id = $1 AND address = $2
		`, communityID, address,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}

		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return b, nil
}

func (s pg) SetCommTokenBalance(ctx context.Context, communityID uint64, address string, balance uint64) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO comm_balance(community_id, address, balance) VALUES($1, $2, $3)
			ON CONFLICT(community_id, address) DO UPDATE SET balance=excluded.balance
		`, communityID, address, balance,
	); err != nil {
		return wrapError(err)
	}

	return nil
}

func (s pg) CreateProduct(ctx context.Context, p *entities.Product) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO product(code, name, title, community_id, price, for_sale, listed_at, tally, status)
			VALUES(:code, :name, :title, :community_id, :price, :for_sale, :listed_at, :tally, :status)
		`, productDTO{
			Code:        p.Code,
			Name:        p.Name,
			Title:       p.Title,
			CommunityID: p.CommunityID,
			Price:       p.Price,
			ForSale:     p.ForSale,
			ListedAt:    p.ListedAt.UTC(),
			Tally:       p.Tally,
			Status:      uint8(p.Status),
		},
	); err != nil {
		return wrapError(err)
	}

	return nil
}

func (s pg) GetProduct(ctx context.Context, code string) (*entities.Product, error) {
	var p productDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT code, name, title, community_id, price, for_sale, listed_at, tally, status, settled_at
			FROM product
			WHERE code = $1
		`, code,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toProduct(&p), nil
}

func (s pg) ListProducts(ctx context.Context, params *storage.ListProductsParams) ([]*entities.Product, error) {
	var status, communityID interface{}
	if params != nil && params.Status != nil {
		status = uint8(*params.Status)
	}
	if params != nil && params.CommunityID != nil {
		communityID = *params.CommunityID
	}

	var p []*productDTO

	if err := sqlx.SelectContext(ctx, s.ext, &p, `
			SELECT code, name, title, community_id, price, for_sale, listed_at, tally, status, settled_at
			FROM product
			WHERE ($1::SMALLINT IS NULL OR status = $1) AND ($2::BIGINT IS NULL OR community_id = $2)
			ORDER BY seq
		`, status, communityID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Product, len(p))
	for i, v := range p {
		out[i] = toProduct(v)
	}

	return out, nil
}

func (s pg) SetTally(ctx context.Context, code string, tally int64) error {
	return s.updateOne(ctx, `UPDATE product SET tally=$2 WHERE code=$1`, code, tally)
}

func (s pg) SetStatus(ctx context.Context, code string, status entities.ProductStatus, settledAt time.Time) error {
	return s.updateOne(ctx, `UPDATE product SET status=$2, settled_at=$3 WHERE code=$1`,
		code, uint8(status), settledAt.UTC(),
	)
}

// updateOne executes query and returns ErrNotFound if no rows were updated.
func (s pg) updateOne(ctx context.Context, query string, args ...interface{}) error {
	res, err := s.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) AddVote(ctx context.Context, code string, voter string, weight int64, votedAt time.Time) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO vote(code, voter, weight, voted_at) VALUES($1, $2, $3, $4)
		`, code, voter, weight, votedAt.UTC(),
	); err != nil {
		return wrapError(err)
	}

	return nil
}

func (s pg) HasVoted(ctx context.Context, code string, voter string) (bool, error) {
	var ok bool

	if err := sqlx.GetContext(ctx, s.ext, &ok, `
			SELECT EXISTS(SELECT 1 FROM vote WHERE code = $1 AND voter = $2)
		`, code, voter,
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return ok, nil
}

func (s pg) AddEvent(ctx context.Context, e *entities.Event) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO event(kind, community_id, account, code, amount, created_at)
			VALUES(:kind, :community_id, :account, :code, :amount, :created_at)
		`, eventDTO{
			Kind:        string(e.Kind),
			CommunityID: e.CommunityID,
			Account:     e.Account,
			Code:        e.Code,
			Amount:      e.Amount,
			CreatedAt:   e.CreatedAt.UTC(),
		},
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListEvents(ctx context.Context, communityID uint64) ([]*entities.Event, error) {
	var e []*eventDTO

	if err := sqlx.SelectContext(ctx, s.ext, &e, `
			SELECT kind, community_id, account, code, amount, created_at
			FROM event
			WHERE community_id = $1
			ORDER BY id
		`, communityID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Event, len(e))
	for i, v := range e {
		out[i] = &entities.Event{
			Kind:        entities.EventKind(v.Kind),
			CommunityID: v.CommunityID,
			Account:     v.Account,
			Code:        v.Code,
			Amount:      v.Amount,
			CreatedAt:   v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) CreateCertificate(ctx context.Context, c *entities.Certificate) (uint64, error) {
	var id uint64

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO certificate(code, owner, approved, minted_at) VALUES($1, $2, $3, $4)
			RETURNING id
		`, c.Code, c.Owner, c.Approved, c.MintedAt.UTC(),
	); err != nil {
		return 0, wrapError(err)
	}

	return id, nil
}

func (s pg) GetCertificate(ctx context.Context, id uint64) (*entities.Certificate, error) {
	return s.getCertificate(ctx, `
			SELECT id, code, owner, approved, minted_at FROM certificate WHERE id = $1
		`, id,
	)
}

func (s pg) GetCertificateByCode(ctx context.Context, code string) (*entities.Certificate, error) {
	return s.getCertificate(ctx, `
			SELECT id, code, owner, approved, minted_at FROM certificate WHERE code = $1
		`, code,
	)
}

func (s pg) getCertificate(ctx context.Context, query string, args ...interface{}) (*entities.Certificate, error) {
	var c certificateDTO

	if err := sqlx.GetContext(ctx, s.ext, &c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Certificate{
		ID:       c.ID,
		Code:     c.Code,
		Owner:    c.Owner,
		Approved: c.Approved,
		MintedAt: c.MintedAt,
	}, nil
}

func (s pg) UpdateCertificate(ctx context.Context, c *entities.Certificate) error {
	return s.updateOne(ctx, `UPDATE certificate SET owner=$2, approved=$3 WHERE id=$1`, c.ID, c.Owner, c.Approved)
}

func (s pg) AddIssuedABX(ctx context.Context, amount uint64) error {
	if _, err := s.ext.ExecContext(ctx, `
			UPDATE sequencer SET abx_issued = abx_issued + $1 WHERE id = 1
		`, amount,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetStats(ctx context.Context) (*storage.Stats, error) {
	var st struct {
		Communities uint64 `db:"communities"`
		Accounts    uint64 `db:"accounts"`
		ABX         uint64 `db:"abx"`
		ABXIssued   uint64 `db:"abx_issued"`
		Native      uint64 `db:"native"`
	}

	if err := sqlx.GetContext(ctx, s.ext, &st, `
			SELECT
				(SELECT COUNT(*) FROM community) AS communities,
				(SELECT COUNT(*) FROM account) AS accounts,
				(SELECT COALESCE(SUM(abx), 0) FROM account) AS abx,
				(SELECT abx_issued FROM sequencer) AS abx_issued,
				(SELECT COALESCE(SUM(native), 0) FROM account) AS native
		`,
	); err != nil {
		return nil, fmt.Errorf("failed to query totals: %w", err)
	}

	var products []struct {
		Status uint8  `db:"status"`
		Count  uint64 `db:"count"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &products, `
			SELECT status, COUNT(*) AS count FROM product GROUP BY status
		`,
	); err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	out := storage.Stats{
		Communities: st.Communities,
		Accounts:    st.Accounts,
		ABX:         st.ABX,
		ABXIssued:   st.ABXIssued,
		Native:      st.Native,
		Products:    make(map[entities.ProductStatus]uint64, len(products)),
	}

	for _, v := range products {
		out.Products[entities.ProductStatus(v.Status)] = v.Count
	}

	return &out, nil
}

func wrapError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case foreignKeyViolation:
			return fmt.Errorf("%s: %w", pqErr.Constraint, storage.ErrNotFound)
		case uniqueViolation:
			return storage.ErrAlreadyExists
		}
	}

	return fmt.Errorf("failed to exec: %w", err)
}

func toCommunity(c *communityDTO) *entities.Community {
	return &entities.Community{
		ID:          c.ID,
		Name:        c.Name,
		Symbol:      c.Symbol,
		TokenName:   c.TokenName,
		TokenSymbol: c.TokenSymbol,
		Creator:     c.Creator,
		CreatedAt:   c.CreatedAt,
	}
}

func toProduct(p *productDTO) *entities.Product {
	out := entities.Product{
		Code:        p.Code,
		Name:        p.Name,
		Title:       p.Title,
		CommunityID: p.CommunityID,
		Price:       p.Price,
		ForSale:     p.ForSale,
		ListedAt:    p.ListedAt,
		Tally:       p.Tally,
		Status:      entities.ProductStatus(p.Status),
	}

	if p.SettledAt.Valid {
		t := p.SettledAt.Time
		out.SettledAt = &t
	}

	return &out
}
