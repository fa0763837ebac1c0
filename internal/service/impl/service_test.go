package impl

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abx-network/agora/internal/certificate"
	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/funds"
	fundsmock "github.com/abx-network/agora/internal/funds/mock"
	"github.com/abx-network/agora/internal/service"
	"github.com/abx-network/agora/internal/storage/memory"
)

const (
	owner = "owner"
	addr1 = "addr1"
	addr2 = "addr2"
	addr3 = "addr3"
	addr4 = "addr4"
)

var (
	ctx     = context.Background()
	errTest = errors.New("test")
)

type fixture struct {
	srv    service.Service
	s      *memory.Storage
	clock  *clock.Mock
	issuer *certificate.Registry

	communityID uint64
}

func newFixture(t *testing.T) *fixture {
	c := clock.NewMock()
	c.Set(time.Unix(1700000000, 0))

	s := memory.New()

	f := &fixture{
		s:      s,
		clock:  c,
		issuer: certificate.NewRegistry(s, c),
	}
	f.srv = New(f.s, c, funds.Ledger{}, f.issuer, Config{Owner: owner, CreationThreshold: service.DefaultCreationThreshold})

	return f
}

func (f *fixture) buyABX(t *testing.T, addr string, abx uint64) {
	require.NoError(t, f.srv.BuyABX(ctx, addr, abx*service.ExchangeRate, abx))
}

// createCommunityFixture: addr1 owns 2000 ABX and community "Test Community".
func createCommunityFixture(t *testing.T) *fixture {
	f := newFixture(t)

	f.buyABX(t, addr1, 2000)

	c, err := f.srv.CreateCommunity(ctx, addr1, service.CreateCommunityParams{
		Name:        "Test Community",
		Symbol:      "TST",
		TokenSymbol: "T",
		TokenName:   "TKT",
	})
	require.NoError(t, err)

	f.communityID = c.ID

	return f
}

// publishProductFixture: addr2 and addr3 joined with 400 ABX each, addr1 published "TP" for 200.
func publishProductFixture(t *testing.T) *fixture {
	f := createCommunityFixture(t)

	require.NoError(t, f.srv.JoinCommunity(ctx, addr2, f.communityID))
	require.NoError(t, f.srv.JoinCommunity(ctx, addr3, f.communityID))

	f.buyABX(t, addr2, 400)
	f.buyABX(t, addr3, 400)

	require.NoError(t, f.srv.BuyCommToken(ctx, addr1, f.communityID, 300))

	_, err := f.srv.PublishProduct(ctx, addr1, service.PublishProductParams{
		Name:        "TP",
		Title:       "Test Product",
		CommunityID: f.communityID,
		ForSale:     true,
		Price:       200,
	})
	require.NoError(t, err)

	return f
}

func (f *fixture) balance(t *testing.T, addr string) uint64 {
	b, err := f.srv.GetCommTokenBalance(ctx, addr, f.communityID)
	require.NoError(t, err)
	return b
}

func (f *fixture) abx(t *testing.T, addr string) uint64 {
	a, err := f.srv.GetAccount(ctx, addr)
	require.NoError(t, err)
	return a.ABX
}

func TestSrv_BuyABX(t *testing.T) {
	tt := []struct {
		name   string
		buyer  string
		native uint64
		abx    uint64

		err     error
		balance uint64
		forward uint64
	}{
		{
			name:    "success",
			buyer:   addr1,
			native:  2000,
			abx:     200,
			balance: 200,
			forward: 2000,
		},
		{
			name:   "not_enough",
			buyer:  addr1,
			native: 100,
			abx:    200,
			err:    service.ErrInvalidAmount,
		},
		{
			name:   "too_much",
			buyer:  addr1,
			native: 2001,
			abx:    200,
			err:    service.ErrInvalidAmount,
		},
		{
			name:  "zero",
			buyer: addr1,
			err:   service.ErrInvalidAmount,
		},
		{
			name:   "overflow",
			buyer:  addr1,
			native: 0,
			abx:    1 << 63,
			err:    service.ErrInvalidAmount,
		},
		{
			name:   "owner",
			buyer:  owner,
			native: 2000,
			abx:    200,
			err:    service.ErrUnauthorizedAccess,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)

			err := f.srv.BuyABX(ctx, tc.buyer, tc.native, tc.abx)
			require.True(t, errors.Is(err, tc.err), err)

			assert.EqualValues(t, tc.balance, f.abx(t, tc.buyer))

			o, err := f.srv.GetAccount(ctx, owner)
			require.NoError(t, err)
			assert.EqualValues(t, tc.forward, o.Native)
			assert.Zero(t, o.ABX)
		})
	}
}

func TestSrv_BuyABX_ForwardError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := memory.New()
	sink := fundsmock.NewMockSink(ctrl)
	srv := New(s, clock.NewMock(), sink, nil, Config{Owner: owner, CreationThreshold: service.DefaultCreationThreshold})

	sink.EXPECT().Forward(gomock.Any(), gomock.Any(), addr1, owner, uint64(2000)).Return(errTest)

	require.True(t, errors.Is(srv.BuyABX(ctx, addr1, 2000, 200), errTest))

	a, err := srv.GetAccount(ctx, addr1)
	require.NoError(t, err)
	require.Zero(t, a.ABX)
}

func TestSrv_BuyABX_OwnerOverflow(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.s.SetAccount(ctx, &entities.Account{Address: owner, Native: math.MaxUint64 - 100}))

	require.Equal(t, service.ErrInvalidAmount, f.srv.BuyABX(ctx, addr1, 2000, 200))
	assert.Zero(t, f.abx(t, addr1))

	st, err := f.srv.GetStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, st.ABXIssued)
}

func TestSrv_BuyABX_Concurrent(t *testing.T) {
	f := newFixture(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.srv.BuyABX(ctx, addr1, 10, 1))
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 50, f.abx(t, addr1))

	o, err := f.srv.GetAccount(ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 500, o.Native)
}

func TestSrv_CreateCommunity(t *testing.T) {
	tt := []struct {
		name string
		abx  uint64
		err  error
	}{
		{name: "no_abx", abx: 0, err: service.ErrInsufficientBalance},
		{name: "below_threshold", abx: service.DefaultCreationThreshold - 1, err: service.ErrInsufficientBalance},
		{name: "threshold", abx: service.DefaultCreationThreshold},
		{name: "above_threshold", abx: 2000},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			if tc.abx > 0 {
				f.buyABX(t, addr2, tc.abx)
			}

			c, err := f.srv.CreateCommunity(ctx, addr2, service.CreateCommunityParams{Name: "Test Community"})
			require.True(t, errors.Is(err, tc.err), err)

			list, lerr := f.srv.ListCommunities(ctx)
			require.NoError(t, lerr)

			if tc.err != nil {
				require.Nil(t, c)
				require.Empty(t, list)
				return
			}

			require.Len(t, list, 1)
			assert.Equal(t, c.ID, list[0].ID)
			assert.Equal(t, addr2, list[0].Creator)
			// creating does not spend ABX
			assert.EqualValues(t, tc.abx, f.abx(t, addr2))
		})
	}
}

func TestSrv_CreateCommunity_Second(t *testing.T) {
	f := createCommunityFixture(t)

	_, err := f.srv.CreateCommunity(ctx, addr1, service.CreateCommunityParams{
		Name:        "Two Community",
		Symbol:      "TWO",
		TokenSymbol: "W",
		TokenName:   "TWK",
	})
	require.NoError(t, err)

	list, err := f.srv.ListCommunities(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	first, err := f.srv.GetCommunity(ctx, list[0].ID)
	require.NoError(t, err)
	second, err := f.srv.GetCommunity(ctx, list[1].ID)
	require.NoError(t, err)

	assert.Equal(t, "Test Community", first.Name)
	assert.Equal(t, "TST", first.Symbol)
	assert.Equal(t, "T", first.TokenSymbol)
	assert.Equal(t, "TKT", first.TokenName)
	assert.Equal(t, "Two Community", second.Name)

	ok, err := f.srv.IsMember(ctx, addr1, second.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.srv.GetCommunity(ctx, 100)
	require.Equal(t, service.ErrCommunityNotFound, err)
}

func TestSrv_CreateCommunity_ZeroThreshold(t *testing.T) {
	srv := New(memory.New(), clock.NewMock(), funds.Ledger{}, nil, Config{Owner: owner})

	c, err := srv.CreateCommunity(ctx, addr2, service.CreateCommunityParams{Name: "Free Community"})
	require.NoError(t, err)
	assert.Equal(t, addr2, c.Creator)
}

func TestSrv_JoinCommunity(t *testing.T) {
	f := createCommunityFixture(t)

	ok, err := f.srv.IsMember(ctx, addr2, f.communityID)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, f.srv.JoinCommunity(ctx, addr2, f.communityID))

	ok, err = f.srv.IsMember(ctx, addr2, f.communityID)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, service.ErrAlreadyMember, f.srv.JoinCommunity(ctx, addr2, f.communityID))
	require.Equal(t, service.ErrAlreadyMember, f.srv.JoinCommunity(ctx, addr1, f.communityID))
	require.Equal(t, service.ErrCommunityNotFound, f.srv.JoinCommunity(ctx, addr2, 0))

	events, err := f.srv.ListEvents(ctx, f.communityID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entities.CommunityCreatedEvent, events[0].Kind)
	assert.Equal(t, entities.JoinedCommunityEvent, events[1].Kind)
	assert.Equal(t, addr2, events[1].Account)
	assert.Equal(t, f.communityID, events[1].CommunityID)
}

func TestSrv_BuyCommToken(t *testing.T) {
	tt := []struct {
		name        string
		join        bool
		abx         uint64
		communityID uint64
		amount      uint64

		err     error
		balance uint64
		left    uint64
	}{
		{name: "not_member", abx: 400, amount: 200, err: service.ErrUnauthorizedAccess, left: 400},
		{name: "no_community", join: true, abx: 400, communityID: 42, amount: 200, err: service.ErrCommunityNotFound, left: 400},
		{name: "insufficient", join: true, amount: 200, err: service.ErrInsufficientBalance},
		{name: "zero", join: true, abx: 400, err: service.ErrInvalidAmount, left: 400},
		{name: "success", join: true, abx: 400, amount: 200, balance: 200, left: 200},
		{name: "all", join: true, abx: 400, amount: 400, balance: 400},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			f := createCommunityFixture(t)

			if tc.join {
				require.NoError(t, f.srv.JoinCommunity(ctx, addr2, f.communityID))
			}
			if tc.abx > 0 {
				f.buyABX(t, addr2, tc.abx)
			}

			id := f.communityID
			if tc.communityID != 0 {
				id = tc.communityID
			}

			err := f.srv.BuyCommToken(ctx, addr2, id, tc.amount)
			require.True(t, errors.Is(err, tc.err), err)

			assert.EqualValues(t, tc.balance, f.balance(t, addr2))
			assert.EqualValues(t, tc.left, f.abx(t, addr2))
		})
	}
}

func TestSrv_BuyCommToken_Creator(t *testing.T) {
	f := createCommunityFixture(t)

	require.NoError(t, f.srv.BuyCommToken(ctx, addr1, f.communityID, 300))
	assert.EqualValues(t, 300, f.balance(t, addr1))
	assert.EqualValues(t, 1700, f.abx(t, addr1))
}

func TestSrv_PublishProduct(t *testing.T) {
	tt := []struct {
		name        string
		caller      string
		communityID uint64
		tokens      uint64
		price       uint64

		err     error
		balance uint64
	}{
		{name: "no_community", caller: addr1, communityID: 42, tokens: 300, price: 200, err: service.ErrCommunityNotFound, balance: 300},
		{name: "not_creator", caller: addr2, tokens: 300, price: 200, err: service.ErrUnauthorizedAccess, balance: 300},
		{name: "insufficient", caller: addr1, tokens: 50, price: 200, err: service.ErrInsufficientBalance, balance: 50},
		{name: "zero_price", caller: addr1, tokens: 300, price: 0, err: service.ErrInvalidAmount, balance: 300},
		{name: "exact", caller: addr1, tokens: 200, price: 200, balance: 0},
		{name: "success", caller: addr1, tokens: 300, price: 200, balance: 100},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			f := createCommunityFixture(t)
			require.NoError(t, f.srv.JoinCommunity(ctx, addr2, f.communityID))
			require.NoError(t, f.srv.BuyCommToken(ctx, addr1, f.communityID, tc.tokens))

			id := f.communityID
			if tc.communityID != 0 {
				id = tc.communityID
			}

			p, err := f.srv.PublishProduct(ctx, tc.caller, service.PublishProductParams{
				Name:        "TP",
				Title:       "Test Product",
				CommunityID: id,
				ForSale:     true,
				Price:       tc.price,
			})
			require.True(t, errors.Is(err, tc.err), err)
			assert.EqualValues(t, tc.balance, f.balance(t, addr1))

			pending, lerr := f.srv.ListPendingProducts(ctx)
			require.NoError(t, lerr)

			if tc.err != nil {
				require.Nil(t, p)
				require.Empty(t, pending)
				return
			}

			require.Len(t, pending, 1)
			assert.Equal(t, f.srv.GetCode(f.communityID, "TP", tc.price), pending[0].Code)
			assert.Equal(t, entities.ProductPending, pending[0].Status)
			assert.Equal(t, f.clock.Now().Unix(), pending[0].ListedAt.Unix())
			assert.True(t, pending[0].ForSale)
			assert.Zero(t, pending[0].Tally)
		})
	}
}

func TestSrv_PublishProduct_Duplicate(t *testing.T) {
	f := publishProductFixture(t)

	require.NoError(t, f.srv.BuyCommToken(ctx, addr1, f.communityID, 200))
	_, err := f.srv.PublishProduct(ctx, addr1, service.PublishProductParams{Name: "TP", CommunityID: f.communityID, Price: 200})
	require.Equal(t, service.ErrProductAlreadyExists, err)
	assert.EqualValues(t, 300, f.balance(t, addr1))
}

func TestSrv_GetCode(t *testing.T) {
	f := publishProductFixture(t)

	code := f.srv.GetCode(f.communityID, "TP", 200)
	require.Equal(t, code, f.srv.GetCode(f.communityID, "TP", 200))
	require.Len(t, code, 64)
	require.NotEqual(t, code, f.srv.GetCode(f.communityID, "TP", 201))
	require.NotEqual(t, code, f.srv.GetCode(f.communityID+1, "TP", 200))
	require.NotEqual(t, code, f.srv.GetCode(f.communityID, "TQ", 200))

	p, err := f.srv.GetCommunityProduct(ctx, f.communityID, code)
	require.NoError(t, err)
	assert.Equal(t, "Test Product", p.Title)

	_, err = f.srv.GetCommunityProduct(ctx, f.communityID+1, code)
	require.Equal(t, service.ErrProductNotFound, err)

	_, err = f.srv.GetTally(ctx, "unknown")
	require.Equal(t, service.ErrProductNotFound, err)
}
