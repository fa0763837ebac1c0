package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abx-network/agora/internal/certificate"
	certmock "github.com/abx-network/agora/internal/certificate/mock"
	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/funds"
	"github.com/abx-network/agora/internal/service"
	"github.com/abx-network/agora/internal/storage"
	"github.com/abx-network/agora/internal/storage/memory"
)

const window = time.Duration(service.VotingWindow) * time.Second

func TestFee(t *testing.T) {
	tt := []struct {
		price   uint64
		percent uint64
		fee     uint64
	}{
		{price: 200, percent: 50, fee: 100},
		{price: 200, percent: 25, fee: 50},
		{price: 1, percent: 50, fee: 0},
		{price: 3, percent: 50, fee: 1},
		{price: 7, percent: 25, fee: 1},
		{price: 101, percent: 25, fee: 25},
		{price: 1<<63 - 1, percent: 50, fee: (1<<63 - 1) / 2},
	}

	for _, tc := range tt {
		assert.Equal(t, tc.fee, fee(tc.price, tc.percent), "%d*%d", tc.price, tc.percent)
	}
}

func TestSrv_VotingResult(t *testing.T) {
	tt := []struct {
		name  string
		votes map[string]service.Direction

		status  entities.ProductStatus
		balance uint64
		minted  bool
	}{
		{
			name:    "listed",
			votes:   map[string]service.Direction{addr2: service.Up},
			status:  entities.ProductListed,
			balance: 200,
			minted:  true,
		},
		{
			name:    "rejected",
			votes:   map[string]service.Direction{addr2: service.Down},
			status:  entities.ProductRejected,
			balance: 150,
		},
		{
			name:    "tie",
			votes:   map[string]service.Direction{addr2: service.Up, addr3: service.Down},
			status:  entities.ProductRejected,
			balance: 150,
		},
		{
			name:    "no_votes",
			status:  entities.ProductRejected,
			balance: 150,
		},
		{
			name:    "majority",
			votes:   map[string]service.Direction{addr1: service.Up, addr2: service.Up, addr3: service.Down},
			status:  entities.ProductListed,
			balance: 200,
			minted:  true,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			f := publishProductFixture(t)
			require.NoError(t, f.srv.BuyCommToken(ctx, addr1, f.communityID, 100))

			for voter, d := range tc.votes {
				if voter != addr1 {
					require.NoError(t, f.srv.BuyCommToken(ctx, voter, f.communityID, 200))
				}
				require.NoError(t, f.srv.Vote(ctx, voter, "TP", f.communityID, 200, d))
			}

			f.clock.Add(window + time.Second)

			p, err := f.srv.VotingResult(ctx, addr1, "TP", f.communityID, 200)
			require.NoError(t, err)
			assert.Equal(t, tc.status, p.Status)
			require.NotNil(t, p.SettledAt)
			assert.Equal(t, f.clock.Now().Unix(), p.SettledAt.Unix())

			// 100 tokens left after publishing, 100 bought for voting
			assert.EqualValues(t, tc.balance, f.balance(t, addr1)-100)

			id, err := f.issuer.GetID(ctx, p.Code)
			if !tc.minted {
				require.True(t, errors.Is(err, certificate.ErrNotFound), err)
				return
			}
			require.NoError(t, err)

			holder, err := f.issuer.GetOwner(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, addr1, holder)

			listed, err := f.srv.ListListedProducts(ctx)
			require.NoError(t, err)
			require.Len(t, listed, 1)
			assert.Equal(t, p.Code, listed[0].Code)

			pending, err := f.srv.ListPendingProducts(ctx)
			require.NoError(t, err)
			assert.Empty(t, pending)
		})
	}
}

func TestSrv_VotingResult_Errors(t *testing.T) {
	tt := []struct {
		name   string
		caller string
		pname  string
		price  uint64
		after  time.Duration

		err error
	}{
		{name: "unknown_product", caller: addr1, pname: "XX", price: 200, after: window + time.Second, err: service.ErrProductNotFound},
		{name: "not_creator", caller: addr2, pname: "TP", price: 200, after: window + time.Second, err: service.ErrUnauthorizedAccess},
		{name: "window_open", caller: addr1, pname: "TP", price: 200, err: service.ErrVotingTime},
		{name: "window_end", caller: addr1, pname: "TP", price: 200, after: window, err: service.ErrVotingTime},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			f := publishProductFixture(t)
			f.clock.Add(tc.after)

			p, err := f.srv.VotingResult(ctx, tc.caller, tc.pname, f.communityID, tc.price)
			require.True(t, errors.Is(err, tc.err), err)
			require.Nil(t, p)

			pending, err := f.srv.ListPendingProducts(ctx)
			require.NoError(t, err)
			require.Len(t, pending, 1)
			assert.EqualValues(t, 100, f.balance(t, addr1))
		})
	}
}

func TestSrv_VotingResult_Twice(t *testing.T) {
	f := publishProductFixture(t)
	require.NoError(t, f.srv.BuyCommToken(ctx, addr2, f.communityID, 200))
	require.NoError(t, f.srv.UpVote(ctx, addr2, "TP", f.communityID, 200))

	f.clock.Add(window + time.Second)

	_, err := f.srv.VotingResult(ctx, addr1, "TP", f.communityID, 200)
	require.NoError(t, err)

	_, err = f.srv.VotingResult(ctx, addr1, "TP", f.communityID, 200)
	require.Equal(t, service.ErrAlreadySettled, err)
	assert.EqualValues(t, 200, f.balance(t, addr1))

	// settled products take no more votes
	require.NoError(t, f.srv.BuyCommToken(ctx, addr3, f.communityID, 200))
	require.Equal(t, service.ErrVotingTime, f.srv.UpVote(ctx, addr3, "TP", f.communityID, 200))
}

func TestSrv_VotingResult_MintError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := clock.NewMock()
	s := memory.New()
	issuer := certmock.NewMockIssuer(ctrl)
	srv := New(s, c, funds.Ledger{}, issuer, Config{Owner: owner, CreationThreshold: service.DefaultCreationThreshold})

	require.NoError(t, srv.BuyABX(ctx, addr1, 20000, 2000))
	cm, err := srv.CreateCommunity(ctx, addr1, service.CreateCommunityParams{Name: "Test Community"})
	require.NoError(t, err)
	require.NoError(t, srv.BuyCommToken(ctx, addr1, cm.ID, 400))
	_, err = srv.PublishProduct(ctx, addr1, service.PublishProductParams{Name: "TP", CommunityID: cm.ID, Price: 200})
	require.NoError(t, err)
	require.NoError(t, srv.UpVote(ctx, addr1, "TP", cm.ID, 200))

	c.Add(window + time.Second)

	code := srv.GetCode(cm.ID, "TP", 200)
	issuer.EXPECT().Mint(gomock.Any(), gomock.Any(), code, addr1).Return(uint64(0), errTest)

	_, err = srv.VotingResult(ctx, addr1, "TP", cm.ID, 200)
	require.True(t, errors.Is(err, errTest), err)

	p, err := srv.GetCommunityProduct(ctx, cm.ID, code)
	require.NoError(t, err)
	assert.Equal(t, entities.ProductPending, p.Status)
	assert.Nil(t, p.SettledAt)

	balance, err := srv.GetCommTokenBalance(ctx, addr1, cm.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 200, balance)

	issuer.EXPECT().Mint(gomock.Any(), gomock.Any(), code, addr1).Return(uint64(1), nil)

	p, err = srv.VotingResult(ctx, addr1, "TP", cm.ID, 200)
	require.NoError(t, err)
	assert.Equal(t, entities.ProductListed, p.Status)
}

// commitFailure rolls back every transaction whose func succeeded while fail is set.
type commitFailure struct {
	*memory.Storage
	fail bool
}

var errCommit = errors.New("commit failed")

func (s *commitFailure) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	return s.Storage.InTx(ctx, func(tx storage.Storage) error {
		if err := f(tx); err != nil {
			return err
		}

		if s.fail {
			return errCommit
		}

		return nil
	})
}

func TestSrv_VotingResult_CommitError(t *testing.T) {
	c := clock.NewMock()
	s := &commitFailure{Storage: memory.New()}
	issuer := certificate.NewRegistry(s, c)
	srv := New(s, c, funds.Ledger{}, issuer, Config{Owner: owner, CreationThreshold: service.DefaultCreationThreshold})

	require.NoError(t, srv.BuyABX(ctx, addr1, 20000, 2000))
	cm, err := srv.CreateCommunity(ctx, addr1, service.CreateCommunityParams{Name: "Test Community"})
	require.NoError(t, err)
	require.NoError(t, srv.BuyCommToken(ctx, addr1, cm.ID, 400))
	_, err = srv.PublishProduct(ctx, addr1, service.PublishProductParams{Name: "TP", CommunityID: cm.ID, Price: 200})
	require.NoError(t, err)
	require.NoError(t, srv.UpVote(ctx, addr1, "TP", cm.ID, 200))

	c.Add(window + time.Second)
	code := srv.GetCode(cm.ID, "TP", 200)

	s.fail = true

	_, err = srv.VotingResult(ctx, addr1, "TP", cm.ID, 200)
	require.True(t, errors.Is(err, errCommit), err)

	p, err := srv.GetCommunityProduct(ctx, cm.ID, code)
	require.NoError(t, err)
	assert.Equal(t, entities.ProductPending, p.Status)

	_, err = issuer.GetID(ctx, code)
	require.Equal(t, certificate.ErrNotFound, err)

	s.fail = false

	p, err = srv.VotingResult(ctx, addr1, "TP", cm.ID, 200)
	require.NoError(t, err)
	assert.Equal(t, entities.ProductListed, p.Status)

	id, err := issuer.GetID(ctx, code)
	require.NoError(t, err)

	holder, err := issuer.GetOwner(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, addr1, holder)

	balance, err := srv.GetCommTokenBalance(ctx, addr1, cm.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 300, balance)
}

func TestSrv_Certificate_Transfer(t *testing.T) {
	f := publishProductFixture(t)
	require.NoError(t, f.srv.BuyCommToken(ctx, addr2, f.communityID, 200))
	require.NoError(t, f.srv.UpVote(ctx, addr2, "TP", f.communityID, 200))

	f.clock.Add(window + time.Second)

	p, err := f.srv.VotingResult(ctx, addr1, "TP", f.communityID, 200)
	require.NoError(t, err)

	id, err := f.issuer.GetID(ctx, p.Code)
	require.NoError(t, err)

	require.Equal(t, certificate.ErrNotApproved, f.issuer.ChangeOwner(ctx, addr3, id, addr2))
	require.NoError(t, f.issuer.Approve(ctx, addr1, id, addr3))
	require.NoError(t, f.issuer.ChangeOwner(ctx, addr3, id, addr2))

	holder, err := f.issuer.GetOwner(ctx, id)
	require.NoError(t, err)
	require.Equal(t, addr2, holder)
}

func TestSrv_GetStats(t *testing.T) {
	f := publishProductFixture(t)

	st, err := f.srv.GetStats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 1, st.Communities)
	assert.EqualValues(t, 4, st.Accounts)
	assert.EqualValues(t, 2500, st.ABX)
	// 300 ABX went to community tokens, issued amount stays
	assert.EqualValues(t, 2800, st.ABXIssued)
	assert.EqualValues(t, 28000, st.Native)
	assert.EqualValues(t, 1, st.Products[entities.ProductPending])
}
