package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abx-network/agora/internal/certificate"
	certmock "github.com/abx-network/agora/internal/certificate/mock"
	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/service"
	"github.com/abx-network/agora/internal/service/mock"
	"github.com/abx-network/agora/internal/storage"
)

var errTest = errors.New("test")

func newRequest(t *testing.T, method, url, caller, body string) *http.Request {
	r, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)

	if caller != "" {
		r.Header.Set(AccountHeader, caller)
	}

	return r
}

func Test_buyABX(t *testing.T) {
	tt := []struct {
		name   string
		caller string
		body   string
		call   bool
		native uint64
		err    error
		code   int
		rsp    string
	}{
		{
			name:   "success",
			caller: "addr1",
			body:   `{"native":2000,"abx":200}`,
			call:   true,
			native: 2000,
			code:   http.StatusOK,
			rsp:    `{"address":"addr1","abx":200,"native":0}`,
		},
		{
			name:   "invalid_amount",
			caller: "addr1",
			body:   `{"native":100,"abx":200}`,
			call:   true,
			native: 100,
			err:    service.ErrInvalidAmount,
			code:   http.StatusBadRequest,
			rsp:    `{"error":"invalid amount","kind":"InvalidAmount"}`,
		},
		{
			name:   "owner",
			caller: "owner",
			body:   `{"native":2000,"abx":200}`,
			call:   true,
			native: 2000,
			err:    service.ErrUnauthorizedAccess,
			code:   http.StatusForbidden,
			rsp:    `{"error":"unauthorized access","kind":"UnauthorizedAccess"}`,
		},
		{
			name:   "internal",
			caller: "addr1",
			body:   `{"native":2000,"abx":200}`,
			call:   true,
			native: 2000,
			err:    errTest,
			code:   http.StatusInternalServerError,
			rsp:    `{"error":"internal error"}`,
		},
		{
			name: "no_caller",
			body: `{"native":2000,"abx":200}`,
			code: http.StatusBadRequest,
			rsp:  `{"error":"invalid request: missing X-Account header"}`,
		},
		{
			name:   "bad_body",
			caller: "addr1",
			body:   `{"native":"a lot"}`,
			code:   http.StatusBadRequest,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)

			if tc.call {
				s.EXPECT().BuyABX(gomock.Any(), tc.caller, tc.native, uint64(200)).Return(tc.err)
			}
			if tc.call && tc.err == nil {
				s.EXPECT().GetAccount(gomock.Any(), tc.caller).Return(&entities.Account{Address: tc.caller, ABX: 200}, nil)
			}

			router := chi.NewRouter()
			srv := server{s: s}
			router.Post("/v1/abx", srv.buyABX)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, newRequest(t, http.MethodPost, "/v1/abx", tc.caller, tc.body))

			assert.Equal(t, tc.code, w.Code)
			if tc.rsp != "" {
				assert.JSONEq(t, tc.rsp, w.Body.String())
			}
		})
	}
}

func Test_createCommunity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().CreateCommunity(gomock.Any(), "addr1", service.CreateCommunityParams{
		Name:        "Test Community",
		Symbol:      "TST",
		TokenSymbol: "T",
		TokenName:   "TKT",
	}).Return(&entities.Community{
		ID:          1,
		Name:        "Test Community",
		Symbol:      "TST",
		TokenName:   "TKT",
		TokenSymbol: "T",
		Creator:     "addr1",
		CreatedAt:   time.Unix(100, 0),
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/communities", srv.createCommunity)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(t, http.MethodPost, "/v1/communities", "addr1",
		`{"name":"Test Community","symbol":"TST","tokenName":"TKT","tokenSymbol":"T"}`,
	))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{
		"id": 1,
		"name": "Test Community",
		"symbol": "TST",
		"tokenName": "TKT",
		"tokenSymbol": "T",
		"creator": "addr1",
		"createdAt": 100
	}`, w.Body.String())
}

func Test_getMember(t *testing.T) {
	tt := []struct {
		name    string
		url     string
		member  bool
		balance uint64
		err     error
		code    int
		rsp     string
	}{
		{
			name:    "member",
			url:     "/v1/communities/1/members/addr2",
			member:  true,
			balance: 200,
			code:    http.StatusOK,
			rsp:     `{"member":true,"balance":200}`,
		},
		{
			name: "no_community",
			url:  "/v1/communities/1/members/addr2",
			err:  service.ErrCommunityNotFound,
			code: http.StatusNotFound,
			rsp:  `{"error":"community not found","kind":"CommunityNotFound"}`,
		},
		{
			name: "bad_id",
			url:  "/v1/communities/one/members/addr2",
			code: http.StatusBadRequest,
			rsp:  `{"error":"invalid request: failed to parse community id"}`,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tc.code != http.StatusBadRequest {
				s.EXPECT().GetCommTokenBalance(gomock.Any(), "addr2", uint64(1)).Return(tc.balance, tc.err)
			}
			if tc.code == http.StatusOK {
				s.EXPECT().IsMember(gomock.Any(), "addr2", uint64(1)).Return(tc.member, nil)
			}

			router := chi.NewRouter()
			srv := server{s: s}
			router.Get("/v1/communities/{id}/members/{address}", srv.getMember)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, newRequest(t, http.MethodGet, tc.url, "", ""))

			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, tc.rsp, w.Body.String())
		})
	}
}

func Test_getCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().GetCode(uint64(1), "TP", uint64(200)).Return("code")

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/communities/{id}/code", srv.getCode)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(t, http.MethodGet, "/v1/communities/1/code?name=TP&price=200", "", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":"code"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(t, http.MethodGet, "/v1/communities/1/code?name=TP&price=-1", "", ""))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_vote(t *testing.T) {
	tt := []struct {
		name string
		body string
		d    service.Direction
		err  error
		code int
	}{
		{name: "up", body: `{"name":"TP","price":200,"direction":"up"}`, d: service.Up, code: http.StatusNoContent},
		{name: "down", body: `{"name":"TP","price":200,"direction":"down"}`, d: service.Down, code: http.StatusNoContent},
		{name: "already_voted", body: `{"name":"TP","price":200,"direction":"up"}`, d: service.Up, err: service.ErrAlreadyVoted, code: http.StatusConflict},
		{name: "closed", body: `{"name":"TP","price":200,"direction":"down"}`, d: service.Down, err: service.ErrVotingTime, code: http.StatusUnprocessableEntity},
		{name: "not_member", body: `{"name":"TP","price":200,"direction":"down"}`, d: service.Down, err: service.ErrUnauthorizedAccess, code: http.StatusForbidden},
		{name: "bad_direction", body: `{"name":"TP","price":200,"direction":"sideways"}`, code: http.StatusBadRequest},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tc.d != 0 {
				s.EXPECT().Vote(gomock.Any(), "addr2", "TP", uint64(1), uint64(200), tc.d).Return(tc.err)
			}

			router := chi.NewRouter()
			srv := server{s: s}
			router.Post("/v1/communities/{id}/votes", srv.vote)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, newRequest(t, http.MethodPost, "/v1/communities/1/votes", "addr2", tc.body))

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_settle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settled := time.Unix(172901, 0)

	s := mock.NewMockService(ctrl)
	s.EXPECT().VotingResult(gomock.Any(), "addr1", "TP", uint64(1), uint64(200)).Return(&entities.Product{
		Code:        "code",
		Name:        "TP",
		Title:       "Test Product",
		CommunityID: 1,
		Price:       200,
		ForSale:     true,
		ListedAt:    time.Unix(100, 0),
		Tally:       200,
		Status:      entities.ProductListed,
		SettledAt:   &settled,
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/communities/{id}/settlements", srv.settle)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(t, http.MethodPost, "/v1/communities/1/settlements", "addr1", `{"name":"TP","price":200}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"code": "code",
		"name": "TP",
		"title": "Test Product",
		"communityId": 1,
		"price": 200,
		"forSale": true,
		"listedForSale": true,
		"status": "listed",
		"tally": 200,
		"listedAt": 100,
		"settledAt": 172901
	}`, w.Body.String())
}

func Test_listProducts(t *testing.T) {
	tt := []struct {
		status string
		expect func(s *mock.MockService)
		code   int
	}{
		{status: "", expect: func(s *mock.MockService) { s.EXPECT().ListPendingProducts(gomock.Any()).Return(nil, nil) }, code: http.StatusOK},
		{status: "pending", expect: func(s *mock.MockService) { s.EXPECT().ListPendingProducts(gomock.Any()).Return(nil, nil) }, code: http.StatusOK},
		{status: "listed", expect: func(s *mock.MockService) { s.EXPECT().ListListedProducts(gomock.Any()).Return(nil, nil) }, code: http.StatusOK},
		{status: "rejected", expect: func(s *mock.MockService) { s.EXPECT().ListRejectedProducts(gomock.Any()).Return(nil, nil) }, code: http.StatusOK},
		{status: "listed", expect: func(s *mock.MockService) { s.EXPECT().ListListedProducts(gomock.Any()).Return(nil, errTest) }, code: http.StatusInternalServerError},
		{status: "sold", expect: func(s *mock.MockService) {}, code: http.StatusBadRequest},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(fmt.Sprintf("%d_%s", i, tc.status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			tc.expect(s)

			router := chi.NewRouter()
			srv := server{s: s}
			router.Get("/v1/products", srv.listProducts)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, newRequest(t, http.MethodGet, "/v1/products?status="+tc.status, "", ""))

			assert.Equal(t, tc.code, w.Code)
			if tc.code == http.StatusOK {
				assert.JSONEq(t, `[]`, w.Body.String())
			}
		})
	}
}

func Test_getCertificate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := certmock.NewMockIssuer(ctrl)
	c.EXPECT().GetID(gomock.Any(), "code").Return(uint64(0), nil)
	c.EXPECT().Get(gomock.Any(), uint64(0)).Return(&entities.Certificate{
		ID:       0,
		Code:     "code",
		Owner:    "addr1",
		MintedAt: time.Unix(100, 0),
	}, nil)
	c.EXPECT().GetID(gomock.Any(), "missing").Return(uint64(0), certificate.ErrNotFound)

	router := chi.NewRouter()
	srv := server{c: c}
	router.Get("/v1/certificates/{code}", srv.getCertificate)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(t, http.MethodGet, "/v1/certificates/code", "", ""))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":0,"code":"code","owner":"addr1","mintedAt":100}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(t, http.MethodGet, "/v1/certificates/missing", "", ""))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_transferCertificate(t *testing.T) {
	tt := []struct {
		name string
		err  error
		code int
	}{
		{name: "success", code: http.StatusNoContent},
		{name: "not_approved", err: certificate.ErrNotApproved, code: http.StatusForbidden},
		{name: "not_found", err: certificate.ErrNotFound, code: http.StatusNotFound},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			c := certmock.NewMockIssuer(ctrl)
			c.EXPECT().ChangeOwner(gomock.Any(), "addr3", uint64(7), "addr2").Return(tc.err)

			router := chi.NewRouter()
			srv := server{c: c}
			router.Post("/v1/certificates/{id}/transfer", srv.transferCertificate)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, newRequest(t, http.MethodPost, "/v1/certificates/7/transfer", "addr3", `{"to":"addr2"}`))

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_getStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().GetStats(gomock.Any()).Return(&storage.Stats{
		Communities: 1,
		Accounts:    3,
		ABX:         2500,
		ABXIssued:   2800,
		Native:      28000,
		Products:    map[entities.ProductStatus]uint64{entities.ProductListed: 2},
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/stats", srv.getStats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newRequest(t, http.MethodGet, "/v1/stats", "", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"communities": 1,
		"accounts": 3,
		"abx": 2500,
		"abxIssued": 2800,
		"native": 28000,
		"products": {"pending": 0, "listed": 2, "rejected": 0}
	}`, w.Body.String())
}
