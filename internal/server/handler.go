package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/service"
)

func getCaller(r *http.Request) (string, error) {
	caller := r.Header.Get(AccountHeader)
	if caller == "" {
		return "", fmt.Errorf("%w: missing %s header", errInvalidRequest, AccountHeader)
	}

	return caller, nil
}

func parseUint(s, name string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse %s", errInvalidRequest, name)
	}

	return v, nil
}

func getCommunityID(r *http.Request) (uint64, error) {
	return parseUint(chi.URLParam(r, "id"), "community id")
}

func (s server) getAccount(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /accounts/{address} Accounts GetAccount
	//
	// Returns ABX and native balances of the account. Unknown accounts have zero balances.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Account
	//     schema:
	//       "$ref": "#/definitions/Account"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	a, err := s.s.GetAccount(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get account: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIAccount(a))
}

func (s server) buyABX(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /abx Accounts BuyABX
	//
	// Buys ABX for native funds at rate 10 native units per ABX. Native funds are forwarded to the platform owner.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: X-Account
	//   in: header
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/BuyABXRequest"
	// responses:
	//   '200':
	//     description: Account
	//     schema:
	//       "$ref": "#/definitions/Account"
	//   '400':
	//     description: invalid amount
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: owner can not buy ABX
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	caller, err := getCaller(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req BuyABXRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.BuyABX(r.Context(), caller, req.Native, req.ABX); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	a, err := s.s.GetAccount(r.Context(), caller)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get account: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIAccount(a))
}

func (s server) listCommunities(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /communities Communities ListCommunities
	//
	// Returns communities in creation order.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Communities
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Community"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	c, err := s.s.ListCommunities(r.Context())
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list communities: %s", err.Error())
		return
	}

	out := make([]Community, len(c))
	for i, v := range c {
		out[i] = toAPICommunity(v)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) createCommunity(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /communities Communities CreateCommunity
	//
	// Creates a community. The caller has to hold at least the creation threshold of ABX.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: X-Account
	//   in: header
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreateCommunityRequest"
	// responses:
	//   '201':
	//     description: Community
	//     schema:
	//       "$ref": "#/definitions/Community"
	//   '422':
	//     description: insufficient balance
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	caller, err := getCaller(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req CreateCommunityRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := s.s.CreateCommunity(r.Context(), caller, service.CreateCommunityParams{
		Name:        req.Name,
		Symbol:      req.Symbol,
		TokenSymbol: req.TokenSymbol,
		TokenName:   req.TokenName,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusCreated, toAPICommunity(c))
}

func (s server) getCommunity(w http.ResponseWriter, r *http.Request) {
	id, err := getCommunityID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := s.s.GetCommunity(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPICommunity(c))
}

func (s server) joinCommunity(w http.ResponseWriter, r *http.Request) {
	caller, err := getCaller(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := getCommunityID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.JoinCommunity(r.Context(), caller, id); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) buyCommToken(w http.ResponseWriter, r *http.Request) {
	caller, err := getCaller(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := getCommunityID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req BuyCommTokenRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.BuyCommToken(r.Context(), caller, id, req.Amount); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	balance, err := s.s.GetCommTokenBalance(r.Context(), caller, id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, Member{Member: true, Balance: balance})
}

func (s server) getMember(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /communities/{id}/members/{address} Communities GetMember
	//
	// Returns membership flag and community token balance of the address.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Member
	//     schema:
	//       "$ref": "#/definitions/Member"
	//   '404':
	//     description: community not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, err := getCommunityID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	address := chi.URLParam(r, "address")

	balance, err := s.s.GetCommTokenBalance(r.Context(), address, id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	ok, err := s.s.IsMember(r.Context(), address, id)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to check membership: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, Member{Member: ok, Balance: balance})
}

func (s server) listEvents(w http.ResponseWriter, r *http.Request) {
	id, err := getCommunityID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := s.s.ListEvents(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIEvents(e))
}

func (s server) getCode(w http.ResponseWriter, r *http.Request) {
	id, err := getCommunityID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	price, err := parseUint(r.URL.Query().Get("price"), "price")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeOK(w, http.StatusOK, CodeResponse{Code: s.s.GetCode(id, name, price)})
}

func (s server) publishProduct(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /communities/{id}/products Products PublishProduct
	//
	// Publishes a product for voting. The price is taken from the creator's community token balance.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: X-Account
	//   in: header
	//   required: true
	//   type: string
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/PublishProductRequest"
	// responses:
	//   '201':
	//     description: Product
	//     schema:
	//       "$ref": "#/definitions/Product"
	//   '403':
	//     description: caller is not the community creator
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: community not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: product already exists
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '422':
	//     description: insufficient balance
	//     schema:
	//       "$ref": "#/definitions/Error"

	caller, err := getCaller(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := getCommunityID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req PublishProductRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.PublishProduct(r.Context(), caller, service.PublishProductParams{
		Name:        req.Name,
		Title:       req.Title,
		CommunityID: id,
		ForSale:     req.ForSale,
		Price:       req.Price,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusCreated, toAPIProduct(p))
}

func (s server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := getCommunityID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.GetCommunityProduct(r.Context(), id, chi.URLParam(r, "code"))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIProduct(p))
}

func (s server) vote(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /communities/{id}/votes Products Vote
	//
	// Votes for or against a pending product. The vote weight is the product price.
	//
	// ---
	// consumes:
	// - application/json
	// parameters:
	// - name: X-Account
	//   in: header
	//   required: true
	//   type: string
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/VoteRequest"
	// responses:
	//   '204':
	//     description: vote accepted
	//   '403':
	//     description: caller is not a member
	//   '404':
	//     description: product not found
	//   '409':
	//     description: already voted
	//   '422':
	//     description: insufficient balance or voting window is closed

	caller, err := getCaller(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := getCommunityID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req VoteRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var d service.Direction
	switch req.Direction {
	case "up":
		d = service.Up
	case "down":
		d = service.Down
	default:
		writeError(w, http.StatusBadRequest, "direction should be up or down")
		return
	}

	if err := s.s.Vote(r.Context(), caller, req.Name, id, req.Price, d); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) settle(w http.ResponseWriter, r *http.Request) {
	caller, err := getCaller(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := getCommunityID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req SettleRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.VotingResult(r.Context(), caller, req.Name, id, req.Price)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIProduct(p))
}

func (s server) listProducts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /products Products ListProducts
	//
	// Returns products with the status in publishing order.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: status
	//   in: query
	//   required: false
	//   default: pending
	//   type: string
	//   enum: [pending, listed, rejected]
	// responses:
	//   '200':
	//     description: Products
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Product"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var (
		p   []*entities.Product
		err error
	)

	switch r.URL.Query().Get("status") {
	case "", entities.ProductPending.String():
		p, err = s.s.ListPendingProducts(r.Context())
	case entities.ProductListed.String():
		p, err = s.s.ListListedProducts(r.Context())
	case entities.ProductRejected.String():
		p, err = s.s.ListRejectedProducts(r.Context())
	default:
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list products: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIProducts(p))
}

func (s server) getTally(w http.ResponseWriter, r *http.Request) {
	tally, err := s.s.GetTally(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, TallyResponse{Tally: tally})
}

func (s server) getCertificate(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /certificates/{code} Certificates GetCertificate
	//
	// Returns the certificate minted for the listed product.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: code
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Certificate
	//     schema:
	//       "$ref": "#/definitions/Certificate"
	//   '404':
	//     description: certificate not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, err := s.c.GetID(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	c, err := s.c.Get(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPICertificate(c))
}

func (s server) approveCertificate(w http.ResponseWriter, r *http.Request) {
	caller, err := getCaller(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := parseUint(chi.URLParam(r, "id"), "certificate id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req ApproveRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Operator == "" {
		writeError(w, http.StatusBadRequest, "operator is required")
		return
	}

	if err := s.c.Approve(r.Context(), caller, id, req.Operator); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) transferCertificate(w http.ResponseWriter, r *http.Request) {
	caller, err := getCaller(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := parseUint(chi.URLParam(r, "id"), "certificate id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req TransferRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.To == "" {
		writeError(w, http.StatusBadRequest, "receiver is required")
		return
	}

	if err := s.c.ChangeOwner(r.Context(), caller, id, req.To); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) getStats(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /stats Stats GetStats
	//
	// Returns aggregated ledger statistics. The response is cached for 10 seconds.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Stats
	//     schema:
	//       "$ref": "#/definitions/Stats"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	st, err := s.s.GetStats(r.Context())
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get stats: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIStats(st))
}
