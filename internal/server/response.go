package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/abx-network/agora/internal/certificate"
	mm "github.com/abx-network/agora/internal/middleware"
	"github.com/abx-network/agora/internal/service"
)

var errInvalidRequest = errors.New("invalid request")

var kindStatus = map[string]int{
	"InvalidAmount":        http.StatusBadRequest,
	"UnauthorizedAccess":   http.StatusForbidden,
	"InsufficientBalance":  http.StatusUnprocessableEntity,
	"CommunityNotFound":    http.StatusNotFound,
	"ProductNotFound":      http.StatusNotFound,
	"ProductAlreadyExists": http.StatusConflict,
	"AlreadyMember":        http.StatusConflict,
	"AlreadyVoted":         http.StatusConflict,
	"AlreadySettled":       http.StatusConflict,
	"VotingTimeError":      http.StatusUnprocessableEntity,
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// nolint:errcheck
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	mm.GetLogger(ctx).Errorf(format, args...)

	writeError(w, http.StatusInternalServerError, "internal error")
}

// writeServiceError writes ledger and certificate errors with their status, others as internal errors.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	if kind := service.Kind(err); kind != "" {
		writeOK(w, kindStatus[kind], Error{Error: err.Error(), Kind: kind})
		return
	}

	switch {
	case errors.Is(err, certificate.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, certificate.ErrNotOwner), errors.Is(err, certificate.ErrNotApproved):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, certificate.ErrAlreadyMinted):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, errInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeInternalErrorf(ctx, w, "request failed: %s", err.Error())
	}
}

func readJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid body: %s", errInvalidRequest, err.Error())
	}

	return nil
}
