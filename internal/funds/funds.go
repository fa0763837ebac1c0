// Package funds contains the native funds transfer used on ABX purchase.
package funds

import (
	"context"
	"errors"
	"fmt"

	"github.com/abx-network/agora/internal/storage"
)

//go:generate mockgen -destination=./mock/funds.go -package=mock -source=funds.go

// ErrOverflow is returned when the receiver balance can not hold the amount.
var ErrOverflow = errors.New("native balance overflow")

// Sink moves native funds paid by a buyer to the platform owner.
// It is called inside the purchase transaction and gets the tx-bound storage.
type Sink interface {
	Forward(ctx context.Context, s storage.Storage, from, to string, amount uint64) error
}

// Ledger is a Sink which credits the receiver's native balance kept in storage.
type Ledger struct{}

// Forward ...
func (Ledger) Forward(ctx context.Context, s storage.Storage, _, to string, amount uint64) error {
	a, err := s.GetAccount(ctx, to)
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}

	if a.Native+amount < a.Native {
		return ErrOverflow
	}
	a.Native += amount

	if err := s.SetAccount(ctx, a); err != nil {
		return fmt.Errorf("failed to set account: %w", err)
	}

	return nil
}
