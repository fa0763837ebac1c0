package impl

import (
	"context"
	"errors"
	"fmt"
	"math/bits"

	"github.com/sirupsen/logrus"

	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/funds"
	"github.com/abx-network/agora/internal/metrics"
	"github.com/abx-network/agora/internal/service"
	"github.com/abx-network/agora/internal/storage"
)

func (s srv) BuyABX(ctx context.Context, buyer string, native, abx uint64) error {
	err := s.exec(ctx, "buy_abx", logrus.Fields{"caller": buyer, "amount": abx}, func(tx storage.Storage) error {
		hi, cost := bits.Mul64(abx, service.ExchangeRate)
		if abx == 0 || hi != 0 || native != cost {
			return service.ErrInvalidAmount
		}

		if buyer == s.cfg.Owner {
			return service.ErrUnauthorizedAccess
		}

		a, err := tx.GetAccount(ctx, buyer)
		if err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}

		if a.ABX+abx < a.ABX {
			return service.ErrInvalidAmount
		}
		a.ABX += abx

		if err := tx.SetAccount(ctx, a); err != nil {
			return fmt.Errorf("failed to set account: %w", err)
		}

		if err := tx.AddIssuedABX(ctx, abx); err != nil {
			return fmt.Errorf("failed to add issued abx: %w", err)
		}

		if err := s.funds.Forward(ctx, tx, buyer, s.cfg.Owner, native); err != nil {
			if errors.Is(err, funds.ErrOverflow) {
				return service.ErrInvalidAmount
			}

			return fmt.Errorf("failed to forward funds: %w", err)
		}

		return nil
	})

	if err == nil {
		metrics.RecordABXIssued(abx)
	}

	return err
}

func (s srv) GetAccount(ctx context.Context, address string) (*entities.Account, error) {
	a, err := s.s.GetAccount(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get account from storage: %w", err)
	}

	return a, nil
}
