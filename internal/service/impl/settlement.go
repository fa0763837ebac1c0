package impl

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/metrics"
	"github.com/abx-network/agora/internal/service"
	"github.com/abx-network/agora/internal/storage"
)

// fee returns floor(price * percent / 100) without overflowing.
func fee(price, percent uint64) uint64 {
	return price/100*percent + price%100*percent/100
}

// VotingResult closes voting on the product, pays the creator fee and mints
// a certificate for listed products.
func (s srv) VotingResult(ctx context.Context, caller, name string, communityID, price uint64) (*entities.Product, error) {
	var out *entities.Product

	fields := logrus.Fields{"caller": caller, "community": communityID, "name": name}

	if err := s.exec(ctx, "voting_result", fields, func(tx storage.Storage) error {
		p, err := getProduct(ctx, tx, communityID, Code(communityID, name, price))
		if err != nil {
			return err
		}

		c, err := getCommunity(ctx, tx, communityID)
		if err != nil {
			return err
		}

		if c.Creator != caller {
			return service.ErrUnauthorizedAccess
		}

		now := s.now()
		if now.Unix() <= p.ListedAt.Unix()+service.VotingWindow {
			return service.ErrVotingTime
		}

		if p.Status != entities.ProductPending {
			return service.ErrAlreadySettled
		}

		p.Status = entities.ProductRejected
		percent := service.RejectedFeePercent
		if p.Tally > 0 {
			p.Status = entities.ProductListed
			percent = service.ListedFeePercent
		}
		p.SettledAt = &now

		if err := tx.SetStatus(ctx, p.Code, p.Status, now); err != nil {
			return fmt.Errorf("failed to set status: %w", err)
		}

		balance, err := tx.GetCommTokenBalance(ctx, communityID, c.Creator)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}

		payout := fee(p.Price, percent)
		if err := tx.SetCommTokenBalance(ctx, communityID, c.Creator, balance+payout); err != nil {
			return fmt.Errorf("failed to set balance: %w", err)
		}

		if err := addEvent(ctx, tx, entities.Event{
			Kind:        entities.ProductSettledEvent,
			CommunityID: communityID,
			Account:     c.Creator,
			Code:        p.Code,
			Amount:      int64(payout),
			CreatedAt:   now,
		}); err != nil {
			return err
		}

		// the certificate is stored by the same transaction
		if p.Status == entities.ProductListed {
			if _, err := s.issuer.Mint(ctx, tx, p.Code, c.Creator); err != nil {
				return fmt.Errorf("failed to mint certificate: %w", err)
			}
		}

		out = p

		return nil
	}); err != nil {
		return nil, err
	}

	metrics.RecordSettlement(out.Status.String())

	return out, nil
}
