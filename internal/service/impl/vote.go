package impl

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/service"
	"github.com/abx-network/agora/internal/storage"
)

func (s srv) UpVote(ctx context.Context, voter, name string, communityID, price uint64) error {
	return s.Vote(ctx, voter, name, communityID, price, service.Up)
}

func (s srv) DownVote(ctx context.Context, voter, name string, communityID, price uint64) error {
	return s.Vote(ctx, voter, name, communityID, price, service.Down)
}

// Vote adds or subtracts the voter's community token balance from the product
// tally. The price argument only identifies the product.
func (s srv) Vote(ctx context.Context, voter, name string, communityID, price uint64, d service.Direction) error {
	if d != service.Up && d != service.Down {
		return fmt.Errorf("%w: unknown direction %d", service.ErrInvalidAmount, d)
	}

	fields := logrus.Fields{"caller": voter, "community": communityID, "name": name, "price": price, "direction": int64(d)}

	return s.exec(ctx, "vote", fields, func(tx storage.Storage) error {
		ok, err := tx.IsMember(ctx, communityID, voter)
		if err != nil {
			return fmt.Errorf("failed to check membership: %w", err)
		}
		if !ok {
			return service.ErrUnauthorizedAccess
		}

		p, err := getProduct(ctx, tx, communityID, Code(communityID, name, price))
		if err != nil {
			return err
		}

		now := s.now()
		if p.Status != entities.ProductPending || now.Unix() > p.ListedAt.Unix()+service.VotingWindow {
			return service.ErrVotingTime
		}

		balance, err := tx.GetCommTokenBalance(ctx, communityID, voter)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}

		if balance == 0 {
			return service.ErrInsufficientBalance
		}

		voted, err := tx.HasVoted(ctx, p.Code, voter)
		if err != nil {
			return fmt.Errorf("failed to check vote: %w", err)
		}
		if voted {
			return service.ErrAlreadyVoted
		}

		if balance > math.MaxInt64 {
			return service.ErrInvalidAmount
		}

		weight := int64(d) * int64(balance)
		if (weight > 0 && p.Tally > math.MaxInt64-weight) || (weight < 0 && p.Tally < math.MinInt64-weight) {
			return service.ErrInvalidAmount
		}

		if err := tx.AddVote(ctx, p.Code, voter, weight, now); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				return service.ErrAlreadyVoted
			}

			return fmt.Errorf("failed to add vote: %w", err)
		}

		if err := tx.SetTally(ctx, p.Code, p.Tally+weight); err != nil {
			return fmt.Errorf("failed to set tally: %w", err)
		}

		return addEvent(ctx, tx, entities.Event{
			Kind:        entities.VotedEvent,
			CommunityID: communityID,
			Account:     voter,
			Code:        p.Code,
			Amount:      weight,
			CreatedAt:   now,
		})
	})
}
