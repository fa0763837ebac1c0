package impl

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/service"
	"github.com/abx-network/agora/internal/storage"
)

func (s srv) CreateCommunity(ctx context.Context, creator string, p service.CreateCommunityParams) (*entities.Community, error) {
	var c *entities.Community

	if err := s.exec(ctx, "create_community", logrus.Fields{"caller": creator, "name": p.Name}, func(tx storage.Storage) error {
		a, err := tx.GetAccount(ctx, creator)
		if err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}

		if a.ABX < s.cfg.CreationThreshold {
			return service.ErrInsufficientBalance
		}

		now := s.now()

		c, err = tx.CreateCommunity(ctx, &storage.CreateCommunityParams{
			Name:        p.Name,
			Symbol:      p.Symbol,
			TokenName:   p.TokenName,
			TokenSymbol: p.TokenSymbol,
			Creator:     creator,
			CreatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("failed to create community: %w", err)
		}

		if err := tx.AddMember(ctx, c.ID, creator, now); err != nil {
			return fmt.Errorf("failed to add creator to members: %w", err)
		}

		return addEvent(ctx, tx, entities.Event{
			Kind:        entities.CommunityCreatedEvent,
			CommunityID: c.ID,
			Account:     creator,
			CreatedAt:   now,
		})
	}); err != nil {
		return nil, err
	}

	return c, nil
}

func (s srv) JoinCommunity(ctx context.Context, caller string, communityID uint64) error {
	return s.exec(ctx, "join_community", logrus.Fields{"caller": caller, "community": communityID}, func(tx storage.Storage) error {
		if _, err := getCommunity(ctx, tx, communityID); err != nil {
			return err
		}

		ok, err := tx.IsMember(ctx, communityID, caller)
		if err != nil {
			return fmt.Errorf("failed to check membership: %w", err)
		}
		if ok {
			return service.ErrAlreadyMember
		}

		now := s.now()

		if err := tx.AddMember(ctx, communityID, caller, now); err != nil {
			return fmt.Errorf("failed to add member: %w", err)
		}

		return addEvent(ctx, tx, entities.Event{
			Kind:        entities.JoinedCommunityEvent,
			CommunityID: communityID,
			Account:     caller,
			CreatedAt:   now,
		})
	})
}

// BuyCommToken exchanges ABX for community tokens one to one.
func (s srv) BuyCommToken(ctx context.Context, caller string, communityID, amount uint64) error {
	fields := logrus.Fields{"caller": caller, "community": communityID, "amount": amount}

	return s.exec(ctx, "buy_comm_token", fields, func(tx storage.Storage) error {
		if _, err := getCommunity(ctx, tx, communityID); err != nil {
			return err
		}

		ok, err := tx.IsMember(ctx, communityID, caller)
		if err != nil {
			return fmt.Errorf("failed to check membership: %w", err)
		}
		if !ok {
			return service.ErrUnauthorizedAccess
		}

		if amount == 0 {
			return service.ErrInvalidAmount
		}

		a, err := tx.GetAccount(ctx, caller)
		if err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}

		if a.ABX < amount {
			return service.ErrInsufficientBalance
		}

		balance, err := tx.GetCommTokenBalance(ctx, communityID, caller)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}

		if balance+amount < balance {
			return service.ErrInvalidAmount
		}

		a.ABX -= amount

		if err := tx.SetAccount(ctx, a); err != nil {
			return fmt.Errorf("failed to set account: %w", err)
		}

		if err := tx.SetCommTokenBalance(ctx, communityID, caller, balance+amount); err != nil {
			return fmt.Errorf("failed to set balance: %w", err)
		}

		return nil
	})
}

func (s srv) GetCommTokenBalance(ctx context.Context, caller string, communityID uint64) (uint64, error) {
	if _, err := getCommunity(ctx, s.s, communityID); err != nil {
		return 0, err
	}

	b, err := s.s.GetCommTokenBalance(ctx, communityID, caller)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance from storage: %w", err)
	}

	return b, nil
}

func (s srv) IsMember(ctx context.Context, address string, communityID uint64) (bool, error) {
	ok, err := s.s.IsMember(ctx, communityID, address)
	if err != nil {
		return false, fmt.Errorf("failed to check membership on storage side: %w", err)
	}

	return ok, nil
}

func (s srv) GetCommunity(ctx context.Context, id uint64) (*entities.Community, error) {
	return getCommunity(ctx, s.s, id)
}

func (s srv) ListCommunities(ctx context.Context) ([]*entities.Community, error) {
	c, err := s.s.ListCommunities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list communities from storage: %w", err)
	}

	return c, nil
}

func (s srv) ListEvents(ctx context.Context, communityID uint64) ([]*entities.Event, error) {
	if _, err := getCommunity(ctx, s.s, communityID); err != nil {
		return nil, err
	}

	e, err := s.s.ListEvents(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events from storage: %w", err)
	}

	return e, nil
}
