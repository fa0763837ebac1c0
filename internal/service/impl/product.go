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

func (s srv) PublishProduct(ctx context.Context, caller string, p service.PublishProductParams) (*entities.Product, error) {
	var out *entities.Product

	fields := logrus.Fields{"caller": caller, "community": p.CommunityID, "name": p.Name, "price": p.Price}

	if err := s.exec(ctx, "publish_product", fields, func(tx storage.Storage) error {
		c, err := getCommunity(ctx, tx, p.CommunityID)
		if err != nil {
			return err
		}

		if c.Creator != caller {
			return service.ErrUnauthorizedAccess
		}

		// price is used as a signed vote weight
		if p.Price == 0 || p.Price > math.MaxInt64 {
			return service.ErrInvalidAmount
		}

		balance, err := tx.GetCommTokenBalance(ctx, p.CommunityID, caller)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}

		if balance < p.Price {
			return service.ErrInsufficientBalance
		}

		now := s.now()
		out = &entities.Product{
			Code:        Code(p.CommunityID, p.Name, p.Price),
			Name:        p.Name,
			Title:       p.Title,
			CommunityID: p.CommunityID,
			Price:       p.Price,
			ForSale:     p.ForSale,
			ListedAt:    now,
			Status:      entities.ProductPending,
		}

		if err := tx.CreateProduct(ctx, out); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				return service.ErrProductAlreadyExists
			}

			return fmt.Errorf("failed to create product: %w", err)
		}

		if err := tx.SetCommTokenBalance(ctx, p.CommunityID, caller, balance-p.Price); err != nil {
			return fmt.Errorf("failed to set balance: %w", err)
		}

		return addEvent(ctx, tx, entities.Event{
			Kind:        entities.ProductPublishedEvent,
			CommunityID: p.CommunityID,
			Account:     caller,
			Code:        out.Code,
			Amount:      int64(p.Price),
			CreatedAt:   now,
		})
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) GetCommunityProduct(ctx context.Context, communityID uint64, code string) (*entities.Product, error) {
	return getProduct(ctx, s.s, communityID, code)
}

func (s srv) listProducts(ctx context.Context, status entities.ProductStatus) ([]*entities.Product, error) {
	p, err := s.s.ListProducts(ctx, &storage.ListProductsParams{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s products from storage: %w", status, err)
	}

	return p, nil
}

func (s srv) ListPendingProducts(ctx context.Context) ([]*entities.Product, error) {
	return s.listProducts(ctx, entities.ProductPending)
}

func (s srv) ListListedProducts(ctx context.Context) ([]*entities.Product, error) {
	return s.listProducts(ctx, entities.ProductListed)
}

func (s srv) ListRejectedProducts(ctx context.Context) ([]*entities.Product, error) {
	return s.listProducts(ctx, entities.ProductRejected)
}

func (s srv) GetTally(ctx context.Context, code string) (int64, error) {
	p, err := s.s.GetProduct(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, service.ErrProductNotFound
		}

		return 0, fmt.Errorf("failed to get product from storage: %w", err)
	}

	return p.Tally, nil
}
