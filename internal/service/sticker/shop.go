package sticker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tjwls11/diary111/internal/domain"
	"github.com/tjwls11/diary111/pkg/ctxutil"
)

// Catalog returns every sticker available in the shop.
func (s *Service) Catalog(ctx context.Context) ([]domain.Sticker, error) {
	stickers, err := s.stickers.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("sticker.Catalog: %w", err)
	}
	return stickers, nil
}

// Owned returns the caller's sticker collection, most recent purchase first.
func (s *Service) Owned(ctx context.Context) ([]domain.OwnedSticker, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	owned, err := s.stickers.ListOwned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sticker.Owned: %w", err)
	}
	return owned, nil
}

// Purchase buys a sticker for the authenticated user, charging its price from
// the coin balance. The ownership insert and the charge happen in one
// transaction: a duplicate purchase fails before any coins move, and an
// insufficient balance rolls the ownership back.
//
// Returns ErrNotFound for an unknown sticker, ErrAlreadyExists when the user
// already owns it and ErrInsufficientCoins when the balance cannot cover the
// price.
func (s *Service) Purchase(ctx context.Context, stickerID int64) (*domain.Sticker, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	bought, err := s.stickers.GetByID(ctx, stickerID)
	if err != nil {
		return nil, fmt.Errorf("sticker.Purchase get sticker: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.stickers.AddOwnership(ctx, userID, stickerID); err != nil {
			return fmt.Errorf("add ownership: %w", err)
		}
		if bought.Price > 0 {
			if err := s.wallet.SpendCoins(ctx, userID, bought.Price); err != nil {
				return fmt.Errorf("spend coins: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sticker.Purchase: %w", err)
	}

	s.log.InfoContext(ctx, "sticker purchased",
		slog.String("user_id", userID),
		slog.Int64("sticker_id", stickerID),
		slog.Int64("price", bought.Price))

	return bought, nil
}
