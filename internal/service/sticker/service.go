package sticker

import (
	"context"
	"log/slog"

	"github.com/tjwls11/diary111/internal/domain"
)

// stickerRepo defines the sticker repository interface needed by the service.
type stickerRepo interface {
	ListCatalog(ctx context.Context) ([]domain.Sticker, error)
	GetByID(ctx context.Context, id int64) (*domain.Sticker, error)
	AddOwnership(ctx context.Context, userID string, stickerID int64) error
	ListOwned(ctx context.Context, userID string) ([]domain.OwnedSticker, error)
}

// walletRepo defines the coin balance interface needed by the service.
type walletRepo interface {
	SpendCoins(ctx context.Context, id string, amount int64) error
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the sticker shop: catalog browsing, coin purchases and
// the caller's collection.
type Service struct {
	log      *slog.Logger
	stickers stickerRepo
	wallet   walletRepo
	tx       txManager
}

// NewService creates a new sticker service instance.
func NewService(logger *slog.Logger, stickers stickerRepo, wallet walletRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "sticker"),
		stickers: stickers,
		wallet:   wallet,
		tx:       tx,
	}
}
