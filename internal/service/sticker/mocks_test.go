package sticker

import (
	"context"
	"sync"

	"github.com/tjwls11/diary111/internal/domain"
)

//go:generate moq -out sticker_repo_mock_test.go -pkg sticker . stickerRepo
//go:generate moq -out wallet_repo_mock_test.go -pkg sticker . walletRepo
//go:generate moq -out tx_manager_mock_test.go -pkg sticker . txManager

var _ stickerRepo = &stickerRepoMock{}

type stickerRepoMock struct {
	ListCatalogFunc  func(ctx context.Context) ([]domain.Sticker, error)
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.Sticker, error)
	AddOwnershipFunc func(ctx context.Context, userID string, stickerID int64) error
	ListOwnedFunc    func(ctx context.Context, userID string) ([]domain.OwnedSticker, error)

	calls struct {
		ListCatalog []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		AddOwnership []struct {
			Ctx       context.Context
			UserID    string
			StickerID int64
		}
		ListOwned []struct {
			Ctx    context.Context
			UserID string
		}
	}
	mu sync.RWMutex
}

func (mock *stickerRepoMock) ListCatalog(ctx context.Context) ([]domain.Sticker, error) {
	if mock.ListCatalogFunc == nil {
		panic("stickerRepoMock.ListCatalogFunc: method is nil but stickerRepo.ListCatalog was just called")
	}
	mock.mu.Lock()
	mock.calls.ListCatalog = append(mock.calls.ListCatalog, struct{ Ctx context.Context }{Ctx: ctx})
	mock.mu.Unlock()
	return mock.ListCatalogFunc(ctx)
}

func (mock *stickerRepoMock) GetByID(ctx context.Context, id int64) (*domain.Sticker, error) {
	if mock.GetByIDFunc == nil {
		panic("stickerRepoMock.GetByIDFunc: method is nil but stickerRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *stickerRepoMock) AddOwnership(ctx context.Context, userID string, stickerID int64) error {
	if mock.AddOwnershipFunc == nil {
		panic("stickerRepoMock.AddOwnershipFunc: method is nil but stickerRepo.AddOwnership was just called")
	}
	mock.mu.Lock()
	mock.calls.AddOwnership = append(mock.calls.AddOwnership, struct {
		Ctx       context.Context
		UserID    string
		StickerID int64
	}{Ctx: ctx, UserID: userID, StickerID: stickerID})
	mock.mu.Unlock()
	return mock.AddOwnershipFunc(ctx, userID, stickerID)
}

func (mock *stickerRepoMock) AddOwnershipCalls() []struct {
	Ctx       context.Context
	UserID    string
	StickerID int64
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.AddOwnership
}

func (mock *stickerRepoMock) ListOwned(ctx context.Context, userID string) ([]domain.OwnedSticker, error) {
	if mock.ListOwnedFunc == nil {
		panic("stickerRepoMock.ListOwnedFunc: method is nil but stickerRepo.ListOwned was just called")
	}
	mock.mu.Lock()
	mock.calls.ListOwned = append(mock.calls.ListOwned, struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID})
	mock.mu.Unlock()
	return mock.ListOwnedFunc(ctx, userID)
}

func (mock *stickerRepoMock) ListOwnedCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.ListOwned
}

var _ walletRepo = &walletRepoMock{}

type walletRepoMock struct {
	SpendCoinsFunc func(ctx context.Context, id string, amount int64) error

	calls struct {
		SpendCoins []struct {
			Ctx    context.Context
			ID     string
			Amount int64
		}
	}
	mu sync.RWMutex
}

func (mock *walletRepoMock) SpendCoins(ctx context.Context, id string, amount int64) error {
	if mock.SpendCoinsFunc == nil {
		panic("walletRepoMock.SpendCoinsFunc: method is nil but walletRepo.SpendCoins was just called")
	}
	mock.mu.Lock()
	mock.calls.SpendCoins = append(mock.calls.SpendCoins, struct {
		Ctx    context.Context
		ID     string
		Amount int64
	}{Ctx: ctx, ID: id, Amount: amount})
	mock.mu.Unlock()
	return mock.SpendCoinsFunc(ctx, id, amount)
}

func (mock *walletRepoMock) SpendCoinsCalls() []struct {
	Ctx    context.Context
	ID     string
	Amount int64
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.SpendCoins
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly, without a real transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	mu sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.mu.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{ Ctx context.Context }{Ctx: ctx})
	mock.mu.Unlock()
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.RunInTx
}
