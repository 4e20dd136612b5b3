package auth

import (
	"context"
	"sync"

	"github.com/tjwls11/diary111/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id string) (*domain.User, error)
	CreateFunc         func(ctx context.Context, user *domain.User) error
	UpdatePasswordFunc func(ctx context.Context, id string, passwordHash string) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		UpdatePassword []struct {
			Ctx          context.Context
			ID           string
			PasswordHash string
		}
	}
	lockGetByID        sync.RWMutex
	lockCreate         sync.RWMutex
	lockUpdatePassword sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) error {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc: method is nil but userRepo.UpdatePassword was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		ID           string
		PasswordHash string
	}{Ctx: ctx, ID: id, PasswordHash: passwordHash}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, passwordHash)
}

func (mock *userRepoMock) UpdatePasswordCalls() []struct {
	Ctx          context.Context
	ID           string
	PasswordHash string
} {
	mock.lockUpdatePassword.RLock()
	calls := mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}
