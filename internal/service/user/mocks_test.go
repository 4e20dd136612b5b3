package user

import (
	"context"
	"io"
	"sync"

	"github.com/tjwls11/diary111/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg user . userRepo
//go:generate moq -out file_store_mock_test.go -pkg user . fileStore

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc              func(ctx context.Context, id string) (*domain.User, error)
	UpdateProfilePictureFunc func(ctx context.Context, id string, path string) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		UpdateProfilePicture []struct {
			Ctx  context.Context
			ID   string
			Path string
		}
	}
	mu sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GetByID
}

func (mock *userRepoMock) UpdateProfilePicture(ctx context.Context, id string, path string) error {
	if mock.UpdateProfilePictureFunc == nil {
		panic("userRepoMock.UpdateProfilePictureFunc: method is nil but userRepo.UpdateProfilePicture was just called")
	}
	mock.mu.Lock()
	mock.calls.UpdateProfilePicture = append(mock.calls.UpdateProfilePicture, struct {
		Ctx  context.Context
		ID   string
		Path string
	}{Ctx: ctx, ID: id, Path: path})
	mock.mu.Unlock()
	return mock.UpdateProfilePictureFunc(ctx, id, path)
}

func (mock *userRepoMock) UpdateProfilePictureCalls() []struct {
	Ctx  context.Context
	ID   string
	Path string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.UpdateProfilePicture
}

var _ fileStore = &fileStoreMock{}

type fileStoreMock struct {
	SaveFunc   func(originalName string, r io.Reader) (string, error)
	RemoveFunc func(publicPath string) error

	calls struct {
		Save []struct {
			OriginalName string
		}
		Remove []struct {
			PublicPath string
		}
	}
	mu sync.RWMutex
}

func (mock *fileStoreMock) Save(originalName string, r io.Reader) (string, error) {
	if mock.SaveFunc == nil {
		panic("fileStoreMock.SaveFunc: method is nil but fileStore.Save was just called")
	}
	mock.mu.Lock()
	mock.calls.Save = append(mock.calls.Save, struct{ OriginalName string }{OriginalName: originalName})
	mock.mu.Unlock()
	return mock.SaveFunc(originalName, r)
}

func (mock *fileStoreMock) SaveCalls() []struct {
	OriginalName string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Save
}

func (mock *fileStoreMock) Remove(publicPath string) error {
	if mock.RemoveFunc == nil {
		panic("fileStoreMock.RemoveFunc: method is nil but fileStore.Remove was just called")
	}
	mock.mu.Lock()
	mock.calls.Remove = append(mock.calls.Remove, struct{ PublicPath string }{PublicPath: publicPath})
	mock.mu.Unlock()
	return mock.RemoveFunc(publicPath)
}

func (mock *fileStoreMock) RemoveCalls() []struct {
	PublicPath string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Remove
}
