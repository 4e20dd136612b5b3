package diary

import (
	"context"
	"sync"
	"time"

	"github.com/tjwls11/diary111/internal/domain"
)

var _ diaryRepo = &diaryRepoMock{}

type diaryRepoMock struct {
	CreateFunc       func(ctx context.Context, e *domain.DiaryEntry) (*domain.DiaryEntry, error)
	ListByUserFunc   func(ctx context.Context, userID string) ([]domain.DiaryEntry, error)
	GetByIDFunc      func(ctx context.Context, userID string, id int64) (*domain.DiaryEntry, error)
	UpdateFunc       func(ctx context.Context, userID string, id int64, date time.Time, title, one, content string) (*domain.DiaryEntry, error)
	DeleteFunc       func(ctx context.Context, userID string, id int64) error
	ExistsOnDateFunc func(ctx context.Context, userID string, date time.Time) (bool, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry *domain.DiaryEntry
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID string
		}
		GetByID []struct {
			Ctx    context.Context
			UserID string
			ID     int64
		}
		Update []struct {
			Ctx    context.Context
			UserID string
			ID     int64
			Date   time.Time
		}
		Delete []struct {
			Ctx    context.Context
			UserID string
			ID     int64
		}
		ExistsOnDate []struct {
			Ctx    context.Context
			UserID string
			Date   time.Time
		}
	}
	mu sync.RWMutex
}

func (mock *diaryRepoMock) Create(ctx context.Context, e *domain.DiaryEntry) (*domain.DiaryEntry, error) {
	if mock.CreateFunc == nil {
		panic("diaryRepoMock.CreateFunc: method is nil but diaryRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx   context.Context
		Entry *domain.DiaryEntry
	}{Ctx: ctx, Entry: e})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *diaryRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.DiaryEntry
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Create
}

func (mock *diaryRepoMock) ListByUser(ctx context.Context, userID string) ([]domain.DiaryEntry, error) {
	if mock.ListByUserFunc == nil {
		panic("diaryRepoMock.ListByUserFunc: method is nil but diaryRepo.ListByUser was just called")
	}
	mock.mu.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID})
	mock.mu.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *diaryRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.ListByUser
}

func (mock *diaryRepoMock) GetByID(ctx context.Context, userID string, id int64) (*domain.DiaryEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("diaryRepoMock.GetByIDFunc: method is nil but diaryRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx    context.Context
		UserID string
		ID     int64
	}{Ctx: ctx, UserID: userID, ID: id})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *diaryRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID string
	ID     int64
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GetByID
}

func (mock *diaryRepoMock) Update(ctx context.Context, userID string, id int64, date time.Time, title, one, content string) (*domain.DiaryEntry, error) {
	if mock.UpdateFunc == nil {
		panic("diaryRepoMock.UpdateFunc: method is nil but diaryRepo.Update was just called")
	}
	mock.mu.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx    context.Context
		UserID string
		ID     int64
		Date   time.Time
	}{Ctx: ctx, UserID: userID, ID: id, Date: date})
	mock.mu.Unlock()
	return mock.UpdateFunc(ctx, userID, id, date, title, one, content)
}

func (mock *diaryRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID string
	ID     int64
	Date   time.Time
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Update
}

func (mock *diaryRepoMock) Delete(ctx context.Context, userID string, id int64) error {
	if mock.DeleteFunc == nil {
		panic("diaryRepoMock.DeleteFunc: method is nil but diaryRepo.Delete was just called")
	}
	mock.mu.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		Ctx    context.Context
		UserID string
		ID     int64
	}{Ctx: ctx, UserID: userID, ID: id})
	mock.mu.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *diaryRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID string
	ID     int64
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Delete
}

func (mock *diaryRepoMock) ExistsOnDate(ctx context.Context, userID string, date time.Time) (bool, error) {
	if mock.ExistsOnDateFunc == nil {
		panic("diaryRepoMock.ExistsOnDateFunc: method is nil but diaryRepo.ExistsOnDate was just called")
	}
	mock.mu.Lock()
	mock.calls.ExistsOnDate = append(mock.calls.ExistsOnDate, struct {
		Ctx    context.Context
		UserID string
		Date   time.Time
	}{Ctx: ctx, UserID: userID, Date: date})
	mock.mu.Unlock()
	return mock.ExistsOnDateFunc(ctx, userID, date)
}

func (mock *diaryRepoMock) ExistsOnDateCalls() []struct {
	Ctx    context.Context
	UserID string
	Date   time.Time
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.ExistsOnDate
}
