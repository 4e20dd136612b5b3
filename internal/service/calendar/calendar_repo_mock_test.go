package calendar

import (
	"context"
	"sync"
	"time"

	"github.com/tjwls11/diary111/internal/domain"
)

var _ calendarRepo = &calendarRepoMock{}

type calendarRepoMock struct {
	SetColorFunc   func(ctx context.Context, userID string, date time.Time, color string) error
	SetTagFunc     func(ctx context.Context, userID string, date time.Time, tag string) error
	ListByUserFunc func(ctx context.Context, userID string) ([]domain.CalendarMark, error)
	ListTaggedFunc func(ctx context.Context, userID string) ([]domain.CalendarMark, error)

	calls struct {
		SetColor []struct {
			Ctx    context.Context
			UserID string
			Date   time.Time
			Color  string
		}
		SetTag []struct {
			Ctx    context.Context
			UserID string
			Date   time.Time
			Tag    string
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID string
		}
		ListTagged []struct {
			Ctx    context.Context
			UserID string
		}
	}
	mu sync.RWMutex
}

func (mock *calendarRepoMock) SetColor(ctx context.Context, userID string, date time.Time, color string) error {
	if mock.SetColorFunc == nil {
		panic("calendarRepoMock.SetColorFunc: method is nil but calendarRepo.SetColor was just called")
	}
	mock.mu.Lock()
	mock.calls.SetColor = append(mock.calls.SetColor, struct {
		Ctx    context.Context
		UserID string
		Date   time.Time
		Color  string
	}{Ctx: ctx, UserID: userID, Date: date, Color: color})
	mock.mu.Unlock()
	return mock.SetColorFunc(ctx, userID, date, color)
}

func (mock *calendarRepoMock) SetColorCalls() []struct {
	Ctx    context.Context
	UserID string
	Date   time.Time
	Color  string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.SetColor
}

func (mock *calendarRepoMock) SetTag(ctx context.Context, userID string, date time.Time, tag string) error {
	if mock.SetTagFunc == nil {
		panic("calendarRepoMock.SetTagFunc: method is nil but calendarRepo.SetTag was just called")
	}
	mock.mu.Lock()
	mock.calls.SetTag = append(mock.calls.SetTag, struct {
		Ctx    context.Context
		UserID string
		Date   time.Time
		Tag    string
	}{Ctx: ctx, UserID: userID, Date: date, Tag: tag})
	mock.mu.Unlock()
	return mock.SetTagFunc(ctx, userID, date, tag)
}

func (mock *calendarRepoMock) SetTagCalls() []struct {
	Ctx    context.Context
	UserID string
	Date   time.Time
	Tag    string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.SetTag
}

func (mock *calendarRepoMock) ListByUser(ctx context.Context, userID string) ([]domain.CalendarMark, error) {
	if mock.ListByUserFunc == nil {
		panic("calendarRepoMock.ListByUserFunc: method is nil but calendarRepo.ListByUser was just called")
	}
	mock.mu.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID})
	mock.mu.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *calendarRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.ListByUser
}

func (mock *calendarRepoMock) ListTagged(ctx context.Context, userID string) ([]domain.CalendarMark, error) {
	if mock.ListTaggedFunc == nil {
		panic("calendarRepoMock.ListTaggedFunc: method is nil but calendarRepo.ListTagged was just called")
	}
	mock.mu.Lock()
	mock.calls.ListTagged = append(mock.calls.ListTagged, struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID})
	mock.mu.Unlock()
	return mock.ListTaggedFunc(ctx, userID)
}

func (mock *calendarRepoMock) ListTaggedCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.ListTagged
}
