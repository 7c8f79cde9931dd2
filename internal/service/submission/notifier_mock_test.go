package submission

import (
	"context"
	"sync"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	DispatchFunc func(ctx context.Context, event domain.NotificationEvent) error

	calls struct {
		Dispatch []struct {
			Ctx   context.Context
			Event domain.NotificationEvent
		}
	}
	lockDispatch sync.RWMutex
}

func (mock *notifierMock) Dispatch(ctx context.Context, event domain.NotificationEvent) error {
	if mock.DispatchFunc == nil {
		panic("notifierMock.DispatchFunc: method is nil but notifier.Dispatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Event domain.NotificationEvent
	}{Ctx: ctx, Event: event}
	mock.lockDispatch.Lock()
	mock.calls.Dispatch = append(mock.calls.Dispatch, callInfo)
	mock.lockDispatch.Unlock()
	return mock.DispatchFunc(ctx, event)
}

func (mock *notifierMock) DispatchCalls() []struct {
	Ctx   context.Context
	Event domain.NotificationEvent
} {
	mock.lockDispatch.RLock()
	calls := mock.calls.Dispatch
	mock.lockDispatch.RUnlock()
	return calls
}
