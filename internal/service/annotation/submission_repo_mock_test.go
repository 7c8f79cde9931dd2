package annotation

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

var _ submissionRepo = &submissionRepoMock{}

type submissionRepoMock struct {
	LockChainFunc  func(ctx context.Context, chain domain.ChainKey) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	GetCurrentFunc func(ctx context.Context, chain domain.ChainKey) (*domain.Submission, error)
	ListChainFunc  func(ctx context.Context, chain domain.ChainKey) ([]domain.Submission, error)

	calls struct {
		LockChain []struct {
			Ctx   context.Context
			Chain domain.ChainKey
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetCurrent []struct {
			Ctx   context.Context
			Chain domain.ChainKey
		}
		ListChain []struct {
			Ctx   context.Context
			Chain domain.ChainKey
		}
	}
	lockLockChain  sync.RWMutex
	lockGetByID    sync.RWMutex
	lockGetCurrent sync.RWMutex
	lockListChain  sync.RWMutex
}

func (mock *submissionRepoMock) LockChain(ctx context.Context, chain domain.ChainKey) error {
	if mock.LockChainFunc == nil {
		panic("submissionRepoMock.LockChainFunc: method is nil but submissionRepo.LockChain was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Chain domain.ChainKey
	}{Ctx: ctx, Chain: chain}
	mock.lockLockChain.Lock()
	mock.calls.LockChain = append(mock.calls.LockChain, callInfo)
	mock.lockLockChain.Unlock()
	return mock.LockChainFunc(ctx, chain)
}

func (mock *submissionRepoMock) LockChainCalls() []struct {
	Ctx   context.Context
	Chain domain.ChainKey
} {
	mock.lockLockChain.RLock()
	calls := mock.calls.LockChain
	mock.lockLockChain.RUnlock()
	return calls
}

func (mock *submissionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	if mock.GetByIDFunc == nil {
		panic("submissionRepoMock.GetByIDFunc: method is nil but submissionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *submissionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *submissionRepoMock) GetCurrent(ctx context.Context, chain domain.ChainKey) (*domain.Submission, error) {
	if mock.GetCurrentFunc == nil {
		panic("submissionRepoMock.GetCurrentFunc: method is nil but submissionRepo.GetCurrent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Chain domain.ChainKey
	}{Ctx: ctx, Chain: chain}
	mock.lockGetCurrent.Lock()
	mock.calls.GetCurrent = append(mock.calls.GetCurrent, callInfo)
	mock.lockGetCurrent.Unlock()
	return mock.GetCurrentFunc(ctx, chain)
}

func (mock *submissionRepoMock) GetCurrentCalls() []struct {
	Ctx   context.Context
	Chain domain.ChainKey
} {
	mock.lockGetCurrent.RLock()
	calls := mock.calls.GetCurrent
	mock.lockGetCurrent.RUnlock()
	return calls
}

func (mock *submissionRepoMock) ListChain(ctx context.Context, chain domain.ChainKey) ([]domain.Submission, error) {
	if mock.ListChainFunc == nil {
		panic("submissionRepoMock.ListChainFunc: method is nil but submissionRepo.ListChain was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Chain domain.ChainKey
	}{Ctx: ctx, Chain: chain}
	mock.lockListChain.Lock()
	mock.calls.ListChain = append(mock.calls.ListChain, callInfo)
	mock.lockListChain.Unlock()
	return mock.ListChainFunc(ctx, chain)
}

func (mock *submissionRepoMock) ListChainCalls() []struct {
	Ctx   context.Context
	Chain domain.ChainKey
} {
	mock.lockListChain.RLock()
	calls := mock.calls.ListChain
	mock.lockListChain.RUnlock()
	return calls
}
