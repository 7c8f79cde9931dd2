package submission

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

var _ submissionRepo = &submissionRepoMock{}

type submissionRepoMock struct {
	LockChainFunc    func(ctx context.Context, chain domain.ChainKey) error
	MaxVersionFunc   func(ctx context.Context, chain domain.ChainKey) (int, error)
	GetCurrentFunc   func(ctx context.Context, chain domain.ChainKey) (*domain.Submission, error)
	ListChainFunc    func(ctx context.Context, chain domain.ChainKey) ([]domain.Submission, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	CreateFunc       func(ctx context.Context, s domain.Submission) (*domain.Submission, error)
	UpdateStatusFunc func(ctx context.Context, p domain.StatusUpdateParams) (*domain.Submission, error)

	calls struct {
		LockChain []struct {
			Ctx   context.Context
			Chain domain.ChainKey
		}
		MaxVersion []struct {
			Ctx   context.Context
			Chain domain.ChainKey
		}
		GetCurrent []struct {
			Ctx   context.Context
			Chain domain.ChainKey
		}
		ListChain []struct {
			Ctx   context.Context
			Chain domain.ChainKey
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			S   domain.Submission
		}
		UpdateStatus []struct {
			Ctx context.Context
			P   domain.StatusUpdateParams
		}
	}
	lockLockChain    sync.RWMutex
	lockMaxVersion   sync.RWMutex
	lockGetCurrent   sync.RWMutex
	lockListChain    sync.RWMutex
	lockGetByID      sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdateStatus sync.RWMutex
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

func (mock *submissionRepoMock) MaxVersion(ctx context.Context, chain domain.ChainKey) (int, error) {
	if mock.MaxVersionFunc == nil {
		panic("submissionRepoMock.MaxVersionFunc: method is nil but submissionRepo.MaxVersion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Chain domain.ChainKey
	}{Ctx: ctx, Chain: chain}
	mock.lockMaxVersion.Lock()
	mock.calls.MaxVersion = append(mock.calls.MaxVersion, callInfo)
	mock.lockMaxVersion.Unlock()
	return mock.MaxVersionFunc(ctx, chain)
}

func (mock *submissionRepoMock) MaxVersionCalls() []struct {
	Ctx   context.Context
	Chain domain.ChainKey
} {
	mock.lockMaxVersion.RLock()
	calls := mock.calls.MaxVersion
	mock.lockMaxVersion.RUnlock()
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

func (mock *submissionRepoMock) Create(ctx context.Context, s domain.Submission) (*domain.Submission, error) {
	if mock.CreateFunc == nil {
		panic("submissionRepoMock.CreateFunc: method is nil but submissionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Submission
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *submissionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.Submission
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *submissionRepoMock) UpdateStatus(ctx context.Context, p domain.StatusUpdateParams) (*domain.Submission, error) {
	if mock.UpdateStatusFunc == nil {
		panic("submissionRepoMock.UpdateStatusFunc: method is nil but submissionRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.StatusUpdateParams
	}{Ctx: ctx, P: p}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, p)
}

func (mock *submissionRepoMock) UpdateStatusCalls() []struct {
	Ctx context.Context
	P   domain.StatusUpdateParams
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
