package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/submission"
)

var _ submissionService = &submissionServiceMock{}

type submissionServiceMock struct {
	SubmitFunc        func(ctx context.Context, input submission.SubmitInput) (*domain.Submission, error)
	NextVersionFunc   func(ctx context.Context, chain domain.ChainKey) (int, error)
	GetCurrentFunc    func(ctx context.Context, chain domain.ChainKey) (*domain.Submission, error)
	ListChainFunc     func(ctx context.Context, chain domain.ChainKey) ([]domain.Submission, error)
	GetSubmissionFunc func(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	CeilingFunc       func(flow domain.Flow) int
	CheckAppendFunc   func(ctx context.Context, chain domain.ChainKey, flow domain.Flow) error

	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input submission.SubmitInput
		}
		NextVersion []struct {
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
		GetSubmission []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Ceiling []struct{ Flow domain.Flow }
		CheckAppend []struct {
			Ctx   context.Context
			Chain domain.ChainKey
			Flow  domain.Flow
		}
	}
	lockSubmit        sync.RWMutex
	lockNextVersion   sync.RWMutex
	lockGetCurrent    sync.RWMutex
	lockListChain     sync.RWMutex
	lockGetSubmission sync.RWMutex
	lockCeiling       sync.RWMutex
	lockCheckAppend   sync.RWMutex
}

func (mock *submissionServiceMock) Submit(ctx context.Context, input submission.SubmitInput) (*domain.Submission, error) {
	if mock.SubmitFunc == nil {
		panic("submissionServiceMock.SubmitFunc: method is nil but submissionService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input submission.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *submissionServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input submission.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *submissionServiceMock) NextVersion(ctx context.Context, chain domain.ChainKey) (int, error) {
	if mock.NextVersionFunc == nil {
		panic("submissionServiceMock.NextVersionFunc: method is nil but submissionService.NextVersion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Chain domain.ChainKey
	}{Ctx: ctx, Chain: chain}
	mock.lockNextVersion.Lock()
	mock.calls.NextVersion = append(mock.calls.NextVersion, callInfo)
	mock.lockNextVersion.Unlock()
	return mock.NextVersionFunc(ctx, chain)
}

func (mock *submissionServiceMock) NextVersionCalls() []struct {
	Ctx   context.Context
	Chain domain.ChainKey
} {
	mock.lockNextVersion.RLock()
	calls := mock.calls.NextVersion
	mock.lockNextVersion.RUnlock()
	return calls
}

func (mock *submissionServiceMock) GetCurrent(ctx context.Context, chain domain.ChainKey) (*domain.Submission, error) {
	if mock.GetCurrentFunc == nil {
		panic("submissionServiceMock.GetCurrentFunc: method is nil but submissionService.GetCurrent was just called")
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

func (mock *submissionServiceMock) GetCurrentCalls() []struct {
	Ctx   context.Context
	Chain domain.ChainKey
} {
	mock.lockGetCurrent.RLock()
	calls := mock.calls.GetCurrent
	mock.lockGetCurrent.RUnlock()
	return calls
}

func (mock *submissionServiceMock) ListChain(ctx context.Context, chain domain.ChainKey) ([]domain.Submission, error) {
	if mock.ListChainFunc == nil {
		panic("submissionServiceMock.ListChainFunc: method is nil but submissionService.ListChain was just called")
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

func (mock *submissionServiceMock) ListChainCalls() []struct {
	Ctx   context.Context
	Chain domain.ChainKey
} {
	mock.lockListChain.RLock()
	calls := mock.calls.ListChain
	mock.lockListChain.RUnlock()
	return calls
}

func (mock *submissionServiceMock) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	if mock.GetSubmissionFunc == nil {
		panic("submissionServiceMock.GetSubmissionFunc: method is nil but submissionService.GetSubmission was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetSubmission.Lock()
	mock.calls.GetSubmission = append(mock.calls.GetSubmission, callInfo)
	mock.lockGetSubmission.Unlock()
	return mock.GetSubmissionFunc(ctx, id)
}

func (mock *submissionServiceMock) GetSubmissionCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetSubmission.RLock()
	calls := mock.calls.GetSubmission
	mock.lockGetSubmission.RUnlock()
	return calls
}

func (mock *submissionServiceMock) Ceiling(flow domain.Flow) int {
	if mock.CeilingFunc == nil {
		panic("submissionServiceMock.CeilingFunc: method is nil but submissionService.Ceiling was just called")
	}
	callInfo := struct{ Flow domain.Flow }{Flow: flow}
	mock.lockCeiling.Lock()
	mock.calls.Ceiling = append(mock.calls.Ceiling, callInfo)
	mock.lockCeiling.Unlock()
	return mock.CeilingFunc(flow)
}

func (mock *submissionServiceMock) CeilingCalls() []struct{ Flow domain.Flow } {
	mock.lockCeiling.RLock()
	calls := mock.calls.Ceiling
	mock.lockCeiling.RUnlock()
	return calls
}

func (mock *submissionServiceMock) CheckAppend(ctx context.Context, chain domain.ChainKey, flow domain.Flow) error {
	if mock.CheckAppendFunc == nil {
		panic("submissionServiceMock.CheckAppendFunc: method is nil but submissionService.CheckAppend was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Chain domain.ChainKey
		Flow  domain.Flow
	}{Ctx: ctx, Chain: chain, Flow: flow}
	mock.lockCheckAppend.Lock()
	mock.calls.CheckAppend = append(mock.calls.CheckAppend, callInfo)
	mock.lockCheckAppend.Unlock()
	return mock.CheckAppendFunc(ctx, chain, flow)
}

func (mock *submissionServiceMock) CheckAppendCalls() []struct {
	Ctx   context.Context
	Chain domain.ChainKey
	Flow  domain.Flow
} {
	mock.lockCheckAppend.RLock()
	calls := mock.calls.CheckAppend
	mock.lockCheckAppend.RUnlock()
	return calls
}
