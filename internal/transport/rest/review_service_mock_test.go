package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/review"
)

var _ reviewService = &reviewServiceMock{}

type reviewServiceMock struct {
	RequestRevisionFunc func(ctx context.Context, input review.RequestRevisionInput) (*domain.Submission, error)
	ApproveFunc         func(ctx context.Context, input review.ApproveInput) (*domain.Submission, error)
	ReopenFunc          func(ctx context.Context, input review.ReopenInput) (*domain.Submission, error)
	HistoryFunc         func(ctx context.Context, submissionID uuid.UUID, limit int) ([]domain.AuditRecord, error)

	calls struct {
		RequestRevision []struct {
			Ctx   context.Context
			Input review.RequestRevisionInput
		}
		Approve []struct {
			Ctx   context.Context
			Input review.ApproveInput
		}
		Reopen []struct {
			Ctx   context.Context
			Input review.ReopenInput
		}
		History []struct {
			Ctx          context.Context
			SubmissionID uuid.UUID
			Limit        int
		}
	}
	lockRequestRevision sync.RWMutex
	lockApprove         sync.RWMutex
	lockReopen          sync.RWMutex
	lockHistory         sync.RWMutex
}

func (mock *reviewServiceMock) RequestRevision(ctx context.Context, input review.RequestRevisionInput) (*domain.Submission, error) {
	if mock.RequestRevisionFunc == nil {
		panic("reviewServiceMock.RequestRevisionFunc: method is nil but reviewService.RequestRevision was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.RequestRevisionInput
	}{Ctx: ctx, Input: input}
	mock.lockRequestRevision.Lock()
	mock.calls.RequestRevision = append(mock.calls.RequestRevision, callInfo)
	mock.lockRequestRevision.Unlock()
	return mock.RequestRevisionFunc(ctx, input)
}

func (mock *reviewServiceMock) RequestRevisionCalls() []struct {
	Ctx   context.Context
	Input review.RequestRevisionInput
} {
	mock.lockRequestRevision.RLock()
	calls := mock.calls.RequestRevision
	mock.lockRequestRevision.RUnlock()
	return calls
}

func (mock *reviewServiceMock) Approve(ctx context.Context, input review.ApproveInput) (*domain.Submission, error) {
	if mock.ApproveFunc == nil {
		panic("reviewServiceMock.ApproveFunc: method is nil but reviewService.Approve was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.ApproveInput
	}{Ctx: ctx, Input: input}
	mock.lockApprove.Lock()
	mock.calls.Approve = append(mock.calls.Approve, callInfo)
	mock.lockApprove.Unlock()
	return mock.ApproveFunc(ctx, input)
}

func (mock *reviewServiceMock) ApproveCalls() []struct {
	Ctx   context.Context
	Input review.ApproveInput
} {
	mock.lockApprove.RLock()
	calls := mock.calls.Approve
	mock.lockApprove.RUnlock()
	return calls
}

func (mock *reviewServiceMock) Reopen(ctx context.Context, input review.ReopenInput) (*domain.Submission, error) {
	if mock.ReopenFunc == nil {
		panic("reviewServiceMock.ReopenFunc: method is nil but reviewService.Reopen was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.ReopenInput
	}{Ctx: ctx, Input: input}
	mock.lockReopen.Lock()
	mock.calls.Reopen = append(mock.calls.Reopen, callInfo)
	mock.lockReopen.Unlock()
	return mock.ReopenFunc(ctx, input)
}

func (mock *reviewServiceMock) ReopenCalls() []struct {
	Ctx   context.Context
	Input review.ReopenInput
} {
	mock.lockReopen.RLock()
	calls := mock.calls.Reopen
	mock.lockReopen.RUnlock()
	return calls
}

func (mock *reviewServiceMock) History(ctx context.Context, submissionID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.HistoryFunc == nil {
		panic("reviewServiceMock.HistoryFunc: method is nil but reviewService.History was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SubmissionID uuid.UUID
		Limit        int
	}{Ctx: ctx, SubmissionID: submissionID, Limit: limit}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, submissionID, limit)
}

func (mock *reviewServiceMock) HistoryCalls() []struct {
	Ctx          context.Context
	SubmissionID uuid.UUID
	Limit        int
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
