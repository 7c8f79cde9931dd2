package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/annotation"
)

var _ annotationService = &annotationServiceMock{}

type annotationServiceMock struct {
	AddCommentFunc        func(ctx context.Context, input annotation.AddCommentInput) (*domain.Annotation, error)
	DeleteCommentFunc     func(ctx context.Context, commentID uuid.UUID) error
	ListCommentsFunc      func(ctx context.Context, submissionID uuid.UUID) ([]domain.Annotation, error)
	ListChainCommentsFunc func(ctx context.Context, chain domain.ChainKey) ([]domain.VersionedAnnotation, error)
	AddReplyFunc          func(ctx context.Context, input annotation.AddReplyInput) (*domain.Reply, error)
	DeleteReplyFunc       func(ctx context.Context, replyID uuid.UUID) error

	calls struct {
		AddComment []struct {
			Ctx   context.Context
			Input annotation.AddCommentInput
		}
		DeleteComment []struct {
			Ctx       context.Context
			CommentID uuid.UUID
		}
		ListComments []struct {
			Ctx          context.Context
			SubmissionID uuid.UUID
		}
		ListChainComments []struct {
			Ctx   context.Context
			Chain domain.ChainKey
		}
		AddReply []struct {
			Ctx   context.Context
			Input annotation.AddReplyInput
		}
		DeleteReply []struct {
			Ctx     context.Context
			ReplyID uuid.UUID
		}
	}
	lockAddComment        sync.RWMutex
	lockDeleteComment     sync.RWMutex
	lockListComments      sync.RWMutex
	lockListChainComments sync.RWMutex
	lockAddReply          sync.RWMutex
	lockDeleteReply       sync.RWMutex
}

func (mock *annotationServiceMock) AddComment(ctx context.Context, input annotation.AddCommentInput) (*domain.Annotation, error) {
	if mock.AddCommentFunc == nil {
		panic("annotationServiceMock.AddCommentFunc: method is nil but annotationService.AddComment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input annotation.AddCommentInput
	}{Ctx: ctx, Input: input}
	mock.lockAddComment.Lock()
	mock.calls.AddComment = append(mock.calls.AddComment, callInfo)
	mock.lockAddComment.Unlock()
	return mock.AddCommentFunc(ctx, input)
}

func (mock *annotationServiceMock) AddCommentCalls() []struct {
	Ctx   context.Context
	Input annotation.AddCommentInput
} {
	mock.lockAddComment.RLock()
	calls := mock.calls.AddComment
	mock.lockAddComment.RUnlock()
	return calls
}

func (mock *annotationServiceMock) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	if mock.DeleteCommentFunc == nil {
		panic("annotationServiceMock.DeleteCommentFunc: method is nil but annotationService.DeleteComment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CommentID uuid.UUID
	}{Ctx: ctx, CommentID: commentID}
	mock.lockDeleteComment.Lock()
	mock.calls.DeleteComment = append(mock.calls.DeleteComment, callInfo)
	mock.lockDeleteComment.Unlock()
	return mock.DeleteCommentFunc(ctx, commentID)
}

func (mock *annotationServiceMock) DeleteCommentCalls() []struct {
	Ctx       context.Context
	CommentID uuid.UUID
} {
	mock.lockDeleteComment.RLock()
	calls := mock.calls.DeleteComment
	mock.lockDeleteComment.RUnlock()
	return calls
}

func (mock *annotationServiceMock) ListComments(ctx context.Context, submissionID uuid.UUID) ([]domain.Annotation, error) {
	if mock.ListCommentsFunc == nil {
		panic("annotationServiceMock.ListCommentsFunc: method is nil but annotationService.ListComments was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SubmissionID uuid.UUID
	}{Ctx: ctx, SubmissionID: submissionID}
	mock.lockListComments.Lock()
	mock.calls.ListComments = append(mock.calls.ListComments, callInfo)
	mock.lockListComments.Unlock()
	return mock.ListCommentsFunc(ctx, submissionID)
}

func (mock *annotationServiceMock) ListCommentsCalls() []struct {
	Ctx          context.Context
	SubmissionID uuid.UUID
} {
	mock.lockListComments.RLock()
	calls := mock.calls.ListComments
	mock.lockListComments.RUnlock()
	return calls
}

func (mock *annotationServiceMock) ListChainComments(ctx context.Context, chain domain.ChainKey) ([]domain.VersionedAnnotation, error) {
	if mock.ListChainCommentsFunc == nil {
		panic("annotationServiceMock.ListChainCommentsFunc: method is nil but annotationService.ListChainComments was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Chain domain.ChainKey
	}{Ctx: ctx, Chain: chain}
	mock.lockListChainComments.Lock()
	mock.calls.ListChainComments = append(mock.calls.ListChainComments, callInfo)
	mock.lockListChainComments.Unlock()
	return mock.ListChainCommentsFunc(ctx, chain)
}

func (mock *annotationServiceMock) ListChainCommentsCalls() []struct {
	Ctx   context.Context
	Chain domain.ChainKey
} {
	mock.lockListChainComments.RLock()
	calls := mock.calls.ListChainComments
	mock.lockListChainComments.RUnlock()
	return calls
}

func (mock *annotationServiceMock) AddReply(ctx context.Context, input annotation.AddReplyInput) (*domain.Reply, error) {
	if mock.AddReplyFunc == nil {
		panic("annotationServiceMock.AddReplyFunc: method is nil but annotationService.AddReply was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input annotation.AddReplyInput
	}{Ctx: ctx, Input: input}
	mock.lockAddReply.Lock()
	mock.calls.AddReply = append(mock.calls.AddReply, callInfo)
	mock.lockAddReply.Unlock()
	return mock.AddReplyFunc(ctx, input)
}

func (mock *annotationServiceMock) AddReplyCalls() []struct {
	Ctx   context.Context
	Input annotation.AddReplyInput
} {
	mock.lockAddReply.RLock()
	calls := mock.calls.AddReply
	mock.lockAddReply.RUnlock()
	return calls
}

func (mock *annotationServiceMock) DeleteReply(ctx context.Context, replyID uuid.UUID) error {
	if mock.DeleteReplyFunc == nil {
		panic("annotationServiceMock.DeleteReplyFunc: method is nil but annotationService.DeleteReply was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ReplyID uuid.UUID
	}{Ctx: ctx, ReplyID: replyID}
	mock.lockDeleteReply.Lock()
	mock.calls.DeleteReply = append(mock.calls.DeleteReply, callInfo)
	mock.lockDeleteReply.Unlock()
	return mock.DeleteReplyFunc(ctx, replyID)
}

func (mock *annotationServiceMock) DeleteReplyCalls() []struct {
	Ctx     context.Context
	ReplyID uuid.UUID
} {
	mock.lockDeleteReply.RLock()
	calls := mock.calls.DeleteReply
	mock.lockDeleteReply.RUnlock()
	return calls
}
