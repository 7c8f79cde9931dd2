package annotation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/pkg/ctxutil"
)

// AddReply appends a reply to a comment's thread. The caller is recorded as the author.
func (s *Service) AddReply(ctx context.Context, input AddReplyInput) (*domain.Reply, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	reply, err := s.annotations.CreateReply(ctx, domain.Reply{
		ID:         uuid.New(),
		CommentID:  input.CommentID,
		AuthorID:   &userID,
		AuthorName: strings.TrimSpace(input.AuthorName),
		Text:       strings.TrimSpace(input.Text),
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}

	s.log.InfoContext(ctx, "reply added",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", reply.CommentID.String()),
		slog.String("reply_id", reply.ID.String()),
	)

	return reply, nil
}

// DeleteReply hard-deletes a reply. Its author or an admin may delete it;
// replies without a recorded author are admin only.
func (s *Service) DeleteReply(ctx context.Context, replyID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if replyID == uuid.Nil {
		return domain.NewValidationError("reply_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reply, err := s.annotations.GetReply(txCtx, replyID)
		if err != nil {
			return fmt.Errorf("get reply: %w", err)
		}

		isAuthor := reply.AuthorID != nil && *reply.AuthorID == userID
		if !isAuthor && !ctxutil.IsAdminCtx(txCtx) {
			return domain.ErrForbidden
		}

		if err := s.annotations.DeleteReply(txCtx, replyID); err != nil {
			return fmt.Errorf("delete reply: %w", err)
		}

		return s.logDelete(txCtx, userID, domain.EntityTypeReply, replyID, map[string]any{
			"comment_id":  reply.CommentID.String(),
			"author_name": map[string]any{"old": reply.AuthorName},
			"text":        map[string]any{"old": reply.Text},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "reply deleted",
		slog.String("user_id", userID.String()),
		slog.String("reply_id", replyID.String()),
	)
	return nil
}
