// Package annotation implements persistence for review comments and their
// reply threads using PostgreSQL.
package annotation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/mktbiz-byte/cnec-kr-sub001/internal/adapter/postgres"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

const (
	commentsTable = "submission_comments"
	repliesTable  = "comment_replies"
)

var commentColumns = []string{
	"id", "submission_id", "timestamp_seconds",
	"box_x", "box_y", "box_width", "box_height",
	"text", "attachment_url", "created_at",
}

var replyColumns = []string{"id", "comment_id", "author_id", "author_name", "text", "created_at"}

type commentRow struct {
	ID               uuid.UUID `db:"id"`
	SubmissionID     uuid.UUID `db:"submission_id"`
	TimestampSeconds float64   `db:"timestamp_seconds"`
	BoxX             *float64  `db:"box_x"`
	BoxY             *float64  `db:"box_y"`
	BoxWidth         *float64  `db:"box_width"`
	BoxHeight        *float64  `db:"box_height"`
	Text             string    `db:"text"`
	AttachmentURL    *string   `db:"attachment_url"`
	CreatedAt        time.Time `db:"created_at"`
}

type replyRow struct {
	ID         uuid.UUID  `db:"id"`
	CommentID  uuid.UUID  `db:"comment_id"`
	AuthorID   *uuid.UUID `db:"author_id"`
	AuthorName string     `db:"author_name"`
	Text       string     `db:"text"`
	CreatedAt  time.Time  `db:"created_at"`
}

// joinedRow is one comment with at most one of its replies (LEFT JOIN).
type joinedRow struct {
	ID               uuid.UUID  `db:"id"`
	SubmissionID     uuid.UUID  `db:"submission_id"`
	TimestampSeconds float64    `db:"timestamp_seconds"`
	BoxX             *float64   `db:"box_x"`
	BoxY             *float64   `db:"box_y"`
	BoxWidth         *float64   `db:"box_width"`
	BoxHeight        *float64   `db:"box_height"`
	Text             string     `db:"text"`
	AttachmentURL    *string    `db:"attachment_url"`
	CreatedAt        time.Time  `db:"created_at"`
	ReplyID          *uuid.UUID `db:"reply_id"`
	ReplyAuthorID    *uuid.UUID `db:"reply_author_id"`
	ReplyAuthorName  *string    `db:"reply_author_name"`
	ReplyText        *string    `db:"reply_text"`
	ReplyCreatedAt   *time.Time `db:"reply_created_at"`
}

// Repo provides annotation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new annotation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

// CreateComment inserts a new annotation and returns the persisted row.
func (r *Repo) CreateComment(ctx context.Context, a domain.Annotation) (*domain.Annotation, error) {
	var x, y, w, h *float64
	if a.Box != nil {
		x, y, w, h = &a.Box.X, &a.Box.Y, &a.Box.Width, &a.Box.Height
	}

	query, args, err := postgres.Builder.
		Insert(commentsTable).
		Columns(commentColumns...).
		Values(a.ID, a.SubmissionID, a.TimestampSeconds, x, y, w, h, a.Text, a.AttachmentURL, a.CreatedAt).
		Suffix("RETURNING " + strings.Join(commentColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert comment query: %w", err)
	}

	var row commentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "submission_comment", a.ID)
	}

	out := toDomainComment(row)
	return &out, nil
}

// GetComment returns an annotation by primary key without replies.
func (r *Repo) GetComment(ctx context.Context, id uuid.UUID) (*domain.Annotation, error) {
	query, args, err := postgres.Builder.
		Select(commentColumns...).
		From(commentsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get comment query: %w", err)
	}

	var row commentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "submission_comment", id)
	}

	out := toDomainComment(row)
	return &out, nil
}

// DeleteComment hard-deletes an annotation; its replies go with it (ON DELETE CASCADE).
func (r *Repo) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, commentsTable, "submission_comment", id)
}

// ListBySubmission returns the annotations of one submission ordered by timestamp
// (ties by creation), each with its replies in insertion order.
func (r *Repo) ListBySubmission(ctx context.Context, submissionID uuid.UUID) ([]domain.Annotation, error) {
	cols := make([]string, 0, len(commentColumns)+5)
	for _, c := range commentColumns {
		cols = append(cols, "c."+c)
	}
	cols = append(cols,
		"r.id AS reply_id",
		"r.author_id AS reply_author_id",
		"r.author_name AS reply_author_name",
		"r.text AS reply_text",
		"r.created_at AS reply_created_at",
	)

	query, args, err := postgres.Builder.
		Select(cols...).
		From(commentsTable + " c").
		LeftJoin(repliesTable + " r ON r.comment_id = c.id").
		Where(squirrel.Eq{"c.submission_id": submissionID}).
		OrderBy("c.timestamp_seconds ASC", "c.created_at ASC", "c.seq ASC", "r.seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments query: %w", err)
	}

	var rows []joinedRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "submission_comments", submissionID)
	}

	return groupReplies(rows), nil
}

// ---------------------------------------------------------------------------
// Replies
// ---------------------------------------------------------------------------

// CreateReply inserts a reply under an existing annotation.
// A missing annotation surfaces as domain.ErrNotFound (FK violation).
func (r *Repo) CreateReply(ctx context.Context, reply domain.Reply) (*domain.Reply, error) {
	query, args, err := postgres.Builder.
		Insert(repliesTable).
		Columns(replyColumns...).
		Values(reply.ID, reply.CommentID, reply.AuthorID, reply.AuthorName, reply.Text, reply.CreatedAt).
		Suffix("RETURNING " + strings.Join(replyColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert reply query: %w", err)
	}

	var row replyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "comment_reply", reply.ID)
	}

	out := toDomainReply(row)
	return &out, nil
}

// GetReply returns a reply by primary key.
func (r *Repo) GetReply(ctx context.Context, id uuid.UUID) (*domain.Reply, error) {
	query, args, err := postgres.Builder.
		Select(replyColumns...).
		From(repliesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reply query: %w", err)
	}

	var row replyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "comment_reply", id)
	}

	out := toDomainReply(row)
	return &out, nil
}

// DeleteReply hard-deletes a reply.
func (r *Repo) DeleteReply(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, repliesTable, "comment_reply", id)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) deleteByID(ctx context.Context, table, entity string, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", entity, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// groupReplies folds joined rows into annotations, preserving row order.
func groupReplies(rows []joinedRow) []domain.Annotation {
	out := make([]domain.Annotation, 0, len(rows))
	index := make(map[uuid.UUID]int, len(rows))

	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			a := toDomainComment(commentRow{
				ID:               row.ID,
				SubmissionID:     row.SubmissionID,
				TimestampSeconds: row.TimestampSeconds,
				BoxX:             row.BoxX,
				BoxY:             row.BoxY,
				BoxWidth:         row.BoxWidth,
				BoxHeight:        row.BoxHeight,
				Text:             row.Text,
				AttachmentURL:    row.AttachmentURL,
				CreatedAt:        row.CreatedAt,
			})
			a.Replies = []domain.Reply{}
			out = append(out, a)
			i = len(out) - 1
			index[row.ID] = i
		}

		if row.ReplyID == nil {
			continue
		}
		reply := domain.Reply{
			ID:        *row.ReplyID,
			CommentID: row.ID,
			AuthorID:  row.ReplyAuthorID,
		}
		if row.ReplyAuthorName != nil {
			reply.AuthorName = *row.ReplyAuthorName
		}
		if row.ReplyText != nil {
			reply.Text = *row.ReplyText
		}
		if row.ReplyCreatedAt != nil {
			reply.CreatedAt = *row.ReplyCreatedAt
		}
		out[i].Replies = append(out[i].Replies, reply)
	}

	return out
}

func toDomainComment(row commentRow) domain.Annotation {
	a := domain.Annotation{
		ID:               row.ID,
		SubmissionID:     row.SubmissionID,
		TimestampSeconds: row.TimestampSeconds,
		Text:             row.Text,
		AttachmentURL:    row.AttachmentURL,
		CreatedAt:        row.CreatedAt,
	}
	// The table constraint keeps box columns all-or-none.
	if row.BoxX != nil && row.BoxY != nil && row.BoxWidth != nil && row.BoxHeight != nil {
		a.Box = &domain.Box{X: *row.BoxX, Y: *row.BoxY, Width: *row.BoxWidth, Height: *row.BoxHeight}
	}
	return a
}

func toDomainReply(row replyRow) domain.Reply {
	return domain.Reply{
		ID:         row.ID,
		CommentID:  row.CommentID,
		AuthorID:   row.AuthorID,
		AuthorName: row.AuthorName,
		Text:       row.Text,
		CreatedAt:  row.CreatedAt,
	}
}
