// Package submission implements the Submission repository using PostgreSQL.
// Queries are built with squirrel and scanned with pgxscan.
package submission

import (
	"context"
	"errors"
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
	table = "submissions"

	// chainVersionConstraint backs the one-version-per-chain rule.
	chainVersionConstraint = "ux_submissions_chain_version"
)

var columns = []string{
	"id", "application_id", "slot_kind", "slot_index", "version",
	"content_url", "clean_content_url", "title", "caption",
	"status", "feedback", "uploaded_by", "created_at", "submitted_at",
}

// row is the scan target for a submissions row.
type row struct {
	ID              uuid.UUID `db:"id"`
	ApplicationID   uuid.UUID `db:"application_id"`
	SlotKind        string    `db:"slot_kind"`
	SlotIndex       int       `db:"slot_index"`
	Version         int       `db:"version"`
	ContentURL      string    `db:"content_url"`
	CleanContentURL *string   `db:"clean_content_url"`
	Title           *string   `db:"title"`
	Caption         *string   `db:"caption"`
	Status          string    `db:"status"`
	Feedback        *string   `db:"feedback"`
	UploadedBy      string    `db:"uploaded_by"`
	CreatedAt       time.Time `db:"created_at"`
	SubmittedAt     time.Time `db:"submitted_at"`
}

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new submission repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Chain critical section
// ---------------------------------------------------------------------------

const lockChainSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

// LockChain takes a transaction-scoped advisory lock on the chain key.
// The lock is released on commit or rollback, so it must run inside TxManager.RunInTx.
func (r *Repo) LockChain(ctx context.Context, chain domain.ChainKey) error {
	if !postgres.InTx(ctx) {
		return fmt.Errorf("lock chain %s: no transaction in context", chain)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, lockChainSQL, chain.String()); err != nil {
		return postgres.MapError(err, "submission_chain", chain)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// MaxVersion returns the highest version in the chain, or 0 for an empty chain.
func (r *Repo) MaxVersion(ctx context.Context, chain domain.ChainKey) (int, error) {
	query, args, err := postgres.Builder.
		Select("COALESCE(MAX(version), 0)").
		From(table).
		Where(chainEq(chain)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build max version query: %w", err)
	}

	var version int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&version); err != nil {
		return 0, postgres.MapError(err, "submission_chain", chain)
	}
	return version, nil
}

// GetCurrent returns the highest-version submission of the chain regardless of status.
// Returns (nil, nil) for an empty chain.
func (r *Repo) GetCurrent(ctx context.Context, chain domain.ChainKey) (*domain.Submission, error) {
	query, args, err := selectBuilder().
		Where(chainEq(chain)).
		OrderBy("version DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build current submission query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, postgres.MapError(err, "submission_chain", chain)
	}

	s, err := toDomain(rw)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListChain returns every submission of the chain ordered by version ascending.
func (r *Repo) ListChain(ctx context.Context, chain domain.ChainKey) ([]domain.Submission, error) {
	query, args, err := selectBuilder().
		Where(chainEq(chain)).
		OrderBy("version ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list chain query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "submission_chain", chain)
	}

	out := make([]domain.Submission, 0, len(rows))
	for _, rw := range rows {
		s, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// GetByID returns a submission by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	query, args, err := selectBuilder().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get submission query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "submission", id)
	}

	s, err := toDomain(rw)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new submission and returns the persisted row.
// A second row for the same chain version fails with domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, s domain.Submission) (*domain.Submission, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(
			s.ID, s.ApplicationID, string(s.Slot.Kind), s.Slot.Index, s.Version,
			s.ContentURL, s.CleanContentURL, s.Title, s.Caption,
			string(s.Status), s.Feedback, string(s.UploadedBy), s.CreatedAt, s.SubmittedAt,
		).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert submission query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		if postgres.IsUniqueViolation(err, chainVersionConstraint) {
			return nil, fmt.Errorf("submission %s v%d: %w", s.Chain(), s.Version, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "submission", s.ID)
	}

	out, err := toDomain(rw)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus moves a submission from p.From to p.To only if its stored status is still p.From.
// When the row exists with another status, a *domain.TransitionError naming the
// actual status is returned.
func (r *Repo) UpdateStatus(ctx context.Context, p domain.StatusUpdateParams) (*domain.Submission, error) {
	b := postgres.Builder.
		Update(table).
		Set("status", string(p.To)).
		Where(squirrel.Eq{"id": p.ID, "status": string(p.From)}).
		Suffix(returning())
	if p.Feedback != nil {
		b = b.Set("feedback", *p.Feedback)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update status query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var rw row
	err = pgxscan.Get(ctx, q, &rw, query, args...)
	if err == nil {
		s, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		return &s, nil
	}
	if !pgxscan.NotFound(err) {
		return nil, postgres.MapError(err, "submission", p.ID)
	}

	// Lost the race or never matched: report what the row holds now.
	current, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return nil, &domain.TransitionError{From: current.Status, To: p.To}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func selectBuilder() squirrel.SelectBuilder {
	return postgres.Builder.Select(columns...).From(table)
}

func chainEq(chain domain.ChainKey) squirrel.Eq {
	return squirrel.Eq{
		"application_id": chain.ApplicationID,
		"slot_kind":      string(chain.Slot.Kind),
		"slot_index":     chain.Slot.Index,
	}
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// toDomain converts a scanned row into a domain.Submission.
func toDomain(rw row) (domain.Submission, error) {
	slot := domain.SlotKey{Kind: domain.SlotKind(rw.SlotKind), Index: rw.SlotIndex}
	if err := slot.Validate(); err != nil {
		return domain.Submission{}, fmt.Errorf("submission %s: stored slot: %w", rw.ID, err)
	}

	status := domain.SubmissionStatus(rw.Status)
	if !status.IsValid() {
		return domain.Submission{}, fmt.Errorf("submission %s: stored status %q: %w", rw.ID, rw.Status, errUnknownValue)
	}

	return domain.Submission{
		ID:              rw.ID,
		ApplicationID:   rw.ApplicationID,
		Slot:            slot,
		Version:         rw.Version,
		ContentURL:      rw.ContentURL,
		CleanContentURL: rw.CleanContentURL,
		Title:           rw.Title,
		Caption:         rw.Caption,
		Status:          status,
		Feedback:        rw.Feedback,
		UploadedBy:      domain.UploadedBy(rw.UploadedBy),
		CreatedAt:       rw.CreatedAt,
		SubmittedAt:     rw.SubmittedAt,
	}, nil
}

var errUnknownValue = errors.New("unknown enum value")
