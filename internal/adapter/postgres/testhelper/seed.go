package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

// NewChain returns a chain key for a fresh application so tests sharing the
// container never collide.
func NewChain(slot domain.SlotKey) domain.ChainKey {
	return domain.ChainKey{ApplicationID: uuid.New(), Slot: slot}
}

// SeedSubmission inserts a submission row directly, bypassing the workflow.
func SeedSubmission(t *testing.T, pool *pgxpool.Pool, chain domain.ChainKey, version int, status domain.SubmissionStatus) domain.Submission {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Submission{
		ID:            uuid.New(),
		ApplicationID: chain.ApplicationID,
		Slot:          chain.Slot,
		Version:       version,
		ContentURL:    "https://cdn.example.com/campaign-videos/seed-" + uuid.New().String()[:8] + ".mp4",
		Status:        status,
		UploadedBy:    domain.UploadedByCreator,
		CreatedAt:     now,
		SubmittedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO submissions (id, application_id, slot_kind, slot_index, version, content_url,
		                          status, uploaded_by, created_at, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.ApplicationID, string(s.Slot.Kind), s.Slot.Index, s.Version, s.ContentURL,
		string(s.Status), string(s.UploadedBy), s.CreatedAt, s.SubmittedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubmission insert: %v", err)
	}

	return s
}

// SeedComment inserts an annotation without a box on the given submission.
func SeedComment(t *testing.T, pool *pgxpool.Pool, submissionID uuid.UUID, timestamp float64, text string) domain.Annotation {
	t.Helper()
	ctx := context.Background()

	a := domain.Annotation{
		ID:               uuid.New(),
		SubmissionID:     submissionID,
		TimestampSeconds: timestamp,
		Text:             text,
		CreatedAt:        time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO submission_comments (id, submission_id, timestamp_seconds, text, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.SubmissionID, a.TimestampSeconds, a.Text, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment insert: %v", err)
	}

	return a
}

// CountRows returns the number of rows in table matching id.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string, id uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(), `SELECT count(*) FROM `+table+` WHERE id = $1`, id).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
