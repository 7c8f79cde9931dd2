package domain

import (
	"hash/fnv"
	"time"

	"github.com/google/uuid"
)

// Box is a bounding-box marker with coordinates normalized to [0, 1].
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Annotation is a timestamp-anchored review comment on one submission version.
type Annotation struct {
	ID               uuid.UUID
	SubmissionID     uuid.UUID
	TimestampSeconds float64
	Box              *Box
	Text             string
	AttachmentURL    *string
	CreatedAt        time.Time

	// Replies is populated by joined reads, insertion ordered.
	Replies []Reply
}

// DisplayBox returns the stored box or, when absent, a stable position derived from the ID.
// The fallback is for presentation only and is never persisted.
func (a Annotation) DisplayBox() Box {
	if a.Box != nil {
		return *a.Box
	}

	h := fnv.New32a()
	h.Write(a.ID[:]) //nolint:errcheck
	sum := h.Sum32()

	const size = 0.2
	return Box{
		X:      float64(sum%61) / 100,
		Y:      float64((sum/61)%61) / 100,
		Width:  size,
		Height: size,
	}
}

// Reply is a threaded answer to an annotation.
type Reply struct {
	ID         uuid.UUID
	CommentID  uuid.UUID
	AuthorID   *uuid.UUID
	AuthorName string
	Text       string
	CreatedAt  time.Time
}

// VersionedAnnotation is an annotation paired with the version it was left on.
type VersionedAnnotation struct {
	Version int
	Annotation
}
