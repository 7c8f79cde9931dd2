package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SlotKind distinguishes the shapes of content slot within an application.
type SlotKind string

const (
	SlotKindDefault SlotKind = "default"
	SlotKindWeek    SlotKind = "week"
	SlotKindVideo   SlotKind = "video"
)

// SlotKey identifies one content slot of an application: a week number,
// a video index, or the single default slot.
type SlotKey struct {
	Kind  SlotKind
	Index int
}

// DefaultSlot returns the key of the single-slot variant.
func DefaultSlot() SlotKey { return SlotKey{Kind: SlotKindDefault} }

// WeekSlot returns the key for the given week number (1-based).
func WeekSlot(n int) SlotKey { return SlotKey{Kind: SlotKindWeek, Index: n} }

// VideoSlot returns the key for the given video index (1-based).
func VideoSlot(n int) SlotKey { return SlotKey{Kind: SlotKindVideo, Index: n} }

// String renders the slot as "default", "week:N" or "video:N".
func (k SlotKey) String() string {
	if k.Kind == SlotKindDefault {
		return string(SlotKindDefault)
	}
	return fmt.Sprintf("%s:%d", k.Kind, k.Index)
}

// Validate checks that the kind is known and the index matches it.
func (k SlotKey) Validate() error {
	switch k.Kind {
	case SlotKindDefault:
		if k.Index != 0 {
			return NewValidationError("slot", "default slot takes no index")
		}
	case SlotKindWeek, SlotKindVideo:
		if k.Index < 1 {
			return NewValidationError("slot", "index must be >= 1")
		}
	default:
		return NewValidationError("slot", "unknown slot kind")
	}
	return nil
}

// ParseSlotKey parses the String form of a SlotKey.
func ParseSlotKey(s string) (SlotKey, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == string(SlotKindDefault) {
		return DefaultSlot(), nil
	}

	kind, raw, ok := strings.Cut(s, ":")
	if !ok {
		return SlotKey{}, NewValidationError("slot", "expected kind:index")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return SlotKey{}, NewValidationError("slot", "index must be an integer")
	}

	key := SlotKey{Kind: SlotKind(kind), Index: n}
	if err := key.Validate(); err != nil {
		return SlotKey{}, err
	}
	return key, nil
}

// ChainKey identifies a version chain. Two submissions are in the same chain
// iff their ApplicationID and Slot match.
type ChainKey struct {
	ApplicationID uuid.UUID
	Slot          SlotKey
}

func (c ChainKey) String() string {
	return c.ApplicationID.String() + "/" + c.Slot.String()
}

// Validate checks both parts of the key.
func (c ChainKey) Validate() error {
	if c.ApplicationID == uuid.Nil {
		return NewValidationError("application_id", "required")
	}
	return c.Slot.Validate()
}

// Submission is one uploaded version of a slot's content.
type Submission struct {
	ID              uuid.UUID
	ApplicationID   uuid.UUID
	Slot            SlotKey
	Version         int
	ContentURL      string
	CleanContentURL *string
	Title           *string
	Caption         *string
	Status          SubmissionStatus
	Feedback        *string
	UploadedBy      UploadedBy
	CreatedAt       time.Time
	SubmittedAt     time.Time
}

// Chain returns the key of the chain this submission belongs to.
func (s Submission) Chain() ChainKey {
	return ChainKey{ApplicationID: s.ApplicationID, Slot: s.Slot}
}

// ContentLocation is where an uploaded artifact can be resolved.
type ContentLocation struct {
	Path string
	URL  string
}
