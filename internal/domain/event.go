package domain

import (
	"hash/fnv"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NotificationEvent is emitted after a successful workflow step and handed to
// the notification collaborator. Delivery is best effort.
type NotificationEvent struct {
	ID            uuid.UUID
	Kind          NotificationKind
	SubmissionID  uuid.UUID
	ApplicationID uuid.UUID
	RecipientRef  string
	TemplateID    string
	Variables     map[string]string
	OccurredAt    time.Time
}

// NewSubmissionEvent builds an event about s with the submission's identifying
// variables filled in. An empty recipientRef falls back to the application ID,
// which the downstream sender resolves to a contact.
func NewSubmissionEvent(kind NotificationKind, s Submission, recipientRef, templateID string, at time.Time) NotificationEvent {
	if recipientRef == "" {
		recipientRef = s.ApplicationID.String()
	}
	return NotificationEvent{
		ID:            uuid.New(),
		Kind:          kind,
		SubmissionID:  s.ID,
		ApplicationID: s.ApplicationID,
		RecipientRef:  recipientRef,
		TemplateID:    templateID,
		Variables: map[string]string{
			"submission_id":  s.ID.String(),
			"application_id": s.ApplicationID.String(),
			"slot":           s.Slot.String(),
			"version":        strconv.Itoa(s.Version),
		},
		OccurredAt: at,
	}
}

// DedupKey identifies the workflow step an event reports, independent of the
// event ID: kind, submission and version. Revision requests also carry a hash
// of the feedback, so a new request after a reopen is not mistaken for a replay.
func (e NotificationEvent) DedupKey() string {
	key := e.Kind.String() + ":" + e.SubmissionID.String() + ":" + e.Variables["version"]
	if e.Kind == NotificationRevisionRequested {
		h := fnv.New64a()
		_, _ = h.Write([]byte(e.Variables["feedback"]))
		key += ":" + strconv.FormatUint(h.Sum64(), 16)
	}
	return key
}

// AuditRecord is an append-only record of a mutation.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     *uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
