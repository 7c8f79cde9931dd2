package domain

import "github.com/google/uuid"

// transitions lists the workflow transitions allowed out of each status.
// approved and superseded are terminal and have no entry.
var transitions = map[SubmissionStatus][]SubmissionStatus{
	SubmissionStatusSubmitted: {
		SubmissionStatusRevisionRequested,
		SubmissionStatusApproved,
		SubmissionStatusSuperseded,
	},
	SubmissionStatusRevisionRequested: {
		SubmissionStatusSuperseded,
	},
}

// CanTransition reports whether the workflow may move a submission from one status to another.
func CanTransition(from, to SubmissionStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns a *TransitionError when from -> to is not allowed.
func CheckTransition(from, to SubmissionStatus) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// CanReopen reports whether an admin override may move a submission back to submitted.
// The override is separate from the workflow table: it applies to reviewed
// versions only, never to superseded history.
func CanReopen(from SubmissionStatus) bool {
	return from == SubmissionStatusApproved || from == SubmissionStatusRevisionRequested
}

// StatusUpdateParams describes a compare-and-swap status write: the row moves
// to To only while it still holds From. Feedback is stored only when non-nil.
type StatusUpdateParams struct {
	ID       uuid.UUID
	From     SubmissionStatus
	To       SubmissionStatus
	Feedback *string
}
