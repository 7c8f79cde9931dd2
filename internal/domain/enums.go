package domain

// SubmissionStatus is the review state of a single submission version.
type SubmissionStatus string

const (
	SubmissionStatusSubmitted         SubmissionStatus = "submitted"
	SubmissionStatusRevisionRequested SubmissionStatus = "revision_requested"
	SubmissionStatusApproved          SubmissionStatus = "approved"
	SubmissionStatusSuperseded        SubmissionStatus = "superseded"
)

func (s SubmissionStatus) String() string { return string(s) }

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusSubmitted, SubmissionStatusRevisionRequested,
		SubmissionStatusApproved, SubmissionStatusSuperseded:
		return true
	}
	return false
}

// IsTerminal reports whether no workflow transition may leave this status.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusSuperseded
}

// UploadedBy identifies who put a submission's content in place.
type UploadedBy string

const (
	UploadedByCreator UploadedBy = "creator"
	UploadedByAdmin   UploadedBy = "admin"
)

func (u UploadedBy) String() string { return string(u) }

func (u UploadedBy) IsValid() bool {
	switch u {
	case UploadedByCreator, UploadedByAdmin:
		return true
	}
	return false
}

// Flow selects the version ceiling applied to a chain.
type Flow string

const (
	FlowStandard Flow = "standard"
	FlowExtended Flow = "extended"
)

func (f Flow) String() string { return string(f) }

func (f Flow) IsValid() bool {
	switch f {
	case FlowStandard, FlowExtended:
		return true
	}
	return false
}

// NotificationKind is the type of an outbound workflow notification.
type NotificationKind string

const (
	NotificationRevisionRequested NotificationKind = "RevisionRequested"
	NotificationApproved          NotificationKind = "Approved"
	NotificationNewSubmission     NotificationKind = "NewSubmission"
)

func (k NotificationKind) String() string { return string(k) }

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeSubmission EntityType = "SUBMISSION"
	EntityTypeComment    EntityType = "COMMENT"
	EntityTypeReply      EntityType = "REPLY"
)

func (e EntityType) String() string { return string(e) }

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate     AuditAction = "CREATE"
	AuditActionTransition AuditAction = "TRANSITION"
	AuditActionOverride   AuditAction = "OVERRIDE"
	AuditActionDelete     AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleCreator UserRole = "creator"
	UserRoleAdmin   UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
