package constant

// Queue item / review lifecycle statuses.
const (
	StatusPending   = "pending"
	StatusDraft     = "draft"
	StatusFlagged   = "flagged"
	StatusSubmitted = "submitted"
)

// Audit log actions.
const (
	ActionSkipped           = "skipped"
	ActionSavedDraft        = "saved_draft"
	ActionFlagged           = "flagged"
	ActionSubmitted         = "submitted"
	ActionRereviewRequested = "rereview_requested"
)

// Rereview request statuses. Requests are auto-approved under current policy.
const (
	RereviewApproved = "approved"
	RereviewResolved = "resolved"
)

// Reviewer roles.
const (
	RoleReviewer = "reviewer"
	RoleAdmin    = "admin"
)

// Pub/sub topics.
const (
	TopicReviewFlagged = "review.flagged"
)
