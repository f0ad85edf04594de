package models

import "time"

// Classification is the computed relationship between a user and a category.
// It is recomputed from store state on every request, never cached.
type Classification string

const (
	// ClassificationOwner - the user created the category.
	ClassificationOwner Classification = "OWNER"
	// ClassificationGranted - an access request was approved.
	ClassificationGranted Classification = "GRANTED"
	// ClassificationPending - the latest access request is undecided.
	ClassificationPending Classification = "PENDING"
	// ClassificationNone - no relationship.
	ClassificationNone Classification = "NONE"
)

// CanWrite reports whether the classification allows mutating the category's
// questions.
func (c Classification) CanWrite() bool {
	return c == ClassificationOwner || c == ClassificationGranted
}

// Category groups questions under exactly one owning user. OwnerID is set at
// creation and never changes.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryView is a category joined with the caller-specific projection the
// client renders from: the owner's display name, the caller's classification
// and the status of their latest access request (empty if none).
type CategoryView struct {
	Category
	OwnerName      string         `json:"owner_name"`
	Classification Classification `json:"classification"`
	HasPermission  bool           `json:"has_permission"`
	RequestStatus  string         `json:"request_status"`
}
