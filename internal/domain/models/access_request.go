package models

import "time"

// RequestStatus is the lifecycle state of an access request.
type RequestStatus string

const (
	// StatusPending - created, awaiting the owner's decision.
	StatusPending RequestStatus = "PENDING"
	// StatusApproved - granted; terminal.
	StatusApproved RequestStatus = "APPROVED"
	// StatusRejected - denied; terminal. The requester may open a fresh
	// PENDING request afterwards.
	StatusRejected RequestStatus = "REJECTED"
)

// Terminal reports whether the status can no longer change.
func (s RequestStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Valid reports whether s is one of the known statuses.
func (s RequestStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// AccessRequest records a non-owner asking for write access to a category.
// At most one PENDING row may exist per (category, requester) pair; terminal
// rows are retained for audit.
type AccessRequest struct {
	ID          string        `json:"id"`
	CategoryID  string        `json:"category_id"`
	RequesterID string        `json:"requester_id"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	DecidedAt   *time.Time    `json:"decided_at,omitempty"`
}

// AccessRequestView is an access request joined with the requester's
// identity for the owner's review list.
type AccessRequestView struct {
	AccessRequest
	Requester RequesterInfo `json:"user"`
}

// RequesterInfo is the slice of user identity shown to category owners.
type RequesterInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
