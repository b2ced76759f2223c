package types

// Status is a type for the lifecycle status of a persisted record.
// Clients are never hard-deleted, only archived.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
	StatusDeleted  Status = "deleted"
)
