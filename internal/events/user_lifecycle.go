package events

import "time"

const UserLifecycleTopic = "hr.user.lifecycle.v1"

const (
	UserRegistered = "user_registered"
	UserApproved   = "user_approved"
)

type UserLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	ApprovedBy string    `json:"approved_by,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
