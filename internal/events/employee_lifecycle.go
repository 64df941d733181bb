package events

import "time"

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const EmployeeCreated = "employee_created"

type EmployeeCreatedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	EmployeeID     string    `json:"employee_id"`
	EmployeeNumber string    `json:"employee_number"`
	OccurredAt     time.Time `json:"occurred_at"`
}
