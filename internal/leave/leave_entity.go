package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveRequest tracks one absence application. Status only ever moves
// pending -> approved or pending -> rejected; both terminal states are final.
// ApprovedBy, ApprovedAt, and Comments stay unset until a terminal transition.
type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee"`

	LeaveType string    `gorm:"type:varchar(20);not null"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Days      int       `gorm:"type:int;not null;default:1"`
	Reason    string    `gorm:"type:text"`

	Status     string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_leaves_status"`
	AppliedAt  time.Time  `gorm:"type:date;not null"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt *time.Time
	Comments   *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_leaves_deleted_at"`
}
