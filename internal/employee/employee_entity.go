package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee is a directory record, deliberately decoupled from the auth User:
// records are created and deleted on their own lifecycle, and ManagerID is a
// weak reference with no enforced ownership.
type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string     `gorm:"type:varchar(20);uniqueIndex:uq_employee_number;not null"`
	FullName       string     `gorm:"type:varchar(255);not null"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex:uq_employee_email;not null"`
	Department     string     `gorm:"type:varchar(100);index"`
	Position       string     `gorm:"type:varchar(100)"`
	JoiningDate    *time.Time `gorm:"type:date"`
	Salary         int64      `gorm:"type:bigint"`
	Skills         []string   `gorm:"serializer:json;type:jsonb"`
	ManagerID      *uuid.UUID `gorm:"type:uuid"`
	Status         string     `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}
