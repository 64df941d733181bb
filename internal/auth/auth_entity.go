package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// User is an account in the company directory. Accounts are created pending
// and stay unusable until an administrator approves them; the role column
// holds one of the rbac roles and never changes after assignment.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex:uq_users_email;not null"`
	Password    string    `gorm:"type:varchar(255);not null"`
	Role        string    `gorm:"type:varchar(20);not null;default:'employee'"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Department  string    `gorm:"type:varchar(100)"`
	Position    string    `gorm:"type:varchar(100)"`
	JoiningDate *time.Time `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
