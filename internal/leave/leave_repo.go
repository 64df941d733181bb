package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindAll(ctx context.Context, status string) ([]LeaveRequest, error)
	FindAllByEmployee(ctx context.Context, employeeID, status string) ([]LeaveRequest, error)
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	// DecideIfPending writes the terminal fields only when the row is still
	// pending, and reports how many rows changed. This is the check-and-set
	// that keeps two simultaneous approvals from both succeeding.
	DecideIfPending(ctx context.Context, l *LeaveRequest) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context, status string) ([]LeaveRequest, error) {
	db := r.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var leaves []LeaveRequest
	err := db.Order("applied_at DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID, status string) ([]LeaveRequest, error) {
	db := r.db.WithContext(ctx).Where("employee_id = ?", employeeID)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var leaves []LeaveRequest
	err := db.Order("applied_at DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) DecideIfPending(ctx context.Context, l *LeaveRequest) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ? AND status = ?", l.ID, StatusPending).
		Updates(map[string]any{
			"status":      l.Status,
			"approved_by": l.ApprovedBy,
			"approved_at": l.ApprovedAt,
			"comments":    l.Comments,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	db := r.db.WithContext(ctx).Model(&LeaveRequest{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Count(&count).Error
	return count, err
}
