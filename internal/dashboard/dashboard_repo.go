package dashboard

import (
	"context"
	"time"

	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/employee"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/leave"

	"gorm.io/gorm"
)

type groupCount struct {
	Key   string `gorm:"column:key"`
	Count int64  `gorm:"column:count"`
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (total, active int64, err error)
	CountLeavesByStatus(ctx context.Context, status string) (int64, error)
	CountOnLeave(ctx context.Context, day time.Time) (int64, error)
	DepartmentHeadcount(ctx context.Context) (map[string]int64, error)
	LeaveTypeBreakdown(ctx context.Context) (map[string]int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, int64, error) {
	var total, active int64
	if err := r.db.WithContext(ctx).Model(&employee.Employee{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Where("status = ?", employee.StatusActive).
		Count(&active).Error
	return total, active, err
}

func (r *repository) CountLeavesByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&leave.LeaveRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *repository) CountOnLeave(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&leave.LeaveRequest{}).
		Where("status = ? AND start_date <= ? AND end_date >= ?", leave.StatusApproved, day, day).
		Count(&count).Error
	return count, err
}

func (r *repository) DepartmentHeadcount(ctx context.Context) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Select("department AS key, COUNT(*) AS count").
		Where("status = ?", employee.StatusActive).
		Group("department").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toMap(rows), nil
}

func (r *repository) LeaveTypeBreakdown(ctx context.Context) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).
		Model(&leave.LeaveRequest{}).
		Select("leave_type AS key, COUNT(*) AS count").
		Group("leave_type").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toMap(rows), nil
}

func toMap(rows []groupCount) map[string]int64 {
	m := make(map[string]int64, len(rows))
	for _, row := range rows {
		m[row.Key] = row.Count
	}
	return m
}
