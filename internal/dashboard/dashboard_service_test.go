package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/dashboard"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeDashboardRepository struct {
	countEmployeesFn      func(ctx context.Context) (int64, int64, error)
	countLeavesByStatusFn func(ctx context.Context, status string) (int64, error)
	countOnLeaveFn        func(ctx context.Context, day time.Time) (int64, error)
	departmentHeadcountFn func(ctx context.Context) (map[string]int64, error)
	leaveTypeBreakdownFn  func(ctx context.Context) (map[string]int64, error)

	calls int
}

func (f *fakeDashboardRepository) CountEmployees(ctx context.Context) (int64, int64, error) {
	f.calls++
	if f.countEmployeesFn != nil {
		return f.countEmployeesFn(ctx)
	}
	return 0, 0, nil
}

func (f *fakeDashboardRepository) CountLeavesByStatus(ctx context.Context, status string) (int64, error) {
	f.calls++
	if f.countLeavesByStatusFn != nil {
		return f.countLeavesByStatusFn(ctx, status)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) CountOnLeave(ctx context.Context, day time.Time) (int64, error) {
	f.calls++
	if f.countOnLeaveFn != nil {
		return f.countOnLeaveFn(ctx, day)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) DepartmentHeadcount(ctx context.Context) (map[string]int64, error) {
	f.calls++
	if f.departmentHeadcountFn != nil {
		return f.departmentHeadcountFn(ctx)
	}
	return nil, nil
}

func (f *fakeDashboardRepository) LeaveTypeBreakdown(ctx context.Context) (map[string]int64, error) {
	f.calls++
	if f.leaveTypeBreakdownFn != nil {
		return f.leaveTypeBreakdownFn(ctx)
	}
	return nil, nil
}

func TestDashboardService_Metrics(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss computes and stores", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := &fakeDashboardRepository{
			countEmployeesFn: func(ctx context.Context) (int64, int64, error) {
				return 40, 38, nil
			},
			countLeavesByStatusFn: func(ctx context.Context, status string) (int64, error) {
				if status == "pending" {
					return 4, nil
				}
				return 11, nil
			},
			countOnLeaveFn: func(ctx context.Context, day time.Time) (int64, error) {
				return 3, nil
			},
		}
		svc := dashboard.NewService(repo, rdb)

		expected := dashboard.Metrics{
			TotalEmployees:  40,
			ActiveEmployees: 38,
			PendingLeaves:   4,
			ApprovedLeaves:  11,
			OnLeaveToday:    3,
		}
		payload, err := json.Marshal(expected)
		assert.NoError(t, err)

		mock.ExpectGet("dashboard:metrics").RedisNil()
		mock.ExpectSet("dashboard:metrics", payload, 60*time.Second).SetVal("OK")

		got, err := svc.Metrics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := &fakeDashboardRepository{}
		svc := dashboard.NewService(repo, rdb)

		cached := dashboard.Metrics{TotalEmployees: 40, ActiveEmployees: 38}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)

		mock.ExpectGet("dashboard:metrics").SetVal(string(payload))

		got, err := svc.Metrics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, cached, got)
		assert.Zero(t, repo.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis outage falls back to the database", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := &fakeDashboardRepository{
			countEmployeesFn: func(ctx context.Context) (int64, int64, error) {
				return 7, 7, nil
			},
		}
		svc := dashboard.NewService(repo, rdb)

		mock.ExpectGet("dashboard:metrics").SetErr(errors.New("connection refused"))
		// The write-back is best effort too.
		mock.Regexp().ExpectSet("dashboard:metrics", `.*`, 60*time.Second).SetErr(errors.New("connection refused"))

		got, err := svc.Metrics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), got.TotalEmployees)
	})

	t.Run("negative repo error", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := &fakeDashboardRepository{
			countEmployeesFn: func(ctx context.Context) (int64, int64, error) {
				return 0, 0, errors.New("db error")
			},
		}
		svc := dashboard.NewService(repo, rdb)

		mock.ExpectGet("dashboard:metrics").RedisNil()

		_, err := svc.Metrics(ctx)

		assert.Error(t, err)
	})
}

func TestDashboardService_Analytics(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss computes breakdowns", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := &fakeDashboardRepository{
			departmentHeadcountFn: func(ctx context.Context) (map[string]int64, error) {
				return map[string]int64{"Engineering": 18, "Sales": 9}, nil
			},
			leaveTypeBreakdownFn: func(ctx context.Context) (map[string]int64, error) {
				return map[string]int64{"vacation": 12, "sick": 5}, nil
			},
		}
		svc := dashboard.NewService(repo, rdb)

		expected := dashboard.Analytics{
			DepartmentHeadcount: map[string]int64{"Engineering": 18, "Sales": 9},
			LeaveTypeBreakdown:  map[string]int64{"vacation": 12, "sick": 5},
		}
		payload, err := json.Marshal(expected)
		assert.NoError(t, err)

		mock.ExpectGet("dashboard:analytics").RedisNil()
		mock.ExpectSet("dashboard:analytics", payload, 60*time.Second).SetVal("OK")

		got, err := svc.Analytics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
