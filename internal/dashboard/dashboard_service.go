package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/leave"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	metricsCacheKey   = "dashboard:metrics"
	analyticsCacheKey = "dashboard:analytics"
	cacheTTL          = 60 * time.Second
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Metrics(ctx context.Context) (Metrics, error)
	Analytics(ctx context.Context) (Analytics, error)
}

type service struct {
	repo   Repository
	cache  *redis.Client
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, cache *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, cache: cache, logger: l}
}

func (s *service) Metrics(ctx context.Context) (Metrics, error) {
	var cached Metrics
	if s.readCache(ctx, metricsCacheKey, &cached) {
		return cached, nil
	}

	// singleflight collapses a stampede of dashboard loads after the cache
	// entry expires into one set of aggregate queries.
	v, err, _ := s.group.Do(metricsCacheKey, func() (any, error) {
		m, err := s.computeMetrics(ctx)
		if err != nil {
			return Metrics{}, err
		}
		s.writeCache(ctx, metricsCacheKey, m)
		return m, nil
	})
	if err != nil {
		return Metrics{}, err
	}
	return v.(Metrics), nil
}

func (s *service) Analytics(ctx context.Context) (Analytics, error) {
	var cached Analytics
	if s.readCache(ctx, analyticsCacheKey, &cached) {
		return cached, nil
	}

	v, err, _ := s.group.Do(analyticsCacheKey, func() (any, error) {
		a, err := s.computeAnalytics(ctx)
		if err != nil {
			return Analytics{}, err
		}
		s.writeCache(ctx, analyticsCacheKey, a)
		return a, nil
	})
	if err != nil {
		return Analytics{}, err
	}
	return v.(Analytics), nil
}

func (s *service) computeMetrics(ctx context.Context) (Metrics, error) {
	total, active, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return Metrics{}, err
	}
	pending, err := s.repo.CountLeavesByStatus(ctx, leave.StatusPending)
	if err != nil {
		return Metrics{}, err
	}
	approved, err := s.repo.CountLeavesByStatus(ctx, leave.StatusApproved)
	if err != nil {
		return Metrics{}, err
	}
	onLeave, err := s.repo.CountOnLeave(ctx, time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		return Metrics{}, err
	}

	return Metrics{
		TotalEmployees:  total,
		ActiveEmployees: active,
		PendingLeaves:   pending,
		ApprovedLeaves:  approved,
		OnLeaveToday:    onLeave,
	}, nil
}

func (s *service) computeAnalytics(ctx context.Context) (Analytics, error) {
	headcount, err := s.repo.DepartmentHeadcount(ctx)
	if err != nil {
		return Analytics{}, err
	}
	breakdown, err := s.repo.LeaveTypeBreakdown(ctx)
	if err != nil {
		return Analytics{}, err
	}
	return Analytics{DepartmentHeadcount: headcount, LeaveTypeBreakdown: breakdown}, nil
}

// readCache fills dst from redis; any miss or decode failure falls through to
// the database, never to the caller.
func (s *service) readCache(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("dashboard cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("dashboard cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *service) writeCache(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
