package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/events"
	leaveerrors "github.com/nawamdisilvaaltitude1-collab/hris-project/internal/leave/errors"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/messaging/kafka"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var leaveTypes = map[string]struct{}{
	"vacation":  {},
	"sick":      {},
	"personal":  {},
	"maternity": {},
	"paternity": {},
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actorID string, req SubmitLeaveRequest) (LeaveResponse, error)
	// GetAll applies the visibility rule at the query boundary: without
	// canManage the caller only sees requests for their own employee id.
	GetAll(ctx context.Context, actorID string, canManage bool, status string) ([]LeaveResponse, error)
	GetByID(ctx context.Context, actorID string, canManage bool, id string) (LeaveResponse, error)
	Approve(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actorID, id, comments string) (LeaveResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	policy DayPolicy
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, policy DayPolicy, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, policy, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	policy DayPolicy,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if policy == "" {
		policy = DayPolicyCalendar
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, policy: policy, logger: l}
}

func (s *service) Submit(ctx context.Context, actorID string, req SubmitLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, startDate, endDate, err := s.validateSubmitRequest(req)
	if err != nil {
		s.logger.Warn("submit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	days := s.policy.CountDays(startDate, endDate)
	if days < 1 {
		// A weekend-only range under business counting books nothing.
		return LeaveResponse{}, leaveerrors.ErrEmptyLeavePeriod
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		Reason:     req.Reason,
		Status:     StatusPending,
		AppliedAt:  time.Now().UTC().Truncate(24 * time.Hour),
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := s.queueOutboxEvent(ctx, tx, l, events.LeaveSubmitted, actorID, rid); err != nil {
		s.logger.Error("submit leave outbox persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("submit leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("days", days),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, actorID string, canManage bool, status string) ([]LeaveResponse, error) {
	if canManage {
		leaves, err := s.repo.FindAll(ctx, status)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(leaves), nil
	}

	if _, err := uuid.Parse(actorID); err != nil {
		return nil, leaveerrors.ErrInvalidActorID
	}
	leaves, err := s.repo.FindAllByEmployee(ctx, actorID, status)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, actorID string, canManage bool, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if !canManage && l.EmployeeID.String() != actorID {
		return LeaveResponse{}, leaveerrors.ErrNotRequestOwner
	}

	return mapToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	return s.decide(ctx, actorID, id, StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, actorID, id, comments string) (LeaveResponse, error) {
	var c *string
	if comments != "" {
		c = &comments
	}
	return s.decide(ctx, actorID, id, StatusRejected, c)
}

// decide performs the only legal transitions: pending -> approved and
// pending -> rejected. The status precondition is re-checked at write time so
// two concurrent deciders cannot both win; the loser gets
// ErrInvalidStatusTransition, never a silent success.
func (s *service) decide(ctx context.Context, actorID, id, targetStatus string, comments *string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("decide leave requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", targetStatus),
	)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	now := time.Now().UTC()
	l.Status = targetStatus
	l.ApprovedBy = &actorUUID
	l.ApprovedAt = &now
	if targetStatus == StatusRejected {
		l.Comments = comments
	} else {
		l.Comments = nil
	}

	rows, err := qtx.DecideIfPending(ctx, l)
	if err != nil {
		s.logger.Error("decide leave persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if rows == 0 {
		s.logger.Warn("decide leave rejected, request not pending",
			zap.String("leave_id", id),
			zap.String("target_status", targetStatus),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	if err := s.queueOutboxEvent(ctx, tx, l, events.LeaveDecided, actorID, rid); err != nil {
		s.logger.Error("decide leave outbox persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("decide leave success",
		zap.String("leave_id", id),
		zap.String("status", targetStatus),
		zap.String("actor_id", actorID),
	)

	return mapToResponse(*l), nil
}

func (s *service) queueOutboxEvent(ctx context.Context, tx *sql.Tx, l *LeaveRequest, eventType, actorID, rid string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.LeaveLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		LeaveID:    l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		Status:     l.Status,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave",
		AggregateID:   l.ID.String(),
		EventType:     eventType,
		Topic:         events.LeaveLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) validateSubmitRequest(req SubmitLeaveRequest) (uuid.UUID, time.Time, time.Time, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidEmployeeID
	}
	if _, ok := leaveTypes[req.LeaveType]; !ok {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveType
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return employeeUUID, startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		Days:       l.Days,
		Reason:     l.Reason,
		Status:     l.Status,
		AppliedAt:  l.AppliedAt.Format("2006-01-02"),
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	resp.Comments = l.Comments
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
