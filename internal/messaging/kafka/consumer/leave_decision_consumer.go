package consumer

import (
	"context"
	"encoding/json"

	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/bootstrap"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveLifecycle writes an audit record for every leave decision so
// approvals and rejections leave a durable trail outside the API database.
func ConsumeLeaveLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_lifecycle")
	log.Info("leave lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave lifecycle consumer stopped")
				return
			}
			log.Error("fetch leave lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.LeaveLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  event.EventType,
			Message: "leave " + event.LeaveID + " is " + event.Status,
			Meta: map[string]any{
				"leave_id":    event.LeaveID,
				"employee_id": event.EmployeeID,
				"status":      event.Status,
				"actor_id":    event.ActorID,
				"occurred_at": event.OccurredAt,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("leave lifecycle event audited",
			zap.String("leave_id", event.LeaveID),
			zap.String("status", event.Status),
		)
	}
}
