package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"todoapp/domain/ports"
	"todoapp/pkg/logger"
)

// SubjectTaskReminders is the subject reminder events are published on.
const SubjectTaskReminders = "todoapp.reminders"

// NATSReminderPublisher publishes task reminders to NATS.
type NATSReminderPublisher struct {
	conn *nats.Conn
}

func NewNATSReminderPublisher(url string) (*NATSReminderPublisher, error) {
	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSReminderPublisher{conn: nc}, nil
}

func (p *NATSReminderPublisher) NotifyTaskReminder(ctx context.Context, reminder *ports.TaskReminder) error {
	data, err := json.Marshal(reminder)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder: %w", err)
	}

	if err := p.conn.Publish(SubjectTaskReminders, data); err != nil {
		logger.ErrorContext(ctx, "Failed to publish task reminder",
			"task_id", reminder.TaskID,
			"error", err,
		)
		return fmt.Errorf("failed to publish reminder: %w", err)
	}

	logger.InfoContext(ctx, "Task reminder published",
		"task_id", reminder.TaskID,
		"user_id", reminder.UserID,
	)
	return nil
}

func (p *NATSReminderPublisher) IsEnabled() bool {
	return p.conn != nil && p.conn.IsConnected()
}

func (p *NATSReminderPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
