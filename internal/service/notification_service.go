package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/stepperslife/events-service/internal/config"
	"github.com/stepperslife/events-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventStaffAssigned, n.handleStaffAssigned)
	n.dispatcher.Subscribe(events.EventTransferCreated, n.handleTransferCreated)
	n.dispatcher.Subscribe(events.EventTransferAccepted, n.handleTransferAccepted)
	n.dispatcher.Subscribe(events.EventTransferExpired, n.handleTransferExpired)
	n.dispatcher.Subscribe(events.EventTeamMemberAdded, n.handleTeamMemberAdded)
}

func (n *NotificationService) handleStaffAssigned(ctx context.Context, event events.Event) error {
	n.logger.Info("StaffAssigned", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTransferCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("TransferCreated", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTransferAccepted(ctx context.Context, event events.Event) error {
	n.logger.Info("TransferAccepted", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTransferExpired(ctx context.Context, event events.Event) error {
	n.logger.Info("TransferExpired", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTeamMemberAdded(ctx context.Context, event events.Event) error {
	n.logger.Info("TeamMemberAdded", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	n.logger.Debug("email notification (stub)",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)),
	)
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if n.cfg.WebhookURL == "" {
		return
	}
	n.logger.Debug("webhook notification (stub)",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)),
	)
}
