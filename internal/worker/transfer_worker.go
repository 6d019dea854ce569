package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/stepperslife/events-service/internal/persistence"
	"github.com/stepperslife/events-service/internal/service"
)

// TransferWorker expires overdue transfers and sends pending reminders on a
// fixed interval.
type TransferWorker struct {
	transfers *service.TransferService
	redis     *persistence.Redis
	logger    *zap.Logger
	interval  time.Duration
}

// NewTransferWorker constructs the worker.
func NewTransferWorker(transfers *service.TransferService, redis *persistence.Redis, logger *zap.Logger, interval time.Duration) *TransferWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &TransferWorker{transfers: transfers, redis: redis, logger: logger, interval: interval}
}

// Run sweeps until the context is cancelled.
func (w *TransferWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *TransferWorker) sweep(ctx context.Context) {
	now := time.Now()

	expired, err := w.transfers.ExpireStale(ctx, now)
	if err != nil {
		w.logger.Warn("expire sweep failed", zap.Error(err))
	} else if len(expired) > 0 {
		w.logger.Info("transfers expired", zap.Int("count", len(expired)))
	}

	due, err := w.transfers.DueForReminder(ctx, now)
	if err != nil {
		w.logger.Warn("reminder sweep failed", zap.Error(err))
		return
	}
	for _, transfer := range due {
		// Redis SETNX guards against duplicate reminders when multiple
		// instances sweep concurrently.
		if w.redis != nil && w.redis.Client != nil {
			key := "transfer:reminder:" + transfer.ID
			ok, err := w.redis.Client.SetNX(ctx, key, 1, 2*w.interval).Result()
			if err != nil {
				w.logger.Warn("reminder dedupe", zap.String("transfer_id", transfer.ID), zap.Error(err))
				continue
			}
			if !ok {
				continue
			}
		}
		if err := w.transfers.MarkReminderSent(ctx, transfer.ID, now); err != nil {
			w.logger.Warn("mark reminder", zap.String("transfer_id", transfer.ID), zap.Error(err))
			continue
		}
		w.logger.Info("transfer reminder sent",
			zap.String("transfer_id", transfer.ID),
			zap.String("to_email", transfer.ToEmail),
		)
	}
}
