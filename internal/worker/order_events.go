package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/queue"
	"github.com/Noir-tsu/4Foods-admin/internal/service"
	"go.uber.org/zap"
)

type OrderEventsWorker struct {
	orderService *service.OrderService
	broker       queue.Broker
	logger       *zap.SugaredLogger
	ctx          context.Context
	cancel       context.CancelFunc
}

func NewOrderEventsWorker(
	orderService *service.OrderService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderEventsWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &OrderEventsWorker{
		orderService: orderService,
		broker:       broker,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (w *OrderEventsWorker) Start() error {
	w.logger.Info("starting order events worker")

	return w.broker.Subscribe(w.ctx, queue.QueueOrderEvents, w.handleMessage)
}

func (w *OrderEventsWorker) Stop() {
	w.logger.Info("stopping order events worker")
	w.cancel()
}

func (w *OrderEventsWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.OrderStatusEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("processing order event", "order_id", event.OrderID, "event_type", event.EventType)

	if err := w.orderService.ProcessOrderStatusEvent(ctx, event); err != nil {
		w.logger.Errorw("failed to process order event", "order_id", event.OrderID, "error", err)
		return err
	}

	return nil
}
