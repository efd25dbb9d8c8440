package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/queue"
	"github.com/Noir-tsu/4Foods-admin/internal/repo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var ErrOrderNotPending = errors.New("order is not pending")

type OrderService struct {
	orderRepo        repo.OrderRepository
	notificationRepo repo.NotificationRepository
	broker           queue.Broker
	logger           *zap.SugaredLogger
}

func NewOrderService(
	orderRepo repo.OrderRepository,
	notificationRepo repo.NotificationRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo:        orderRepo,
		notificationRepo: notificationRepo,
		broker:           broker,
		logger:           logger,
	}
}

// Approve moves a pending order to approved and publishes the transition.
func (s *OrderService) Approve(ctx context.Context, id primitive.ObjectID, actorID primitive.ObjectID) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.OrderStatusPending {
		return nil, fmt.Errorf("%w: status is %s", ErrOrderNotPending, order.Status)
	}

	updated, err := s.orderRepo.Approve(ctx, id, actorID, time.Now())
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, domain.EventOrderApproved, order, updated, "", actorID)

	return updated, nil
}

// Reject marks an order rejected with a reason. Unlike Approve it accepts
// orders in any state; the admin can pull back an already processing order.
func (s *OrderService) Reject(ctx context.Context, id primitive.ObjectID, actorID primitive.ObjectID, reason string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.Reject(ctx, id, actorID, reason, time.Now())
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, domain.EventOrderRejected, order, updated, reason, actorID)

	return updated, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus, actorID primitive.ObjectID) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, domain.EventOrderStatusChanged, order, updated, "", actorID)

	return updated, nil
}

// publishEvent is best effort: the status change is already committed, so a
// broker failure costs a notification, not the transition.
func (s *OrderService) publishEvent(ctx context.Context, eventType string, before, after *domain.Order, reason string, actorID primitive.ObjectID) {
	event := domain.OrderStatusEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		OrderID:   after.OrderID,
		OrderHex:  after.ID.Hex(),
		OldStatus: before.Status,
		NewStatus: after.Status,
		Reason:    reason,
		ActorID:   actorID.Hex(),
		Timestamp: time.Now(),
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal order event", "order_id", event.OrderID, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueueOrderEvents, eventBytes); err != nil {
		s.logger.Errorw("failed to publish order event", "order_id", event.OrderID, "error", err)
		return
	}

	s.logger.Infow("order event published",
		"order_id", event.OrderID, "event_type", eventType,
		"old_status", event.OldStatus, "new_status", event.NewStatus)
}

// ProcessOrderStatusEvent materializes an order event into an admin
// notification. Called by the order events worker.
func (s *OrderService) ProcessOrderStatusEvent(ctx context.Context, event domain.OrderStatusEvent) error {
	var title string
	switch event.EventType {
	case domain.EventOrderApproved:
		title = "Order approved"
	case domain.EventOrderRejected:
		title = "Order rejected"
	default:
		title = "Order status changed"
	}

	meta := map[string]string{
		"event_id": event.EventID,
		"order_id": event.OrderID,
	}
	if event.Reason != "" {
		meta["reason"] = event.Reason
	}

	notification := &domain.Notification{
		Title: title,
		Body:  fmt.Sprintf("Order %s moved from %s to %s", event.OrderID, event.OldStatus, event.NewStatus),
		Meta:  meta,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Errorw("failed to create notification", "order_id", event.OrderID, "error", err)
		return fmt.Errorf("failed to create notification: %w", err)
	}

	s.logger.Infow("notification created", "order_id", event.OrderID, "event_type", event.EventType)

	return nil
}

func (s *OrderService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.orderRepo.Delete(ctx, id)
}
