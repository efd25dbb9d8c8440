package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Noir-tsu/4Foods-admin/internal/domain"
	"github.com/Noir-tsu/4Foods-admin/internal/queue"
	"github.com/Noir-tsu/4Foods-admin/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of repo.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, filter repo.OrderFilter) ([]domain.Order, int64, error) {
	args := m.Called(filter)
	return args.Get(0).([]domain.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) ListPending(ctx context.Context, limit int) ([]domain.Order, error) {
	args := m.Called(limit)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Approve(ctx context.Context, id primitive.ObjectID, actorID primitive.ObjectID, at time.Time) (*domain.Order, error) {
	args := m.Called(id, actorID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Reject(ctx context.Context, id primitive.ObjectID, actorID primitive.ObjectID, reason string, at time.Time) (*domain.Order, error) {
	args := m.Called(id, actorID, reason, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockNotificationRepository is a mock implementation of repo.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) List(ctx context.Context, limit int) ([]domain.Notification, error) {
	args := m.Called(limit)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) (*domain.Notification, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Clear(ctx context.Context) error {
	args := m.Called()
	return args.Error(0)
}

// MockBroker is a mock implementation of queue.Broker
type MockBroker struct {
	mock.Mock
}

func (m *MockBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	args := m.Called(queueName, message)
	return args.Error(0)
}

func (m *MockBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	args := m.Called(queueName)
	return args.Error(0)
}

func (m *MockBroker) Close() error {
	args := m.Called()
	return args.Error(0)
}

func newOrderService(orders *MockOrderRepository, notifications *MockNotificationRepository, broker *MockBroker) *OrderService {
	return NewOrderService(orders, notifications, broker, zap.NewNop().Sugar())
}

func TestOrderService_Approve(t *testing.T) {
	id := primitive.NewObjectID()
	actorID := primitive.NewObjectID()
	pending := &domain.Order{ID: id, OrderID: "ORD-001", Status: domain.OrderStatusPending}
	approved := &domain.Order{ID: id, OrderID: "ORD-001", Status: domain.OrderStatusApproved}

	orders := new(MockOrderRepository)
	broker := new(MockBroker)
	orders.On("GetByID", id).Return(pending, nil).Once()
	orders.On("Approve", id, actorID, mock.Anything).Return(approved, nil).Once()
	broker.On("Publish", queue.QueueOrderEvents, mock.Anything).Return(nil).Once()

	svc := newOrderService(orders, new(MockNotificationRepository), broker)

	result, err := svc.Approve(context.Background(), id, actorID)

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusApproved, result.Status)

	var event domain.OrderStatusEvent
	raw := broker.Calls[0].Arguments.Get(1).([]byte)
	assert.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, domain.EventOrderApproved, event.EventType)
	assert.Equal(t, "ORD-001", event.OrderID)
	assert.Equal(t, domain.OrderStatusPending, event.OldStatus)
	assert.Equal(t, domain.OrderStatusApproved, event.NewStatus)
	assert.NotEmpty(t, event.EventID)

	orders.AssertExpectations(t)
	broker.AssertExpectations(t)
}

func TestOrderService_Approve_NotPending(t *testing.T) {
	id := primitive.NewObjectID()
	shipped := &domain.Order{ID: id, OrderID: "ORD-002", Status: domain.OrderStatusShipped}

	orders := new(MockOrderRepository)
	orders.On("GetByID", id).Return(shipped, nil).Once()

	svc := newOrderService(orders, new(MockNotificationRepository), new(MockBroker))

	result, err := svc.Approve(context.Background(), id, primitive.NewObjectID())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrOrderNotPending)
	orders.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything)
	orders.AssertExpectations(t)
}

func TestOrderService_Approve_PublishFailureDoesNotFail(t *testing.T) {
	id := primitive.NewObjectID()
	actorID := primitive.NewObjectID()
	pending := &domain.Order{ID: id, OrderID: "ORD-003", Status: domain.OrderStatusPending}
	approved := &domain.Order{ID: id, OrderID: "ORD-003", Status: domain.OrderStatusApproved}

	orders := new(MockOrderRepository)
	broker := new(MockBroker)
	orders.On("GetByID", id).Return(pending, nil).Once()
	orders.On("Approve", id, actorID, mock.Anything).Return(approved, nil).Once()
	broker.On("Publish", queue.QueueOrderEvents, mock.Anything).Return(assert.AnError).Once()

	svc := newOrderService(orders, new(MockNotificationRepository), broker)

	result, err := svc.Approve(context.Background(), id, actorID)

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusApproved, result.Status)
	broker.AssertExpectations(t)
}

func TestOrderService_Reject_AcceptsAnyState(t *testing.T) {
	id := primitive.NewObjectID()
	actorID := primitive.NewObjectID()
	processing := &domain.Order{ID: id, OrderID: "ORD-004", Status: domain.OrderStatusProcessing}
	rejected := &domain.Order{ID: id, OrderID: "ORD-004", Status: domain.OrderStatusRejected, RejectionReason: "out of stock"}

	orders := new(MockOrderRepository)
	broker := new(MockBroker)
	orders.On("GetByID", id).Return(processing, nil).Once()
	orders.On("Reject", id, actorID, "out of stock", mock.Anything).Return(rejected, nil).Once()
	broker.On("Publish", queue.QueueOrderEvents, mock.Anything).Return(nil).Once()

	svc := newOrderService(orders, new(MockNotificationRepository), broker)

	result, err := svc.Reject(context.Background(), id, actorID, "out of stock")

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusRejected, result.Status)

	var event domain.OrderStatusEvent
	raw := broker.Calls[0].Arguments.Get(1).([]byte)
	assert.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, domain.EventOrderRejected, event.EventType)
	assert.Equal(t, "out of stock", event.Reason)
	orders.AssertExpectations(t)
}

func TestOrderService_ProcessOrderStatusEvent(t *testing.T) {
	notifications := new(MockNotificationRepository)
	notifications.On("Create", mock.Anything).Return(nil).Once()

	svc := newOrderService(new(MockOrderRepository), notifications, new(MockBroker))

	event := domain.OrderStatusEvent{
		EventID:   "evt-1",
		EventType: domain.EventOrderRejected,
		OrderID:   "ORD-005",
		OldStatus: domain.OrderStatusPending,
		NewStatus: domain.OrderStatusRejected,
		Reason:    "address unreachable",
		Timestamp: time.Now(),
	}

	err := svc.ProcessOrderStatusEvent(context.Background(), event)

	assert.NoError(t, err)
	notification := notifications.Calls[0].Arguments.Get(0).(*domain.Notification)
	assert.Equal(t, "Order rejected", notification.Title)
	assert.Equal(t, "Order ORD-005 moved from pending to rejected", notification.Body)
	assert.Equal(t, "evt-1", notification.Meta["event_id"])
	assert.Equal(t, "address unreachable", notification.Meta["reason"])
	notifications.AssertExpectations(t)
}
