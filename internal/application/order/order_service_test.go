package order

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	contentdomain "github.com/klassifikator/backend/internal/domain/content"
	domain "github.com/klassifikator/backend/internal/domain/order"
	"github.com/klassifikator/backend/internal/domain/shared"
)

// MockOrderRepository is a mock implementation of domain.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrganization(ctx context.Context, organizationID int64) ([]domain.Order, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, status domain.Status) ([]domain.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductProvider is a mock implementation of ProductProvider
type MockProductProvider struct {
	mock.Mock
}

func (m *MockProductProvider) ProductsByIDs(ctx context.Context, ids []int64) ([]contentdomain.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contentdomain.Product), args.Error(1)
}

// recordingNotifier records notifications without a mock framework so the
// async dispatch can be awaited
type recordingNotifier struct {
	mu     sync.Mutex
	orders []*domain.Order
	done   chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}, 1)}
}

func (n *recordingNotifier) NotifyNewOrder(ctx context.Context, o *domain.Order) error {
	n.mu.Lock()
	n.orders = append(n.orders, o)
	n.mu.Unlock()
	n.done <- struct{}{}
	return nil
}

func (n *recordingNotifier) wait(t *testing.T) *domain.Order {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never dispatched")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.orders[len(n.orders)-1]
}

func product(id int64, name string, price int64) contentdomain.Product {
	p := contentdomain.Product{Name: name, Price: decimal.NewFromInt(price), IsActive: true}
	p.ID = id
	return p
}

func validRequest() CreateOrderRequest {
	return CreateOrderRequest{
		OrganizationID: 5,
		LandingID:      9,
		CustomerName:   "Иван Петров",
		CustomerPhone:  "+7 900 123-45-67",
		Items: []OrderItemRequest{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}
}

func TestCreate_SnapshotsPricesAndComputesTotal(t *testing.T) {
	repo := new(MockOrderRepository)
	products := new(MockProductProvider)
	notifier := newRecordingNotifier()
	svc := NewService(repo, products, notifier, zap.NewNop())
	ctx := context.Background()

	products.On("ProductsByIDs", ctx, []int64{1, 2}).Return([]contentdomain.Product{
		product(1, "Замена масла", 1500),
		product(2, "Диагностика", 500),
	}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

	o, err := svc.Create(ctx, validRequest())

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, "Замена масла", o.Items[0].ProductName)
	assert.True(t, o.Items[0].Subtotal.Equal(decimal.NewFromInt(3000)))
	assert.True(t, o.TotalAmount.Equal(decimal.NewFromInt(3500)))

	notified := notifier.wait(t)
	assert.Same(t, o, notified)
}

func TestCreate_UnknownProduct(t *testing.T) {
	repo := new(MockOrderRepository)
	products := new(MockProductProvider)
	svc := NewService(repo, products, nil, zap.NewNop())
	ctx := context.Background()

	products.On("ProductsByIDs", ctx, []int64{1, 2}).Return([]contentdomain.Product{
		product(1, "Замена масла", 1500),
	}, nil)

	o, err := svc.Create(ctx, validRequest())

	assert.Error(t, err)
	assert.Nil(t, o)
	repo.AssertNotCalled(t, "Create")
}

func TestCreate_NotifierFailureDoesNotFailOrder(t *testing.T) {
	repo := new(MockOrderRepository)
	products := new(MockProductProvider)
	svc := NewService(repo, products, failingNotifier{}, zap.NewNop())
	ctx := context.Background()

	products.On("ProductsByIDs", ctx, []int64{1, 2}).Return([]contentdomain.Product{
		product(1, "Замена масла", 1500),
		product(2, "Диагностика", 500),
	}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

	o, err := svc.Create(ctx, validRequest())

	assert.NoError(t, err)
	assert.NotNil(t, o)
}

type failingNotifier struct{}

func (failingNotifier) NotifyNewOrder(ctx context.Context, o *domain.Order) error {
	return assert.AnError
}

func TestUpdateStatus_CancelledIsTerminal(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, nil, nil, zap.NewNop())
	ctx := context.Background()

	cancelled, _ := domain.NewOrder(5, 9, "Иван", "+7 900 000-00-00")
	cancelled.Status = domain.StatusCancelled
	repo.On("FindByID", ctx, int64(3)).Return(cancelled, nil)

	o, err := svc.UpdateStatus(ctx, 3, UpdateStatusRequest{Status: "CONFIRMED"})

	assert.Error(t, err)
	assert.Nil(t, o)
	repo.AssertNotCalled(t, "Save")
}

func TestCancel_Success(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, nil, nil, zap.NewNop())
	ctx := context.Background()

	pending, _ := domain.NewOrder(5, 9, "Иван", "+7 900 000-00-00")
	repo.On("FindByID", ctx, int64(3)).Return(pending, nil)
	repo.On("Save", ctx, pending).Return(nil)

	o, err := svc.Cancel(ctx, 3)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, o.Status)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, nil, nil, zap.NewNop())
	ctx := context.Background()

	repo.On("FindByID", ctx, int64(99)).Return(nil, shared.ErrNotFound)

	err := svc.Delete(ctx, 99)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	repo.AssertNotCalled(t, "Delete")
}
