package order

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	contentdomain "github.com/klassifikator/backend/internal/domain/content"
	domain "github.com/klassifikator/backend/internal/domain/order"
	"github.com/klassifikator/backend/internal/domain/shared"
)

// ProductProvider fetches product snapshots for order lines
type ProductProvider interface {
	ProductsByIDs(ctx context.Context, ids []int64) ([]contentdomain.Product, error)
}

// Notifier delivers a new-order notification through the integration service
type Notifier interface {
	NotifyNewOrder(ctx context.Context, o *domain.Order) error
}

const notifyTimeout = 10 * time.Second

// Service handles order capture and lifecycle
type Service struct {
	repo     domain.Repository
	products ProductProvider
	notifier Notifier
	logger   *zap.Logger
}

// NewService creates a new order Service
func NewService(repo domain.Repository, products ProductProvider, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		products: products,
		notifier: notifier,
		logger:   logger,
	}
}

// Create captures a new order. Product names and prices are snapshotted at
// this moment; later catalog edits never change an existing order. The
// notification is dispatched asynchronously and its failure does not fail
// the order.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	o, err := domain.NewOrder(req.OrganizationID, req.LandingID, req.CustomerName, req.CustomerPhone)
	if err != nil {
		return nil, err
	}
	o.CustomerEmail = req.CustomerEmail
	o.DeliveryAddress = req.DeliveryAddress
	o.Comment = req.Comment

	ids := make([]int64, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.products.ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*contentdomain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	for _, item := range req.Items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, shared.NewDomainError("NOT_FOUND",
				"Product not found: "+strconv.FormatInt(item.ProductID, 10))
		}
		if err := o.AddItem(p.ID, p.Name, p.Price, item.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.dispatchNotification(o)
	return o, nil
}

func (s *Service) dispatchNotification(o *domain.Order) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.NotifyNewOrder(ctx, o); err != nil {
			s.logger.Warn("order notification failed",
				zap.Int64("order_id", o.ID), zap.Error(err))
		}
	}()
}

// GetByID retrieves an order with its items
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByOrganization retrieves an organization's orders, newest first
func (s *Service) ListByOrganization(ctx context.Context, organizationID int64) ([]domain.Order, error) {
	return s.repo.FindByOrganization(ctx, organizationID)
}

// ListByStatus retrieves all orders in a given status, newest first
func (s *Service) ListByStatus(ctx context.Context, status string) ([]domain.Order, error) {
	return s.repo.FindByStatus(ctx, domain.Status(status))
}

// UpdateStatus transitions an order to a new status
func (s *Service) UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.UpdateStatus(domain.Status(req.Status)); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Cancel marks an order as cancelled
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.Cancel(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Delete removes an order and its items
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
