package order

import (
	"strings"

	"github.com/klassifikator/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle status of an order
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusShipped   Status = "SHIPPED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Order represents a captured customer order.
// Items snapshot the product name and price at creation time; TotalAmount
// is computed once from those snapshots and never recalculated.
type Order struct {
	shared.BaseEntity
	OrganizationID  int64           `gorm:"not null;index" json:"organizationId"`
	LandingID       int64           `gorm:"not null;index" json:"landingId"`
	CustomerName    string          `gorm:"type:varchar(255);not null" json:"customerName"`
	CustomerPhone   string          `gorm:"type:varchar(50);not null" json:"customerPhone"`
	CustomerEmail   string          `gorm:"type:varchar(255)" json:"customerEmail"`
	DeliveryAddress string          `gorm:"type:text" json:"deliveryAddress"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"totalAmount"`
	Status          Status          `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Notes           string          `gorm:"type:text" json:"notes"`
	Comment         string          `gorm:"type:text" json:"comment"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a value row owned exclusively by one order
type OrderItem struct {
	shared.BaseEntity
	OrderID      int64           `gorm:"not null;index" json:"orderId"`
	ProductID    int64           `gorm:"not null" json:"productId"`
	ProductName  string          `gorm:"type:varchar(255);not null" json:"productName"`
	ProductPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"productPrice"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrder creates a new pending order without items
func NewOrder(organizationID, landingID int64, customerName, customerPhone string) (*Order, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer name cannot be empty")
	}
	if strings.TrimSpace(customerPhone) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer phone cannot be empty")
	}

	return &Order{
		OrganizationID: organizationID,
		LandingID:      landingID,
		CustomerName:   strings.TrimSpace(customerName),
		CustomerPhone:  strings.TrimSpace(customerPhone),
		TotalAmount:    decimal.Zero,
		Status:         StatusPending,
	}, nil
}

// AddItem snapshots a product line and accumulates the order total
func (o *Order) AddItem(productID int64, productName string, productPrice decimal.Decimal, quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Item quantity must be positive")
	}

	subtotal := productPrice.Mul(decimal.NewFromInt(int64(quantity)))
	o.Items = append(o.Items, OrderItem{
		ProductID:    productID,
		ProductName:  productName,
		ProductPrice: productPrice,
		Quantity:     quantity,
		Subtotal:     subtotal,
	})
	o.TotalAmount = o.TotalAmount.Add(subtotal)
	return nil
}

// UpdateStatus transitions the order to a new status
func (o *Order) UpdateStatus(status Status) error {
	switch status {
	case StatusPending, StatusConfirmed, StatusShipped, StatusCompleted, StatusCancelled:
	default:
		return shared.NewDomainError("INVALID_INPUT", "Unknown order status: "+string(status))
	}
	if o.Status == StatusCancelled && status != StatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Cancelled orders cannot change status")
	}
	o.Status = status
	return nil
}

// Cancel marks the order as cancelled
func (o *Order) Cancel() error {
	return o.UpdateStatus(StatusCancelled)
}
