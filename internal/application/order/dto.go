package order

// OrderItemRequest references a product and quantity in a new order
type OrderItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest captures a customer order from a landing page
type CreateOrderRequest struct {
	OrganizationID  int64              `json:"organizationId" binding:"required"`
	LandingID       int64              `json:"landingId" binding:"required"`
	CustomerName    string             `json:"customerName" binding:"required,max=255"`
	CustomerPhone   string             `json:"customerPhone" binding:"required,max=50"`
	CustomerEmail   string             `json:"customerEmail" binding:"omitempty,email"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Comment         string             `json:"comment"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateStatusRequest transitions an order to a new status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED SHIPPED COMPLETED CANCELLED"`
}
