package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	orderapp "github.com/ivrelife/nexus/internal/application/order"
	"github.com/ivrelife/nexus/internal/domain/order"
	"github.com/ivrelife/nexus/internal/interfaces/http/dto"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *orderapp.Service
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderapp.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderLineItemRequest is one order line in a create request
type OrderLineItemRequest struct {
	ProductVariantID string  `json:"product_variant_id" binding:"required"`
	Name             string  `json:"name"`
	Quantity         int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice        float64 `json:"unit_price" binding:"gte=0"`
}

// OrderAddressRequest is a postal address in a create request
type OrderAddressRequest struct {
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone"`
}

// CreateOrderRequest is the request body for creating an order
type CreateOrderRequest struct {
	RetailerID      string                 `json:"retailer_id"`
	LocationID      string                 `json:"location_id"`
	CustomerID      string                 `json:"customer_id"`
	Status          string                 `json:"status"`
	TotalAmount     *float64               `json:"total_amount"`
	Items           []OrderLineItemRequest `json:"items"`
	ShippingAddress *OrderAddressRequest   `json:"shipping_address"`
	BillingAddress  *OrderAddressRequest   `json:"billing_address"`
	Metadata        map[string]any         `json:"metadata"`
}

// UpdateOrderStatusRequest is the request body for a status transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r CreateOrderRequest) toInput() orderapp.CreateOrderInput {
	input := orderapp.CreateOrderInput{
		RetailerID: r.RetailerID,
		LocationID: r.LocationID,
		CustomerID: r.CustomerID,
		Status:     order.Status(r.Status),
		Metadata:   r.Metadata,
	}
	if r.TotalAmount != nil {
		d := decimal.NewFromFloat(*r.TotalAmount)
		input.TotalAmount = &d
	}
	for _, item := range r.Items {
		input.Items = append(input.Items, order.LineItem{
			ProductVariantID: item.ProductVariantID,
			Name:             item.Name,
			Quantity:         item.Quantity,
			UnitPrice:        decimal.NewFromFloat(item.UnitPrice),
		})
	}
	if r.ShippingAddress != nil {
		input.ShippingAddress = r.ShippingAddress.toAddress()
	}
	if r.BillingAddress != nil {
		input.BillingAddress = r.BillingAddress.toAddress()
	}
	return input
}

func (r *OrderAddressRequest) toAddress() *order.Address {
	return &order.Address{
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Phone:      r.Phone,
	}
}

// Create creates an order, filling defaults for anything omitted
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	view, err := h.orderService.Create(c.Request.Context(), getActor(c), req.toInput())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, view)
}

// Get returns one order visible to the actor
func (h *OrderHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		h.BadRequest(c, "Order ID is required")
		return
	}

	view, err := h.orderService.Get(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, view)
}

// List returns the orders inside the actor's scope
func (h *OrderHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	filter := req.ToFilter()
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		filter.Filters["customer_id"] = customerID
	}

	views, err := h.orderService.List(c.Request.Context(), getActor(c), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, views)
}

// UpdateStatus moves an order through its lifecycle
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		h.BadRequest(c, "Order ID is required")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	target := order.Status(req.Status)
	if !target.IsValid() {
		h.BadRequest(c, "Unknown order status")
		return
	}

	view, err := h.orderService.UpdateStatus(c.Request.Context(), getActor(c), id, target)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, view)
}

// Validate dry-runs the pre-save checks on an order payload and returns
// every violation without persisting anything.
func (h *OrderHandler) Validate(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result := h.orderService.Validate(getActor(c), req.toInput())
	h.Success(c, result)
}
