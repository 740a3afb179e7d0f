package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	shippingapp "github.com/ivrelife/nexus/internal/application/shipping"
	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/domain/shipping"
	"github.com/ivrelife/nexus/internal/interfaces/http/dto"
)

// ShipmentHandler handles shipment lifecycle endpoints
type ShipmentHandler struct {
	BaseHandler
	shippingService *shippingapp.Service
}

// NewShipmentHandler creates a new ShipmentHandler
func NewShipmentHandler(shippingService *shippingapp.Service) *ShipmentHandler {
	return &ShipmentHandler{shippingService: shippingService}
}

// CreateShipmentRequest is the request body for opening a shipment
type CreateShipmentRequest struct {
	RetailerID string `json:"retailer_id" binding:"omitempty,uuid"`
	OrderID    string `json:"order_id" binding:"required"`
	Carrier    string `json:"carrier" binding:"required,min=1,max=100"`
	Method     string `json:"method" binding:"max=100"`
}

// CreateLabelRequest is the request body for recording a carrier label
type CreateLabelRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required,min=1,max=100"`
}

// Create opens a pending shipment for an order
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	input := shippingapp.CreateShipmentInput{
		OrderID: req.OrderID,
		Carrier: req.Carrier,
		Method:  req.Method,
	}
	if req.RetailerID != "" {
		id, err := uuid.Parse(req.RetailerID)
		if err != nil {
			h.BadRequest(c, "Invalid retailer ID format")
			return
		}
		input.RetailerID = id
	}

	shipment, err := h.shippingService.Create(c.Request.Context(), getActor(c), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, shipment)
}

// Get returns one shipment visible to the actor
func (h *ShipmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid shipment ID format")
		return
	}

	shipment, err := h.shippingService.Get(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shipment)
}

// Track looks a shipment up by its carrier tracking number
func (h *ShipmentHandler) Track(c *gin.Context) {
	trackingNumber := c.Param("tracking_number")
	if trackingNumber == "" {
		h.BadRequest(c, "Tracking number is required")
		return
	}

	shipment, err := h.shippingService.Track(c.Request.Context(), getActor(c), trackingNumber)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shipment)
}

// List returns the shipments inside the actor's scope
func (h *ShipmentHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	filter := req.ToFilter()
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	// Shipments for a specific order bypass the general listing
	if orderID := c.Query("order_id"); orderID != "" {
		shipments, err := h.shippingService.ListForOrder(c.Request.Context(), getActor(c), orderID)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, shipments)
		return
	}

	shipments, err := h.shippingService.List(c.Request.Context(), getActor(c), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shipments)
}

// CreateLabel records the carrier label and tracking number
func (h *ShipmentHandler) CreateLabel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid shipment ID format")
		return
	}

	var req CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	shipment, err := h.shippingService.CreateLabel(c.Request.Context(), getActor(c), id, req.TrackingNumber)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shipment)
}

// Dispatch marks the parcel as handed to the carrier
func (h *ShipmentHandler) Dispatch(c *gin.Context) {
	h.advance(c, h.shippingService.Dispatch)
}

// MarkDelivered records successful delivery
func (h *ShipmentHandler) MarkDelivered(c *gin.Context) {
	h.advance(c, h.shippingService.MarkDelivered)
}

// Cancel aborts a shipment that has not yet left the warehouse
func (h *ShipmentHandler) Cancel(c *gin.Context) {
	h.advance(c, h.shippingService.Cancel)
}

func (h *ShipmentHandler) advance(c *gin.Context, step func(context.Context, identity.Actor, uuid.UUID) (*shipping.Shipment, error)) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid shipment ID format")
		return
	}

	shipment, err := step(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shipment)
}
