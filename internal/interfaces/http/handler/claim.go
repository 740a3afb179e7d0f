package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	claimapp "github.com/ivrelife/nexus/internal/application/claim"
	"github.com/ivrelife/nexus/internal/domain/claim"
	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/interfaces/http/dto"
)

// ClaimHandler handles claim workflow endpoints
type ClaimHandler struct {
	BaseHandler
	claimService *claimapp.Service
}

// NewClaimHandler creates a new ClaimHandler
func NewClaimHandler(claimService *claimapp.Service) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

// SubmitClaimRequest is the request body for raising a claim
type SubmitClaimRequest struct {
	RetailerID string `json:"retailer_id" binding:"omitempty,uuid"`
	OrderID    string `json:"order_id" binding:"required"`
	CustomerID string `json:"customer_id" binding:"omitempty,uuid"`
	Reason     string `json:"reason" binding:"required,min=1,max=500"`
	Details    string `json:"details"`
}

// ResolveClaimRequest is the request body for closing a claim
type ResolveClaimRequest struct {
	Resolution string `json:"resolution" binding:"required,min=1"`
}

// Submit raises a new claim against an order
func (h *ClaimHandler) Submit(c *gin.Context) {
	var req SubmitClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	input := claimapp.SubmitClaimInput{
		OrderID: req.OrderID,
		Reason:  req.Reason,
		Details: req.Details,
	}
	if req.RetailerID != "" {
		id, err := uuid.Parse(req.RetailerID)
		if err != nil {
			h.BadRequest(c, "Invalid retailer ID format")
			return
		}
		input.RetailerID = id
	}
	if req.CustomerID != "" {
		id, err := uuid.Parse(req.CustomerID)
		if err != nil {
			h.BadRequest(c, "Invalid customer ID format")
			return
		}
		input.CustomerID = &id
	}

	result, err := h.claimService.Submit(c.Request.Context(), getActor(c), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// Get returns one claim visible to the actor
func (h *ClaimHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid claim ID format")
		return
	}

	result, err := h.claimService.Get(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// List returns the claims inside the actor's scope
func (h *ClaimHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	filter := req.ToFilter()
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	// Claims for a specific order bypass the general listing
	if orderID := c.Query("order_id"); orderID != "" {
		claims, err := h.claimService.ListForOrder(c.Request.Context(), getActor(c), orderID)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, claims)
		return
	}

	claims, err := h.claimService.List(c.Request.Context(), getActor(c), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, claims)
}

// StartReview moves a submitted claim into review
func (h *ClaimHandler) StartReview(c *gin.Context) {
	h.advance(c, h.claimService.StartReview)
}

// Approve accepts a claim under review
func (h *ClaimHandler) Approve(c *gin.Context) {
	h.advance(c, h.claimService.Approve)
}

// Deny rejects a claim under review
func (h *ClaimHandler) Deny(c *gin.Context) {
	h.advance(c, h.claimService.Deny)
}

// Resolve closes an approved or denied claim with a resolution note
func (h *ClaimHandler) Resolve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid claim ID format")
		return
	}

	var req ResolveClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.claimService.Resolve(c.Request.Context(), getActor(c), id, req.Resolution)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

func (h *ClaimHandler) advance(c *gin.Context, step func(context.Context, identity.Actor, uuid.UUID) (*claim.Claim, error)) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid claim ID format")
		return
	}

	result, err := step(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
