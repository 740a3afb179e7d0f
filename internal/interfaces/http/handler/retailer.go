package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	partnerapp "github.com/ivrelife/nexus/internal/application/partner"
	"github.com/ivrelife/nexus/internal/interfaces/http/dto"
)

// RetailerHandler handles retailer and location endpoints
type RetailerHandler struct {
	BaseHandler
	retailerService *partnerapp.RetailerService
}

// NewRetailerHandler creates a new RetailerHandler
func NewRetailerHandler(retailerService *partnerapp.RetailerService) *RetailerHandler {
	return &RetailerHandler{retailerService: retailerService}
}

// CreateRetailerRequest is the request body for onboarding a retailer
type CreateRetailerRequest struct {
	Code         string `json:"code" binding:"required,min=1,max=50"`
	Name         string `json:"name" binding:"required,min=1,max=200"`
	ContactName  string `json:"contact_name" binding:"max=100"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email,max=200"`
	Phone        string `json:"phone" binding:"max=50"`
}

// UpdateRetailerRequest is the request body for editing a retailer
type UpdateRetailerRequest struct {
	Name         string `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName  string `json:"contact_name" binding:"max=100"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email,max=200"`
	Phone        string `json:"phone" binding:"max=50"`
}

// SetRetailerStatusRequest is the request body for suspending or
// reinstating a retailer
type SetRetailerStatusRequest struct {
	Active bool `json:"active"`
}

// CreateLocationRequest is the request body for adding a location
type CreateLocationRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=200"`
	Address    string `json:"address" binding:"max=500"`
	City       string `json:"city" binding:"max=100"`
	State      string `json:"state" binding:"max=100"`
	PostalCode string `json:"postal_code" binding:"max=20"`
	Phone      string `json:"phone" binding:"max=50"`
}

// SetLocationEnabledRequest is the request body for toggling a location
type SetLocationEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

// Create onboards a new retailer
func (h *RetailerHandler) Create(c *gin.Context) {
	var req CreateRetailerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	retailer, err := h.retailerService.CreateRetailer(c.Request.Context(), getActor(c), partnerapp.CreateRetailerInput{
		Code:         req.Code,
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, retailer)
}

// Get returns one retailer visible to the actor
func (h *RetailerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid retailer ID format")
		return
	}

	retailer, err := h.retailerService.GetRetailer(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, retailer)
}

// List returns the retailer directory
func (h *RetailerHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	filter := req.ToFilter()
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	retailers, err := h.retailerService.ListRetailers(c.Request.Context(), getActor(c), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, retailers)
}

// Update edits a retailer's name and contact details
func (h *RetailerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid retailer ID format")
		return
	}

	var req UpdateRetailerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	retailer, err := h.retailerService.UpdateRetailer(c.Request.Context(), getActor(c), partnerapp.UpdateRetailerInput{
		RetailerID:   id,
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, retailer)
}

// SetStatus suspends or reinstates a retailer
func (h *RetailerHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid retailer ID format")
		return
	}

	var req SetRetailerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.retailerService.SetRetailerStatus(c.Request.Context(), getActor(c), id, req.Active); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateLocation adds a location under a retailer
func (h *RetailerHandler) CreateLocation(c *gin.Context) {
	retailerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid retailer ID format")
		return
	}

	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	location, err := h.retailerService.CreateLocation(c.Request.Context(), getActor(c), partnerapp.CreateLocationInput{
		RetailerID: retailerID,
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, location)
}

// ListLocations returns the locations of a retailer visible to the actor
func (h *RetailerHandler) ListLocations(c *gin.Context) {
	retailerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid retailer ID format")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	locations, err := h.retailerService.ListLocations(c.Request.Context(), getActor(c), retailerID, req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, locations)
}

// GetLocation returns one location visible to the actor
func (h *RetailerHandler) GetLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid location ID format")
		return
	}

	location, err := h.retailerService.GetLocation(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, location)
}

// SetLocationEnabled toggles whether a location can take orders
func (h *RetailerHandler) SetLocationEnabled(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid location ID format")
		return
	}

	var req SetLocationEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.retailerService.SetLocationEnabled(c.Request.Context(), getActor(c), id, req.Enabled); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
