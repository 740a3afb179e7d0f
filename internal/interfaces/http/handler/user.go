package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	identityapp "github.com/ivrelife/nexus/internal/application/identity"
	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/interfaces/http/dto"
)

// UserHandler handles user administration endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest is the request body for creating a user account
type CreateUserRequest struct {
	Email      string  `json:"email" binding:"required,email,max=200"`
	Name       string  `json:"name" binding:"required,min=1,max=200"`
	Password   string  `json:"password" binding:"required,min=8,max=128"`
	Role       string  `json:"role" binding:"required,oneof=owner backoffice retailer location_user"`
	RetailerID *string `json:"retailer_id" binding:"omitempty,uuid"`
	LocationID *string `json:"location_id" binding:"omitempty,uuid"`
}

// AssignRoleRequest is the request body for changing a user's role and scope
type AssignRoleRequest struct {
	Role       string  `json:"role" binding:"required,oneof=owner backoffice retailer location_user"`
	RetailerID *string `json:"retailer_id" binding:"omitempty,uuid"`
	LocationID *string `json:"location_id" binding:"omitempty,uuid"`
}

// ChangePasswordRequest is the request body for a password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// SetActiveRequest is the request body for activating or deactivating a user
type SetActiveRequest struct {
	Active bool `json:"active"`
}

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

// Create creates a new user account
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	role, _ := identity.ParseRole(req.Role)
	user, err := h.userService.CreateUser(c.Request.Context(), getActor(c), identityapp.CreateUserInput{
		Email:      req.Email,
		Name:       req.Name,
		Password:   req.Password,
		Role:       role,
		RetailerID: parseOptionalUUID(req.RetailerID),
		LocationID: parseOptionalUUID(req.LocationID),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, user)
}

// Get returns one user account
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), getActor(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// List returns user accounts inside the actor's scope
func (h *UserHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	filter := req.ToFilter()

	users, err := h.userService.ListUsers(c.Request.Context(), getActor(c), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, users)
}

// AssignRole changes a user's role and scope
func (h *UserHandler) AssignRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	role, _ := identity.ParseRole(req.Role)
	err := h.userService.AssignRole(c.Request.Context(), getActor(c), identityapp.AssignRoleInput{
		UserID:     id,
		Role:       role,
		RetailerID: parseOptionalUUID(req.RetailerID),
		LocationID: parseOptionalUUID(req.LocationID),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// SetActive activates or deactivates a user account
func (h *UserHandler) SetActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.userService.SetActive(c.Request.Context(), getActor(c), id, req.Active); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ChangePassword changes the current actor's own password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	actor := getActor(c)
	err := h.userService.ChangePassword(c.Request.Context(), actor, identityapp.ChangePasswordInput{
		UserID:      actor.ID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete removes a user account
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), getActor(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
