package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/domain/shared"
)

// UserService handles user account management. Every operation takes the
// acting identity and enforces capability and scope checks before touching
// the repository.
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user management service
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// CreateUser creates a new user account
func (s *UserService) CreateUser(ctx context.Context, actor identity.Actor, input CreateUserInput) (*UserInfo, error) {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapManageUsers) {
		return nil, shared.ErrForbidden
	}

	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "A user with this email already exists")
	}

	user, err := identity.NewUser(input.Email, input.Name, input.Password, input.Role, input.RetailerID, input.LocationID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save new user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create user")
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role.String()),
		zap.String("created_by", actor.ID.String()),
	)

	info := userInfoOf(user)
	return &info, nil
}

// GetUser returns one user account
func (s *UserService) GetUser(ctx context.Context, actor identity.Actor, id uuid.UUID) (*UserInfo, error) {
	if actor.ID != id && !identity.CapabilitiesForActor(actor).Has(identity.CapManageUsers) {
		return nil, shared.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	info := userInfoOf(user)
	return &info, nil
}

// ListUsers returns user accounts visible to the actor. Unbounded roles see
// everyone; a retailer sees only users under their own retailer.
func (s *UserService) ListUsers(ctx context.Context, actor identity.Actor, filter shared.Filter) ([]UserInfo, error) {
	caps := identity.CapabilitiesForActor(actor)
	if !caps.Has(identity.CapManageUsers) && !caps.Has(identity.CapManageSettings) {
		return nil, shared.ErrForbidden
	}

	var (
		users []identity.User
		err   error
	)
	if actor.RetailerID != nil {
		users, err = s.userRepo.FindAllForRetailer(ctx, *actor.RetailerID, filter)
	} else {
		users, err = s.userRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	infos := make([]UserInfo, len(users))
	for i := range users {
		infos[i] = userInfoOf(&users[i])
	}
	return infos, nil
}

// AssignRole changes a user's role and scope
func (s *UserService) AssignRole(ctx context.Context, actor identity.Actor, input AssignRoleInput) error {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapManageUsers) {
		return shared.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	if err := user.AssignRole(input.Role, input.RetailerID, input.LocationID); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save role assignment", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update user")
	}

	s.logger.Info("User role assigned",
		zap.String("user_id", user.ID.String()),
		zap.String("role", input.Role.String()),
		zap.String("assigned_by", actor.ID.String()),
	)
	return nil
}

// SetActive activates or deactivates a user account
func (s *UserService) SetActive(ctx context.Context, actor identity.Actor, id uuid.UUID, active bool) error {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapManageUsers) {
		return shared.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if active {
		err = user.Activate()
	} else {
		err = user.Deactivate()
	}
	if err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save user state change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update user")
	}
	return nil
}

// ChangePassword changes a user's own password
func (s *UserService) ChangePassword(ctx context.Context, actor identity.Actor, input ChangePasswordInput) error {
	if actor.ID != input.UserID {
		return shared.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	if !user.CheckPassword(input.OldPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}

	if err := user.ChangePassword(input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	s.logger.Info("User password changed", zap.String("user_id", input.UserID.String()))
	return nil
}

// DeleteUser removes a user account
func (s *UserService) DeleteUser(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if !identity.CapabilitiesForActor(actor).Has(identity.CapManageUsers) {
		return shared.ErrForbidden
	}
	if actor.ID == id {
		return shared.NewDomainError("INVALID_INPUT", "Users cannot delete their own account")
	}
	return s.userRepo.Delete(ctx, id)
}
