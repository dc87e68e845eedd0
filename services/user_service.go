package services

import (
	"context"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	out, err := s.users.List(ctx)
	return out, storeErr("list users", err)
}

// SetRole promotes or demotes a user. Admins cannot demote themselves.
func (s *UserService) SetRole(ctx context.Context, callerID, userID, role string) (*entity.User, error) {
	if role != entity.RoleAdmin && role != entity.RoleCustomer {
		return nil, invalid("role", "role must be one of: customer, admin")
	}
	if callerID == userID && role != entity.RoleAdmin {
		return nil, ErrForbidden
	}
	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return nil, storeErr("update role", err)
	}
	u, err := s.users.Get(ctx, userID)
	return u, storeErr("user", err)
}

// Role reads the current role of a user from the store.
func (s *UserService) Role(ctx context.Context, userID string) (string, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return "", storeErr("user", err)
	}
	return u.Role, nil
}
