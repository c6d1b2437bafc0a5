package services

import (
	"context"
	"errors"

	"github.com/kendall-kelly/ecommerce-api/apperrors"
	"github.com/kendall-kelly/ecommerce-api/models"
	"github.com/kendall-kelly/ecommerce-api/repository"
)

// UserUpdate holds the fields a user update may change. Nil fields are left as they are.
type UserUpdate struct {
	Name    *string
	Address *string
	Email   *string
}

// UserService handles user records
type UserService struct {
	users repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create stores a new user and fills in its id
func (s *UserService) Create(ctx context.Context, user *models.User) error {
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return apperrors.Conflict("A user with this email already exists")
		}
		return apperrors.Internal("Failed to create user", err)
	}
	return nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "User", "load user")
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, wrapRepoError(err, "User", "load users")
	}
	return users, nil
}

// Update applies the supplied fields and returns the stored result
func (s *UserService) Update(ctx context.Context, id uint, in UserUpdate) (*models.User, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}

	if len(updates) > 0 {
		if err := s.users.Update(ctx, id, updates); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return nil, apperrors.Conflict("A user with this email already exists")
			}
			return nil, wrapRepoError(err, "User", "update user")
		}
	}

	return s.Get(ctx, id)
}

// Delete removes the user along with their orders
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return wrapRepoError(s.users.Delete(ctx, id), "User", "delete user")
}
