package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/autofusion/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService struct {
	userRepo models.UserRepo
}

func NewUserService(userRepo models.UserRepo) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUser inserts the user unless a record with the same email already
// exists. The existed flag reports a duplicate; no id is returned for one.
func (us *UserService) CreateUser(ctx context.Context, user *models.User) (primitive.ObjectID, bool, error) {
	if err := models.Validate.Struct(user); err != nil {
		return primitive.NilObjectID, false, fmt.Errorf("%w: invalid user data provided: %v", ErrInvalidInput, err)
	}
	if user.UserType == "" {
		user.UserType = models.UserTypeRegular
	}

	existing, err := us.userRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return primitive.NilObjectID, false, err
	}
	if existing != nil {
		return primitive.NilObjectID, true, nil
	}

	id, err := us.userRepo.CreateUser(ctx, user)
	if err != nil {
		return primitive.NilObjectID, false, err
	}
	return id, false, nil
}

func (us *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	return us.userRepo.GetUserByEmail(ctx, email)
}

// IsAdmin reports whether the stored user carries the admin role. A missing
// user is a normal "not admin" outcome, not an error.
func (us *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.IsAdmin(), nil
}

func (us *UserService) ListRegularUsers(ctx context.Context) ([]*models.User, error) {
	return us.userRepo.ListUsersByType(ctx, models.UserTypeRegular)
}

func (us *UserService) UpdateUserDetails(ctx context.Context, id primitive.ObjectID, patch models.UserDetailsUpdate) (*mongo.UpdateResult, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: invalid user id", ErrInvalidInput)
	}
	return us.userRepo.UpdateUserDetails(ctx, id, patch)
}
