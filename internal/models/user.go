package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	UserTypeRegular = "user"
	UserTypeAdmin   = "admin"
)

// User is created on first sign-in and mutated through the detail-update
// route. Users are never hard-deleted.
type User struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name                string             `bson:"name,omitempty" json:"name,omitempty"`
	Email               string             `bson:"email" json:"email" validate:"required,email"`
	Photo               string             `bson:"photo,omitempty" json:"photo,omitempty"`
	UserType            string             `bson:"userType" json:"userType"`
	Phone               string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address             string             `bson:"address,omitempty" json:"address,omitempty"`
	VerificationRequest string             `bson:"verificationRequest,omitempty" json:"verificationRequest,omitempty"`
	VerifyStatus        string             `bson:"verifyStatus,omitempty" json:"verifyStatus,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}

// UserDetailsUpdate carries the selectively applied fields of the
// detail-update route. Only non-empty fields are written.
type UserDetailsUpdate struct {
	RequestUpdate       string `json:"requestUpdate,omitempty"`
	UpdatedVerifyStatus string `json:"updatedVerifyStatus,omitempty"`
	Phone               string `json:"phone,omitempty"`
	Address             string `json:"address,omitempty"`
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (primitive.ObjectID, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsersByType(ctx context.Context, userType string) ([]*User, error)
	UpdateUserDetails(ctx context.Context, id primitive.ObjectID, patch UserDetailsUpdate) (*mongo.UpdateResult, error)
}
