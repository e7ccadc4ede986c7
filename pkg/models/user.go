package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id                   primitive.ObjectID   `bson:"_id" json:"_id"`
	FirstName            string               `bson:"first_name" json:"firstName"`
	LastName             string               `bson:"last_name" json:"lastName"`
	Email                string               `bson:"email" json:"email" validate:"required,email"`
	Mobile               string               `bson:"mobile" json:"mobile"`
	PasswordDigest       string               `bson:"password_digest" json:"-"`
	IsAdmin              bool                 `bson:"is_admin" json:"isAdmin"`
	IsBlocked            bool                 `bson:"is_blocked" json:"isBlocked"`
	IsVerified           bool                 `bson:"is_verified" json:"isVerified"`
	OTP                  string               `bson:"otp,omitempty" json:"-"`
	OTPExpiresAt         time.Time            `bson:"otp_expires_at,omitempty" json:"-"`
	Wishlist             []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
	Addresses            []primitive.ObjectID `bson:"addresses" json:"addresses"`
	RefreshToken         string               `bson:"refresh_token,omitempty" json:"-"`
	PasswordResetToken   string               `bson:"password_reset_token,omitempty" json:"-"`
	PasswordResetExpires time.Time            `bson:"password_reset_expires,omitempty" json:"-"`
	CreatedAt            time.Time            `bson:"created_at" json:"createdAt"`
	ModifiedAt           time.Time            `bson:"modified_at" json:"modifiedAt"`
}

type CreateUserRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Mobile    string `json:"mobile" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Mobile    *string `json:"mobile,omitempty"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type WishlistRequest struct {
	ProductId string `json:"productId" validate:"required"`
}

// UserView strips credential and token fields from API responses.
type UserView struct {
	Id         primitive.ObjectID `json:"_id"`
	FirstName  string             `json:"firstName"`
	LastName   string             `json:"lastName"`
	Email      string             `json:"email"`
	Mobile     string             `json:"mobile"`
	IsAdmin    bool               `json:"isAdmin"`
	IsBlocked  bool               `json:"isBlocked"`
	IsVerified bool               `json:"isVerified"`
	CreatedAt  time.Time          `json:"createdAt"`
}

func (u *User) View() UserView {
	return UserView{
		Id:         u.Id,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Mobile:     u.Mobile,
		IsAdmin:    u.IsAdmin,
		IsBlocked:  u.IsBlocked,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

type LoginResponse struct {
	User        UserView `json:"user"`
	AccessToken string   `json:"accessToken"`
	ExpiresAt   int64    `json:"expiresAt"`
}
