package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Admin struct {
	Id             primitive.ObjectID `bson:"_id" json:"_id"`
	FirstName      string             `bson:"first_name" json:"firstName" validate:"required"`
	LastName       string             `bson:"last_name" json:"lastName" validate:"required"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	PhoneNumber    string             `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	PasswordDigest string             `bson:"password_digest" json:"-"`
	RefreshToken   string             `bson:"refresh_token,omitempty" json:"-"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	ModifiedAt     time.Time          `bson:"modified_at" json:"modifiedAt"`
}

type CreateAdminRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" validate:"required,min=8"`
}

type AdminView struct {
	Id          primitive.ObjectID `json:"_id"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (a *Admin) View() AdminView {
	return AdminView{
		Id:          a.Id,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
		CreatedAt:   a.CreatedAt,
	}
}

type AdminLoginResponse struct {
	Admin       AdminView `json:"admin"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   int64     `json:"expiresAt"`
}
