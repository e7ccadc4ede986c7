package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Id         primitive.ObjectID `bson:"_id" json:"_id"`
	UserId     primitive.ObjectID `bson:"userId" json:"userId"`
	FullName   string             `bson:"full_name" json:"fullName" validate:"required"`
	Mobile     string             `bson:"mobile" json:"mobile" validate:"required"`
	Street     string             `bson:"street" json:"street" validate:"required"`
	City       string             `bson:"city" json:"city" validate:"required"`
	State      string             `bson:"state" json:"state" validate:"required"`
	Pincode    string             `bson:"pincode" json:"pincode" validate:"required"`
	Country    string             `bson:"country" json:"country"`
	IsDefault  bool               `bson:"is_default" json:"isDefault"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	ModifiedAt time.Time          `bson:"modified_at" json:"modifiedAt"`
}

type AddressRequest struct {
	FullName  string `json:"fullName" validate:"required"`
	Mobile    string `json:"mobile" validate:"required"`
	Street    string `json:"street" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Pincode   string `json:"pincode" validate:"required"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

type UpdateAddressRequest struct {
	FullName  *string `json:"fullName,omitempty"`
	Mobile    *string `json:"mobile,omitempty"`
	Street    *string `json:"street,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	Pincode   *string `json:"pincode,omitempty"`
	Country   *string `json:"country,omitempty"`
	IsDefault *bool   `json:"isDefault,omitempty"`
}
