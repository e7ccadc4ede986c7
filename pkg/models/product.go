package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	Id                 primitive.ObjectID `bson:"_id" json:"_id"`
	Title              string             `bson:"title" json:"title" validate:"required"`
	Slug               string             `bson:"slug" json:"slug"`
	Description        string             `bson:"description" json:"description"`
	Price              float64            `bson:"price" json:"price"`
	DiscountPercentage float64            `bson:"discount_percentage" json:"discountPercentage"`
	DiscountPrice      float64            `bson:"discount_price" json:"discountPrice"`
	Images             []string           `bson:"images" json:"images"`
	Category           primitive.ObjectID `bson:"category" json:"category"`
	Stock              int                `bson:"stock" json:"stock"`
	Brand              string             `bson:"brand" json:"brand"`
	Sold               int                `bson:"sold" json:"sold"`
	IsFeatured         bool               `bson:"is_featured" json:"isFeatured"`
	IsInCart           bool               `bson:"is_in_cart" json:"isInCart"`
	IsInWishlist       bool               `bson:"is_in_wishlist" json:"isInWishlist"`
	Available          bool               `bson:"available" json:"available"`
	CreatedAt          time.Time          `bson:"created_at" json:"createdAt"`
	ModifiedAt         time.Time          `bson:"modified_at" json:"modifiedAt"`
}

type CreateProductRequest struct {
	Title              string   `json:"title" validate:"required"`
	Description        string   `json:"description"`
	Price              float64  `json:"price" validate:"gte=0"`
	Category           string   `json:"category"`
	Stock              int      `json:"stock" validate:"gt=0"`
	DiscountPercentage float64  `json:"discountPercentage" validate:"gte=0,lte=100"`
	Brand              string   `json:"brand"`
	Images             []string `json:"images,omitempty"`
	IsFeatured         bool     `json:"isFeatured"`
	Available          bool     `json:"available"`
}

type UpdateProductRequest struct {
	Title              *string  `json:"title,omitempty"`
	Description        *string  `json:"description,omitempty"`
	Price              *float64 `json:"price,omitempty"`
	Category           *string  `json:"category,omitempty"`
	Stock              *int     `json:"stock,omitempty"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	Brand              *string  `json:"brand,omitempty"`
	Images             []string `json:"images,omitempty"`
	IsFeatured         *bool    `json:"isFeatured,omitempty"`
	Available          *bool    `json:"available,omitempty"`
}

// ProductPage is the paginated catalog listing with the category row
// expanded on each product.
type ProductPage struct {
	TotalProducts int64             `json:"totalProducts"`
	Products      []ProductExpanded `json:"products"`
	TotalPages    int64             `json:"totalPages"`
	CurrentPage   int               `json:"currentPage"`
	DataOnPage    int               `json:"dataOnPage"`
}

type ProductExpanded struct {
	Product  `bson:",inline"`
	Expanded *Category `bson:"-" json:"categoryDetail,omitempty"`
}

// CustomizedProduct stores a user-personalized variant of a product with
// uploaded front/back artwork.
type CustomizedProduct struct {
	Id           primitive.ObjectID `bson:"_id" json:"_id"`
	UserId       primitive.ObjectID `bson:"userId" json:"userId"`
	ProductId    primitive.ObjectID `bson:"productId" json:"productId"`
	CustomImages CustomImages       `bson:"customImages" json:"customImages"`
	Size         string             `bson:"size" json:"size"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

type CustomImages struct {
	Front string `bson:"front" json:"front" validate:"required"`
	Back  string `bson:"back" json:"back" validate:"required"`
}

type CustomizedProductRequest struct {
	ProductId    string       `json:"productId" validate:"required"`
	CustomImages CustomImages `json:"customImages" validate:"required"`
	Size         string       `json:"size" validate:"required"`
	Quantity     int          `json:"quantity" validate:"required,gte=1"`
}
