package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartLine is one product+quantity entry within a cart. Price and title
// are never cached on the line; totals are always recomputed from the
// current product record.
type CartLine struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Cart is the single per-user cart document and the single source of
// truth for cart membership. Version backs the compare-and-swap write;
// two concurrent mutations for the same user resolve to exactly one
// winner.
type Cart struct {
	Id        primitive.ObjectID `bson:"_id" json:"_id"`
	UserId    primitive.ObjectID `bson:"userId" json:"userId"`
	Products  []CartLine         `bson:"products" json:"products"`
	SubTotal  float64            `bson:"subTotal" json:"subTotal"`
	CartTotal float64            `bson:"cartTotal" json:"cartTotal"`
	Version   int64              `bson:"version" json:"-"`
}

type CartItemRequest struct {
	ProductId string `json:"productId"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
	Action    string `json:"action,omitempty"`
}

// CartItemView is the single-line response for an add/update call.
type CartItemView struct {
	Title     string   `json:"title"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Images    []string `json:"images"`
	IsInCart  bool     `json:"isInCart"`
	SubTotal  float64  `json:"subTotal"`
	CartTotal float64  `json:"cartTotal"`
}

// CartDetail is the flattened per-item view returned on cart reads.
type CartDetail struct {
	Product     primitive.ObjectID `json:"product"`
	Title       string             `json:"title"`
	Price       float64            `json:"price"`
	Description string             `json:"description"`
	Images      []string           `json:"images"`
	Category    primitive.ObjectID `json:"category"`
	Quantity    int                `json:"quantity"`
	ItemTotal   float64            `json:"itemTotal"`
}

type CartView struct {
	Cart      []CartDetail `json:"cart"`
	CartTotal float64      `json:"cartTotal"`
	SubTotal  float64      `json:"subTotal"`
}
