package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is one node of the product classification tree. ParentCategory
// is a non-owning back-link; deleting a parent does not touch children.
type Category struct {
	Id             primitive.ObjectID  `bson:"_id" json:"_id"`
	Name           string              `bson:"name" json:"name" validate:"required"`
	Level          int                 `bson:"level" json:"level"`
	ParentCategory *primitive.ObjectID `bson:"parentCategory,omitempty" json:"parentCategory,omitempty"`
	CreatedAt      time.Time           `bson:"created_at" json:"createdAt"`
	ModifiedAt     time.Time           `bson:"modified_at" json:"modifiedAt"`
}

// CategoryNode is one descriptor in a bulk tree submission. Children may
// nest arbitrarily; depth is bounded at creation time.
type CategoryNode struct {
	Name     string         `json:"name"`
	Level    int            `json:"level"`
	Children []CategoryNode `json:"children,omitempty"`
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty"`
	Level *int    `json:"level,omitempty"`
}

// CategoryWithLevel3 is a direct child carrying its own children.
type CategoryWithLevel3 struct {
	Category `bson:",inline"`
	Level3   []Category `bson:"-" json:"level3"`
}

// ParentCategoryView is the 2-level expansion returned for a parent id.
type ParentCategoryView struct {
	ParentCategory     Category             `json:"parentCategory"`
	ChildrenCategories []CategoryWithLevel3 `json:"childrenCategories"`
}
