package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAdminView(t *testing.T) {
	admin := Admin{
		Id:             primitive.NewObjectID(),
		FirstName:      "Ada",
		LastName:       "Okafor",
		Email:          "ada@example.com",
		PhoneNumber:    "08012345678",
		PasswordDigest: "digest",
		CreatedAt:      time.Now(),
	}

	view := admin.View()
	if view.FirstName != "Ada" || view.LastName != "Okafor" || view.PhoneNumber != "08012345678" {
		t.Fatalf("view dropped identity fields: %+v", view)
	}
	if view.Email != admin.Email || view.Id != admin.Id {
		t.Fatalf("unexpected view: %+v", view)
	}
}
