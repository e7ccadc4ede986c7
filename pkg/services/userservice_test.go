package services

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateOTPFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		otp, err := generateOTP()
		if err != nil {
			t.Fatal(err)
		}
		if len(otp) != 6 {
			t.Fatalf("want 6 digits, got %q", otp)
		}
		for _, r := range otp {
			if r < '0' || r > '9' {
				t.Fatalf("non-digit in otp %q", otp)
			}
		}
		seen[otp] = true
	}

	// 50 draws colliding down to a single value would mean the generator
	// is broken, not unlucky.
	if len(seen) < 2 {
		t.Fatalf("otp generator produced no variety: %v", seen)
	}
}

func TestHashResetToken(t *testing.T) {
	a := hashResetToken("token-one")
	b := hashResetToken("token-one")
	c := hashResetToken("token-two")

	if a != b {
		t.Fatal("same token should hash identically")
	}
	if a == c {
		t.Fatal("different tokens should hash differently")
	}
	if len(a) != 64 {
		t.Fatalf("want 64 hex chars for sha256, got %d", len(a))
	}
	if a == "token-one" {
		t.Fatal("stored value must not be the raw token")
	}
}

func TestWishlistToggleUpdates(t *testing.T) {
	productID := primitive.NewObjectID()

	userUpdate, flagUpdate := wishlistToggleUpdates(false, productID)
	if _, ok := userUpdate["$addToSet"]; !ok {
		t.Fatalf("adding should use $addToSet, got %v", userUpdate)
	}
	if set := flagUpdate["$set"].(bson.M); set["is_in_wishlist"] != true {
		t.Fatalf("adding must flag the product, got %v", flagUpdate)
	}

	userUpdate, flagUpdate = wishlistToggleUpdates(true, productID)
	if _, ok := userUpdate["$pull"]; !ok {
		t.Fatalf("removing should use $pull, got %v", userUpdate)
	}
	if set := flagUpdate["$set"].(bson.M); set["is_in_wishlist"] != false {
		t.Fatalf("removing must unflag the product, got %v", flagUpdate)
	}
}
