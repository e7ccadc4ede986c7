package auth

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("SECRET", "test-secret")

	id := primitive.NewObjectID()
	token, expiresAt, err := GenerateJWT(id.Hex(), "user@example.com", false)
	if err != nil {
		t.Fatal(err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if expiresAt <= time.Now().Unix() {
		t.Fatalf("expiry should be in the future, got %d", expiresAt)
	}

	claim, err := ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claim.Id != id.Hex() || claim.Email != "user@example.com" || claim.IsAdmin {
		t.Fatalf("claim mismatch: %+v", claim)
	}

	got, err := claim.GetUserObjectId()
	if err != nil {
		t.Fatal(err)
	}
	if got != id {
		t.Fatalf("want %v, got %v", id, got)
	}
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("SECRET", "first-secret")
	token, _, err := GenerateJWT(primitive.NewObjectID().Hex(), "user@example.com", false)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("SECRET", "second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("token signed with another key should fail validation")
	}
}

func TestRefreshTokenUsesSeparateKey(t *testing.T) {
	t.Setenv("SECRET", "access-secret")
	t.Setenv("REFRESH_SECRET", "refresh-secret")

	refresh, err := GenerateRefreshJWT(primitive.NewObjectID().Hex(), "user@example.com", true)
	if err != nil {
		t.Fatal(err)
	}

	claim, err := ValidateRefreshToken(refresh)
	if err != nil {
		t.Fatal(err)
	}
	if !claim.IsAdmin {
		t.Fatalf("admin flag lost: %+v", claim)
	}

	// the access-token validator must not accept a refresh token
	if _, err := ValidateToken(refresh); err == nil {
		t.Fatal("refresh token validated with the access key")
	}
}
