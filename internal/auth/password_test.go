package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatal(err)
	}
	if digest == "correct horse battery staple" {
		t.Fatal("digest must not be the plaintext")
	}

	if err := CheckPassword(digest, "correct horse battery staple"); err != nil {
		t.Fatalf("matching password rejected: %v", err)
	}
	if err := CheckPassword(digest, "wrong password"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestGenerateSecureToken(t *testing.T) {
	a := GenerateSecureToken(32)
	b := GenerateSecureToken(32)

	if len(a) != 64 {
		t.Fatalf("want 64 hex chars, got %d", len(a))
	}
	if a == b {
		t.Fatal("two tokens should not collide")
	}
}
