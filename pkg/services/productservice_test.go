package services

import (
	"strings"
	"testing"
)

func TestComputeDiscountPrice(t *testing.T) {
	if got := computeDiscountPrice(200, 25); got != 150 {
		t.Fatalf("want 150, got %v", got)
	}
	if got := computeDiscountPrice(99.99, 0); got != 99.99 {
		t.Fatalf("zero percent should keep the price, got %v", got)
	}
	if got := computeDiscountPrice(50, 100); got != 0 {
		t.Fatalf("full discount should be free, got %v", got)
	}
}

func TestCloudinaryPublicID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345678/fakeshop/shoe.png", "fakeshop/shoe"},
		{"https://res.cloudinary.com/demo/image/upload/v1/top.jpg", "top"},
		{"https://example.com/no/version/here.png", ""},
		{"not a url at all\x7f", ""},
	}

	for _, tc := range cases {
		if got := cloudinaryPublicID(tc.url); got != tc.want {
			t.Errorf("url %q: want %q, got %q", tc.url, tc.want, got)
		}
	}
}

func TestGetShortTitleShortTitleUnchanged(t *testing.T) {
	title := "Blue running shoes"
	if got := getShortTitle(title, "running"); got != title {
		t.Fatalf("short titles should pass through, got %q", got)
	}
}

func TestGetShortTitleWindowsAroundMatch(t *testing.T) {
	title := "Extra long premium lightweight waterproof hiking backpack with padded straps and rain cover"

	got := getShortTitle(title, "backpack")
	if !strings.Contains(strings.ToLower(got), "backpack") {
		t.Fatalf("window should contain the match, got %q", got)
	}
	if len(got) >= len(title) {
		t.Fatalf("window should shorten the title, got %q", got)
	}
	if !strings.HasPrefix(got, "...") {
		t.Fatalf("mid-title match should be marked truncated, got %q", got)
	}
}

func TestGetShortTitleNoMatchTruncates(t *testing.T) {
	title := strings.Repeat("word ", 20)

	got := getShortTitle(title, "zzz")
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("want trailing ellipsis, got %q", got)
	}
	if len(got) != 43 {
		t.Fatalf("want 40 chars plus ellipsis, got %d", len(got))
	}
}

func TestGetShortTitleCaseInsensitive(t *testing.T) {
	title := "An extremely verbose product title that mentions WIRELESS headphones somewhere in its middle"

	got := getShortTitle(title, "wireless")
	if !strings.Contains(got, "WIRELESS") {
		t.Fatalf("match should be case insensitive, got %q", got)
	}
}
