package util

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestGetProductSortBson(t *testing.T) {
	cases := []struct {
		sort string
		want bson.D
	}{
		{"created_at_asc", bson.D{{Key: "created_at", Value: 1}}},
		{"created_at_desc", bson.D{{Key: "created_at", Value: -1}}},
		{"price_asc", bson.D{{Key: "price", Value: 1}}},
		{"price_desc", bson.D{{Key: "price", Value: -1}}},
		{"sold_desc", bson.D{{Key: "sold", Value: -1}}},
		{"bogus", bson.D{{Key: "created_at", Value: -1}}},
		{"", bson.D{{Key: "created_at", Value: -1}}},
	}

	for _, tc := range cases {
		got := GetProductSortBson(tc.sort)
		if got[0].Key != tc.want[0].Key || got[0].Value != tc.want[0].Value {
			t.Errorf("sort %q: want %v, got %v", tc.sort, tc.want, got)
		}
	}
}
