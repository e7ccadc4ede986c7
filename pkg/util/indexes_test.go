package util

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestRequiredIndexesCoverDuplicateChecks(t *testing.T) {
	want := map[string]string{
		"User":  "email",
		"Admin": "email",
		"Cart":  "userId",
	}

	defs := RequiredIndexes()
	for _, def := range defs {
		field, ok := want[def.Collection]
		if !ok {
			continue
		}

		keys, ok := def.Index.Keys.(bson.D)
		if !ok || len(keys) != 1 || keys[0].Key != field {
			t.Errorf("collection %s: want single-field index on %s, got %v", def.Collection, field, def.Index.Keys)
			continue
		}
		if def.Index.Options == nil || def.Index.Options.Unique == nil || !*def.Index.Options.Unique {
			t.Errorf("collection %s: index on %s must be unique", def.Collection, field)
		}
		delete(want, def.Collection)
	}

	for collection, field := range want {
		t.Errorf("missing unique index on %s.%s", collection, field)
	}
}
