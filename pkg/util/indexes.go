package util

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexDefinition pairs a collection with an index to ensure at startup.
type IndexDefinition struct {
	Collection string
	Index      mongo.IndexModel
}

// RequiredIndexes lists the indexes the service layer depends on. The
// unique indexes back the duplicate-email checks and the one-cart-per-user
// invariant: without them InsertOne never reports a duplicate key.
func RequiredIndexes() []IndexDefinition {
	return []IndexDefinition{
		{
			Collection: "User",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("user_email_unique"),
			},
		},
		{
			Collection: "Admin",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("admin_email_unique"),
			},
		},
		{
			Collection: "Cart",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "userId", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("cart_user_unique"),
			},
		},
	}
}

// EnsureIndexes creates every required index. Recreating an identical
// existing index is a no-op, so this is safe to run on every boot.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, def := range RequiredIndexes() {
		name, err := db.Collection(def.Collection).Indexes().CreateOne(ctx, def.Index)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				log.Printf("Cannot create unique index on %s due to duplicate data", def.Collection)
			}
			return err
		}
		log.Printf("Created index %s on collection %s", name, def.Collection)
	}
	return nil
}
