package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	CollectionUsers         = "users"
	CollectionProjects      = "projects"
	CollectionInventory     = "inventory"
	CollectionExpenses      = "expenses"
	CollectionRequests      = "requests"
	CollectionMaterialUsage = "material_usage"
	CollectionNotifications = "notifications"
)

func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{
			ObjectIDAsHexString: true,
		}))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the lookup and uniqueness indexes the repositories
// rely on. Username and email uniqueness is enforced here, not in application
// code.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection(CollectionUsers).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}

	byProject := mongo.IndexModel{Keys: bson.D{{Key: "project_id", Value: 1}}}
	for _, name := range []string{
		CollectionInventory,
		CollectionExpenses,
		CollectionRequests,
		CollectionMaterialUsage,
	} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, byProject); err != nil {
			return err
		}
	}

	if _, err := db.Collection(CollectionProjects).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "client_id", Value: 1}},
	}); err != nil {
		return err
	}
	if _, err := db.Collection(CollectionRequests).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "worker_id", Value: 1}},
	}); err != nil {
		return err
	}
	_, err = db.Collection(CollectionNotifications).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
