package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mazikuben/construction-be/types"
)

type InventoryRepo interface {
	CreateItem(ctx context.Context, item *types.InventoryItem) (string, error)
	GetItem(ctx context.Context, id string) (*types.InventoryItem, error)
	ListItemsByProject(ctx context.Context, projectID string) ([]*types.InventoryItem, error)
	SetImageURL(ctx context.Context, id, imageURL string) error
	// AdjustQuantityByName applies a single atomic $inc to the item matched
	// by name and project; never read-modify-write. Returns false when no
	// item matched.
	AdjustQuantityByName(ctx context.Context, projectID, name string, delta float64) (bool, error)
}

type inventoryRepo struct {
	collection *mongo.Collection
}

func NewInventoryRepo(collection *mongo.Collection) InventoryRepo {
	return &inventoryRepo{
		collection: collection,
	}
}

func (r *inventoryRepo) CreateItem(ctx context.Context, item *types.InventoryItem) (string, error) {
	id := bson.NewObjectID().Hex()
	item.ID = id
	_, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *inventoryRepo) GetItem(ctx context.Context, id string) (*types.InventoryItem, error) {
	if _, err := objectID(id); err != nil {
		return nil, err
	}
	var item types.InventoryItem
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, mapFindErr(err)
	}
	return &item, nil
}

func (r *inventoryRepo) ListItemsByProject(ctx context.Context, projectID string) ([]*types.InventoryItem, error) {
	if _, err := objectID(projectID); err != nil {
		return []*types.InventoryItem{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []*types.InventoryItem{}
	for cursor.Next(ctx) {
		var item types.InventoryItem
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, cursor.Err()
}

func (r *inventoryRepo) SetImageURL(ctx context.Context, id, imageURL string) error {
	if _, err := objectID(id); err != nil {
		return err
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"image_url": imageURL},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (r *inventoryRepo) AdjustQuantityByName(ctx context.Context, projectID, name string, delta float64) (bool, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"name": name, "project_id": projectID},
		bson.M{"$inc": bson.M{"quantity": delta}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
