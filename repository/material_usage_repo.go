package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mazikuben/construction-be/types"
)

type MaterialUsageRepo interface {
	CreateUsage(ctx context.Context, usage *types.MaterialUsage) (string, error)
	ListUsageByProject(ctx context.Context, projectID string) ([]*types.MaterialUsage, error)
}

type materialUsageRepo struct {
	collection *mongo.Collection
}

func NewMaterialUsageRepo(collection *mongo.Collection) MaterialUsageRepo {
	return &materialUsageRepo{
		collection: collection,
	}
}

func (r *materialUsageRepo) CreateUsage(ctx context.Context, usage *types.MaterialUsage) (string, error) {
	id := bson.NewObjectID().Hex()
	usage.ID = id
	_, err := r.collection.InsertOne(ctx, usage)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *materialUsageRepo) ListUsageByProject(ctx context.Context, projectID string) ([]*types.MaterialUsage, error) {
	if _, err := objectID(projectID); err != nil {
		return []*types.MaterialUsage{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []*types.MaterialUsage{}
	for cursor.Next(ctx) {
		var usage types.MaterialUsage
		if err := cursor.Decode(&usage); err != nil {
			return nil, err
		}
		logs = append(logs, &usage)
	}
	return logs, cursor.Err()
}
