package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mazikuben/construction-be/types"
)

type RequestRepo interface {
	CreateRequest(ctx context.Context, request *types.InventoryRequest) (string, error)
	GetRequest(ctx context.Context, id string) (*types.InventoryRequest, error)
	ListRequestsByProject(ctx context.Context, projectID string) ([]*types.InventoryRequest, error)
	ListRequestsByWorker(ctx context.Context, workerID string) ([]*types.InventoryRequest, error)
	SetStatus(ctx context.Context, id, status string) error
}

type requestRepo struct {
	collection *mongo.Collection
}

func NewRequestRepo(collection *mongo.Collection) RequestRepo {
	return &requestRepo{
		collection: collection,
	}
}

func (r *requestRepo) CreateRequest(ctx context.Context, request *types.InventoryRequest) (string, error) {
	id := bson.NewObjectID().Hex()
	request.ID = id
	_, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *requestRepo) GetRequest(ctx context.Context, id string) (*types.InventoryRequest, error) {
	if _, err := objectID(id); err != nil {
		return nil, err
	}
	var request types.InventoryRequest
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		return nil, mapFindErr(err)
	}
	return &request, nil
}

func (r *requestRepo) ListRequestsByProject(ctx context.Context, projectID string) ([]*types.InventoryRequest, error) {
	if _, err := objectID(projectID); err != nil {
		return []*types.InventoryRequest{}, nil
	}
	return r.find(ctx, bson.M{"project_id": projectID})
}

func (r *requestRepo) ListRequestsByWorker(ctx context.Context, workerID string) ([]*types.InventoryRequest, error) {
	if _, err := objectID(workerID); err != nil {
		return []*types.InventoryRequest{}, nil
	}
	return r.find(ctx, bson.M{"worker_id": workerID})
}

func (r *requestRepo) find(ctx context.Context, filter bson.M) ([]*types.InventoryRequest, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []*types.InventoryRequest{}
	for cursor.Next(ctx) {
		var request types.InventoryRequest
		if err := cursor.Decode(&request); err != nil {
			return nil, err
		}
		requests = append(requests, &request)
	}
	return requests, cursor.Err()
}

func (r *requestRepo) SetStatus(ctx context.Context, id, status string) error {
	if _, err := objectID(id); err != nil {
		return err
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}
