package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mazikuben/construction-be/types"
)

// Notifications are append-only apart from the read flag; there is no delete.
type NotificationRepo interface {
	CreateNotification(ctx context.Context, notification *types.Notification) (string, error)
	ListNotificationsByUser(ctx context.Context, userID string) ([]*types.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type notificationRepo struct {
	collection *mongo.Collection
}

func NewNotificationRepo(collection *mongo.Collection) NotificationRepo {
	return &notificationRepo{
		collection: collection,
	}
}

func (r *notificationRepo) CreateNotification(ctx context.Context, notification *types.Notification) (string, error) {
	id := bson.NewObjectID().Hex()
	notification.ID = id
	_, err := r.collection.InsertOne(ctx, notification)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *notificationRepo) ListNotificationsByUser(ctx context.Context, userID string) ([]*types.Notification, error) {
	if _, err := objectID(userID); err != nil {
		return []*types.Notification{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []*types.Notification{}
	for cursor.Next(ctx) {
		var notification types.Notification
		if err := cursor.Decode(&notification); err != nil {
			return nil, err
		}
		notifications = append(notifications, &notification)
	}
	return notifications, cursor.Err()
}

func (r *notificationRepo) MarkRead(ctx context.Context, id string) error {
	if _, err := objectID(id); err != nil {
		return err
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"read": true},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}
