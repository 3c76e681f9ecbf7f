package service

import (
	"context"
	"time"

	"github.com/mazikuben/construction-be/repository"
	"github.com/mazikuben/construction-be/types"
)

type NotificationService interface {
	// Notify persists the notification and pushes it to the recipient's live
	// stream when one is connected.
	Notify(ctx context.Context, notification *types.Notification) error
	ListForUser(ctx context.Context, callerID, userID string) ([]*types.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type notificationService struct {
	repo   repository.NotificationRepo
	stream *StreamService
}

func NewNotificationService(repo repository.NotificationRepo, stream *StreamService) NotificationService {
	return &notificationService{
		repo:   repo,
		stream: stream,
	}
}

func (s *notificationService) Notify(ctx context.Context, notification *types.Notification) error {
	notification.Read = false
	notification.CreatedAt = time.Now().Unix()
	if _, err := s.repo.CreateNotification(ctx, notification); err != nil {
		return err
	}
	if s.stream != nil {
		s.stream.Push(notification.UserID, notification)
	}
	return nil
}

func (s *notificationService) ListForUser(ctx context.Context, callerID, userID string) ([]*types.Notification, error) {
	if callerID != userID {
		return nil, types.ErrForbidden
	}
	return s.repo.ListNotificationsByUser(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}
