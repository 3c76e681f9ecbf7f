package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mazikuben/construction-be/repository"
	"github.com/mazikuben/construction-be/types"
)

type RequestService interface {
	Create(ctx context.Context, callerID string, req *types.CreateRequestRequest) (*types.InventoryRequest, error)
	Resolve(ctx context.Context, id, status string) (*types.InventoryRequest, error)
	ListByProject(ctx context.Context, projectID string) ([]*types.InventoryRequest, error)
	ListByWorker(ctx context.Context, callerID, workerID string) ([]*types.InventoryRequest, error)
}

type requestService struct {
	requests      repository.RequestRepo
	projects      repository.ProjectRepo
	notifications NotificationService
}

func NewRequestService(
	requests repository.RequestRepo,
	projects repository.ProjectRepo,
	notifications NotificationService,
) RequestService {
	return &requestService{
		requests:      requests,
		projects:      projects,
		notifications: notifications,
	}
}

func (s *requestService) Create(ctx context.Context, callerID string, req *types.CreateRequestRequest) (*types.InventoryRequest, error) {
	if req.WorkerID != callerID {
		return nil, types.ErrForbidden
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", types.ErrValidation)
	}
	project, err := s.projects.GetProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	request := &types.InventoryRequest{
		ItemName:  req.ItemName,
		Quantity:  req.Quantity,
		ProjectID: project.ID,
		WorkerID:  req.WorkerID,
		// The manager who created the project resolves its requests.
		ManagerID: project.CreatedBy,
		Status:    types.REQUEST_STATUS_PENDING,
		CreatedAt: time.Now().Unix(),
	}
	id, err := s.requests.CreateRequest(ctx, request)
	if err != nil {
		return nil, err
	}
	request.ID = id

	if request.ManagerID != "" {
		if err := s.notifications.Notify(ctx, &types.Notification{
			UserID:    request.ManagerID,
			Type:      types.NOTIFICATION_TYPE_INVENTORY_REQUEST,
			Message:   fmt.Sprintf("New request for %.2f x %s on project %q", request.Quantity, request.ItemName, project.Name),
			RequestID: id,
			ProjectID: project.ID,
		}); err != nil {
			log.Printf("notify inventory request: %v", err)
		}
	}
	return request, nil
}

func (s *requestService) Resolve(ctx context.Context, id, status string) (*types.InventoryRequest, error) {
	// Resolution is one-way; a request cannot be moved back to pending.
	if !types.ValidResolutionStatus(status) {
		return nil, fmt.Errorf("%w: invalid resolution status %q", types.ErrValidation, status)
	}
	request, err := s.requests.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requests.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	request.Status = status

	if err := s.notifications.Notify(ctx, &types.Notification{
		UserID:    request.WorkerID,
		Type:      types.NOTIFICATION_TYPE_REQUEST_RESOLVED,
		Message:   fmt.Sprintf("Your request for %s was %s", request.ItemName, status),
		RequestID: id,
		ProjectID: request.ProjectID,
	}); err != nil {
		log.Printf("notify request resolution: %v", err)
	}
	return request, nil
}

func (s *requestService) ListByProject(ctx context.Context, projectID string) ([]*types.InventoryRequest, error) {
	if _, err := s.projects.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.requests.ListRequestsByProject(ctx, projectID)
}

func (s *requestService) ListByWorker(ctx context.Context, callerID, workerID string) ([]*types.InventoryRequest, error) {
	if callerID != workerID {
		return nil, types.ErrForbidden
	}
	return s.requests.ListRequestsByWorker(ctx, workerID)
}
