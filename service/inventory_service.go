package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/mazikuben/construction-be/repository"
	"github.com/mazikuben/construction-be/types"
)

type InventoryService interface {
	CreateItem(ctx context.Context, req *types.CreateInventoryItemRequest) (*types.InventoryItem, error)
	ListItemsByProject(ctx context.Context, projectID string) ([]*types.InventoryItem, error)
	AttachImage(ctx context.Context, itemID string, file *multipart.FileHeader) (*types.InventoryItem, error)
}

type inventoryService struct {
	items    repository.InventoryRepo
	projects repository.ProjectRepo
	files    *FileService
}

func NewInventoryService(items repository.InventoryRepo, projects repository.ProjectRepo, files *FileService) InventoryService {
	return &inventoryService{
		items:    items,
		projects: projects,
		files:    files,
	}
}

func (s *inventoryService) CreateItem(ctx context.Context, req *types.CreateInventoryItemRequest) (*types.InventoryItem, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", types.ErrValidation)
	}
	if _, err := s.projects.GetProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	item := &types.InventoryItem{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		CostPerUnit: req.CostPerUnit,
		ProjectID:   req.ProjectID,
		CreatedAt:   time.Now().Unix(),
	}
	if _, err := s.items.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) ListItemsByProject(ctx context.Context, projectID string) ([]*types.InventoryItem, error) {
	if _, err := s.projects.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.items.ListItemsByProject(ctx, projectID)
}

// AttachImage writes the image to disk first and only then records its URL,
// so the stored reference never points at a missing file.
func (s *inventoryService) AttachImage(ctx context.Context, itemID string, file *multipart.FileHeader) (*types.InventoryItem, error) {
	if _, err := s.items.GetItem(ctx, itemID); err != nil {
		return nil, err
	}
	imageURL, err := s.files.SaveInventoryImage(file)
	if err != nil {
		return nil, err
	}
	if err := s.items.SetImageURL(ctx, itemID, imageURL); err != nil {
		return nil, err
	}
	return s.items.GetItem(ctx, itemID)
}
