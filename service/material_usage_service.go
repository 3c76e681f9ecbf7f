package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mazikuben/construction-be/repository"
	"github.com/mazikuben/construction-be/types"
)

type MaterialUsageService interface {
	Log(ctx context.Context, req *types.LogMaterialUsageRequest) (*types.MaterialUsage, error)
	ListByProject(ctx context.Context, projectID string) ([]*types.MaterialUsage, error)
}

type materialUsageService struct {
	usage     repository.MaterialUsageRepo
	inventory repository.InventoryRepo
	projects  repository.ProjectRepo
}

func NewMaterialUsageService(
	usage repository.MaterialUsageRepo,
	inventory repository.InventoryRepo,
	projects repository.ProjectRepo,
) MaterialUsageService {
	return &materialUsageService{
		usage:     usage,
		inventory: inventory,
		projects:  projects,
	}
}

func (s *materialUsageService) Log(ctx context.Context, req *types.LogMaterialUsageRequest) (*types.MaterialUsage, error) {
	if req.QuantityUsed <= 0 {
		return nil, fmt.Errorf("%w: quantity used must be positive", types.ErrValidation)
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format(types.DateLayout)
	} else if err := validateDate(date); err != nil {
		return nil, err
	}
	project, err := s.projects.GetProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	usage := &types.MaterialUsage{
		ItemName:     req.ItemName,
		QuantityUsed: req.QuantityUsed,
		Date:         date,
		ProjectID:    project.ID,
		CreatedAt:    time.Now().Unix(),
	}
	id, err := s.usage.CreateUsage(ctx, usage)
	if err != nil {
		return nil, err
	}
	usage.ID = id

	// Stock is decremented in one atomic update on the matching item. A log
	// entry for an item name not tracked in the project's inventory stands
	// on its own; the decrement is simply skipped.
	matched, err := s.inventory.AdjustQuantityByName(ctx, project.ID, req.ItemName, -req.QuantityUsed)
	if err != nil {
		return nil, err
	}
	if !matched {
		log.Printf("no inventory item %q in project %s, usage logged without decrement", req.ItemName, project.ID)
	}
	return usage, nil
}

func (s *materialUsageService) ListByProject(ctx context.Context, projectID string) ([]*types.MaterialUsage, error) {
	if _, err := s.projects.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.usage.ListUsageByProject(ctx, projectID)
}
