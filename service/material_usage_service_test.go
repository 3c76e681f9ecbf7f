package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mazikuben/construction-be/types"
)

func newUsageFixture(t *testing.T) (MaterialUsageService, *fakeInventoryRepo, string) {
	t.Helper()
	ctx := context.Background()
	projects := newFakeProjectRepo()
	inventory := newFakeInventoryRepo()
	usage := newFakeUsageRepo()

	projectID, err := projects.CreateProject(ctx, &types.Project{Name: "Site A"})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
	if _, err := inventory.CreateItem(ctx, &types.InventoryItem{
		Name:      "Cement Bags",
		Quantity:  100,
		Unit:      "bags",
		ProjectID: projectID,
	}); err != nil {
		t.Fatalf("seed item: %v", err)
	}

	return NewMaterialUsageService(usage, inventory, projects), inventory, projectID
}

func TestLogUsageDecrementsInventory(t *testing.T) {
	svc, inventory, projectID := newUsageFixture(t)
	ctx := context.Background()

	usage, err := svc.Log(ctx, &types.LogMaterialUsageRequest{
		ItemName:     "Cement Bags",
		QuantityUsed: 30,
		Date:         "2026-02-10",
		ProjectID:    projectID,
	})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	if usage.ID == "" {
		t.Error("usage record has no id")
	}

	items, err := inventory.ListItemsByProject(ctx, projectID)
	if err != nil {
		t.Fatalf("ListItemsByProject: %v", err)
	}
	if items[0].Quantity != 70 {
		t.Errorf("stock = %v, want 70", items[0].Quantity)
	}
}

func TestLogUsageUnknownItemStillRecorded(t *testing.T) {
	svc, inventory, projectID := newUsageFixture(t)
	ctx := context.Background()

	usage, err := svc.Log(ctx, &types.LogMaterialUsageRequest{
		ItemName:     "Mystery Material",
		QuantityUsed: 5,
		ProjectID:    projectID,
	})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	if usage.ID == "" {
		t.Error("usage record has no id")
	}

	// the tracked item is untouched
	items, _ := inventory.ListItemsByProject(ctx, projectID)
	if items[0].Quantity != 100 {
		t.Errorf("stock = %v, want 100", items[0].Quantity)
	}
}

func TestLogUsageValidation(t *testing.T) {
	svc, _, projectID := newUsageFixture(t)
	ctx := context.Background()

	if _, err := svc.Log(ctx, &types.LogMaterialUsageRequest{
		ItemName:     "Cement Bags",
		QuantityUsed: 0,
		ProjectID:    projectID,
	}); !errors.Is(err, types.ErrValidation) {
		t.Errorf("zero quantity: got %v", err)
	}

	if _, err := svc.Log(ctx, &types.LogMaterialUsageRequest{
		ItemName:     "Cement Bags",
		QuantityUsed: 5,
		Date:         "10-02-2026",
		ProjectID:    projectID,
	}); !errors.Is(err, types.ErrValidation) {
		t.Errorf("bad date: got %v", err)
	}

	if _, err := svc.Log(ctx, &types.LogMaterialUsageRequest{
		ItemName:     "Cement Bags",
		QuantityUsed: 5,
		ProjectID:    "no-such-project",
	}); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("missing project: got %v", err)
	}
}
