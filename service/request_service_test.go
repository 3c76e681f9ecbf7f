package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mazikuben/construction-be/types"
)

func newRequestFixture(t *testing.T) (RequestService, *recordingNotifier, string) {
	t.Helper()
	projects := newFakeProjectRepo()
	requests := newFakeRequestRepo()
	notifier := &recordingNotifier{}

	projectID, err := projects.CreateProject(context.Background(), &types.Project{
		Name:      "Site B",
		CreatedBy: "manager-1",
	})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}

	return NewRequestService(requests, projects, notifier), notifier, projectID
}

func TestCreateRequestNotifiesManager(t *testing.T) {
	svc, notifier, projectID := newRequestFixture(t)

	request, err := svc.Create(context.Background(), "worker-1", &types.CreateRequestRequest{
		ItemName:  "Steel Bars (12mm)",
		Quantity:  40,
		ProjectID: projectID,
		WorkerID:  "worker-1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if request.Status != types.REQUEST_STATUS_PENDING {
		t.Errorf("status = %q", request.Status)
	}
	if request.ManagerID != "manager-1" {
		t.Errorf("manager = %q, want the project's creator", request.ManagerID)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("got %d notifications", len(notifier.sent))
	}
	n := notifier.sent[0]
	if n.UserID != "manager-1" || n.Type != types.NOTIFICATION_TYPE_INVENTORY_REQUEST {
		t.Errorf("notification = %+v", n)
	}
}

func TestCreateRequestForAnotherWorker(t *testing.T) {
	svc, _, projectID := newRequestFixture(t)

	_, err := svc.Create(context.Background(), "worker-1", &types.CreateRequestRequest{
		ItemName:  "Sand",
		Quantity:  1,
		ProjectID: projectID,
		WorkerID:  "worker-2",
	})
	if !errors.Is(err, types.ErrForbidden) {
		t.Errorf("got %v, want ErrForbidden", err)
	}
}

func TestResolveRequestNotifiesWorker(t *testing.T) {
	svc, notifier, projectID := newRequestFixture(t)
	ctx := context.Background()

	request, err := svc.Create(ctx, "worker-1", &types.CreateRequestRequest{
		ItemName:  "Gravel",
		Quantity:  3,
		ProjectID: projectID,
		WorkerID:  "worker-1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	resolved, err := svc.Resolve(ctx, request.ID, types.REQUEST_STATUS_APPROVED)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Status != types.REQUEST_STATUS_APPROVED {
		t.Errorf("status = %q", resolved.Status)
	}

	last := notifier.sent[len(notifier.sent)-1]
	if last.UserID != "worker-1" || last.Type != types.NOTIFICATION_TYPE_REQUEST_RESOLVED {
		t.Errorf("notification = %+v", last)
	}

	if _, err := svc.Resolve(ctx, request.ID, "maybe"); !errors.Is(err, types.ErrValidation) {
		t.Errorf("invalid status: got %v", err)
	}
	// Pending is the creation state, not a resolution.
	if _, err := svc.Resolve(ctx, request.ID, types.REQUEST_STATUS_PENDING); !errors.Is(err, types.ErrValidation) {
		t.Errorf("resolve to pending: got %v, want ErrValidation", err)
	}
}

func TestListByWorkerSelfOnly(t *testing.T) {
	svc, _, _ := newRequestFixture(t)

	if _, err := svc.ListByWorker(context.Background(), "worker-1", "worker-2"); !errors.Is(err, types.ErrForbidden) {
		t.Errorf("got %v, want ErrForbidden", err)
	}
}
