package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mazikuben/construction-be/types"
)

type expenseFixture struct {
	svc       ExpenseService
	expenses  *fakeExpenseRepo
	notifier  *recordingNotifier
	projectID string
	expenseID string
}

func newExpenseFixture(t *testing.T) *expenseFixture {
	t.Helper()
	ctx := context.Background()
	projects := newFakeProjectRepo()
	expenses := newFakeExpenseRepo()
	notifier := &recordingNotifier{}

	projectID, err := projects.CreateProject(ctx, &types.Project{
		Name:     "Site C",
		ClientID: "client-1",
	})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
	expenseID, err := expenses.CreateExpense(ctx, &types.Expense{
		Amount:      1000,
		Description: "Purchase of cement",
		ProjectID:   projectID,
		CreatedBy:   "manager-1",
		Verified:    types.EXPENSE_STATUS_PENDING,
	})
	if err != nil {
		t.Fatalf("seed expense: %v", err)
	}

	return &expenseFixture{
		svc:       NewExpenseService(expenses, projects, nil, notifier),
		expenses:  expenses,
		notifier:  notifier,
		projectID: projectID,
		expenseID: expenseID,
	}
}

func TestVerifyExpense(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	if err := f.svc.Verify(ctx, "client-1", f.expenseID, types.EXPENSE_STATUS_APPROVED); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	expense, _ := f.expenses.GetExpense(ctx, f.expenseID)
	if expense.Verified != types.EXPENSE_STATUS_APPROVED {
		t.Errorf("verified = %q", expense.Verified)
	}

	if len(f.notifier.sent) != 1 {
		t.Fatalf("got %d notifications", len(f.notifier.sent))
	}
	n := f.notifier.sent[0]
	if n.UserID != "manager-1" || n.Type != types.NOTIFICATION_TYPE_EXPENSE_VERIFICATION {
		t.Errorf("notification = %+v", n)
	}
}

func TestVerifyExpenseWrongClient(t *testing.T) {
	f := newExpenseFixture(t)

	err := f.svc.Verify(context.Background(), "client-2", f.expenseID, types.EXPENSE_STATUS_APPROVED)
	if !errors.Is(err, types.ErrForbidden) {
		t.Errorf("got %v, want ErrForbidden", err)
	}
	if len(f.notifier.sent) != 0 {
		t.Error("notification sent despite forbidden verification")
	}
}

func TestListExpensesClientOwnership(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	if _, err := f.svc.ListExpensesByProject(ctx, "client-2", types.USER_ROLE_CLIENT, f.projectID); !errors.Is(err, types.ErrForbidden) {
		t.Errorf("foreign client: got %v, want ErrForbidden", err)
	}

	expenses, err := f.svc.ListExpensesByProject(ctx, "client-1", types.USER_ROLE_CLIENT, f.projectID)
	if err != nil {
		t.Fatalf("owning client: %v", err)
	}
	if len(expenses) != 1 {
		t.Errorf("got %d expenses", len(expenses))
	}

	// Managers read any project's expenses.
	if _, err := f.svc.ListExpensesByProject(ctx, "manager-1", types.USER_ROLE_MANAGER, f.projectID); err != nil {
		t.Errorf("manager: %v", err)
	}
}

func TestVerifyExpenseBadStatus(t *testing.T) {
	f := newExpenseFixture(t)

	err := f.svc.Verify(context.Background(), "client-1", f.expenseID, "rejected")
	if !errors.Is(err, types.ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
}
