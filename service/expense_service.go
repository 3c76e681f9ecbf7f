package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/mazikuben/construction-be/repository"
	"github.com/mazikuben/construction-be/types"
)

type ExpenseService interface {
	CreateExpense(ctx context.Context, managerID string, amount float64, description, date, projectID string, receipt *multipart.FileHeader) (*types.Expense, error)
	// ListExpensesByProject applies the project read rule: clients only see
	// expenses of projects they own.
	ListExpensesByProject(ctx context.Context, callerID, callerRole, projectID string) ([]*types.Expense, error)
	// Verify applies the client-only verification transition; callerID must
	// be the owning project's client.
	Verify(ctx context.Context, callerID, expenseID, status string) error
}

type expenseService struct {
	expenses      repository.ExpenseRepo
	projects      repository.ProjectRepo
	files         *FileService
	notifications NotificationService
}

func NewExpenseService(
	expenses repository.ExpenseRepo,
	projects repository.ProjectRepo,
	files *FileService,
	notifications NotificationService,
) ExpenseService {
	return &expenseService{
		expenses:      expenses,
		projects:      projects,
		files:         files,
		notifications: notifications,
	}
}

func (s *expenseService) CreateExpense(ctx context.Context, managerID string, amount float64, description, date, projectID string, receipt *multipart.FileHeader) (*types.Expense, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", types.ErrValidation)
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if _, err := s.projects.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	// Receipt hits durable storage before the expense record exists.
	receiptURL, err := s.files.SaveReceipt(receipt)
	if err != nil {
		return nil, err
	}

	expense := &types.Expense{
		Amount:      amount,
		Description: description,
		Date:        date,
		ProjectID:   projectID,
		ReceiptURL:  receiptURL,
		CreatedBy:   managerID,
		Verified:    types.EXPENSE_STATUS_PENDING,
		CreatedAt:   time.Now().Unix(),
	}
	if _, err := s.expenses.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) ListExpensesByProject(ctx context.Context, callerID, callerRole, projectID string) ([]*types.Expense, error) {
	project, err := s.projects.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if callerRole == types.USER_ROLE_CLIENT && project.ClientID != callerID {
		return nil, types.ErrForbidden
	}
	return s.expenses.ListExpensesByProject(ctx, projectID)
}

func (s *expenseService) Verify(ctx context.Context, callerID, expenseID, status string) error {
	if !types.ValidVerificationStatus(status) {
		return fmt.Errorf("%w: unknown verification status %q", types.ErrValidation, status)
	}
	expense, err := s.expenses.GetExpense(ctx, expenseID)
	if err != nil {
		return err
	}
	project, err := s.projects.GetProject(ctx, expense.ProjectID)
	if err != nil {
		return err
	}
	if project.ClientID != callerID {
		return types.ErrForbidden
	}
	if err := s.expenses.SetVerification(ctx, expenseID, status); err != nil {
		return err
	}

	if expense.CreatedBy != "" {
		// A failed notification does not undo the verification.
		if err := s.notifications.Notify(ctx, &types.Notification{
			UserID:    expense.CreatedBy,
			Type:      types.NOTIFICATION_TYPE_EXPENSE_VERIFICATION,
			Message:   fmt.Sprintf("Expense %q was marked %s by the client", expense.Description, status),
			ExpenseID: expenseID,
			ProjectID: expense.ProjectID,
		}); err != nil {
			log.Printf("notify expense verification: %v", err)
		}
	}
	return nil
}
