package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mazikuben/construction-be/repository"
	"github.com/mazikuben/construction-be/types"
)

type ProjectService interface {
	CreateProject(ctx context.Context, managerID string, req *types.CreateProjectRequest) (*types.Project, error)
	GetProject(ctx context.Context, id string) (*types.Project, error)
	ListProjects(ctx context.Context, status, clientID string) ([]*types.Project, error)
	ListProjectsByClient(ctx context.Context, clientID string) ([]*types.Project, error)
	UpdateProject(ctx context.Context, id string, req *types.UpdateProjectRequest) (*types.Project, error)
	DeleteProject(ctx context.Context, id string) error
	AddProgressReport(ctx context.Context, projectID, managerID string, req *types.CreateProgressReportRequest) error
	ListProgressReports(ctx context.Context, projectID string) ([]types.ProgressReport, error)
	Summarize(ctx context.Context, projectID string) (*types.ProjectSummary, error)
}

type projectService struct {
	projects  repository.ProjectRepo
	users     repository.UserRepo
	expenses  repository.ExpenseRepo
	usageLogs repository.MaterialUsageRepo
}

func NewProjectService(
	projects repository.ProjectRepo,
	users repository.UserRepo,
	expenses repository.ExpenseRepo,
	usageLogs repository.MaterialUsageRepo,
) ProjectService {
	return &projectService{
		projects:  projects,
		users:     users,
		expenses:  expenses,
		usageLogs: usageLogs,
	}
}

func (s *projectService) CreateProject(ctx context.Context, managerID string, req *types.CreateProjectRequest) (*types.Project, error) {
	if req.Budget <= 0 {
		return nil, fmt.Errorf("%w: budget must be positive", types.ErrValidation)
	}
	if err := validateDate(req.StartDate); err != nil {
		return nil, err
	}
	if err := validateDate(req.EndDate); err != nil {
		return nil, err
	}
	if err := s.checkClient(ctx, req.ClientID); err != nil {
		return nil, err
	}

	project := &types.Project{
		Name:            req.Name,
		Description:     req.Description,
		Location:        req.Location,
		Budget:          req.Budget,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		ClientID:        req.ClientID,
		Status:          types.PROJECT_STATUS_PLANNING,
		CreatedBy:       managerID,
		CreatedAt:       time.Now().Unix(),
		ProgressReports: []types.ProgressReport{},
	}
	if _, err := s.projects.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (*types.Project, error) {
	return s.projects.GetProject(ctx, id)
}

func (s *projectService) ListProjects(ctx context.Context, status, clientID string) ([]*types.Project, error) {
	if status != "" && !types.ValidProjectStatus(status) {
		return nil, fmt.Errorf("%w: unknown project status %q", types.ErrValidation, status)
	}
	return s.projects.ListProjects(ctx, status, clientID)
}

func (s *projectService) ListProjectsByClient(ctx context.Context, clientID string) ([]*types.Project, error) {
	return s.projects.ListProjectsByClient(ctx, clientID)
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req *types.UpdateProjectRequest) (*types.Project, error) {
	project, err := s.projects.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if req.Budget != nil {
		if *req.Budget <= 0 {
			return nil, fmt.Errorf("%w: budget must be positive", types.ErrValidation)
		}
		fields["budget"] = *req.Budget
	}
	if req.StartDate != "" {
		if err := validateDate(req.StartDate); err != nil {
			return nil, err
		}
		fields["start_date"] = req.StartDate
	}
	if req.EndDate != "" {
		if err := validateDate(req.EndDate); err != nil {
			return nil, err
		}
		fields["end_date"] = req.EndDate
	}
	if req.ClientID != "" && req.ClientID != project.ClientID {
		if err := s.checkClient(ctx, req.ClientID); err != nil {
			return nil, err
		}
		fields["client_id"] = req.ClientID
	}
	if req.Status != "" {
		if !types.ValidProjectStatus(req.Status) {
			return nil, fmt.Errorf("%w: unknown project status %q", types.ErrValidation, req.Status)
		}
		fields["status"] = req.Status
	}

	if len(fields) > 0 {
		if err := s.projects.UpdateProject(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.projects.GetProject(ctx, id)
}

func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.projects.GetProject(ctx, id); err != nil {
		return err
	}
	return s.projects.DeleteProject(ctx, id)
}

func (s *projectService) AddProgressReport(ctx context.Context, projectID, managerID string, req *types.CreateProgressReportRequest) error {
	if req.PercentageComplete < 0 || req.PercentageComplete > 100 {
		return fmt.Errorf("%w: percentage_complete must be between 0 and 100", types.ErrValidation)
	}
	reportDate := req.ReportDate
	if reportDate == "" {
		reportDate = time.Now().Format(types.DateLayout)
	} else if err := validateDate(reportDate); err != nil {
		return err
	}
	if _, err := s.projects.GetProject(ctx, projectID); err != nil {
		return err
	}

	report := &types.ProgressReport{
		ReportDate:         reportDate,
		Description:        req.Description,
		PercentageComplete: req.PercentageComplete,
		SubmittedBy:        managerID,
		CreatedAt:          time.Now().Unix(),
	}
	return s.projects.PushProgressReport(ctx, projectID, report)
}

func (s *projectService) ListProgressReports(ctx context.Context, projectID string) ([]types.ProgressReport, error) {
	project, err := s.projects.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return project.ProgressReports, nil
}

// Summarize combines four independent reads client-side; there is no
// multi-document transaction. Expense totals deliberately include pending and
// flagged rows.
func (s *projectService) Summarize(ctx context.Context, projectID string) (*types.ProjectSummary, error) {
	project, err := s.projects.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenses.ListExpensesByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	totalExpenses := 0.0
	for _, expense := range expenses {
		totalExpenses += expense.Amount
	}

	usageLogs, err := s.usageLogs.ListUsageByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	materialUsage := map[string]float64{}
	for _, usage := range usageLogs {
		materialUsage[usage.ItemName] += usage.QuantityUsed
	}

	progress := 0.0
	if n := len(project.ProgressReports); n > 0 {
		progress = project.ProgressReports[n-1].PercentageComplete
	}

	return &types.ProjectSummary{
		ProjectName:        project.Name,
		TotalExpenses:      totalExpenses,
		MaterialUsage:      materialUsage,
		ProgressPercentage: progress,
		StartDate:          project.StartDate,
		EndDate:            project.EndDate,
		ExpensesCount:      len(expenses),
		MaterialUsageCount: len(usageLogs),
	}, nil
}

func (s *projectService) checkClient(ctx context.Context, clientID string) error {
	client, err := s.users.GetUser(ctx, clientID)
	if err != nil {
		return fmt.Errorf("client lookup: %w", err)
	}
	if client.Role != types.USER_ROLE_CLIENT {
		return fmt.Errorf("%w: user %s has role %s, not client", types.ErrValidation, clientID, client.Role)
	}
	return nil
}

func validateDate(date string) error {
	if _, err := time.Parse(types.DateLayout, date); err != nil {
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", types.ErrValidation, date)
	}
	return nil
}
