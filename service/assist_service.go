package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mazikuben/construction-be/types"
)

const (
	managerAdvicePrompt = "You are a construction project management advisor. " +
		"You help site managers with planning, budgeting, scheduling and material choices. " +
		"Answer concisely and practically."
	workerGuidancePrompt = "You are a construction site assistant. " +
		"You help workers identify materials, tools and site conditions, and explain " +
		"safe handling procedures. When an image is attached, describe what it shows first."
	clientAnalysisPrompt = "You are a construction project analyst reporting to the paying client. " +
		"Base your answer only on the project figures provided. Be direct about overruns and delays."
)

type AssistService interface {
	ManagerAdvice(ctx context.Context, req *types.ManagerAdviceRequest) (*types.AdviceResponse, error)
	WorkerHelp(ctx context.Context, query, imageBase64 string) (*types.GuidanceResponse, error)
	// ClientAnalysis answers a client's question about their own project,
	// grounded in the live summary figures.
	ClientAnalysis(ctx context.Context, callerID string, req *types.ClientAnalysisRequest) (*types.AnalysisResponse, error)
}

type assistService struct {
	ai       Assistant
	projects ProjectService
}

func NewAssistService(ai Assistant, projects ProjectService) AssistService {
	return &assistService{
		ai:       ai,
		projects: projects,
	}
}

func (s *assistService) ManagerAdvice(ctx context.Context, req *types.ManagerAdviceRequest) (*types.AdviceResponse, error) {
	var sb strings.Builder
	sb.WriteString(req.Query)
	if req.ProjectType != "" {
		fmt.Fprintf(&sb, "\nProject type: %s", req.ProjectType)
	}
	if req.BudgetConstraint != "" {
		fmt.Fprintf(&sb, "\nBudget constraint: %s", req.BudgetConstraint)
	}

	advice, err := s.ai.Complete(ctx, []types.AssistMessage{
		{Role: "system", Text: managerAdvicePrompt},
		{Role: "user", Text: sb.String()},
	})
	if err != nil {
		return nil, err
	}
	return &types.AdviceResponse{
		Query:     req.Query,
		Advice:    advice,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *assistService) WorkerHelp(ctx context.Context, query, imageBase64 string) (*types.GuidanceResponse, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", types.ErrValidation)
	}
	guidance, err := s.ai.Complete(ctx, []types.AssistMessage{
		{Role: "system", Text: workerGuidancePrompt},
		{Role: "user", Text: query, ImageBase64: imageBase64},
	})
	if err != nil {
		return nil, err
	}
	return &types.GuidanceResponse{
		Query:     query,
		Guidance:  guidance,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *assistService) ClientAnalysis(ctx context.Context, callerID string, req *types.ClientAnalysisRequest) (*types.AnalysisResponse, error) {
	project, err := s.projects.GetProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.ClientID != callerID {
		return nil, types.ErrForbidden
	}
	summary, err := s.projects.Summarize(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Project: %s (status %s)\n", project.Name, project.Status)
	fmt.Fprintf(&sb, "Budget: %.2f, spent so far: %.2f across %d expenses\n",
		project.Budget, summary.TotalExpenses, summary.ExpensesCount)
	fmt.Fprintf(&sb, "Progress: %.1f%% complete, scheduled %s to %s\n",
		summary.ProgressPercentage, summary.StartDate, summary.EndDate)
	if len(summary.MaterialUsage) > 0 {
		sb.WriteString("Material usage:\n")
		for name, qty := range summary.MaterialUsage {
			fmt.Fprintf(&sb, "  %s: %.2f\n", name, qty)
		}
	}
	fmt.Fprintf(&sb, "\nQuestion: %s", req.Query)

	analysis, err := s.ai.Complete(ctx, []types.AssistMessage{
		{Role: "system", Text: clientAnalysisPrompt},
		{Role: "user", Text: sb.String()},
	})
	if err != nil {
		return nil, err
	}
	return &types.AnalysisResponse{
		ProjectID: req.ProjectID,
		Query:     req.Query,
		Analysis:  analysis,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
