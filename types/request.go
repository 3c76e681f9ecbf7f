package types

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Budget      float64 `json:"budget" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	ClientID    string  `json:"client_id" binding:"required"`
}

type UpdateProjectRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Budget      *float64 `json:"budget"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	ClientID    string   `json:"client_id"`
	Status      string   `json:"status"`
}

type CreateProgressReportRequest struct {
	ReportDate         string  `json:"report_date"`
	Description        string  `json:"description" binding:"required"`
	PercentageComplete float64 `json:"percentage_complete"`
}

type CreateInventoryItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" binding:"required"`
	Unit        string  `json:"unit" binding:"required"`
	CostPerUnit float64 `json:"cost_per_unit"`
	ProjectID   string  `json:"project_id" binding:"required"`
}

type CreateRequestRequest struct {
	ItemName  string  `json:"item_name" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required"`
	ProjectID string  `json:"project_id" binding:"required"`
	WorkerID  string  `json:"worker_id" binding:"required"`
}

type ResolveRequestRequest struct {
	Status string `json:"status" binding:"required"`
}

type LogMaterialUsageRequest struct {
	ItemName     string  `json:"item_name" binding:"required"`
	QuantityUsed float64 `json:"quantity_used" binding:"required"`
	Date         string  `json:"date"`
	ProjectID    string  `json:"project_id" binding:"required"`
}

type VerifyExpenseRequest struct {
	Status string `json:"status" binding:"required"`
}

type ManagerAdviceRequest struct {
	Query            string `json:"query" binding:"required"`
	ProjectType      string `json:"project_type"`
	BudgetConstraint string `json:"budget_constraint"`
}

type ClientAnalysisRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Query     string `json:"query" binding:"required"`
}
