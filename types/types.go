package types

const (
	USER_ROLE_MANAGER = "manager"
	USER_ROLE_WORKER  = "worker"
	USER_ROLE_CLIENT  = "client"
)

const (
	PROJECT_STATUS_PLANNING    = "planning"
	PROJECT_STATUS_IN_PROGRESS = "in_progress"
	PROJECT_STATUS_COMPLETED   = "completed"
	PROJECT_STATUS_ON_HOLD     = "on_hold"
	PROJECT_STATUS_CANCELLED   = "cancelled"
)

const (
	EXPENSE_STATUS_PENDING  = "pending"
	EXPENSE_STATUS_APPROVED = "approved"
	EXPENSE_STATUS_FLAGGED  = "flagged"
)

const (
	REQUEST_STATUS_PENDING  = "pending"
	REQUEST_STATUS_APPROVED = "approved"
	REQUEST_STATUS_REJECTED = "rejected"
)

const (
	NOTIFICATION_TYPE_INVENTORY_REQUEST    = "inventory_request"
	NOTIFICATION_TYPE_REQUEST_RESOLVED     = "request_resolved"
	NOTIFICATION_TYPE_EXPENSE_VERIFICATION = "expense_verification"
	NOTIFICATION_TYPE_PROJECT_UPDATE       = "project_update"
)

// DateLayout is the wire format for calendar dates (start/end dates,
// expense dates, report dates).
const DateLayout = "2006-01-02"

type User struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	Username       string `json:"username" bson:"username"`
	Email          string `json:"email" bson:"email"`
	Role           string `json:"role" bson:"role"`
	HashedPassword string `json:"-" bson:"hashed_password"`
	CreatedAt      int64  `json:"created_at" bson:"created_at"`
}

// ProgressReport lives embedded inside Project; the list is append-only and
// the last element is the current progress.
type ProgressReport struct {
	ReportDate         string  `json:"report_date" bson:"report_date"`
	Description        string  `json:"description" bson:"description"`
	PercentageComplete float64 `json:"percentage_complete" bson:"percentage_complete"`
	SubmittedBy        string  `json:"submitted_by" bson:"submitted_by"`
	CreatedAt          int64   `json:"created_at" bson:"created_at"`
}

type Project struct {
	ID              string           `json:"id" bson:"_id,omitempty"`
	Name            string           `json:"name" bson:"name"`
	Description     string           `json:"description" bson:"description"`
	Location        string           `json:"location" bson:"location"`
	Budget          float64          `json:"budget" bson:"budget"`
	StartDate       string           `json:"start_date" bson:"start_date"`
	EndDate         string           `json:"end_date" bson:"end_date"`
	ClientID        string           `json:"client_id" bson:"client_id"`
	Status          string           `json:"status" bson:"status"`
	CreatedBy       string           `json:"created_by" bson:"created_by"`
	CreatedAt       int64            `json:"created_at" bson:"created_at"`
	ProgressReports []ProgressReport `json:"progress_reports" bson:"progress_reports"`
}

type InventoryItem struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Quantity    float64 `json:"quantity" bson:"quantity"`
	Unit        string  `json:"unit" bson:"unit"`
	CostPerUnit float64 `json:"cost_per_unit,omitempty" bson:"cost_per_unit,omitempty"`
	ProjectID   string  `json:"project_id" bson:"project_id"`
	ImageURL    string  `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt   int64   `json:"created_at" bson:"created_at"`
}

type Expense struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Amount      float64 `json:"amount" bson:"amount"`
	Description string  `json:"description" bson:"description"`
	Date        string  `json:"date" bson:"date"`
	ProjectID   string  `json:"project_id" bson:"project_id"`
	ReceiptURL  string  `json:"receipt_url,omitempty" bson:"receipt_url,omitempty"`
	CreatedBy   string  `json:"created_by" bson:"created_by"`
	Verified    string  `json:"verified" bson:"verified"`
	CreatedAt   int64   `json:"created_at" bson:"created_at"`
}

type InventoryRequest struct {
	ID        string  `json:"id" bson:"_id,omitempty"`
	ItemName  string  `json:"item_name" bson:"item_name"`
	Quantity  float64 `json:"quantity" bson:"quantity"`
	ProjectID string  `json:"project_id" bson:"project_id"`
	WorkerID  string  `json:"worker_id" bson:"worker_id"`
	ManagerID string  `json:"manager_id,omitempty" bson:"manager_id,omitempty"`
	Status    string  `json:"status" bson:"status"`
	CreatedAt int64   `json:"created_at" bson:"created_at"`
}

type MaterialUsage struct {
	ID           string  `json:"id" bson:"_id,omitempty"`
	ItemName     string  `json:"item_name" bson:"item_name"`
	QuantityUsed float64 `json:"quantity_used" bson:"quantity_used"`
	Date         string  `json:"date" bson:"date"`
	ProjectID    string  `json:"project_id" bson:"project_id"`
	CreatedAt    int64   `json:"created_at" bson:"created_at"`
}

type Notification struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	UserID    string `json:"user_id" bson:"user_id"`
	Type      string `json:"type" bson:"type"`
	Message   string `json:"message" bson:"message"`
	Read      bool   `json:"read" bson:"read"`
	RequestID string `json:"request_id,omitempty" bson:"request_id,omitempty"`
	ExpenseID string `json:"expense_id,omitempty" bson:"expense_id,omitempty"`
	ProjectID string `json:"project_id,omitempty" bson:"project_id,omitempty"`
	CreatedAt int64  `json:"created_at" bson:"created_at"`
}

// ProjectSummary is derived, never stored. Total expenses include pending and
// flagged rows alongside approved ones: the figure is money spent so far,
// verification is a separate audit trail.
type ProjectSummary struct {
	ProjectName        string             `json:"project_name"`
	TotalExpenses      float64            `json:"total_expenses"`
	MaterialUsage      map[string]float64 `json:"material_usage"`
	ProgressPercentage float64            `json:"progress_percentage"`
	StartDate          string             `json:"start_date"`
	EndDate            string             `json:"end_date"`
	ExpensesCount      int                `json:"expenses_count"`
	MaterialUsageCount int                `json:"material_usage_count"`
}

// AssistMessage is one role-tagged content block sent to the AI provider.
// ImageBase64, when set, carries a raw base64 JPEG without the data-URL prefix.
type AssistMessage struct {
	Role        string
	Text        string
	ImageBase64 string
}

func ValidRole(role string) bool {
	switch role {
	case USER_ROLE_MANAGER, USER_ROLE_WORKER, USER_ROLE_CLIENT:
		return true
	}
	return false
}

func ValidProjectStatus(status string) bool {
	switch status {
	case PROJECT_STATUS_PLANNING, PROJECT_STATUS_IN_PROGRESS, PROJECT_STATUS_COMPLETED,
		PROJECT_STATUS_ON_HOLD, PROJECT_STATUS_CANCELLED:
		return true
	}
	return false
}

func ValidVerificationStatus(status string) bool {
	switch status {
	case EXPENSE_STATUS_PENDING, EXPENSE_STATUS_APPROVED, EXPENSE_STATUS_FLAGGED:
		return true
	}
	return false
}

// ValidResolutionStatus reports whether status is a terminal request state.
// Pending is the creation state, never a resolution target.
func ValidResolutionStatus(status string) bool {
	switch status {
	case REQUEST_STATUS_APPROVED, REQUEST_STATUS_REJECTED:
		return true
	}
	return false
}
