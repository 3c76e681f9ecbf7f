package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mazikuben/construction-be/types"
)

type fakeUserRepo struct {
	users map[string]*types.User
	next  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*types.User)}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *types.User) (string, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return "", types.ErrDuplicateUsername
		}
	}
	r.next++
	id := fmt.Sprintf("user-%d", r.next)
	user.ID = id
	r.users[id] = user
	return id, nil
}

func (r *fakeUserRepo) GetUser(ctx context.Context, id string) (*types.User, error) {
	u, found := r.users[id]
	if !found {
		return nil, types.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, types.ErrNotFound
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, types.ErrNotFound
}

func (r *fakeUserRepo) ListUsers(ctx context.Context) ([]*types.User, error) {
	users := []*types.User{}
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, id string, user *types.User) error {
	if _, found := r.users[id]; !found {
		return types.ErrNotFound
	}
	r.users[id] = user
	return nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	if _, found := r.users[id]; !found {
		return types.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeProjectRepo struct {
	projects map[string]*types.Project
	next     int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*types.Project)}
}

func (r *fakeProjectRepo) CreateProject(ctx context.Context, project *types.Project) (string, error) {
	r.next++
	id := fmt.Sprintf("project-%d", r.next)
	project.ID = id
	if project.ProgressReports == nil {
		project.ProgressReports = []types.ProgressReport{}
	}
	r.projects[id] = project
	return id, nil
}

func (r *fakeProjectRepo) GetProject(ctx context.Context, id string) (*types.Project, error) {
	p, found := r.projects[id]
	if !found {
		return nil, types.ErrNotFound
	}
	return p, nil
}

func (r *fakeProjectRepo) ListProjects(ctx context.Context, status, clientID string) ([]*types.Project, error) {
	projects := []*types.Project{}
	for _, p := range r.projects {
		if status != "" && p.Status != status {
			continue
		}
		if clientID != "" && p.ClientID != clientID {
			continue
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (r *fakeProjectRepo) ListProjectsByClient(ctx context.Context, clientID string) ([]*types.Project, error) {
	return r.ListProjects(ctx, "", clientID)
}

func (r *fakeProjectRepo) UpdateProject(ctx context.Context, id string, fields bson.M) error {
	p, found := r.projects[id]
	if !found {
		return types.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			p.Name = value.(string)
		case "description":
			p.Description = value.(string)
		case "location":
			p.Location = value.(string)
		case "budget":
			p.Budget = value.(float64)
		case "start_date":
			p.StartDate = value.(string)
		case "end_date":
			p.EndDate = value.(string)
		case "client_id":
			p.ClientID = value.(string)
		case "status":
			p.Status = value.(string)
		}
	}
	return nil
}

func (r *fakeProjectRepo) DeleteProject(ctx context.Context, id string) error {
	if _, found := r.projects[id]; !found {
		return types.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *fakeProjectRepo) PushProgressReport(ctx context.Context, id string, report *types.ProgressReport) error {
	p, found := r.projects[id]
	if !found {
		return types.ErrNotFound
	}
	p.ProgressReports = append(p.ProgressReports, *report)
	return nil
}

type fakeExpenseRepo struct {
	expenses map[string]*types.Expense
	next     int
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[string]*types.Expense)}
}

func (r *fakeExpenseRepo) CreateExpense(ctx context.Context, expense *types.Expense) (string, error) {
	r.next++
	id := fmt.Sprintf("expense-%d", r.next)
	expense.ID = id
	r.expenses[id] = expense
	return id, nil
}

func (r *fakeExpenseRepo) GetExpense(ctx context.Context, id string) (*types.Expense, error) {
	e, found := r.expenses[id]
	if !found {
		return nil, types.ErrNotFound
	}
	return e, nil
}

func (r *fakeExpenseRepo) ListExpensesByProject(ctx context.Context, projectID string) ([]*types.Expense, error) {
	expenses := []*types.Expense{}
	for _, e := range r.expenses {
		if e.ProjectID == projectID {
			expenses = append(expenses, e)
		}
	}
	return expenses, nil
}

func (r *fakeExpenseRepo) SetVerification(ctx context.Context, id, status string) error {
	e, found := r.expenses[id]
	if !found {
		return types.ErrNotFound
	}
	e.Verified = status
	return nil
}

type fakeInventoryRepo struct {
	items map[string]*types.InventoryItem
	next  int
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[string]*types.InventoryItem)}
}

func (r *fakeInventoryRepo) CreateItem(ctx context.Context, item *types.InventoryItem) (string, error) {
	r.next++
	id := fmt.Sprintf("item-%d", r.next)
	item.ID = id
	r.items[id] = item
	return id, nil
}

func (r *fakeInventoryRepo) GetItem(ctx context.Context, id string) (*types.InventoryItem, error) {
	item, found := r.items[id]
	if !found {
		return nil, types.ErrNotFound
	}
	return item, nil
}

func (r *fakeInventoryRepo) ListItemsByProject(ctx context.Context, projectID string) ([]*types.InventoryItem, error) {
	items := []*types.InventoryItem{}
	for _, item := range r.items {
		if item.ProjectID == projectID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeInventoryRepo) SetImageURL(ctx context.Context, id, imageURL string) error {
	item, found := r.items[id]
	if !found {
		return types.ErrNotFound
	}
	item.ImageURL = imageURL
	return nil
}

func (r *fakeInventoryRepo) AdjustQuantityByName(ctx context.Context, projectID, name string, delta float64) (bool, error) {
	for _, item := range r.items {
		if item.ProjectID == projectID && item.Name == name {
			item.Quantity += delta
			return true, nil
		}
	}
	return false, nil
}

type fakeUsageRepo struct {
	logs map[string]*types.MaterialUsage
	next int
}

func newFakeUsageRepo() *fakeUsageRepo {
	return &fakeUsageRepo{logs: make(map[string]*types.MaterialUsage)}
}

func (r *fakeUsageRepo) CreateUsage(ctx context.Context, usage *types.MaterialUsage) (string, error) {
	r.next++
	id := fmt.Sprintf("usage-%d", r.next)
	usage.ID = id
	r.logs[id] = usage
	return id, nil
}

func (r *fakeUsageRepo) ListUsageByProject(ctx context.Context, projectID string) ([]*types.MaterialUsage, error) {
	logs := []*types.MaterialUsage{}
	for _, usage := range r.logs {
		if usage.ProjectID == projectID {
			logs = append(logs, usage)
		}
	}
	return logs, nil
}

type fakeRequestRepo struct {
	requests map[string]*types.InventoryRequest
	next     int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*types.InventoryRequest)}
}

func (r *fakeRequestRepo) CreateRequest(ctx context.Context, request *types.InventoryRequest) (string, error) {
	r.next++
	id := fmt.Sprintf("request-%d", r.next)
	request.ID = id
	r.requests[id] = request
	return id, nil
}

func (r *fakeRequestRepo) GetRequest(ctx context.Context, id string) (*types.InventoryRequest, error) {
	request, found := r.requests[id]
	if !found {
		return nil, types.ErrNotFound
	}
	return request, nil
}

func (r *fakeRequestRepo) ListRequestsByProject(ctx context.Context, projectID string) ([]*types.InventoryRequest, error) {
	requests := []*types.InventoryRequest{}
	for _, request := range r.requests {
		if request.ProjectID == projectID {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (r *fakeRequestRepo) ListRequestsByWorker(ctx context.Context, workerID string) ([]*types.InventoryRequest, error) {
	requests := []*types.InventoryRequest{}
	for _, request := range r.requests {
		if request.WorkerID == workerID {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (r *fakeRequestRepo) SetStatus(ctx context.Context, id, status string) error {
	request, found := r.requests[id]
	if !found {
		return types.ErrNotFound
	}
	request.Status = status
	return nil
}

// recordingNotifier captures notifications instead of persisting them.
type recordingNotifier struct {
	sent []*types.Notification
}

func (n *recordingNotifier) Notify(ctx context.Context, notification *types.Notification) error {
	n.sent = append(n.sent, notification)
	return nil
}

func (n *recordingNotifier) ListForUser(ctx context.Context, callerID, userID string) ([]*types.Notification, error) {
	if callerID != userID {
		return nil, types.ErrForbidden
	}
	return n.sent, nil
}

func (n *recordingNotifier) MarkRead(ctx context.Context, id string) error {
	return nil
}

// scriptedAssistant returns a fixed reply and records the last conversation.
type scriptedAssistant struct {
	reply    string
	err      error
	lastSeen []types.AssistMessage
}

func (a *scriptedAssistant) Complete(ctx context.Context, messages []types.AssistMessage) (string, error) {
	a.lastSeen = messages
	if a.err != nil {
		return "", a.err
	}
	return a.reply, nil
}
