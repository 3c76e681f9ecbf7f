package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mazikuben/construction-be/types"
)

type ProjectRepo interface {
	CreateProject(ctx context.Context, project *types.Project) (string, error)
	GetProject(ctx context.Context, id string) (*types.Project, error)
	ListProjects(ctx context.Context, status, clientID string) ([]*types.Project, error)
	ListProjectsByClient(ctx context.Context, clientID string) ([]*types.Project, error)
	UpdateProject(ctx context.Context, id string, fields bson.M) error
	DeleteProject(ctx context.Context, id string) error
	PushProgressReport(ctx context.Context, id string, report *types.ProgressReport) error
}

type projectRepo struct {
	collection *mongo.Collection
}

func NewProjectRepo(collection *mongo.Collection) ProjectRepo {
	return &projectRepo{
		collection: collection,
	}
}

func (r *projectRepo) CreateProject(ctx context.Context, project *types.Project) (string, error) {
	id := bson.NewObjectID().Hex()
	project.ID = id
	if project.ProgressReports == nil {
		project.ProgressReports = []types.ProgressReport{}
	}
	_, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *projectRepo) GetProject(ctx context.Context, id string) (*types.Project, error) {
	if _, err := objectID(id); err != nil {
		return nil, err
	}
	var project types.Project
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project); err != nil {
		return nil, mapFindErr(err)
	}
	return &project, nil
}

func (r *projectRepo) ListProjects(ctx context.Context, status, clientID string) ([]*types.Project, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if clientID != "" {
		filter["client_id"] = clientID
	}
	return r.find(ctx, filter)
}

func (r *projectRepo) ListProjectsByClient(ctx context.Context, clientID string) ([]*types.Project, error) {
	if _, err := objectID(clientID); err != nil {
		return []*types.Project{}, nil
	}
	return r.find(ctx, bson.M{"client_id": clientID})
}

func (r *projectRepo) find(ctx context.Context, filter bson.M) ([]*types.Project, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []*types.Project{}
	for cursor.Next(ctx) {
		var project types.Project
		if err := cursor.Decode(&project); err != nil {
			return nil, err
		}
		projects = append(projects, &project)
	}
	return projects, cursor.Err()
}

func (r *projectRepo) UpdateProject(ctx context.Context, id string, fields bson.M) error {
	if _, err := objectID(id); err != nil {
		return err
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (r *projectRepo) DeleteProject(ctx context.Context, id string) error {
	if _, err := objectID(id); err != nil {
		return err
	}
	// Related expenses, inventory and usage logs are intentionally left in
	// place; they stay keyed by this project_id.
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (r *projectRepo) PushProgressReport(ctx context.Context, id string, report *types.ProgressReport) error {
	if _, err := objectID(id); err != nil {
		return err
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$push": bson.M{"progress_reports": report},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}
