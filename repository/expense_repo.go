package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mazikuben/construction-be/types"
)

type ExpenseRepo interface {
	CreateExpense(ctx context.Context, expense *types.Expense) (string, error)
	GetExpense(ctx context.Context, id string) (*types.Expense, error)
	ListExpensesByProject(ctx context.Context, projectID string) ([]*types.Expense, error)
	SetVerification(ctx context.Context, id, status string) error
}

type expenseRepo struct {
	collection *mongo.Collection
}

func NewExpenseRepo(collection *mongo.Collection) ExpenseRepo {
	return &expenseRepo{
		collection: collection,
	}
}

func (r *expenseRepo) CreateExpense(ctx context.Context, expense *types.Expense) (string, error) {
	id := bson.NewObjectID().Hex()
	expense.ID = id
	_, err := r.collection.InsertOne(ctx, expense)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *expenseRepo) GetExpense(ctx context.Context, id string) (*types.Expense, error) {
	if _, err := objectID(id); err != nil {
		return nil, err
	}
	var expense types.Expense
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&expense); err != nil {
		return nil, mapFindErr(err)
	}
	return &expense, nil
}

func (r *expenseRepo) ListExpensesByProject(ctx context.Context, projectID string) ([]*types.Expense, error) {
	if _, err := objectID(projectID); err != nil {
		return []*types.Expense{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	expenses := []*types.Expense{}
	for cursor.Next(ctx) {
		var expense types.Expense
		if err := cursor.Decode(&expense); err != nil {
			return nil, err
		}
		expenses = append(expenses, &expense)
	}
	return expenses, cursor.Err()
}

func (r *expenseRepo) SetVerification(ctx context.Context, id, status string) error {
	if _, err := objectID(id); err != nil {
		return err
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"verified": status},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}
