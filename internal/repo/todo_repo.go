package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xxxsen/todod/internal/model"
	appErr "github.com/xxxsen/todod/internal/pkg/errors"
)

// TodoRepo is owner-scoped: every filter includes _creator, so a todo
// is invisible to any user other than the one that created it.
type TodoRepo struct {
	col *mongo.Collection
}

func NewTodoRepo(db *mongo.Database) *TodoRepo {
	return &TodoRepo{col: db.Collection(todosCollection)}
}

func (r *TodoRepo) Create(ctx context.Context, todo *model.Todo) error {
	result, err := r.col.InsertOne(ctx, todo)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		todo.ID = oid
	}
	return nil
}

// ListByOwner returns the owner's todos in natural (insertion) order.
func (r *TodoRepo) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]*model.Todo, error) {
	cursor, err := r.col.Find(ctx, bson.M{"_creator": owner})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()
	todos := []*model.Todo{}
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *TodoRepo) Get(ctx context.Context, owner, id primitive.ObjectID) (*model.Todo, error) {
	var todo model.Todo
	err := r.col.FindOne(ctx, bson.M{"_id": id, "_creator": owner}).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &todo, nil
}

// Update applies an already-derived patch and returns the post-update
// document.
func (r *TodoRepo) Update(ctx context.Context, owner, id primitive.ObjectID, patch model.TodoPatch) (*model.Todo, error) {
	set := bson.M{
		"completed":   patch.Completed,
		"completedAt": patch.CompletedAt,
	}
	if patch.Text != nil {
		set["text"] = *patch.Text
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var todo model.Todo
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "_creator": owner},
		bson.M{"$set": set},
		opts,
	).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &todo, nil
}

// Delete removes the document and returns it.
func (r *TodoRepo) Delete(ctx context.Context, owner, id primitive.ObjectID) (*model.Todo, error) {
	var todo model.Todo
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id, "_creator": owner}).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &todo, nil
}
