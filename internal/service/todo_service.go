package service

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xxxsen/todod/internal/model"
	appErr "github.com/xxxsen/todod/internal/pkg/errors"
	"github.com/xxxsen/todod/internal/pkg/timeutil"
)

// TodoStore is the persistence surface the todo service needs;
// repo.TodoRepo is the mongo implementation.
type TodoStore interface {
	Create(ctx context.Context, todo *model.Todo) error
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]*model.Todo, error)
	Get(ctx context.Context, owner, id primitive.ObjectID) (*model.Todo, error)
	Update(ctx context.Context, owner, id primitive.ObjectID, patch model.TodoPatch) (*model.Todo, error)
	Delete(ctx context.Context, owner, id primitive.ObjectID) (*model.Todo, error)
}

// TodoUpdateInput carries the whitelisted patch fields from a request.
// Nil means the field was absent from the body.
type TodoUpdateInput struct {
	Text      *string
	Completed *bool
}

type TodoService struct {
	todos TodoStore
}

func NewTodoService(todos TodoStore) *TodoService {
	return &TodoService{todos: todos}
}

func (s *TodoService) Create(ctx context.Context, owner primitive.ObjectID, text string, completed bool) (*model.Todo, error) {
	todo, err := model.NewTodo(owner, text, completed)
	if err != nil {
		return nil, err
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) List(ctx context.Context, owner primitive.ObjectID) ([]*model.Todo, error) {
	return s.todos.ListByOwner(ctx, owner)
}

func (s *TodoService) Get(ctx context.Context, owner primitive.ObjectID, id string) (*model.Todo, error) {
	todoID, err := parseTodoID(id)
	if err != nil {
		return nil, err
	}
	return s.todos.Get(ctx, owner, todoID)
}

// Update applies the completion derivation rule: completed=true stamps
// completedAt with the current epoch milliseconds; anything else, the
// field being absent included, forces completed=false and clears
// completedAt.
func (s *TodoService) Update(ctx context.Context, owner primitive.ObjectID, id string, input TodoUpdateInput) (*model.Todo, error) {
	todoID, err := parseTodoID(id)
	if err != nil {
		return nil, err
	}
	patch := model.TodoPatch{}
	if input.Text != nil {
		text := strings.TrimSpace(*input.Text)
		if text == "" {
			return nil, fmt.Errorf("%w: text required", appErr.ErrInvalid)
		}
		patch.Text = &text
	}
	if input.Completed != nil && *input.Completed {
		now := timeutil.NowMillis()
		patch.Completed = true
		patch.CompletedAt = &now
	}
	return s.todos.Update(ctx, owner, todoID, patch)
}

func (s *TodoService) Delete(ctx context.Context, owner primitive.ObjectID, id string) (*model.Todo, error) {
	todoID, err := parseTodoID(id)
	if err != nil {
		return nil, err
	}
	return s.todos.Delete(ctx, owner, todoID)
}

// parseTodoID treats a malformed identifier exactly like a missing
// record: both surface as not found.
func parseTodoID(id string) (primitive.ObjectID, error) {
	todoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, appErr.ErrNotFound
	}
	return todoID, nil
}
