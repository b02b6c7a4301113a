package testutil

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xxxsen/todod/internal/model"
	appErr "github.com/xxxsen/todod/internal/pkg/errors"
)

// MemUserStore is an in-memory service.UserStore with the same
// observable behavior as the mongo repo: unique email, token list
// membership, idempotent pull.
type MemUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*model.User
}

func NewMemUserStore() *MemUserStore {
	return &MemUserStore{users: map[primitive.ObjectID]*model.User{}}
}

func copyUser(u *model.User) *model.User {
	clone := *u
	clone.Tokens = append([]model.UserToken(nil), u.Tokens...)
	return &clone
}

func (s *MemUserStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return appErr.ErrConflict
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.ID] = copyUser(user)
	return nil
}

func (s *MemUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (s *MemUserStore) GetByID(ctx context.Context, userID primitive.ObjectID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	return copyUser(user), nil
}

func (s *MemUserStore) GetByToken(ctx context.Context, userID primitive.ObjectID, access, token string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	for _, entry := range user.Tokens {
		if entry.Access == access && entry.Token == token {
			return copyUser(user), nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (s *MemUserStore) AppendToken(ctx context.Context, userID primitive.ObjectID, token model.UserToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return appErr.ErrNotFound
	}
	user.Tokens = append(user.Tokens, token)
	return nil
}

func (s *MemUserStore) PullToken(ctx context.Context, userID primitive.ObjectID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return appErr.ErrNotFound
	}
	kept := user.Tokens[:0]
	for _, entry := range user.Tokens {
		if entry.Token != token {
			kept = append(kept, entry)
		}
	}
	user.Tokens = kept
	return nil
}

// MemTodoStore is an in-memory service.TodoStore keeping insertion
// order, with every operation filtered by owner.
type MemTodoStore struct {
	mu    sync.Mutex
	todos []*model.Todo
}

func NewMemTodoStore() *MemTodoStore {
	return &MemTodoStore{}
}

func copyTodo(t *model.Todo) *model.Todo {
	clone := *t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		clone.CompletedAt = &at
	}
	return &clone
}

func (s *MemTodoStore) Create(ctx context.Context, todo *model.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if todo.ID.IsZero() {
		todo.ID = primitive.NewObjectID()
	}
	s.todos = append(s.todos, copyTodo(todo))
	return nil
}

func (s *MemTodoStore) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]*model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []*model.Todo{}
	for _, todo := range s.todos {
		if todo.Creator == owner {
			result = append(result, copyTodo(todo))
		}
	}
	return result, nil
}

func (s *MemTodoStore) Get(ctx context.Context, owner, id primitive.ObjectID) (*model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, todo := range s.todos {
		if todo.ID == id && todo.Creator == owner {
			return copyTodo(todo), nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (s *MemTodoStore) Update(ctx context.Context, owner, id primitive.ObjectID, patch model.TodoPatch) (*model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, todo := range s.todos {
		if todo.ID == id && todo.Creator == owner {
			if patch.Text != nil {
				todo.Text = *patch.Text
			}
			todo.Completed = patch.Completed
			todo.CompletedAt = patch.CompletedAt
			return copyTodo(todo), nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (s *MemTodoStore) Delete(ctx context.Context, owner, id primitive.ObjectID) (*model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, todo := range s.todos {
		if todo.ID == id && todo.Creator == owner {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return copyTodo(todo), nil
		}
	}
	return nil, appErr.ErrNotFound
}
