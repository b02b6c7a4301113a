package model

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	appErr "github.com/xxxsen/todod/internal/pkg/errors"
	"github.com/xxxsen/todod/internal/pkg/timeutil"
)

// Todo is a stored to-do document. CompletedAt is epoch milliseconds
// and is non-nil exactly when Completed is true.
type Todo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Text        string             `bson:"text" json:"text"`
	Completed   bool               `bson:"completed" json:"completed"`
	CompletedAt *int64             `bson:"completedAt" json:"completedAt"`
	Creator     primitive.ObjectID `bson:"_creator" json:"_creator"`
}

// TodoPatch is the storable outcome of an update request after the
// completion derivation rule has been applied. Text is nil when the
// caller did not send a new text.
type TodoPatch struct {
	Text        *string
	Completed   bool
	CompletedAt *int64
}

// NewTodo builds a validated todo for creator. A todo created as
// completed gets its completion timestamp at construction.
func NewTodo(creator primitive.ObjectID, text string, completed bool) (*Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text required", appErr.ErrInvalid)
	}
	todo := &Todo{
		Text:      text,
		Completed: completed,
		Creator:   creator,
	}
	if completed {
		now := timeutil.NowMillis()
		todo.CompletedAt = &now
	}
	return todo, nil
}
