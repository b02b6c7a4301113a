package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xxxsen/todod/internal/model"
	appErr "github.com/xxxsen/todod/internal/pkg/errors"
	"github.com/xxxsen/todod/internal/repo"
	"github.com/xxxsen/todod/test/testutil"
)

func TestUserRepoUniqueEmail(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	users := repo.NewUserRepo(db)
	ctx := context.Background()

	first := &model.User{Email: "someone@example.com", Password: "hash-1"}
	require.NoError(t, users.Create(ctx, first))
	require.False(t, first.ID.IsZero())

	dup := &model.User{Email: "someone@example.com", Password: "hash-2"}
	require.ErrorIs(t, users.Create(ctx, dup), appErr.ErrConflict)

	kept, err := users.GetByEmail(ctx, "someone@example.com")
	require.NoError(t, err)
	require.Equal(t, "hash-1", kept.Password)
}

func TestUserRepoTokenLifecycle(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	users := repo.NewUserRepo(db)
	ctx := context.Background()

	user := &model.User{Email: "someone@example.com", Password: "hash"}
	require.NoError(t, users.Create(ctx, user))

	entry := model.UserToken{Access: "auth", Token: "signed-token"}
	require.NoError(t, users.AppendToken(ctx, user.ID, entry))

	resolved, err := users.GetByToken(ctx, user.ID, "auth", "signed-token")
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)

	// wrong access label does not match
	_, err = users.GetByToken(ctx, user.ID, "reset", "signed-token")
	require.ErrorIs(t, err, appErr.ErrNotFound)

	require.NoError(t, users.PullToken(ctx, user.ID, "signed-token"))
	_, err = users.GetByToken(ctx, user.ID, "auth", "signed-token")
	require.ErrorIs(t, err, appErr.ErrNotFound)

	// pulling again is a no-op success
	require.NoError(t, users.PullToken(ctx, user.ID, "signed-token"))
}
