package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	appErr "github.com/xxxsen/todod/internal/pkg/errors"
	"github.com/xxxsen/todod/internal/service"
	"github.com/xxxsen/todod/test/testutil"
)

func newAuthService() *service.AuthService {
	return service.NewAuthService(testutil.NewMemUserStore(), []byte("test-secret"))
}

func TestRegisterIssuesSession(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	user, token, err := auth.Register(ctx, "someone@example.com", "$peci4lPASS#all")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, user.ID.IsZero())
	require.NotEqual(t, "$peci4lPASS#all", user.Password, "password must be stored hashed")

	resolved, err := auth.UserByToken(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
}

func TestRegisterValidation(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	_, _, err := auth.Register(ctx, "not-an-email", "$peci4lPASS#all")
	require.ErrorIs(t, err, appErr.ErrInvalid)

	_, _, err = auth.Register(ctx, "someone@example.com", "short")
	require.ErrorIs(t, err, appErr.ErrInvalid)

	_, _, err = auth.Register(ctx, "someone@example.com", "$peci4lPASS#all")
	require.NoError(t, err)
	_, _, err = auth.Register(ctx, "someone@example.com", "anotherPASS123")
	require.ErrorIs(t, err, appErr.ErrConflict)
}

func TestLoginExactPasswordOnly(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	_, _, err := auth.Register(ctx, "someone@example.com", "$peci4lPASS#all")
	require.NoError(t, err)

	_, token, err := auth.Login(ctx, "someone@example.com", "$peci4lPASS#all")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	for _, wrong := range []string{"$peci4lPASS#al", "$peci4lPASS#all ", "", "completely-different"} {
		_, _, err := auth.Login(ctx, "someone@example.com", wrong)
		require.ErrorIs(t, err, appErr.ErrUnauthorized, "password %q", wrong)
	}

	_, _, err = auth.Login(ctx, "nobody@example.com", "$peci4lPASS#all")
	require.ErrorIs(t, err, appErr.ErrUnauthorized)
}

func TestLogoutRevokesToken(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	user, token, err := auth.Register(ctx, "someone@example.com", "$peci4lPASS#all")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, user, token))

	// the signature is still valid, but the token is gone from the
	// stored session list
	_, err = auth.UserByToken(ctx, token)
	require.ErrorIs(t, err, appErr.ErrUnauthorized)

	// removing an already-removed token is a no-op success
	require.NoError(t, auth.Logout(ctx, user, token))
}

func TestLogoutKeepsOtherSessions(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	user, first, err := auth.Register(ctx, "someone@example.com", "$peci4lPASS#all")
	require.NoError(t, err)
	_, second, err := auth.Login(ctx, "someone@example.com", "$peci4lPASS#all")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	require.NoError(t, auth.Logout(ctx, user, first))

	_, err = auth.UserByToken(ctx, first)
	require.ErrorIs(t, err, appErr.ErrUnauthorized)
	_, err = auth.UserByToken(ctx, second)
	require.NoError(t, err)
}

func TestUserByTokenGarbage(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	for _, bad := range []string{"", "12234", "a.b.c"} {
		_, err := auth.UserByToken(ctx, bad)
		require.ErrorIs(t, err, appErr.ErrUnauthorized, "token %q", bad)
	}
}
