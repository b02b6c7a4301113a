package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xxxsen/todod/internal/model"
	appErr "github.com/xxxsen/todod/internal/pkg/errors"
	"github.com/xxxsen/todod/internal/pkg/jwt"
	"github.com/xxxsen/todod/internal/pkg/password"
)

// UserStore is the persistence surface the auth service needs;
// repo.UserRepo is the mongo implementation.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, userID primitive.ObjectID) (*model.User, error)
	GetByToken(ctx context.Context, userID primitive.ObjectID, access, token string) (*model.User, error)
	AppendToken(ctx context.Context, userID primitive.ObjectID, token model.UserToken) error
	PullToken(ctx context.Context, userID primitive.ObjectID, token string) error
}

type AuthService struct {
	users     UserStore
	jwtSecret []byte
}

func NewAuthService(users UserStore, secret []byte) *AuthService {
	return &AuthService{users: users, jwtSecret: secret}
}

// Register creates an account and opens its first session. A crash
// between the insert and the token append leaves a tokenless user; the
// client recovers by logging in.
func (s *AuthService) Register(ctx context.Context, email, plainPassword string) (*model.User, string, error) {
	email, err := model.NormalizeEmail(email)
	if err != nil {
		return nil, "", err
	}
	if err := model.ValidatePassword(plainPassword); err != nil {
		return nil, "", err
	}
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, "", err
	}
	user := &model.User{
		Email:    email,
		Password: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}
	token, err := s.GenerateAuthToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and opens a new session. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (*model.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, "", appErr.ErrUnauthorized
	}
	if err := password.Compare(user.Password, plainPassword); err != nil {
		return nil, "", appErr.ErrUnauthorized
	}
	token, err := s.GenerateAuthToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GenerateAuthToken signs a token for user and appends it to the
// stored session list.
func (s *AuthService) GenerateAuthToken(ctx context.Context, user *model.User) (string, error) {
	token, err := jwt.GenerateToken(user.ID.Hex(), s.jwtSecret)
	if err != nil {
		return "", err
	}
	entry := model.UserToken{Access: jwt.AccessAuth, Token: token}
	if err := s.users.AppendToken(ctx, user.ID, entry); err != nil {
		return "", err
	}
	user.Tokens = append(user.Tokens, entry)
	return token, nil
}

// UserByToken resolves a session token. The signature check alone is
// not enough: the token must also still be present in the user's
// stored session list, so a logged-out token is rejected.
func (s *AuthService) UserByToken(ctx context.Context, token string) (*model.User, error) {
	claims, err := jwt.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, appErr.ErrUnauthorized
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, appErr.ErrUnauthorized
	}
	user, err := s.users.GetByToken(ctx, userID, claims.Access, token)
	if err != nil {
		return nil, appErr.ErrUnauthorized
	}
	return user, nil
}

// Logout removes one session token; other sessions stay live.
func (s *AuthService) Logout(ctx context.Context, user *model.User, token string) error {
	return s.users.PullToken(ctx, user.ID, token)
}
