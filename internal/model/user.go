package model

import (
	"fmt"
	"net/mail"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	appErr "github.com/xxxsen/todod/internal/pkg/errors"
)

const MinPasswordLen = 6

// UserToken is one live session. Access is always "auth" in this
// design; the pair is matched as a whole when resolving a token.
type UserToken struct {
	Access string `bson:"access" json:"access"`
	Token  string `bson:"token" json:"token"`
}

// User is a stored account document. Password holds the bcrypt hash
// and never leaves the process; Tokens likewise stay internal.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Tokens   []UserToken        `bson:"tokens" json:"-"`
}

// NormalizeEmail trims and syntax-checks an email address.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("%w: email required", appErr.ErrInvalid)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: malformed email", appErr.ErrInvalid)
	}
	return email, nil
}

func ValidatePassword(plain string) error {
	if len(plain) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", appErr.ErrInvalid, MinPasswordLen)
	}
	return nil
}
