package utils

import (
	"context"
	"fmt"

	"gearguard/pkg/contextkeys"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ActorFromCtx returns the authenticated user's display name, or "" when the
// request carried no token. Callers fall back to their own default actor.
func ActorFromCtx(ctx context.Context) string {
	if name, ok := ctx.Value(contextkeys.UserNameKey).(string); ok {
		return name
	}
	return ""
}

func UserIDFromCtx(ctx context.Context) string {
	if id, ok := ctx.Value(contextkeys.UserIDKey).(string); ok {
		return id
	}
	return ""
}
