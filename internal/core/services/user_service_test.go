package services

import (
	"context"
	"testing"

	"lpo-tracker/internal/adapters/persistence/models"
	"lpo-tracker/internal/adapters/persistence/repositories"
	"lpo-tracker/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	user, err := svc.Create(context.Background(), &CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pw",
		Role:     "user",
	})
	require.NoError(t, err)
	assert.Equal(t, "user", user.Role)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "pw", stored.Password)
	assert.True(t, password.Verify("pw", stored.Password))
}

func TestUserCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	_, err := svc.Create(context.Background(), &CreateUserInput{
		Email:    "alice@example.com",
		Password: "pw",
		Role:     "user",
	})
	assert.ErrorIs(t, err, ErrMissingFields)

	// Role is required like every other field
	_, err = svc.Create(context.Background(), &CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pw",
	})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(context.Background(), &CreateUserInput{
		Name:     "Alice",
		Email:    "alice-at-example",
		Password: "pw",
		Role:     "user",
	})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	_, err := svc.Create(context.Background(), &CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pw",
		Role:     "user",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &CreateUserInput{
		Name:     "Other Alice",
		Email:    "alice@example.com",
		Password: "pw2",
		Role:     "user",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserPartialUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	alice := seedUser(t, db, "Alice", "alice@example.com", "user")
	seedUser(t, db, "Bob", "bob@example.com", "user")

	role := "admin"
	updated, err := svc.Update(context.Background(), alice.ID, &UpdateUserInput{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Role)
	assert.Equal(t, "Alice", updated.Name)

	taken := "bob@example.com"
	_, err = svc.Update(context.Background(), alice.ID, &UpdateUserInput{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Update(context.Background(), 999, &UpdateUserInput{Role: &role})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserResetPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	alice := seedUser(t, db, "Alice", "alice@example.com", "user")

	require.NoError(t, svc.ResetPassword(context.Background(), alice.ID, "new-secret"))

	var stored models.User
	require.NoError(t, db.First(&stored, alice.ID).Error)
	assert.True(t, password.Verify("new-secret", stored.Password))

	err := svc.ResetPassword(context.Background(), alice.ID, "")
	assert.ErrorIs(t, err, ErrMissingFields)

	err = svc.ResetPassword(context.Background(), 999, "x")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
