package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varela/foro-api/internal/service"
	"github.com/varela/foro-api/internal/testutil"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterUserInput
		setup   func()
		wantErr error
	}{
		{
			name: "successful registration",
			input: service.RegisterUserInput{
				Name:     "newuser",
				Email:    "newuser@example.com",
				Password: "password123",
			},
		},
		{
			name: "duplicate name and email",
			input: service.RegisterUserInput{
				Name:     "existinguser",
				Email:    "existing@example.com",
				Password: "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithName("existinguser").
					WithEmail("existing@example.com").
					Build(t, ts.DB.DB)
			},
			wantErr: service.ErrDuplicateUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			user, err := ts.Services.User.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input.Name, user.Name)
			assert.Equal(t, tt.input.Email, user.Email)

			// Raw password is never stored
			assert.NotEqual(t, tt.input.Password, user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.input.Password)))
		})
	}
}

func TestUserService_Update(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithName("update_user").
		WithEmail("update_user@example.com").
		Build(t, ts.DB.DB)

	t.Run("successful update re-hashes password", func(t *testing.T) {
		updated, err := ts.Services.User.Update(ctx, user.ID, service.UpdateUserInput{
			Name:     "renamed_user",
			Email:    "renamed@example.com",
			Password: "newpassword",
		})
		require.NoError(t, err)
		assert.Equal(t, "renamed_user", updated.Name)
		assert.Equal(t, "renamed@example.com", updated.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpassword")))
	})

	t.Run("update to existing pair conflicts", func(t *testing.T) {
		other, _ := testutil.NewUserBuilder().
			WithName("other_user").
			WithEmail("other@example.com").
			Build(t, ts.DB.DB)

		_, err := ts.Services.User.Update(ctx, other.ID, service.UpdateUserInput{
			Name:     "renamed_user",
			Email:    "renamed@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, service.ErrDuplicateUser)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := ts.Services.User.Update(ctx, uuid.New(), service.UpdateUserInput{
			Name:     "x",
			Email:    "x@example.com",
			Password: "x",
		})
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)

	require.NoError(t, ts.Services.User.Delete(ctx, user.ID))

	_, err := ts.Services.User.Get(ctx, user.ID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	err = ts.Services.User.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUserService_List(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		testutil.NewUserBuilder().Build(t, ts.DB.DB)
	}

	first, total, err := ts.Services.User.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	assert.Len(t, first, 10)

	second, _, err := ts.Services.User.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, second, 5)
}
