package postgres_test

import (
	"context"
	"testing"

	"github.com/mvachon/userd/internal/domain"
	"github.com/mvachon/userd/internal/repository/postgres"
	"github.com/mvachon/userd/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithName("alice").
		WithEmail("a@x.com").
		Build(t, testDB.DB)

	byID, err := repos.User.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Name)
	assert.Equal(t, "a@x.com", byID.Email)
	assert.False(t, byID.CreatedAt.IsZero())
	assert.False(t, byID.UpdatedAt.IsZero())

	byName, err := repos.User.GetByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repos.User.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repos.User.GetByID(ctx, user.ID+1000)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = repos.User.GetByName(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = repos.User.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_UniqueViolations(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	testutil.NewUserBuilder().
		WithName("alice").
		WithEmail("a@x.com").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		user    *domain.User
		wantErr error
	}{
		{
			name:    "duplicate name",
			user:    &domain.User{Name: "alice", Email: "b@x.com", Password: "hash"},
			wantErr: domain.ErrNameTaken,
		},
		{
			name:    "duplicate email",
			user:    &domain.User{Name: "bob", Email: "a@x.com", Password: "hash"},
			wantErr: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repos.User.Create(ctx, tt.user)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserRepository_ListAndDelete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().WithName("alice").WithEmail("a@x.com").Build(t, testDB.DB)
	testutil.NewUserBuilder().WithName("bob").WithEmail("b@x.com").Build(t, testDB.DB)

	users, err := repos.User.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	require.NoError(t, repos.User.Delete(ctx, alice.ID))

	users, err = repos.User.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "bob", users[0].Name)

	assert.ErrorIs(t, repos.User.Delete(ctx, alice.ID), domain.ErrUserNotFound)
}
