package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental/internal/domain/entity"
	domainerrors "carrental/internal/domain/errors"
	"carrental/internal/usecase"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()

	newService := func(store *memStore) usecase.UserManagementUsecase {
		return NewUserService(
			&fakeTxManager{store: store},
			&fakeUserRepo{store: store},
			&stubHasher{},
			testLogger(),
		)
	}

	create := func(t *testing.T, srv usecase.UserManagementUsecase, username string) *usecase.UserOutput {
		t.Helper()
		out, err := srv.Create(ctx, &usecase.CreateUserInput{
			Username: username,
			Email:    username + "@example.com",
			Password: "pw",
			Role:     entity.RoleEmployee,
		})
		require.NoError(t, err)

		return out
	}

	t.Run("create stores a hashed credential", func(t *testing.T) {
		store := newMemStore()
		srv := newService(store)

		out := create(t, srv, "carol")

		stored := store.users[out.ID]
		assert.Equal(t, "hash:pw", stored.PasswordHash)
		assert.Equal(t, entity.RoleEmployee, stored.Role)
	})

	t.Run("create rejects a taken username", func(t *testing.T) {
		store := newMemStore()
		srv := newService(store)
		create(t, srv, "carol")

		_, err := srv.Create(ctx, &usecase.CreateUserInput{
			Username: "carol", Email: "dup@example.com", Password: "pw", Role: entity.RoleAdmin,
		})

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"Username is already taken."}, validationErr.Messages())
	})

	t.Run("update renames when the name is free", func(t *testing.T) {
		store := newMemStore()
		srv := newService(store)
		out := create(t, srv, "carol")

		updated, err := srv.Update(ctx, &usecase.UpdateUserInput{ID: out.ID, Username: "carla"})
		require.NoError(t, err)
		assert.Equal(t, "carla", updated.Username)
		assert.Equal(t, "carol@example.com", updated.Email, "blank email keeps the current value")
	})

	t.Run("update rejects renaming onto another account", func(t *testing.T) {
		store := newMemStore()
		srv := newService(store)
		create(t, srv, "carol")
		other := create(t, srv, "dave")

		_, err := srv.Update(ctx, &usecase.UpdateUserInput{ID: other.ID, Username: "carol"})

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"Username is already taken."}, validationErr.Messages())
	})

	t.Run("update keeps the same username without a conflict", func(t *testing.T) {
		store := newMemStore()
		srv := newService(store)
		out := create(t, srv, "carol")

		updated, err := srv.Update(ctx, &usecase.UpdateUserInput{
			ID: out.ID, Username: "carol", Email: "new@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", updated.Email)
	})

	t.Run("change password replaces hash and salt", func(t *testing.T) {
		store := newMemStore()
		srv := newService(store)
		out := create(t, srv, "carol")

		require.NoError(t, srv.ChangePassword(ctx, out.ID, "newpw"))

		assert.Equal(t, "hash:newpw", store.users[out.ID].PasswordHash)
	})

	t.Run("change password rejects a blank password", func(t *testing.T) {
		store := newMemStore()
		srv := newService(store)
		out := create(t, srv, "carol")

		err := srv.ChangePassword(ctx, out.ID, "")

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"Password is required."}, validationErr.Messages())
	})

	t.Run("change role promotes to admin", func(t *testing.T) {
		store := newMemStore()
		srv := newService(store)
		out := create(t, srv, "carol")

		require.NoError(t, srv.ChangeRole(ctx, out.ID, entity.RoleAdmin))

		assert.Equal(t, entity.RoleAdmin, store.users[out.ID].Role)
	})

	t.Run("change role rejects an unknown role", func(t *testing.T) {
		store := newMemStore()
		srv := newService(store)
		out := create(t, srv, "carol")

		err := srv.ChangeRole(ctx, out.ID, entity.Role("root"))

		var domainErr *domainerrors.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, entity.RoleEmployee, store.users[out.ID].Role)
	})

	t.Run("delete archives the account", func(t *testing.T) {
		store := newMemStore()
		srv := newService(store)
		out := create(t, srv, "carol")

		require.NoError(t, srv.Delete(ctx, out.ID))

		assert.False(t, store.users[out.ID].IsActive)

		active, err := srv.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("get by unknown ID is not found", func(t *testing.T) {
		store := newMemStore()
		srv := newService(store)

		_, err := srv.GetByID(ctx, 123)

		var notFoundErr *domainerrors.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "User", notFoundErr.Entity)
	})
}
