package impl

import (
	"context"
	"log/slog"
	"strings"

	"carrental/internal/domain/entity"
	domainerrors "carrental/internal/domain/errors"
	"carrental/internal/domain/repository"
	"carrental/internal/domain/service"
	"carrental/internal/errors"
	"carrental/internal/usecase"
)

// userService implements the UserManagementUsecase interface. It is the
// admin surface; self-service registration and login live in authService.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserManagementUsecase {
	return &userService{
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		logger:    logger,
	}
}

func (srv *userService) GetAll(ctx context.Context) ([]*usecase.UserOutput, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, toUserOutput(user))
	}

	return outputs, nil
}

func (srv *userService) GetByID(ctx context.Context, id int64) (*usecase.UserOutput, error) {
	user, err := srv.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserOutput(user), nil
}

// Create applies the same rules as self-service registration, but the admin
// picks the role.
func (srv *userService) Create(ctx context.Context, input *usecase.CreateUserInput) (*usecase.UserOutput, error) {
	username := strings.TrimSpace(input.Username)

	var messages []string
	if username == "" {
		messages = append(messages, "Username is required.")
	}
	if strings.TrimSpace(input.Email) == "" {
		messages = append(messages, "Email is required.")
	}
	if input.Password == "" {
		messages = append(messages, "Password is required.")
	}
	if len(messages) > 0 {
		return nil, domainerrors.NewValidationError(messages...)
	}

	email, err := entity.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	hash, salt, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user, err := entity.NewUser(username, email, hash, salt, input.Role)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, err := repos.UserRepo().FindByUsername(ctx, username)
		if err == nil {
			return domainerrors.NewValidationError("Username is already taken.")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username")
		}

		if err := repos.UserRepo().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUsernameTaken) {
				return domainerrors.NewValidationError("Username is already taken.")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("User created",
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)))

	return toUserOutput(user), nil
}

// Update renames the account or changes its email. Empty fields keep their
// current value. A rename re-checks username uniqueness.
func (srv *userService) Update(ctx context.Context, input *usecase.UpdateUserInput) (*usecase.UserOutput, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		user, err = repos.UserRepo().FindByID(ctx, input.ID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.NewNotFoundError("User", input.ID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if username := strings.TrimSpace(input.Username); username != "" && username != user.Username {
			other, err := repos.UserRepo().FindByUsername(ctx, username)
			if err == nil && other.ID != user.ID {
				return domainerrors.NewValidationError("Username is already taken.")
			}
			if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check username")
			}

			if err := user.UpdateUsername(username); err != nil {
				return err
			}
		}

		if strings.TrimSpace(input.Email) != "" {
			email, err := entity.NewEmail(input.Email)
			if err != nil {
				return err
			}
			if err := user.UpdateEmail(email); err != nil {
				return err
			}
		}

		if err := repos.UserRepo().Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUsernameTaken) {
				return domainerrors.NewValidationError("Username is already taken.")
			}

			return errors.Wrap(err, "failed to update user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("User updated", slog.Int64("userID", user.ID))

	return toUserOutput(user), nil
}

func (srv *userService) ChangePassword(ctx context.Context, id int64, newPassword string) error {
	if newPassword == "" {
		return domainerrors.NewValidationError("Password is required.")
	}

	user, err := srv.findUser(ctx, id)
	if err != nil {
		return err
	}

	hash, salt, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if err := user.UpdatePassword(hash, salt); err != nil {
		return err
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update user")
	}

	srv.logger.Info("Password changed", slog.Int64("userID", id))

	return nil
}

func (srv *userService) ChangeRole(ctx context.Context, id int64, role entity.Role) error {
	user, err := srv.findUser(ctx, id)
	if err != nil {
		return err
	}

	if err := user.ChangeRole(role); err != nil {
		return err
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update user")
	}

	srv.logger.Info("Role changed",
		slog.Int64("userID", id),
		slog.String("role", string(role)))

	return nil
}

// Delete archives the account so it can no longer log in.
func (srv *userService) Delete(ctx context.Context, id int64) error {
	if _, err := srv.findUser(ctx, id); err != nil {
		return err
	}

	if err := srv.userRepo.SetActive(ctx, id, false); err != nil {
		return errors.Wrap(err, "failed to archive user")
	}

	srv.logger.Info("User archived", slog.Int64("userID", id))

	return nil
}

func (srv *userService) findUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.NewNotFoundError("User", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
