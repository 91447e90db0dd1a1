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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		logger:    logger,
	}
}

// Register validates the input, rejects taken usernames, hashes the password
// and persists the new account. The uniqueness check and the insert share one
// transaction, and the unique index on usernames backs the check up for
// concurrent registrations.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserOutput, error) {
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

	role := input.Role
	if role == "" {
		role = entity.RoleEmployee
	}

	hash, salt, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user, err := entity.NewUser(username, email, hash, salt, role)
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

	srv.logger.Info("User registered",
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)))

	return toUserOutput(user), nil
}

// Login verifies the credentials against the stored hash. A wrong username
// or password yields (nil, nil); blank credentials short-circuit before any
// store lookup. Only infrastructure failures surface as errors.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.UserOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, nil
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.logger.Debug("Login failed, unknown username", slog.String("username", username))

		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Verify(input.Password, user.Salt, user.PasswordHash) {
		srv.logger.Debug("Login failed, wrong password", slog.String("username", username))

		return nil, nil
	}

	srv.logger.Info("User logged in", slog.String("username", user.Username))

	return toUserOutput(user), nil
}

func toUserOutput(user *entity.User) *usecase.UserOutput {
	return &usecase.UserOutput{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email.String(),
		Role:     user.Role,
	}
}
