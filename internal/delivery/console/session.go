package console

import (
	"log/slog"

	"github.com/google/uuid"

	"carrental/internal/domain/entity"
	"carrental/internal/usecase"
)

// Session carries the authenticated operator through a console run. It is
// passed explicitly to every handler; the console keeps no global login
// state. The logger is pre-tagged with the session and user so every log
// line of the run can be traced back.
type Session struct {
	ID     uuid.UUID
	User   *usecase.UserOutput
	Logger *slog.Logger
}

func newSession(user *usecase.UserOutput, logger *slog.Logger) *Session {
	id := uuid.New()

	return &Session{
		ID:   id,
		User: user,
		Logger: logger.With(
			slog.String("sessionID", id.String()),
			slog.String("username", user.Username),
		),
	}
}

// IsAdmin reports whether the logged-in user may enter admin-only sections.
func (s *Session) IsAdmin() bool {
	return s.User.Role == entity.RoleAdmin
}
