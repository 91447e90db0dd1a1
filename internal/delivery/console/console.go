// Package console implements the interactive terminal delivery. It drives
// the usecases through a login screen and a set of menus, and owns no
// business rules of its own.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"

	"carrental/internal/delivery"
	domainerrors "carrental/internal/domain/errors"
	"carrental/internal/errors"
	"carrental/internal/usecase"
)

const (
	maxLoginAttempts = 3
	dateLayout       = "2006-01-02"
)

// errQuit signals a requested shutdown up through the menu loops.
var errQuit = errors.New("quit requested")

// Params holds dependencies for the console, injected by Fx.
type Params struct {
	fx.In

	AuthUC      usecase.AuthUsecase
	RentalUC    usecase.RentalUsecase
	CarUC       usecase.CarUsecase
	CustomerUC  usecase.CustomerUsecase
	UserUC      usecase.UserManagementUsecase
	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// Console is the terminal delivery surface.
type Console struct {
	authUC      usecase.AuthUsecase
	rentalUC    usecase.RentalUsecase
	carUC       usecase.CarUsecase
	customerUC  usecase.CustomerUsecase
	userUC      usecase.UserManagementUsecase
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger

	in  *bufio.Scanner
	out io.Writer
}

// New is the constructor for the console bound to stdin/stdout.
func New(params Params) delivery.Delivery {
	return newConsole(os.Stdin, os.Stdout, params)
}

func newConsole(in io.Reader, out io.Writer, params Params) *Console {
	return &Console{
		authUC:      params.AuthUC,
		rentalUC:    params.RentalUC,
		carUC:       params.CarUC,
		customerUC:  params.CustomerUC,
		userUC:      params.UserUC,
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
		in:          bufio.NewScanner(in),
		out:         out,
	}
}

// Serve runs login screens and menu sessions until the operator exits, the
// input stream ends, or the context is cancelled.
func (c *Console) Serve(ctx context.Context) error {
	c.printf("Car Rental System")

	for {
		if ctx.Err() != nil {
			return nil
		}

		sess, err := c.login(ctx)
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if sess == nil {
			c.printf("Too many failed login attempts.")

			return nil
		}

		err = c.mainMenu(ctx, sess)
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			c.printf("Goodbye.")

			return nil
		}
		if err != nil {
			return err
		}
		// Logged out; back to the login screen.
	}
}

// login gives the operator three attempts. A nil session with a nil error
// means all attempts were used up.
func (c *Console) login(ctx context.Context) (*Session, error) {
	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		username, err := c.prompt("Username")
		if err != nil {
			return nil, err
		}
		password, err := c.prompt("Password")
		if err != nil {
			return nil, err
		}

		user, err := c.authUC.Login(ctx, &usecase.LoginInput{
			Username: username,
			Password: password,
		})
		if err != nil {
			c.logger.Error("Login failed", slog.Any("error", err))
			c.printf("Something went wrong, try again.")

			continue
		}
		if user == nil {
			c.printf("Invalid username or password (%d/%d).", attempt, maxLoginAttempts)

			continue
		}

		sess := newSession(user, c.logger)
		c.printf("Welcome, %s.", user.Username)

		return sess, nil
	}

	return nil, nil
}

// mainMenu loops until logout (nil) or exit (errQuit).
func (c *Console) mainMenu(ctx context.Context, sess *Session) error {
	for {
		c.printf("")
		c.printf("Main menu")
		c.printf("  1. Cars")
		c.printf("  2. Customers")
		c.printf("  3. Rentals")
		c.printf("  4. Dashboard")
		c.printf("  5. Users (admin)")
		c.printf("  6. Log out")
		c.printf("  0. Exit")

		choice, err := c.prompt("Choice")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.carMenu(ctx, sess)
		case "2":
			err = c.customerMenu(ctx, sess)
		case "3":
			err = c.rentalMenu(ctx, sess)
		case "4":
			err = c.showDashboard(ctx, sess)
		case "5":
			if !sess.IsAdmin() {
				c.printf("This section requires the admin role.")

				continue
			}
			err = c.userMenu(ctx, sess)
		case "6":
			c.printf("Logged out.")

			return nil
		case "0":
			return errQuit
		default:
			c.printf("Unknown choice %q.", choice)

			continue
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) showDashboard(ctx context.Context, sess *Session) error {
	summary, err := c.dashboardUC.GetSummary(ctx)
	if err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("Cars: %d  Customers: %d  Active rentals: %d",
		summary.TotalCars, summary.TotalCustomers, summary.ActiveRentals)

	return nil
}

// presentError shows domain failures to the operator and logs everything
// else as an infrastructure problem.
func (c *Console) presentError(sess *Session, err error) {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		for _, msg := range validationErr.Messages() {
			c.printf("%s", msg)
		}

		return
	}

	var notFoundErr *domainerrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.printf("%s", notFoundErr.Error())

		return
	}

	var domainErr *domainerrors.DomainError
	if errors.As(err, &domainErr) {
		c.printf("%s", domainErr.Error())

		return
	}

	sess.Logger.Error("Operation failed", slog.Any("error", err))
	c.printf("Something went wrong, try again.")
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// prompt reads one trimmed line. io.EOF propagates so a closed input stream
// shuts the console down cleanly.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprintf(c.out, "%s: ", label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", errors.Wrap(err, "failed to read input")
		}

		return "", io.EOF
	}

	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) promptID(label string) (int64, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, err
	}

	id, convErr := strconv.ParseInt(raw, 10, 64)
	if convErr != nil {
		c.printf("%q is not a number.", raw)

		return 0, nil
	}

	return id, nil
}

func (c *Console) promptInt(label string) (int, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, err
	}

	n, convErr := strconv.Atoi(raw)
	if convErr != nil {
		c.printf("%q is not a number.", raw)

		return 0, nil
	}

	return n, nil
}

// promptDate reads a YYYY-MM-DD date. A blank or malformed input yields the
// zero time, which the usecases reject with their own message.
func (c *Console) promptDate(label string) (time.Time, error) {
	raw, err := c.prompt(label + " (YYYY-MM-DD)")
	if err != nil {
		return time.Time{}, err
	}
	if raw == "" {
		return time.Time{}, nil
	}

	date, parseErr := time.Parse(dateLayout, raw)
	if parseErr != nil {
		c.printf("%q is not a valid date.", raw)

		return time.Time{}, nil
	}

	return date, nil
}
