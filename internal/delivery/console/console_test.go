package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental/internal/domain/entity"
	domainerrors "carrental/internal/domain/errors"
	"carrental/internal/usecase"
)

type stubAuth struct {
	user *usecase.UserOutput
}

func (s *stubAuth) Register(_ context.Context, _ *usecase.RegisterInput) (*usecase.UserOutput, error) {
	return nil, nil
}

func (s *stubAuth) Login(_ context.Context, input *usecase.LoginInput) (*usecase.UserOutput, error) {
	if s.user != nil && input.Username == s.user.Username && input.Password == "pw" {
		return s.user, nil
	}

	return nil, nil
}

type stubRentals struct {
	rentInput *usecase.RentCarInput
	rentErr   error
}

func (s *stubRentals) RentCar(_ context.Context, input *usecase.RentCarInput) (*usecase.RentalOutput, error) {
	s.rentInput = input
	if s.rentErr != nil {
		return nil, s.rentErr
	}

	return &usecase.RentalOutput{ID: 7, CustomerID: input.CustomerID, CarID: input.CarID}, nil
}

func (s *stubRentals) ReturnCar(_ context.Context, _ *usecase.ReturnCarInput) error {
	return nil
}

func (s *stubRentals) GetAll(_ context.Context) ([]*usecase.RentalOutput, error) {
	return nil, nil
}

func (s *stubRentals) GetActive(_ context.Context) ([]*usecase.RentalOutput, error) {
	return nil, nil
}

type stubCars struct{}

func (s *stubCars) GetAll(_ context.Context) ([]*usecase.CarOutput, error) { return nil, nil }
func (s *stubCars) GetAllIncludingInactive(_ context.Context) ([]*usecase.CarOutput, error) {
	return nil, nil
}
func (s *stubCars) GetInactive(_ context.Context) ([]*usecase.CarOutput, error) { return nil, nil }
func (s *stubCars) GetByID(_ context.Context, _ int64) (*usecase.CarOutput, error) {
	return nil, nil
}
func (s *stubCars) Add(_ context.Context, _ *usecase.AddCarInput) (*usecase.CarOutput, error) {
	return &usecase.CarOutput{ID: 1}, nil
}
func (s *stubCars) Update(_ context.Context, _ *usecase.UpdateCarInput) error { return nil }
func (s *stubCars) Delete(_ context.Context, _ int64) error                   { return nil }
func (s *stubCars) Restore(_ context.Context, _ int64) error                  { return nil }
func (s *stubCars) SearchByBrand(_ context.Context, _ string) ([]*usecase.CarOutput, error) {
	return nil, nil
}

type stubCustomers struct{}

func (s *stubCustomers) GetAll(_ context.Context) ([]*usecase.CustomerOutput, error) {
	return nil, nil
}
func (s *stubCustomers) GetAllIncludingInactive(_ context.Context) ([]*usecase.CustomerOutput, error) {
	return nil, nil
}
func (s *stubCustomers) GetInactive(_ context.Context) ([]*usecase.CustomerOutput, error) {
	return nil, nil
}
func (s *stubCustomers) GetByID(_ context.Context, _ int64) (*usecase.CustomerOutput, error) {
	return nil, nil
}
func (s *stubCustomers) Add(_ context.Context, _ *usecase.AddCustomerInput) (*usecase.CustomerOutput, error) {
	return &usecase.CustomerOutput{ID: 1}, nil
}
func (s *stubCustomers) Update(_ context.Context, _ *usecase.UpdateCustomerInput) error { return nil }
func (s *stubCustomers) Delete(_ context.Context, _ int64) error                        { return nil }
func (s *stubCustomers) Restore(_ context.Context, _ int64) error                       { return nil }
func (s *stubCustomers) SearchByName(_ context.Context, _ string) ([]*usecase.CustomerOutput, error) {
	return nil, nil
}

type stubUsers struct{}

func (s *stubUsers) GetAll(_ context.Context) ([]*usecase.UserOutput, error) { return nil, nil }
func (s *stubUsers) GetByID(_ context.Context, _ int64) (*usecase.UserOutput, error) {
	return nil, nil
}
func (s *stubUsers) Create(_ context.Context, _ *usecase.CreateUserInput) (*usecase.UserOutput, error) {
	return &usecase.UserOutput{ID: 2}, nil
}
func (s *stubUsers) Update(_ context.Context, _ *usecase.UpdateUserInput) (*usecase.UserOutput, error) {
	return &usecase.UserOutput{ID: 2}, nil
}
func (s *stubUsers) ChangePassword(_ context.Context, _ int64, _ string) error { return nil }
func (s *stubUsers) ChangeRole(_ context.Context, _ int64, _ entity.Role) error {
	return nil
}
func (s *stubUsers) Delete(_ context.Context, _ int64) error { return nil }

type stubDashboard struct{}

func (s *stubDashboard) GetSummary(_ context.Context) (*usecase.DashboardSummary, error) {
	return &usecase.DashboardSummary{TotalCars: 3, TotalCustomers: 2, ActiveRentals: 1}, nil
}

func runConsole(t *testing.T, user *usecase.UserOutput, rentals *stubRentals, script string) string {
	t.Helper()

	var out bytes.Buffer
	con := newConsole(strings.NewReader(script), &out, Params{
		AuthUC:      &stubAuth{user: user},
		RentalUC:    rentals,
		CarUC:       &stubCars{},
		CustomerUC:  &stubCustomers{},
		UserUC:      &stubUsers{},
		DashboardUC: &stubDashboard{},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.NoError(t, con.Serve(context.Background()))

	return out.String()
}

func adminUser() *usecase.UserOutput {
	return &usecase.UserOutput{ID: 1, Username: "admin", Email: "admin@example.com", Role: entity.RoleAdmin}
}

func employeeUser() *usecase.UserOutput {
	return &usecase.UserOutput{ID: 2, Username: "emp", Email: "emp@example.com", Role: entity.RoleEmployee}
}

func TestConsole_LoginLockout(t *testing.T) {
	script := strings.Join([]string{
		"admin", "wrong",
		"admin", "wrong",
		"admin", "wrong",
	}, "\n") + "\n"

	out := runConsole(t, adminUser(), &stubRentals{}, script)

	assert.Contains(t, out, "Invalid username or password (3/3).")
	assert.Contains(t, out, "Too many failed login attempts.")
	assert.NotContains(t, out, "Welcome")
}

func TestConsole_LoginAndExit(t *testing.T) {
	script := "admin\npw\n0\n"

	out := runConsole(t, adminUser(), &stubRentals{}, script)

	assert.Contains(t, out, "Welcome, admin.")
	assert.Contains(t, out, "Goodbye.")
}

func TestConsole_LogoutReturnsToLogin(t *testing.T) {
	script := "admin\npw\n6\nadmin\npw\n0\n"

	out := runConsole(t, adminUser(), &stubRentals{}, script)

	assert.Contains(t, out, "Logged out.")
	assert.Equal(t, 2, strings.Count(out, "Welcome, admin."))
}

func TestConsole_RentCarFlow(t *testing.T) {
	rentals := &stubRentals{}
	script := strings.Join([]string{
		"admin", "pw",
		"3",          // rentals
		"3",          // rent a car
		"5",          // customer ID
		"9",          // car ID
		"2026-07-01", // rent date
		"9",          // back
		"0",          // exit
	}, "\n") + "\n"

	out := runConsole(t, adminUser(), rentals, script)

	require.NotNil(t, rentals.rentInput)
	assert.Equal(t, int64(5), rentals.rentInput.CustomerID)
	assert.Equal(t, int64(9), rentals.rentInput.CarID)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), rentals.rentInput.RentDate)
	assert.Contains(t, out, "Rental #7 created.")
}

func TestConsole_RentCarShowsEveryValidationMessage(t *testing.T) {
	rentals := &stubRentals{rentErr: domainerrors.NewValidationError(
		"Customer ID must be greater than zero.",
		"Car is already rented.",
	)}
	script := strings.Join([]string{
		"admin", "pw",
		"3", "3",
		"0", "9", "2026-07-01",
		"9", "0",
	}, "\n") + "\n"

	out := runConsole(t, adminUser(), rentals, script)

	assert.Contains(t, out, "Customer ID must be greater than zero.")
	assert.Contains(t, out, "Car is already rented.")
}

func TestConsole_UserSectionRequiresAdmin(t *testing.T) {
	script := "emp\npw\n5\n0\n"

	out := runConsole(t, employeeUser(), &stubRentals{}, script)

	assert.Contains(t, out, "This section requires the admin role.")
}

func TestConsole_Dashboard(t *testing.T) {
	script := "admin\npw\n4\n0\n"

	out := runConsole(t, adminUser(), &stubRentals{}, script)

	assert.Contains(t, out, "Cars: 3  Customers: 2  Active rentals: 1")
}

func TestConsole_EOFShutsDownCleanly(t *testing.T) {
	out := runConsole(t, adminUser(), &stubRentals{}, "admin\npw\n")

	assert.Contains(t, out, "Welcome, admin.")
}
