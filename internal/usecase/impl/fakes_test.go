package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"carrental/internal/domain/entity"
	"carrental/internal/domain/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is the shared backing state for the fake repositories, so the
// transaction-bound repositories and the plain ones see the same data.
type memStore struct {
	cars      map[int64]*entity.Car
	customers map[int64]*entity.Customer
	rentals   map[int64]*entity.Rental
	users     map[int64]*entity.User
	nextID    int64

	findByUsernameCalls int
}

func newMemStore() *memStore {
	return &memStore{
		cars:      make(map[int64]*entity.Car),
		customers: make(map[int64]*entity.Customer),
		rentals:   make(map[int64]*entity.Rental),
		users:     make(map[int64]*entity.User),
	}
}

func (s *memStore) id() int64 {
	s.nextID++

	return s.nextID
}

func (s *memStore) addCar(car *entity.Car) *entity.Car {
	car.ID = s.id()
	s.cars[car.ID] = car

	return car
}

func (s *memStore) addCustomer(customer *entity.Customer) *entity.Customer {
	customer.ID = s.id()
	s.customers[customer.ID] = customer

	return customer
}

func (s *memStore) addUser(user *entity.User) *entity.User {
	user.ID = s.id()
	s.users[user.ID] = user

	return user
}

type fakeCarRepo struct{ store *memStore }

func (r *fakeCarRepo) FindByID(_ context.Context, id int64) (*entity.Car, error) {
	car, ok := r.store.cars[id]
	if !ok {
		return nil, repository.ErrCarNotFound
	}

	clone := *car

	return &clone, nil
}

func (r *fakeCarRepo) FindAll(_ context.Context) ([]*entity.Car, error) {
	var out []*entity.Car
	for _, car := range r.store.cars {
		if car.IsActive {
			clone := *car
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeCarRepo) FindAllIncludingInactive(_ context.Context) ([]*entity.Car, error) {
	var out []*entity.Car
	for _, car := range r.store.cars {
		clone := *car
		out = append(out, &clone)
	}

	return out, nil
}

func (r *fakeCarRepo) FindInactive(_ context.Context) ([]*entity.Car, error) {
	var out []*entity.Car
	for _, car := range r.store.cars {
		if !car.IsActive {
			clone := *car
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeCarRepo) SearchByBrand(_ context.Context, brand string) ([]*entity.Car, error) {
	var out []*entity.Car
	for _, car := range r.store.cars {
		if car.IsActive && strings.Contains(strings.ToLower(car.Brand), strings.ToLower(brand)) {
			clone := *car
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeCarRepo) Create(_ context.Context, car *entity.Car) error {
	stored := *car
	r.store.addCar(&stored)
	car.ID = stored.ID

	return nil
}

func (r *fakeCarRepo) Update(_ context.Context, car *entity.Car) error {
	if _, ok := r.store.cars[car.ID]; !ok {
		return repository.ErrCarNotFound
	}

	clone := *car
	r.store.cars[car.ID] = &clone

	return nil
}

func (r *fakeCarRepo) SetActive(_ context.Context, id int64, isActive bool) error {
	car, ok := r.store.cars[id]
	if !ok {
		return repository.ErrCarNotFound
	}

	car.IsActive = isActive

	return nil
}

type fakeCustomerRepo struct{ store *memStore }

func (r *fakeCustomerRepo) FindByID(_ context.Context, id int64) (*entity.Customer, error) {
	customer, ok := r.store.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}

	clone := *customer

	return &clone, nil
}

func (r *fakeCustomerRepo) FindAll(_ context.Context) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, customer := range r.store.customers {
		if customer.IsActive {
			clone := *customer
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeCustomerRepo) FindAllIncludingInactive(_ context.Context) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, customer := range r.store.customers {
		clone := *customer
		out = append(out, &clone)
	}

	return out, nil
}

func (r *fakeCustomerRepo) FindInactive(_ context.Context) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, customer := range r.store.customers {
		if !customer.IsActive {
			clone := *customer
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeCustomerRepo) SearchByName(_ context.Context, name string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, customer := range r.store.customers {
		if customer.IsActive && strings.Contains(strings.ToLower(customer.Name), strings.ToLower(name)) {
			clone := *customer
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	stored := *customer
	r.store.addCustomer(&stored)
	customer.ID = stored.ID

	return nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	if _, ok := r.store.customers[customer.ID]; !ok {
		return repository.ErrCustomerNotFound
	}

	clone := *customer
	r.store.customers[customer.ID] = &clone

	return nil
}

func (r *fakeCustomerRepo) SetActive(_ context.Context, id int64, isActive bool) error {
	customer, ok := r.store.customers[id]
	if !ok {
		return repository.ErrCustomerNotFound
	}

	customer.IsActive = isActive

	return nil
}

type fakeRentalRepo struct{ store *memStore }

func (r *fakeRentalRepo) FindByID(_ context.Context, id int64) (*entity.Rental, error) {
	rental, ok := r.store.rentals[id]
	if !ok {
		return nil, repository.ErrRentalNotFound
	}

	clone := *rental

	return &clone, nil
}

func (r *fakeRentalRepo) FindAll(_ context.Context) ([]*entity.Rental, error) {
	var out []*entity.Rental
	for _, rental := range r.store.rentals {
		clone := *rental
		out = append(out, &clone)
	}

	return out, nil
}

func (r *fakeRentalRepo) FindActive(_ context.Context) ([]*entity.Rental, error) {
	var out []*entity.Rental
	for _, rental := range r.store.rentals {
		if rental.IsActive() {
			clone := *rental
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeRentalRepo) Create(_ context.Context, rental *entity.Rental) error {
	for _, existing := range r.store.rentals {
		if existing.CarID == rental.CarID && existing.IsActive() {
			return repository.ErrCarAlreadyRented
		}
	}

	stored := *rental
	stored.ID = r.store.id()
	r.store.rentals[stored.ID] = &stored
	rental.ID = stored.ID

	return nil
}

func (r *fakeRentalRepo) Update(_ context.Context, rental *entity.Rental) error {
	if _, ok := r.store.rentals[rental.ID]; !ok {
		return repository.ErrRentalNotFound
	}

	clone := *rental
	r.store.rentals[rental.ID] = &clone

	return nil
}

type fakeUserRepo struct{ store *memStore }

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.store.findByUsernameCalls++
	for _, user := range r.store.users {
		if user.IsActive && user.Username == username {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range r.store.users {
		if user.IsActive {
			clone := *user
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeUserRepo) FindAllIncludingInactive(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range r.store.users {
		clone := *user
		out = append(out, &clone)
	}

	return out, nil
}

func (r *fakeUserRepo) FindInactive(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range r.store.users {
		if !user.IsActive {
			clone := *user
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.store.users {
		if existing.Username == user.Username {
			return repository.ErrUsernameTaken
		}
	}

	stored := *user
	r.store.addUser(&stored)
	user.ID = stored.ID

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	for _, existing := range r.store.users {
		if existing.ID != user.ID && existing.Username == user.Username {
			return repository.ErrUsernameTaken
		}
	}

	clone := *user
	r.store.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) SetActive(_ context.Context, id int64, isActive bool) error {
	user, ok := r.store.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}

	user.IsActive = isActive

	return nil
}

// fakeFactory hands out repositories over the shared store. The fake
// transaction manager has no rollback; tests only exercise the happy path and
// failures raised before any write.
type fakeFactory struct{ store *memStore }

func (f *fakeFactory) CarRepo() repository.CarRepository { return &fakeCarRepo{store: f.store} }

func (f *fakeFactory) CustomerRepo() repository.CustomerRepository {
	return &fakeCustomerRepo{store: f.store}
}

func (f *fakeFactory) RentalRepo() repository.RentalRepository { return &fakeRentalRepo{store: f.store} }

func (f *fakeFactory) UserRepo() repository.UserRepository { return &fakeUserRepo{store: f.store} }

type fakeTxManager struct {
	store        *memStore
	executeCalls int
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repos repository.RepositoryFactory) error) error {
	m.executeCalls++

	return fn(&fakeFactory{store: m.store})
}

// stubHasher derives a recognizable token without real key stretching, so
// tests stay fast and deterministic.
type stubHasher struct {
	hashCalls int
}

func (h *stubHasher) Hash(password string) (string, string, error) {
	h.hashCalls++

	return "hash:" + password, "salt", nil
}

func (h *stubHasher) Verify(password, salt, hash string) bool {
	return salt == "salt" && hash == "hash:"+password
}
