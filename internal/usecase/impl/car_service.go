package impl

import (
	"context"
	"log/slog"
	"strings"

	"carrental/internal/domain/entity"
	domainerrors "carrental/internal/domain/errors"
	"carrental/internal/domain/repository"
	"carrental/internal/errors"
	"carrental/internal/usecase"
)

// carService implements the CarUsecase interface.
type carService struct {
	carRepo repository.CarRepository
	logger  *slog.Logger
}

// NewCarService is the constructor for carService.
func NewCarService(carRepo repository.CarRepository, logger *slog.Logger) usecase.CarUsecase {
	return &carService{
		carRepo: carRepo,
		logger:  logger,
	}
}

func (srv *carService) GetAll(ctx context.Context) ([]*usecase.CarOutput, error) {
	cars, err := srv.carRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cars")
	}

	return toCarOutputs(cars), nil
}

func (srv *carService) GetAllIncludingInactive(ctx context.Context) ([]*usecase.CarOutput, error) {
	cars, err := srv.carRepo.FindAllIncludingInactive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cars")
	}

	return toCarOutputs(cars), nil
}

func (srv *carService) GetInactive(ctx context.Context) ([]*usecase.CarOutput, error) {
	cars, err := srv.carRepo.FindInactive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list archived cars")
	}

	return toCarOutputs(cars), nil
}

func (srv *carService) GetByID(ctx context.Context, id int64) (*usecase.CarOutput, error) {
	car, err := srv.findCar(ctx, id)
	if err != nil {
		return nil, err
	}

	return toCarOutput(car), nil
}

func (srv *carService) Add(ctx context.Context, input *usecase.AddCarInput) (*usecase.CarOutput, error) {
	car, err := entity.NewCar(input.Brand, input.Model, input.Year, input.VIN)
	if err != nil {
		return nil, err
	}

	if err := srv.carRepo.Create(ctx, car); err != nil {
		return nil, errors.Wrap(err, "failed to create car")
	}

	srv.logger.Info("Car added",
		slog.Int64("carID", car.ID),
		slog.String("brand", car.Brand),
		slog.String("model", car.Model))

	return toCarOutput(car), nil
}

func (srv *carService) Update(ctx context.Context, input *usecase.UpdateCarInput) error {
	car, err := srv.findCar(ctx, input.ID)
	if err != nil {
		return err
	}

	updated, err := entity.NewCar(input.Brand, input.Model, input.Year, input.VIN)
	if err != nil {
		return err
	}

	car.Brand = updated.Brand
	car.Model = updated.Model
	car.Year = updated.Year
	car.VIN = updated.VIN

	if err := srv.carRepo.Update(ctx, car); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return domainerrors.NewNotFoundError("Car", input.ID)
		}

		return errors.Wrap(err, "failed to update car")
	}

	srv.logger.Info("Car updated", slog.Int64("carID", car.ID))

	return nil
}

// Delete archives the car. Historical rentals keep referencing it, so the
// row itself stays.
func (srv *carService) Delete(ctx context.Context, id int64) error {
	if _, err := srv.findCar(ctx, id); err != nil {
		return err
	}

	if err := srv.carRepo.SetActive(ctx, id, false); err != nil {
		return errors.Wrap(err, "failed to archive car")
	}

	srv.logger.Info("Car archived", slog.Int64("carID", id))

	return nil
}

// Restore brings an archived car back into the fleet.
func (srv *carService) Restore(ctx context.Context, id int64) error {
	if _, err := srv.findCar(ctx, id); err != nil {
		return err
	}

	if err := srv.carRepo.SetActive(ctx, id, true); err != nil {
		return errors.Wrap(err, "failed to restore car")
	}

	srv.logger.Info("Car restored", slog.Int64("carID", id))

	return nil
}

func (srv *carService) SearchByBrand(ctx context.Context, brand string) ([]*usecase.CarOutput, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return []*usecase.CarOutput{}, nil
	}

	cars, err := srv.carRepo.SearchByBrand(ctx, brand)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search cars")
	}

	return toCarOutputs(cars), nil
}

func (srv *carService) findCar(ctx context.Context, id int64) (*entity.Car, error) {
	car, err := srv.carRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCarNotFound) {
		return nil, domainerrors.NewNotFoundError("Car", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find car")
	}

	return car, nil
}

func toCarOutput(car *entity.Car) *usecase.CarOutput {
	return &usecase.CarOutput{
		ID:       car.ID,
		Brand:    car.Brand,
		Model:    car.Model,
		Year:     car.Year,
		VIN:      car.VIN,
		IsActive: car.IsActive,
	}
}

func toCarOutputs(cars []*entity.Car) []*usecase.CarOutput {
	outputs := make([]*usecase.CarOutput, 0, len(cars))
	for _, car := range cars {
		outputs = append(outputs, toCarOutput(car))
	}

	return outputs
}
