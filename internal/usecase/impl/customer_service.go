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

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(customerRepo repository.CustomerRepository, logger *slog.Logger) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (srv *customerService) GetAll(ctx context.Context) ([]*usecase.CustomerOutput, error) {
	customers, err := srv.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return toCustomerOutputs(customers), nil
}

func (srv *customerService) GetAllIncludingInactive(ctx context.Context) ([]*usecase.CustomerOutput, error) {
	customers, err := srv.customerRepo.FindAllIncludingInactive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return toCustomerOutputs(customers), nil
}

func (srv *customerService) GetInactive(ctx context.Context) ([]*usecase.CustomerOutput, error) {
	customers, err := srv.customerRepo.FindInactive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list archived customers")
	}

	return toCustomerOutputs(customers), nil
}

func (srv *customerService) GetByID(ctx context.Context, id int64) (*usecase.CustomerOutput, error) {
	customer, err := srv.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	return toCustomerOutput(customer), nil
}

func (srv *customerService) Add(ctx context.Context, input *usecase.AddCustomerInput) (*usecase.CustomerOutput, error) {
	email, err := entity.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	customer, err := entity.NewCustomer(input.Name, email)
	if err != nil {
		return nil, err
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	srv.logger.Info("Customer added",
		slog.Int64("customerID", customer.ID),
		slog.String("name", customer.Name))

	return toCustomerOutput(customer), nil
}

func (srv *customerService) Update(ctx context.Context, input *usecase.UpdateCustomerInput) error {
	customer, err := srv.findCustomer(ctx, input.ID)
	if err != nil {
		return err
	}

	email, err := entity.NewEmail(input.Email)
	if err != nil {
		return err
	}

	updated, err := entity.NewCustomer(input.Name, email)
	if err != nil {
		return err
	}

	customer.Name = updated.Name
	customer.Email = updated.Email

	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.NewNotFoundError("Customer", input.ID)
		}

		return errors.Wrap(err, "failed to update customer")
	}

	srv.logger.Info("Customer updated", slog.Int64("customerID", customer.ID))

	return nil
}

// Delete archives the customer; their rental history stays intact.
func (srv *customerService) Delete(ctx context.Context, id int64) error {
	if _, err := srv.findCustomer(ctx, id); err != nil {
		return err
	}

	if err := srv.customerRepo.SetActive(ctx, id, false); err != nil {
		return errors.Wrap(err, "failed to archive customer")
	}

	srv.logger.Info("Customer archived", slog.Int64("customerID", id))

	return nil
}

// Restore brings an archived customer back.
func (srv *customerService) Restore(ctx context.Context, id int64) error {
	if _, err := srv.findCustomer(ctx, id); err != nil {
		return err
	}

	if err := srv.customerRepo.SetActive(ctx, id, true); err != nil {
		return errors.Wrap(err, "failed to restore customer")
	}

	srv.logger.Info("Customer restored", slog.Int64("customerID", id))

	return nil
}

func (srv *customerService) SearchByName(ctx context.Context, name string) ([]*usecase.CustomerOutput, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []*usecase.CustomerOutput{}, nil
	}

	customers, err := srv.customerRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search customers")
	}

	return toCustomerOutputs(customers), nil
}

func (srv *customerService) findCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, domainerrors.NewNotFoundError("Customer", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

func toCustomerOutput(customer *entity.Customer) *usecase.CustomerOutput {
	return &usecase.CustomerOutput{
		ID:       customer.ID,
		Name:     customer.Name,
		Email:    customer.Email.String(),
		IsActive: customer.IsActive,
	}
}

func toCustomerOutputs(customers []*entity.Customer) []*usecase.CustomerOutput {
	outputs := make([]*usecase.CustomerOutput, 0, len(customers))
	for _, customer := range customers {
		outputs = append(outputs, toCustomerOutput(customer))
	}

	return outputs
}
