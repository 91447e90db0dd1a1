package console

import (
	"context"

	"carrental/internal/usecase"
)

func (c *Console) customerMenu(ctx context.Context, sess *Session) error {
	for {
		c.printf("")
		c.printf("Customers")
		c.printf("  1. List active")
		c.printf("  2. List all (including archived)")
		c.printf("  3. Search by name")
		c.printf("  4. Add")
		c.printf("  5. Update")
		c.printf("  6. Archive")
		c.printf("  7. Restore")
		c.printf("  9. Back")

		choice, err := c.prompt("Choice")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.listCustomers(ctx, sess, false)
		case "2":
			err = c.listCustomers(ctx, sess, true)
		case "3":
			err = c.searchCustomers(ctx, sess)
		case "4":
			err = c.addCustomer(ctx, sess)
		case "5":
			err = c.updateCustomer(ctx, sess)
		case "6":
			err = c.archiveCustomer(ctx, sess)
		case "7":
			err = c.restoreCustomer(ctx, sess)
		case "9":
			return nil
		default:
			c.printf("Unknown choice %q.", choice)

			continue
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) listCustomers(ctx context.Context, sess *Session, includeArchived bool) error {
	var (
		customers []*usecase.CustomerOutput
		err       error
	)
	if includeArchived {
		customers, err = c.customerUC.GetAllIncludingInactive(ctx)
	} else {
		customers, err = c.customerUC.GetAll(ctx)
	}
	if err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printCustomers(customers)

	return nil
}

func (c *Console) searchCustomers(ctx context.Context, sess *Session) error {
	name, err := c.prompt("Name")
	if err != nil {
		return err
	}

	customers, err := c.customerUC.SearchByName(ctx, name)
	if err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printCustomers(customers)

	return nil
}

func (c *Console) addCustomer(ctx context.Context, sess *Session) error {
	input := &usecase.AddCustomerInput{}
	var err error
	if input.Name, err = c.prompt("Name"); err != nil {
		return err
	}
	if input.Email, err = c.prompt("Email"); err != nil {
		return err
	}

	customer, err := c.customerUC.Add(ctx, input)
	if err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("Customer #%d added.", customer.ID)

	return nil
}

func (c *Console) updateCustomer(ctx context.Context, sess *Session) error {
	input := &usecase.UpdateCustomerInput{}
	var err error
	if input.ID, err = c.promptID("Customer ID"); err != nil {
		return err
	}
	if input.ID == 0 {
		return nil
	}
	if input.Name, err = c.prompt("Name"); err != nil {
		return err
	}
	if input.Email, err = c.prompt("Email"); err != nil {
		return err
	}

	if err := c.customerUC.Update(ctx, input); err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("Customer #%d updated.", input.ID)

	return nil
}

func (c *Console) archiveCustomer(ctx context.Context, sess *Session) error {
	id, err := c.promptID("Customer ID")
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}

	if err := c.customerUC.Delete(ctx, id); err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("Customer #%d archived.", id)

	return nil
}

func (c *Console) restoreCustomer(ctx context.Context, sess *Session) error {
	id, err := c.promptID("Customer ID")
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}

	if err := c.customerUC.Restore(ctx, id); err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("Customer #%d restored.", id)

	return nil
}

func (c *Console) printCustomers(customers []*usecase.CustomerOutput) {
	if len(customers) == 0 {
		c.printf("No customers.")

		return
	}

	for _, customer := range customers {
		status := "active"
		if !customer.IsActive {
			status = "archived"
		}
		c.printf("#%d %s <%s> [%s]", customer.ID, customer.Name, customer.Email, status)
	}
}
