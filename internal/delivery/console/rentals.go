package console

import (
	"context"

	"carrental/internal/usecase"
	"carrental/internal/util"
)

func (c *Console) rentalMenu(ctx context.Context, sess *Session) error {
	for {
		c.printf("")
		c.printf("Rentals")
		c.printf("  1. List all")
		c.printf("  2. List active")
		c.printf("  3. Rent a car")
		c.printf("  4. Return a car")
		c.printf("  9. Back")

		choice, err := c.prompt("Choice")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.listRentals(ctx, sess, false)
		case "2":
			err = c.listRentals(ctx, sess, true)
		case "3":
			err = c.rentCar(ctx, sess)
		case "4":
			err = c.returnCar(ctx, sess)
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

func (c *Console) listRentals(ctx context.Context, sess *Session, activeOnly bool) error {
	var (
		rentals []*usecase.RentalOutput
		err     error
	)
	if activeOnly {
		rentals, err = c.rentalUC.GetActive(ctx)
	} else {
		rentals, err = c.rentalUC.GetAll(ctx)
	}
	if err != nil {
		c.presentError(sess, err)

		return nil
	}

	if len(rentals) == 0 {
		c.printf("No rentals.")

		return nil
	}

	for _, rental := range rentals {
		if rental.ReturnDate != nil {
			c.printf("#%d customer %d car %d rented %s returned %s (%s)",
				rental.ID, rental.CustomerID, rental.CarID,
				rental.RentDate.Format(dateLayout), rental.ReturnDate.Format(dateLayout),
				util.FormatRentalSpan(rental.RentDate, *rental.ReturnDate))

			continue
		}
		c.printf("#%d customer %d car %d rented %s [active]",
			rental.ID, rental.CustomerID, rental.CarID, rental.RentDate.Format(dateLayout))
	}

	return nil
}

func (c *Console) rentCar(ctx context.Context, sess *Session) error {
	input := &usecase.RentCarInput{}
	var err error
	if input.CustomerID, err = c.promptID("Customer ID"); err != nil {
		return err
	}
	if input.CarID, err = c.promptID("Car ID"); err != nil {
		return err
	}
	if input.RentDate, err = c.promptDate("Rent date"); err != nil {
		return err
	}

	rental, err := c.rentalUC.RentCar(ctx, input)
	if err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("Rental #%d created.", rental.ID)

	return nil
}

func (c *Console) returnCar(ctx context.Context, sess *Session) error {
	input := &usecase.ReturnCarInput{}
	var err error
	if input.RentalID, err = c.promptID("Rental ID"); err != nil {
		return err
	}
	if input.ReturnDate, err = c.promptDate("Return date"); err != nil {
		return err
	}

	if err := c.rentalUC.ReturnCar(ctx, input); err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("Rental #%d closed.", input.RentalID)

	return nil
}
