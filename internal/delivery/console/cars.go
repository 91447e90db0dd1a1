package console

import (
	"context"

	"carrental/internal/usecase"
)

func (c *Console) carMenu(ctx context.Context, sess *Session) error {
	for {
		c.printf("")
		c.printf("Cars")
		c.printf("  1. List active")
		c.printf("  2. List all (including archived)")
		c.printf("  3. Search by brand")
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
			err = c.listCars(ctx, sess, false)
		case "2":
			err = c.listCars(ctx, sess, true)
		case "3":
			err = c.searchCars(ctx, sess)
		case "4":
			err = c.addCar(ctx, sess)
		case "5":
			err = c.updateCar(ctx, sess)
		case "6":
			err = c.archiveCar(ctx, sess)
		case "7":
			err = c.restoreCar(ctx, sess)
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

func (c *Console) listCars(ctx context.Context, sess *Session, includeArchived bool) error {
	var (
		cars []*usecase.CarOutput
		err  error
	)
	if includeArchived {
		cars, err = c.carUC.GetAllIncludingInactive(ctx)
	} else {
		cars, err = c.carUC.GetAll(ctx)
	}
	if err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printCars(cars)

	return nil
}

func (c *Console) searchCars(ctx context.Context, sess *Session) error {
	brand, err := c.prompt("Brand")
	if err != nil {
		return err
	}

	cars, err := c.carUC.SearchByBrand(ctx, brand)
	if err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printCars(cars)

	return nil
}

func (c *Console) addCar(ctx context.Context, sess *Session) error {
	input := &usecase.AddCarInput{}
	var err error
	if input.Brand, err = c.prompt("Brand"); err != nil {
		return err
	}
	if input.Model, err = c.prompt("Model"); err != nil {
		return err
	}
	if input.Year, err = c.promptInt("Year"); err != nil {
		return err
	}
	if input.VIN, err = c.prompt("VIN"); err != nil {
		return err
	}

	car, err := c.carUC.Add(ctx, input)
	if err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("Car #%d added.", car.ID)

	return nil
}

func (c *Console) updateCar(ctx context.Context, sess *Session) error {
	input := &usecase.UpdateCarInput{}
	var err error
	if input.ID, err = c.promptID("Car ID"); err != nil {
		return err
	}
	if input.ID == 0 {
		return nil
	}
	if input.Brand, err = c.prompt("Brand"); err != nil {
		return err
	}
	if input.Model, err = c.prompt("Model"); err != nil {
		return err
	}
	if input.Year, err = c.promptInt("Year"); err != nil {
		return err
	}
	if input.VIN, err = c.prompt("VIN"); err != nil {
		return err
	}

	if err := c.carUC.Update(ctx, input); err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("Car #%d updated.", input.ID)

	return nil
}

func (c *Console) archiveCar(ctx context.Context, sess *Session) error {
	id, err := c.promptID("Car ID")
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}

	if err := c.carUC.Delete(ctx, id); err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("Car #%d archived.", id)

	return nil
}

func (c *Console) restoreCar(ctx context.Context, sess *Session) error {
	id, err := c.promptID("Car ID")
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}

	if err := c.carUC.Restore(ctx, id); err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("Car #%d restored.", id)

	return nil
}

func (c *Console) printCars(cars []*usecase.CarOutput) {
	if len(cars) == 0 {
		c.printf("No cars.")

		return
	}

	for _, car := range cars {
		status := "active"
		if !car.IsActive {
			status = "archived"
		}
		c.printf("#%d %s %s (%d) VIN %s [%s]",
			car.ID, car.Brand, car.Model, car.Year, car.VIN, status)
	}
}
