package console

import (
	"context"

	"carrental/internal/domain/entity"
	"carrental/internal/usecase"
)

func (c *Console) userMenu(ctx context.Context, sess *Session) error {
	for {
		c.printf("")
		c.printf("Users")
		c.printf("  1. List")
		c.printf("  2. Create")
		c.printf("  3. Update")
		c.printf("  4. Change password")
		c.printf("  5. Change role")
		c.printf("  6. Archive")
		c.printf("  9. Back")

		choice, err := c.prompt("Choice")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.listUsers(ctx, sess)
		case "2":
			err = c.createUser(ctx, sess)
		case "3":
			err = c.updateUser(ctx, sess)
		case "4":
			err = c.changePassword(ctx, sess)
		case "5":
			err = c.changeRole(ctx, sess)
		case "6":
			err = c.archiveUser(ctx, sess)
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

func (c *Console) listUsers(ctx context.Context, sess *Session) error {
	users, err := c.userUC.GetAll(ctx)
	if err != nil {
		c.presentError(sess, err)

		return nil
	}

	if len(users) == 0 {
		c.printf("No users.")

		return nil
	}

	for _, user := range users {
		c.printf("#%d %s <%s> role %s", user.ID, user.Username, user.Email, user.Role)
	}

	return nil
}

func (c *Console) createUser(ctx context.Context, sess *Session) error {
	input := &usecase.CreateUserInput{}
	var err error
	if input.Username, err = c.prompt("Username"); err != nil {
		return err
	}
	if input.Email, err = c.prompt("Email"); err != nil {
		return err
	}
	if input.Password, err = c.prompt("Password"); err != nil {
		return err
	}

	role, err := c.promptRole()
	if err != nil {
		return err
	}
	input.Role = role

	user, err := c.userUC.Create(ctx, input)
	if err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("User #%d created.", user.ID)

	return nil
}

func (c *Console) updateUser(ctx context.Context, sess *Session) error {
	input := &usecase.UpdateUserInput{}
	var err error
	if input.ID, err = c.promptID("User ID"); err != nil {
		return err
	}
	if input.ID == 0 {
		return nil
	}
	if input.Username, err = c.prompt("Username (blank keeps current)"); err != nil {
		return err
	}
	if input.Email, err = c.prompt("Email (blank keeps current)"); err != nil {
		return err
	}

	user, err := c.userUC.Update(ctx, input)
	if err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("User #%d is now %s <%s>.", user.ID, user.Username, user.Email)

	return nil
}

func (c *Console) changePassword(ctx context.Context, sess *Session) error {
	id, err := c.promptID("User ID")
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}

	password, err := c.prompt("New password")
	if err != nil {
		return err
	}

	if err := c.userUC.ChangePassword(ctx, id, password); err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("Password for user #%d changed.", id)

	return nil
}

func (c *Console) changeRole(ctx context.Context, sess *Session) error {
	id, err := c.promptID("User ID")
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}

	role, err := c.promptRole()
	if err != nil {
		return err
	}

	if err := c.userUC.ChangeRole(ctx, id, role); err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("Role for user #%d changed to %s.", id, role)

	return nil
}

func (c *Console) archiveUser(ctx context.Context, sess *Session) error {
	id, err := c.promptID("User ID")
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}

	if id == sess.User.ID {
		c.printf("You cannot archive your own account.")

		return nil
	}

	if err := c.userUC.Delete(ctx, id); err != nil {
		c.presentError(sess, err)

		return nil
	}

	c.printf("User #%d archived.", id)

	return nil
}

func (c *Console) promptRole() (entity.Role, error) {
	raw, err := c.prompt("Role (admin/employee)")
	if err != nil {
		return "", err
	}
	if raw == "" {
		return entity.RoleEmployee, nil
	}

	return entity.Role(raw), nil
}
