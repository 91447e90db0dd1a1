package entity

import (
	"strings"

	domainerrors "carrental/internal/domain/errors"
)

// User represents a system account used for authentication and authorization.
// The password is never stored in plaintext: a user always carries both the
// derived hash and the salt it was derived with.
type User struct {
	ID           int64
	Username     string
	Email        Email
	PasswordHash string
	Salt         string
	Role         Role
	IsActive     bool
}

// NewUser validates the input and creates a User pending persistence. The
// hash and salt come from the credential hasher; both must be present.
func NewUser(username string, email Email, passwordHash, salt string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domainerrors.NewDomainError("Username cannot be empty.")
	}
	if email.IsZero() {
		return nil, domainerrors.NewDomainError("Email is required.")
	}
	if strings.TrimSpace(passwordHash) == "" {
		return nil, domainerrors.NewDomainError("Password hash cannot be empty.")
	}
	if strings.TrimSpace(salt) == "" {
		return nil, domainerrors.NewDomainError("Salt cannot be empty.")
	}
	if !role.IsValid() {
		return nil, domainerrors.NewDomainError("Role is invalid.")
	}

	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Salt:         salt,
		Role:         role,
		IsActive:     true,
	}, nil
}

// UpdateUsername replaces the username after trimming and validation.
func (u *User) UpdateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return domainerrors.NewDomainError("Username cannot be empty.")
	}

	u.Username = username

	return nil
}

// UpdateEmail replaces the email address.
func (u *User) UpdateEmail(email Email) error {
	if email.IsZero() {
		return domainerrors.NewDomainError("Email is required.")
	}

	u.Email = email

	return nil
}

// UpdatePassword replaces the stored credential pair. Both parts must be
// present; partial credentials would make the account unverifiable.
func (u *User) UpdatePassword(passwordHash, salt string) error {
	if strings.TrimSpace(passwordHash) == "" {
		return domainerrors.NewDomainError("Password hash cannot be empty.")
	}
	if strings.TrimSpace(salt) == "" {
		return domainerrors.NewDomainError("Salt cannot be empty.")
	}

	u.PasswordHash = passwordHash
	u.Salt = salt

	return nil
}

// ChangeRole switches the user to another valid role.
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return domainerrors.NewDomainError("Role is invalid.")
	}

	u.Role = role

	return nil
}
