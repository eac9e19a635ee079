package accounts

import (
	"errors"
	"fmt"
)

type (
	// EmailTaken indicates a registration attempt for an email that
	// already owns an account. Unlike the other failures below, it is
	// safe to show to the user verbatim.
	EmailTaken struct {
		Email string
	}
)

var (
	// ErrUnknownIdentity means no account exists for the given email.
	ErrUnknownIdentity = errors.New("accounts: unknown identity")

	// ErrBadCredentials means the account exists but the secret does
	// not match its stored digest.
	ErrBadCredentials = errors.New("accounts: invalid credentials")

	// ErrInternal hides hashing/store faults from callers so that a
	// failing backend is indistinguishable from a bad login attempt.
	ErrInternal = errors.New("accounts: internal failure")
)

func (e EmailTaken) Error() string {
	return fmt.Sprintf("email %v already has an account", e.Email)
}
