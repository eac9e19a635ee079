package accounts

import (
	"context"
	"errors"

	"github.com/giannisdak1992/bookshelf/internal/logutil"
)

type (
	// Registrar creates new accounts. The up-front existence check
	// gives a friendly failure on the common path, but two concurrent
	// registrations can both pass it; the store's unique index is what
	// actually prevents the duplicate, and a conflicting insert comes
	// back as the same EmailTaken.
	Registrar struct {
		store  *Store
		hasher Hasher
	}
)

func NewRegistrar(store *Store, hasher Hasher) *Registrar {
	return &Registrar{store: store, hasher: hasher}
}

func (r *Registrar) Register(ctx context.Context, email, secret string) (*Account, error) {
	log := logutil.GetOrDefault(ctx)
	_, err := r.store.ByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, EmailTaken{Email: email}
	case errors.Is(err, ErrUnknownIdentity):
		// free to register
	default:
		log.Error().Err(err).Msg("Account lookup failed during registration")
		return nil, ErrInternal
	}
	digest, err := r.hasher.Hash(secret)
	if err != nil {
		log.Error().Err(err).Msg("Password hashing failed during registration")
		return nil, ErrInternal
	}
	acct, err := r.store.Create(ctx, email, digest)
	var taken EmailTaken
	if errors.As(err, &taken) {
		return nil, taken
	} else if err != nil {
		log.Error().Err(err).Msg("Account insert failed during registration")
		return nil, ErrInternal
	}
	return acct, nil
}
