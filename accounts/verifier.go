package accounts

import (
	"context"
	"errors"

	"github.com/giannisdak1992/bookshelf/internal/logutil"
)

type (
	// Verifier is the single gate that turns an email/secret pair into
	// an authentication verdict. Login must consult it and nothing
	// else.
	Verifier struct {
		store  *Store
		hasher Hasher
	}
)

func NewVerifier(store *Store, hasher Hasher) *Verifier {
	return &Verifier{store: store, hasher: hasher}
}

// Verify returns the matching account on success. Failures are one of
// ErrUnknownIdentity, ErrBadCredentials or ErrInternal; store and
// hasher faults are logged here and collapsed into ErrInternal so the
// caller cannot distinguish them from a bad login.
func (v *Verifier) Verify(ctx context.Context, email, secret string) (*Account, error) {
	log := logutil.GetOrDefault(ctx)
	acct, err := v.store.ByEmail(ctx, email)
	if errors.Is(err, ErrUnknownIdentity) {
		return nil, ErrUnknownIdentity
	} else if err != nil {
		log.Error().Err(err).Msg("Account lookup failed during credential verification")
		return nil, ErrInternal
	}
	ok, err := v.hasher.Verify(secret, acct.PasswordHash)
	if err != nil {
		log.Error().Err(err).Int64("account_id", acct.ID).Msg("Password verification failed")
		return nil, ErrInternal
	}
	if !ok {
		return nil, ErrBadCredentials
	}
	return acct, nil
}
