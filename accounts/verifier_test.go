package accounts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/giannisdak1992/bookshelf/accounts"
	"github.com/giannisdak1992/bookshelf/internal/testutil"
)

func TestVerify(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquireAccountStore(ctx, t)
	defer cleanup()
	hasher := accounts.NewHasher()
	registrar := accounts.NewRegistrar(store, hasher)
	verifier := accounts.NewVerifier(store, hasher)
	if _, err := registrar.Register(ctx, "a@x.com", "pw1"); err != nil {
		t.Fatal(err)
	}

	acct, err := verifier.Verify(ctx, "a@x.com", "pw1")
	if err != nil {
		t.Fatal(err)
	}
	if acct.Email != "a@x.com" {
		t.Fatalf("verdict carries the wrong account: %+v", acct)
	}

	_, err = verifier.Verify(ctx, "a@x.com", "pw2")
	if !errors.Is(err, accounts.ErrBadCredentials) {
		t.Fatal("expecting ErrBadCredentials, got", err)
	}

	_, err = verifier.Verify(ctx, "nobody@x.com", "pw1")
	if !errors.Is(err, accounts.ErrUnknownIdentity) {
		t.Fatal("expecting ErrUnknownIdentity, got", err)
	}
}

func TestVerifyMalformedDigest(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquireAccountStore(ctx, t)
	defer cleanup()
	// an account whose stored digest is corrupt must come back as an
	// internal failure, not as a mismatch
	if _, err := store.Create(ctx, "broken@x.com", "not-a-digest"); err != nil {
		t.Fatal(err)
	}
	verifier := accounts.NewVerifier(store, accounts.NewHasher())
	_, err := verifier.Verify(ctx, "broken@x.com", "pw1")
	if !errors.Is(err, accounts.ErrInternal) {
		t.Fatal("expecting ErrInternal, got", err)
	}
}
