package accounts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/giannisdak1992/bookshelf/accounts"
	"github.com/giannisdak1992/bookshelf/internal/testutil"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquireAccountStore(ctx, t)
	defer cleanup()
	hasher := accounts.NewHasher()
	registrar := accounts.NewRegistrar(store, hasher)
	acct, err := registrar.Register(ctx, "a@x.com", "pw1")
	if err != nil {
		t.Fatal(err)
	}
	stored, err := store.ByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if stored.PasswordHash == "pw1" {
		t.Fatal("the plaintext secret must never be stored")
	}
	ok, err := hasher.Verify("pw1", stored.PasswordHash)
	if err != nil {
		t.Fatal(err)
	} else if !ok {
		t.Fatal("stored digest does not verify against the registered secret")
	}
	if acct.ID != stored.ID {
		t.Fatal("registered account id does not match stored account")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquireAccountStore(ctx, t)
	defer cleanup()
	registrar := accounts.NewRegistrar(store, accounts.NewHasher())
	first, err := registrar.Register(ctx, "a@x.com", "pw1")
	if err != nil {
		t.Fatal(err)
	}
	_, err = registrar.Register(ctx, "a@x.com", "pw2")
	var taken accounts.EmailTaken
	if !errors.As(err, &taken) {
		t.Fatal("expecting EmailTaken, got", err)
	}
	// the failed attempt must not have touched the original account
	stored, err := store.ByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if stored.ID != first.ID {
		t.Fatal("duplicate registration replaced the original account")
	}
	ok, err := accounts.NewHasher().Verify("pw1", stored.PasswordHash)
	if err != nil || !ok {
		t.Fatal("duplicate registration changed the stored digest")
	}
}
