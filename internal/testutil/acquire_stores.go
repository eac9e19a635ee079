package testutil

import (
	"context"
	"os"
	"path/filepath"

	"github.com/giannisdak1992/bookshelf/accounts"
	"github.com/giannisdak1992/bookshelf/shelf"
)

type (
	TestLog interface {
		Fatal(...interface{})
		Log(...interface{})
	}
)

// AcquireAccountStore opens a throwaway account database in a temp
// directory. The returned cleanup closes and removes it.
func AcquireAccountStore(ctx context.Context, t TestLog) (*accounts.Store, func()) {
	dir, err := os.MkdirTemp("", "bookshelf-tests")
	if err != nil {
		t.Fatal(err)
	}
	store, err := accounts.Open(ctx, filepath.Join(dir, "accounts.db"))
	if err != nil {
		t.Fatal(err)
	}
	return store, func() {
		if err := store.Close(); err != nil {
			t.Log("unable to close account store", err)
		}
		if err := os.RemoveAll(dir); err != nil {
			t.Log("unable to cleanup temp dir", dir)
		}
	}
}

// AcquireShelf opens a throwaway book database in a temp directory.
func AcquireShelf(ctx context.Context, t TestLog) (*shelf.Store, func()) {
	dir, err := os.MkdirTemp("", "bookshelf-tests")
	if err != nil {
		t.Fatal(err)
	}
	store, err := shelf.Open(ctx, filepath.Join(dir, "shelf.db"))
	if err != nil {
		t.Fatal(err)
	}
	return store, func() {
		if err := store.Close(); err != nil {
			t.Log("unable to close shelf", err)
		}
		if err := os.RemoveAll(dir); err != nil {
			t.Log("unable to cleanup temp dir", dir)
		}
	}
}
