package shelf_test

import (
	"context"
	"testing"

	"github.com/giannisdak1992/bookshelf/internal/testutil"
)

func TestShelfCRUD(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquireShelf(ctx, t)
	defer cleanup()

	id, err := store.Add(ctx, "The Idiot", "Fyodor Dostoevsky", 8231856, 8.5)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Add(ctx, "Siddhartha", "Hermann Hesse", 8236141, 7); err != nil {
		t.Fatal(err)
	}

	books, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(books) != 2 {
		t.Fatalf("expecting 2 books, got %v", len(books))
	}
	if books[0].Title != "The Idiot" || books[0].Rating != 8.5 {
		t.Fatalf("unexpected first book: %+v", books[0])
	}

	if err := store.SetRating(ctx, id, 9.5); err != nil {
		t.Fatal(err)
	}
	books, err = store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if books[0].Rating != 9.5 {
		t.Fatalf("rating update lost: %+v", books[0])
	}
	if books[0].Title != "The Idiot" {
		t.Fatal("rating update must not touch other fields")
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatal(err)
	}
	books, err = store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(books) != 1 || books[0].Title != "Siddhartha" {
		t.Fatalf("unexpected books after delete: %+v", books)
	}
}

func TestShelfEmptyList(t *testing.T) {
	ctx := context.Background()
	store, cleanup := testutil.AcquireShelf(ctx, t)
	defer cleanup()
	books, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(books) != 0 {
		t.Fatalf("expecting empty shelf, got %+v", books)
	}
}
