package webui

import "github.com/giannisdak1992/bookshelf/shelf"

type (
	// BookListData backs the index and books views. Email is empty on
	// the anonymous index.
	BookListData struct {
		Books []shelf.Book
		Email string
	}

	// FormData backs the login and register views.
	FormData struct {
		Message string
	}

	// ModifyData backs the book form view.
	ModifyData struct {
		Heading string
		Submit  string
	}
)
