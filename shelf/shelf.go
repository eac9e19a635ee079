// Package shelf stores the book records of the catalog.
package shelf

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type (
	Book struct {
		ID      int64
		Title   string
		Author  string
		CoverID int64
		Rating  float64
	}

	// Store keeps books in a sqlite database. All operations are
	// plain parameter-driven statements against a single table.
	Store struct {
		db *sql.DB
	}
)

// Open opens (or creates) the book database at the given path and
// ensures the schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	connstr := fmt.Sprintf("file:%v?_journal=wal&mode=rwc", path)
	conn, err := sql.Open("sqlite3", connstr)
	if err != nil {
		return nil, fmt.Errorf("unable to open shelf %v, cause %w", path, err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to ping shelf %v, cause %w", path, err)
	}
	s := &Store{db: conn}
	if err := s.init(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to init shelf %v, cause %w", path, err)
	}
	return s, nil
}

func (s *Store) init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `create table if not exists books(
		book_id integer primary key autoincrement,
		title text not null,
		author text not null,
		cover_id integer not null default 0,
		rating real not null default 0
	)`)
	return err
}

func (s *Store) List(ctx context.Context) ([]Book, error) {
	rows, err := s.db.QueryContext(ctx,
		`select book_id, title, author, cover_id, rating from books order by book_id asc`)
	if err != nil {
		return nil, fmt.Errorf("unable to list books, cause %w", err)
	}
	defer rows.Close()
	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.CoverID, &b.Rating); err != nil {
			return nil, fmt.Errorf("unable to scan book row, cause %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unable to list books, cause %w", err)
	}
	return out, nil
}

func (s *Store) Add(ctx context.Context, title, author string, coverID int64, rating float64) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`insert into books (title, author, cover_id, rating) values (?, ?, ?, ?) returning book_id`,
		title, author, coverID, rating).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unable to add book %v, cause %w", title, err)
	}
	return id, nil
}

// SetRating updates only the rating of a book, which is the single
// field the edit form exposes.
func (s *Store) SetRating(ctx context.Context, id int64, rating float64) error {
	_, err := s.db.ExecContext(ctx, `update books set rating = ? where book_id = ?`, rating, id)
	if err != nil {
		return fmt.Errorf("unable to update rating of book %v, cause %w", id, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `delete from books where book_id = ?`, id)
	if err != nil {
		return fmt.Errorf("unable to delete book %v, cause %w", id, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
