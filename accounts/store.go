package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

type (
	// Account is a registered identity. PasswordHash never leaves this
	// package except through Store reads consumed by Verifier.
	Account struct {
		ID           int64
		Email        string
		PasswordHash string
	}

	// Store keeps accounts in a sqlite database, keyed by a unique
	// email column. The unique index is the authoritative guard
	// against concurrent registrations of the same email.
	Store struct {
		db *sql.DB
	}
)

// Open opens (or creates) the account database at the given path and
// ensures the schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	connstr := fmt.Sprintf("file:%v?_journal=wal&_fk=true&mode=rwc", path)
	conn, err := sql.Open("sqlite3", connstr)
	if err != nil {
		return nil, fmt.Errorf("unable to open account store %v, cause %w", path, err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to ping account store %v, cause %w", path, err)
	}
	s := &Store{db: conn}
	if err := s.init(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to init account store %v, cause %w", path, err)
	}
	return s, nil
}

func (s *Store) init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `create table if not exists accounts(
		account_id integer primary key autoincrement,
		email text not null unique,
		password_hash text not null
	)`)
	return err
}

// Create inserts a new account. A unique-constraint violation on the
// email column is reported as EmailTaken, regardless of whether the
// caller checked for the email beforehand.
func (s *Store) Create(ctx context.Context, email, passwordHash string) (*Account, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`insert into accounts (email, password_hash) values (?, ?) returning account_id`,
		email, passwordHash).Scan(&id)
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, EmailTaken{Email: email}
		}
		return nil, fmt.Errorf("unable to create account for %v, cause %w", email, err)
	}
	return &Account{ID: id, Email: email, PasswordHash: passwordHash}, nil
}

// ByEmail looks up an account by exact (byte-wise) email match.
func (s *Store) ByEmail(ctx context.Context, email string) (*Account, error) {
	var out Account
	err := s.db.QueryRowContext(ctx,
		`select account_id, email, password_hash from accounts where email = ?`,
		email).Scan(&out.ID, &out.Email, &out.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUnknownIdentity
	} else if err != nil {
		return nil, fmt.Errorf("unable to load account %v, cause %w", email, err)
	}
	return &out, nil
}

func (s *Store) ByID(ctx context.Context, id int64) (*Account, error) {
	var out Account
	err := s.db.QueryRowContext(ctx,
		`select account_id, email, password_hash from accounts where account_id = ?`,
		id).Scan(&out.ID, &out.Email, &out.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUnknownIdentity
	} else if err != nil {
		return nil, fmt.Errorf("unable to load account %v, cause %w", id, err)
	}
	return &out, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
