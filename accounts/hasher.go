package accounts

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for every account.
// It is a process-wide constant, not a per-account setting.
const DefaultCost = 10

type (
	// Hasher produces and checks salted one-way digests of account
	// secrets. bcrypt generates a fresh salt per call and embeds it in
	// the digest, so no separate salt column is needed.
	Hasher struct {
		cost int
	}
)

func NewHasher() Hasher {
	return Hasher{cost: DefaultCost}
}

func (h Hasher) Hash(secret string) (string, error) {
	buf, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Verify reports whether secret matches digest. A mismatch is a valid
// negative result (false, nil); only a malformed digest or an internal
// bcrypt failure produces an error.
func (h Hasher) Verify(secret, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
