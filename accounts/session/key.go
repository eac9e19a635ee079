package session

import (
	"encoding/base64"
	"fmt"
	"os"
)

const (
	// KeyEnvVar is the default environment variable holding the
	// base64-encoded cookie signing key.
	KeyEnvVar = "BOOKSHELF_SESSION_KEY"

	minKeyLen = 32
)

// KeyFromEnv reads the signing key from the given environment
// variable and scrubs the variable afterwards, so the key does not
// linger in the process environment. getfn/setfn default to os.Getenv
// and os.Setenv.
func KeyFromEnv(varname string, getfn func(string) string, setfn func(string, string) error) ([]byte, error) {
	if getfn == nil {
		getfn = os.Getenv
	}
	if setfn == nil {
		setfn = os.Setenv
	}
	val := getfn(varname)
	setfn(varname, "")
	key, err := base64.StdEncoding.DecodeString(val)
	if err != nil {
		return nil, fmt.Errorf("session: cannot decode %v to a valid key, cause %w", varname, err)
	}
	if len(key) < minKeyLen {
		return nil, fmt.Errorf("session: decoded key too short, got %v expecting at least %v bytes", len(key), minKeyLen)
	}
	return key, nil
}
