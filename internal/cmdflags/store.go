package cmdflags

import (
	"github.com/giannisdak1992/bookshelf/accounts/session"
	"github.com/urfave/cli/v2"
)

func DataDir(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "data-dir",
		Aliases:     []string{"d"},
		Usage:       "Directory holding the sqlite databases",
		Destination: out,
		Value:       *out,
	}
}

func SessionKeyEnvVar(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = session.KeyEnvVar
	}
	return &cli.StringFlag{
		Name:        "session-key-envvar-name",
		Usage:       "Name of the environment variable that holds the session signing key. The key itself should not be passed as an argument",
		Value:       *out,
		Destination: out,
	}
}
