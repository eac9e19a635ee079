package accounts

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/giannisdak1992/bookshelf/accounts"
	"github.com/giannisdak1992/bookshelf/internal/cmdflags"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	dataDir := "."
	return &cli.Command{
		Name:  "accounts",
		Usage: "Manage registered accounts",
		Flags: []cli.Flag{
			cmdflags.DataDir(&dataDir),
		},
		Subcommands: []*cli.Command{
			registerCmd(&dataDir),
		},
	}
}

func registerCmd(dataDir *string) *cli.Command {
	var email string
	return &cli.Command{
		Name:  "register",
		Usage: "Register a new account (password is read from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "Email of the account to register",
				Destination: &email,
				Required:    true,
			},
		},
		Action: func(ctx *cli.Context) error {
			sc := bufio.NewScanner(os.Stdin)
			if !sc.Scan() {
				return sc.Err()
			}
			password := strings.TrimSpace(sc.Text())
			if len(password) == 0 {
				return errors.New("missing password from stdin")
			}
			store, err := accounts.Open(ctx.Context, filepath.Join(*dataDir, "accounts.db"))
			if err != nil {
				return err
			}
			defer store.Close()
			registrar := accounts.NewRegistrar(store, accounts.NewHasher())
			acct, err := registrar.Register(ctx.Context, email, password)
			if err != nil {
				return err
			}
			fmt.Printf("registered account %v (%v)\n", acct.Email, acct.ID)
			return nil
		},
	}
}
