package serve

import (
	"os"
	"path/filepath"

	"github.com/giannisdak1992/bookshelf/accounts"
	"github.com/giannisdak1992/bookshelf/accounts/session"
	"github.com/giannisdak1992/bookshelf/internal/cmdflags"
	"github.com/giannisdak1992/bookshelf/internal/httpserver"
	"github.com/giannisdak1992/bookshelf/internal/logutil"
	"github.com/giannisdak1992/bookshelf/internal/site"
	"github.com/giannisdak1992/bookshelf/shelf"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	bindAddr := "localhost:3000"
	dataDir := "."
	sessionTTL := session.DefaultTTL
	var keyEnvVar string
	allowHTTPCookie := true
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the bookshelf web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "bind",
				Usage:       "Address to bind the web server",
				Value:       bindAddr,
				Destination: &bindAddr,
			},
			cmdflags.DataDir(&dataDir),
			&cli.DurationFlag{
				Name:        "session-ttl",
				Usage:       "Absolute session lifetime from issuance",
				Value:       sessionTTL,
				Destination: &sessionTTL,
			},
			cmdflags.SessionKeyEnvVar(&keyEnvVar),
			&cli.BoolFlag{
				Name:        "allow-http-cookie",
				Usage:       "Allow the session cookie over plain HTTP (disable behind TLS)",
				Value:       allowHTTPCookie,
				Destination: &allowHTTPCookie,
			},
		},
		Action: func(ctx *cli.Context) error {
			key, err := session.KeyFromEnv(keyEnvVar, os.Getenv, os.Setenv)
			if err != nil {
				return err
			}
			store, err := accounts.Open(ctx.Context, filepath.Join(dataDir, "accounts.db"))
			if err != nil {
				return err
			}
			defer store.Close()
			books, err := shelf.Open(ctx.Context, filepath.Join(dataDir, "shelf.db"))
			if err != nil {
				return err
			}
			defer books.Close()
			sessions := session.NewManager(key, sessionTTL, allowHTTPCookie,
				session.InMemoryTokenSet(sessionTTL))
			handler, err := site.AsHandler(store, books, sessions)
			if err != nil {
				return err
			}
			return httpserver.Serve(
				logutil.WithLogger(ctx.Context, log.Logger),
				bindAddr,
				logutil.Attach(log.Logger, handler))
		},
	}
}
