package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/giannisdak1992/bookshelf/cmd/bookshelf/accounts"
	"github.com/giannisdak1992/bookshelf/cmd/bookshelf/serve"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "bookshelf",
		Usage: "A small book catalog with registered-user editing",
		Commands: []*cli.Command{
			serve.Cmd(),
			accounts.Cmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Application failed")
	}
}
