package main

import (
	"fmt"
	"os"
	"spice-garden/cmd/config"
	migration "spice-garden/cmd/database/migrate"
	"spice-garden/cmd/database/seed"
	"spice-garden/internal/utils"

	"github.com/gofiber/fiber/v2/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "spice-garden",
		Usage:  "restaurant ordering backend",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "create the admin account from ADMIN_EMAIL and ADMIN_PASSWORD",
				Action: func(c *cli.Context) error {
					db, err := config.ConnectDB()
					if err != nil {
						return err
					}
					return seed.Admin(c.Context, db, utils.GetConfig("ADMIN_EMAIL"), utils.GetConfig("ADMIN_PASSWORD"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func migrate(_ *cli.Context) error {
	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	return migration.Migrate(db)
}

func serve(_ *cli.Context) error {
	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	if err := migration.Migrate(db); err != nil {
		return err
	}

	app, err := config.NewApp(db)
	if err != nil {
		return err
	}
	return app.Listen(fmt.Sprintf(":%s", utils.GetConfig("APP_PORT")))
}
