package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bookstoreapi/bookstore/pkg/config"
	"github.com/bookstoreapi/bookstore/pkg/database"
	"github.com/bookstoreapi/bookstore/pkg/migrations"
	"github.com/joho/godotenv"
	"github.com/robinjoseph08/golib/logger"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"
)

func main() {
	log := logger.New()

	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Err(err).Fatal("database error")
	}
	defer db.Close()

	app := &cli.App{
		Name:        "migrations",
		Usage:       "manage the bookstore database schema",
		Description: "Applies, rolls back and scaffolds migrations for the bookstore database, including the catalog seed.",
		Commands:    commands(db),
	}
	if err := app.Run(os.Args); err != nil {
		log.Err(err).Fatal("app run error")
	}
}

func commands(db *bun.DB) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "init",
			Usage: "create migration tables",
			Action: func(c *cli.Context) error {
				return migrations.NewMigrator(db).Init(c.Context)
			},
		},
		{
			Name:  "migrate",
			Usage: "apply pending migrations",
			Action: func(c *cli.Context) error {
				group, err := migrations.BringUpToDate(c.Context, db)
				if err != nil {
					return err
				}
				if group.ID == 0 {
					fmt.Printf("There are no new migrations to run\n")
					return nil
				}
				fmt.Printf("Migrated to %s\n", group)
				return nil
			},
		},
		{
			Name:  "rollback",
			Usage: "rollback the last migration group",
			Action: func(c *cli.Context) error {
				group, err := migrations.Rollback(c.Context, db)
				if err != nil {
					return err
				}
				if group.ID == 0 {
					fmt.Printf("There are no groups to roll back\n")
					return nil
				}
				fmt.Printf("Rolled back %s\n", group)
				return nil
			},
		},
		{
			Name:      "create",
			Usage:     "create Go migration",
			ArgsUsage: "<words of the migration name>",
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return cli.Exit("a migration name is required", 1)
				}
				name := strings.Join(c.Args().Slice(), "_")
				mf, err := migrations.NewMigrator(db).CreateGoMigration(
					c.Context,
					name,
					migrate.WithGoTemplate(migrationTemplate),
				)
				if err != nil {
					return err
				}
				fmt.Printf("Created migration %s (%s)\n", mf.Name, mf.Path)
				return nil
			},
		},
		{
			Name:  "status",
			Usage: "print migrations status",
			Action: func(c *cli.Context) error {
				ms, err := migrations.NewMigrator(db).MigrationsWithStatus(c.Context)
				if err != nil {
					return err
				}
				fmt.Printf("Migrations: %s\n", ms)
				fmt.Printf("Unapplied migrations: %s\n", ms.Unapplied())
				fmt.Printf("Last migration group: %s\n", ms.LastGroup())
				return nil
			},
		},
	}
}

const migrationTemplate = `package %s

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec("")
		return errors.WithStack(err)
	}

	down := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec("")
		return errors.WithStack(err)
	}

	Migrations.MustRegister(up, down)
}
`
