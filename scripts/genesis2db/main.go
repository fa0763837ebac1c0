package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/abx-network/agora/internal/entities"
	"github.com/abx-network/agora/internal/storage"
	"github.com/abx-network/agora/internal/storage/postgres"
)

var opts = struct {
	Genesis            string `long:"genesis" env:"GENESIS" default:"genesis.json" description:"path to genesis"`
	Postgres           string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMigrations string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`
	Dump               bool   `long:"dump" env:"DUMP" description:"dump parsed genesis before import"`
}{}

type genesis struct {
	Accounts []struct {
		Address string `json:"address"`
		ABX     uint64 `json:"abx"`
		Native  uint64 `json:"native"`
	} `json:"accounts"`
	Communities []struct {
		Name        string   `json:"name"`
		Symbol      string   `json:"symbol"`
		TokenName   string   `json:"tokenName"`
		TokenSymbol string   `json:"tokenSymbol"`
		Creator     string   `json:"creator"`
		Members     []string `json:"members"`
	} `json:"communities"`
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "genesis2db"
	parser.LongDescription = "Genesis to database importer"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("genesis2db started")
	logrus.Infof("%+v", opts)

	b, err := ioutil.ReadFile(opts.Genesis)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read genesis")
	}

	var g genesis

	if err := json.Unmarshal(b, &g); err != nil {
		logrus.WithError(err).Fatal("failed to unmarshal genesis")
	}

	if opts.Dump {
		spew.Dump(g)
	}

	db := mustGetDB()
	s := postgres.New(db)

	t := time.Now().UTC().Truncate(time.Second)

	// genesis is imported as a whole or not at all
	if err := s.InTx(context.Background(), func(s storage.Storage) error {
		ctx := context.Background()

		logrus.Info("import accounts")
		for i, v := range g.Accounts {
			if err := s.SetAccount(ctx, &entities.Account{Address: v.Address, ABX: v.ABX, Native: v.Native}); err != nil {
				return fmt.Errorf("failed to put account into db: %w", err)
			}

			if err := s.AddIssuedABX(ctx, v.ABX); err != nil {
				return fmt.Errorf("failed to count issued abx: %w", err)
			}

			if i%20 == 0 {
				logrus.Infof("%d of %d accounts imported", i+1, len(g.Accounts))
			}
		}

		logrus.Info("import communities")
		for _, v := range g.Communities {
			c, err := s.CreateCommunity(ctx, &storage.CreateCommunityParams{
				Name:        v.Name,
				Symbol:      v.Symbol,
				TokenName:   v.TokenName,
				TokenSymbol: v.TokenSymbol,
				Creator:     v.Creator,
				CreatedAt:   t,
			})
			if err != nil {
				return fmt.Errorf("failed to put community into db: %w", err)
			}

			if err := s.AddEvent(ctx, &entities.Event{
				Kind:        entities.CommunityCreatedEvent,
				CommunityID: c.ID,
				Account:     c.Creator,
				CreatedAt:   t,
			}); err != nil {
				return fmt.Errorf("failed to put event into db: %w", err)
			}

			for _, m := range append([]string{v.Creator}, v.Members...) {
				if err := s.AddMember(ctx, c.ID, m, t); err != nil {
					return fmt.Errorf("failed to put member %s of %d into db: %w", m, c.ID, err)
				}
			}

			logrus.Infof("community %d imported with %d members", c.ID, len(v.Members)+1)
		}

		return nil
	}); err != nil {
		logrus.WithError(err).Fatal("failed to import genesis")
	}

	logrus.Info("done")
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
