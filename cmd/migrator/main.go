package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"emporium/internal/config"
)

func buildMigrateDSN(dbCfg config.DatabaseConfig) string {
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%d)/%s",
		dbCfg.User, dbCfg.Password, dbCfg.Host, dbCfg.Port, dbCfg.Name,
	)
}

func main() {
	var migrationsPath string
	var down bool
	flag.StringVar(&migrationsPath, "migrations-path", "migrations", "path to migration files")
	flag.BoolVar(&down, "down", false, "roll back all migrations instead of applying them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	m, err := migrate.New("file://"+migrationsPath, buildMigrateDSN(cfg.Database))
	if err != nil {
		log.Fatalf("creating migrator: %v", err)
	}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no migrations to apply")
			return
		}
		log.Fatalf("running migrations: %v", err)
	}

	log.Println("migrations applied")
}
