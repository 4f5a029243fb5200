package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"rerank/internal/config"
	"rerank/internal/database/migration"
	dbpostgres "rerank/internal/database/postgres"
	"rerank/internal/database/seeder"
)

func main() {
	seed := flag.Bool("seed", true, "seed an empty candidates table with the built-in set")
	dir := flag.String("dir", "", "migrations directory (defaults to DB_MIGRATIONS_DIR, then the embedded set)")
	status := flag.Bool("status", false, "list applied and pending migrations, then exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Database.Enabled() {
		log.Fatalf("DB_HOST is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	migDir := *dir
	if migDir == "" {
		migDir = cfg.Database.MigrationsDir
	}
	r := migration.Runner{Dir: migDir, Logger: log.Default()}

	if *status {
		list, err := r.Status(ctx, db.SQLDB())
		if err != nil {
			log.Fatalf("migration status failed: %v", err)
		}
		for _, s := range list {
			state := "pending"
			if s.AppliedAt != nil {
				state = "applied " + s.AppliedAt.UTC().Format(time.RFC3339)
			}
			fmt.Printf("V%d %-24s %s\n", s.Version, s.Name, state)
		}
		return
	}

	if err := r.Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if !*seed {
		return
	}
	sr := seeder.Runner{Seeders: seeder.Defaults(log.Default()), Logger: log.Default()}
	if err := sr.Run(ctx, db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}
