package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/marcelly-ramos/projeto-backend/internal/config"
	"github.com/marcelly-ramos/projeto-backend/internal/db"
)

const usage = "usage: migrate [up|down|status]"

func main() {
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	cmd := "up"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	cfg, err := config.LoadMigrate()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sqlDB, err := db.OpenSQL(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer sqlDB.Close()

	if err := run(ctx, cmd, sqlDB); err != nil {
		log.Fatalf("migrate %s: %v", cmd, err)
	}
}
