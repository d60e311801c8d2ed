package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/marcelly-ramos/projeto-backend/internal/db"
)

func run(ctx context.Context, cmd string, sqlDB *sql.DB) error {
	switch cmd {
	case "up":
		results, err := db.Migrate(ctx, sqlDB)
		for _, r := range results {
			fmt.Printf("applied %s (%s)\n", r.Source.Path, r.Duration)
		}
		if err == nil && len(results) == 0 {
			fmt.Println("no pending migrations")
		}
		return err
	case "down":
		r, err := db.Rollback(ctx, sqlDB)
		if r != nil {
			fmt.Printf("rolled back %s\n", r.Source.Path)
		}
		return err
	case "status":
		statuses, err := db.Status(ctx, sqlDB)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			fmt.Printf("%-8s %s\n", s.State, s.Source.Path)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q, %s", cmd, usage)
	}
}
