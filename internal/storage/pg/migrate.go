package pg

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
)

// ApplyMigrations executes every *.up.sql file in dir, in name order.
// Statements are idempotent (IF NOT EXISTS) so re-running is safe.
func ApplyMigrations(ctx context.Context, db DB, dir fs.FS) error {
	files, err := fs.Glob(dir, "*.up.sql")
	if err != nil {
		return fmt.Errorf("failed to find migration files: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		content, err := fs.ReadFile(dir, f)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", f, err)
		}

		// pgx uses the extended protocol, which takes one statement per
		// Exec, so the file is split on statement boundaries.
		for _, stmt := range strings.Split(string(content), ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if _, err := db.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply migration %s: %w", f, err)
			}
		}
		slog.Info("Applied migration", "file", f)
	}

	return nil
}
