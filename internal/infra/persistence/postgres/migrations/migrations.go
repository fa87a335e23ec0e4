// Package migrations applies the embedded SQL schema in file-name order.
// Every statement is idempotent so Apply can run on each start.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"sort"

	"github.com/pkg/errors"
)

//go:embed sql/*.sql
var files embed.FS

// Names lists the embedded migration files in the order Apply runs them.
func Names() ([]string, error) {
	names, err := fs.Glob(files, "sql/*.sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list migrations")
	}
	sort.Strings(names)

	return names, nil
}

// Apply executes every migration against db.
func Apply(ctx context.Context, db *sql.DB) error {
	names, err := Names()
	if err != nil {
		return err
	}

	for _, name := range names {
		body, err := files.ReadFile(name)
		if err != nil {
			return errors.Wrapf(err, "failed to read migration %s", name)
		}

		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return errors.Wrapf(err, "failed to apply migration %s", name)
		}
	}

	return nil
}
