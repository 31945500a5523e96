// Package migrations holds the versioned schema of the history database.
//
// Files are named NNN_description.up.sql / NNN_description.down.sql and are
// applied in version order.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// FS contains all SQL migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS

// Migration is a single forward schema change.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Up returns the forward migrations in fsys sorted by version.
// Files without a numeric version prefix are skipped.
func Up(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading migrations directory: %w", err)
	}

	var out []Migration
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}

		// "001_user_history.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading migration %s: %w", name, err)
		}
		out = append(out, Migration{Version: version, Name: name, SQL: string(content)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}
