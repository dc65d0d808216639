package repositories

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Migrate applies every embedded schema file in name order on the write database.
// The files are idempotent.
func (r *Repository) Migrate(ctx context.Context) error {
	files, err := schemaFiles()
	if err != nil {
		return err
	}

	for _, file := range files {
		content, err := schemaFS.ReadFile(file)
		if err != nil {
			return err
		}

		if _, err = r.dbWrite.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply %s: %w", file, classifyError(err))
		}

		xlog.Info(ctx, "[MIGRATION]", xlog.String("file", file), xlog.String("status", "applied"))
	}

	return nil
}

func schemaFiles() ([]string, error) {
	files, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
