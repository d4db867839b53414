package db

import (
	"context"
)

type MigrationHistory struct {
	Version   string
	CreatedTs int64
}

type FindMigrationHistory struct {
}

type UpsertMigrationHistory struct {
	Version string
}

func (d *DB) FindMigrationHistoryList(ctx context.Context, _ *FindMigrationHistory) ([]*MigrationHistory, error) {
	query := `
		SELECT version, created_ts
		FROM migration_history
		ORDER BY created_ts DESC
	`
	rows, err := d.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*MigrationHistory, 0)
	for rows.Next() {
		var history MigrationHistory
		if err := rows.Scan(&history.Version, &history.CreatedTs); err != nil {
			return nil, err
		}
		list = append(list, &history)
	}
	return list, rows.Err()
}

func (d *DB) UpsertMigrationHistory(ctx context.Context, upsert *UpsertMigrationHistory) (*MigrationHistory, error) {
	stmt := `
		INSERT INTO migration_history (version)
		VALUES (?)
		ON CONFLICT(version) DO UPDATE
		SET version = EXCLUDED.version
		RETURNING version, created_ts
	`
	var history MigrationHistory
	if err := d.QueryRowContext(ctx, stmt, upsert.Version).Scan(&history.Version, &history.CreatedTs); err != nil {
		return nil, err
	}
	return &history, nil
}
