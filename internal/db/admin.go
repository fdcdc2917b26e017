package db

import (
	"context"
	"fmt"
)

// CountLeads returns the total number of registered leads.
func (db *DB) CountLeads(ctx context.Context) (int, error) {
	return db.count(ctx, "leads")
}

// CountDiagnostics returns the total number of diagnostic runs.
func (db *DB) CountDiagnostics(ctx context.Context) (int, error) {
	return db.count(ctx, "diagnostics")
}

// CountConsultations returns the total number of consultation requests.
func (db *DB) CountConsultations(ctx context.Context) (int, error) {
	return db.count(ctx, "consultations")
}

func (db *DB) count(ctx context.Context, table string) (int, error) {
	var n int
	// table names come from the fixed call sites above, never from input
	err := db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

// BandDistribution returns how many diagnostics landed in each score band.
func (db *DB) BandDistribution(ctx context.Context) (map[string]int, error) {
	return db.distribution(ctx, "band")
}

// ProfileDistribution returns how many diagnostics resolved to each profile.
func (db *DB) ProfileDistribution(ctx context.Context) (map[string]int, error) {
	return db.distribution(ctx, "profile")
}

func (db *DB) distribution(ctx context.Context, column string) (map[string]int, error) {
	rows, err := db.pool.Query(ctx,
		"SELECT "+column+", COUNT(*) FROM diagnostics GROUP BY "+column)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s distribution: %w", column, err)
	}
	defer rows.Close()

	dist := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("failed to scan %s distribution: %w", column, err)
		}
		dist[key] = n
	}
	return dist, nil
}
