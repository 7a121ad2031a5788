package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ScoreStore is the postgres-backed score persistence collaborator. It
// expects the schema:
//
//	CREATE TABLE scores (
//	    name  TEXT PRIMARY KEY,
//	    score INTEGER NOT NULL
//	);
type ScoreStore struct{}

func (ScoreStore) Lookup(ctx context.Context, name string) (int, bool, error) {
	var score int
	q := `SELECT score FROM scores WHERE name=$1`
	err := DB.QueryRow(ctx, q, name).Scan(&score)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up score for %s: %w", name, err)
	}
	return score, true, nil
}

func (ScoreStore) Snapshot(ctx context.Context, scores map[string]int) error {
	q := `INSERT INTO scores (name, score) VALUES ($1, $2)
	      ON CONFLICT (name) DO UPDATE SET score = EXCLUDED.score`

	err := pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		for name, score := range scores {
			if _, execErr := tx.Exec(ctx, q, name, score); execErr != nil {
				return execErr
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to persist score snapshot: %w", err)
	}
	return nil
}
