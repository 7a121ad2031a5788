package scores

import "context"

// Store persists player scores across sessions, keyed by display name.
// Lookup runs when a player joins; Snapshot runs after every round
// resolution. The engine treats both as side calls outside its
// consistency boundary, so implementations only need to be safe for
// concurrent use, not transactional with the game state.
type Store interface {
	Lookup(ctx context.Context, name string) (int, bool, error)
	Snapshot(ctx context.Context, scores map[string]int) error
}

// Noop discards scores. Used when no backend is configured.
type Noop struct{}

func (Noop) Lookup(context.Context, string) (int, bool, error) { return 0, false, nil }

func (Noop) Snapshot(context.Context, map[string]int) error { return nil }
