package domain

import "context"

// Seeder loads a small sample dataset for manual testing.
type Seeder interface {
	Seed(ctx context.Context) error
}
