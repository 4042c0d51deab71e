package main

import (
	"context"

	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/config"
	"github.com/kjustin2/Financial-Adviser-App-sub000/internal/store"
)

// openStore validates the store settings, connects, and applies migrations.
// Callers own the returned store and must close it.
func openStore(ctx context.Context, c *config.Config) (store.Store, error) {
	if err := c.Validate("store"); err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, c.Store)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}
