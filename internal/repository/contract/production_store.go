package contract

import "context"

// ProductionStore is the reconciler's access to the external production
// content tables: composite natural-key lookup and conditional update.
type ProductionStore interface {
	// FetchRecord returns the first row matching the lookup key, nil when no
	// row matches. lockRow takes a row lock for the remainder of the current
	// transaction (FOR UPDATE).
	FetchRecord(ctx context.Context, table string, lookup map[string]string, lockRow bool) (map[string]interface{}, error)

	// UpdateRecord applies the staged columns to every row matching the
	// lookup key and reports how many rows matched.
	UpdateRecord(ctx context.Context, table string, lookup map[string]string, updates map[string]interface{}) (int64, error)
}
