// Package validate holds request checks shared by several features.
package validate

import (
	"context"
	"fmt"

	"finmetrics_backend/internal/shared/apperr"
)

// SymbolLookup reports whether a ticker is in the allow-list.
type SymbolLookup interface {
	Exists(ctx context.Context, symbol string) (bool, error)
}

// Symbol checks that symbol is set and present in the allow-list.
// A nil lookup only checks presence. Lookup failures are returned unclassified.
func Symbol(ctx context.Context, lookup SymbolLookup, symbol string) error {
	if symbol == "" {
		return apperr.Validationf("symbol is required.")
	}
	if lookup == nil {
		return nil
	}
	ok, err := lookup.Exists(ctx, symbol)
	if err != nil {
		return fmt.Errorf("check symbol %q: %w", symbol, err)
	}
	if !ok {
		return apperr.Validationf("Symbol '%s' is not a valid/allowed ticker.", symbol)
	}
	return nil
}
