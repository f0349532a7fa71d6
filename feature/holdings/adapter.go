package holdings

import (
	"context"

	"sharedprint/core/reconcile"
)

// Opener opens a catalog source for one pass.
type Opener func(ctx context.Context) (SourceCloser, error)

// ExternalLoader loads the external inventory identifiers.
type ExternalLoader func(ctx context.Context) (reconcile.Set, error)

// Adapter implements reconcile.Adapter over any holdings Source.
type Adapter struct {
	name     string
	filter   *Filter
	open     Opener
	external ExternalLoader
}

// NewAdapter creates an adapter named name.
func NewAdapter(name string, filter *Filter, open Opener, external ExternalLoader) *Adapter {
	return &Adapter{
		name:     name,
		filter:   filter,
		open:     open,
		external: external,
	}
}

// Name returns the unique name of this adapter.
func (a *Adapter) Name() string {
	return a.name
}

// LoadExternalSet loads the external inventory identifiers.
func (a *Adapter) LoadExternalSet(ctx context.Context) (reconcile.Set, error) {
	return a.external(ctx)
}

// LoadCatalogIndex collects the identifiers of circulating records.
func (a *Adapter) LoadCatalogIndex(ctx context.Context) (*reconcile.CatalogIndex, error) {
	src, err := a.open(ctx)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return a.filter.Collect(ctx, src)
}
