package main

import (
	"context"

	"github.com/bawdo/gaql/results"
)

//go:generate mockgen -source=backend.go -package=main -destination=mock_backend_test.go Backend

// Backend answers GAQL queries. *ads.Client and *warehouse.Warehouse both
// satisfy it.
type Backend interface {
	Query(ctx context.Context, gaql string) results.Seq
}
