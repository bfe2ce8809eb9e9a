package store

import (
	"context"

	"github.com/example/products-slider/internal/query"
)

// ProductQueryInterface executes a product query descriptor and returns the
// matching product ids in result order.
type ProductQueryInterface interface {
	Execute(ctx context.Context, d *query.Descriptor) ([]int, error)
}
