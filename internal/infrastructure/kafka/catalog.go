package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// CatalogChanged is published by the shop whenever product data that can
// affect slider results changes: stock, prices, terms, ratings or sales.
type CatalogChanged struct {
	ProductID int    `json:"product_id"`
	Reason    string `json:"reason"`
}

// Invalidator drops cached slider results.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// InvalidateOnCatalogChange returns a handler that clears the result cache for
// every well-formed catalog event.
func InvalidateOnCatalogChange(inv Invalidator) MessageHandler {
	return func(ctx context.Context, key, value []byte) error {
		var evt CatalogChanged
		if err := json.Unmarshal(value, &evt); err != nil {
			return fmt.Errorf("decode catalog event: %w", err)
		}
		if err := inv.Invalidate(ctx); err != nil {
			return fmt.Errorf("invalidate cache: %w", err)
		}
		log.Printf("[Kafka] Cache invalidated: product=%d reason=%s", evt.ProductID, evt.Reason)
		return nil
	}
}
