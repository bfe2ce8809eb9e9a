package recentlyviewed

import "time"

const EventProductViewed = "ProductViewed"

// ProductViewed is published every time a single-product view is captured.
type ProductViewed struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	ProductID      int       `json:"product_id"`
	RecentlyViewed []int     `json:"recently_viewed"`
	ViewedAt       time.Time `json:"viewed_at"`
}

func (e ProductViewed) Type() string {
	return e.EventType
}
