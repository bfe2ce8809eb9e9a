package recentlyviewed

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// CookieTTL is the absolute lifetime of the cookie from the last view.
const CookieTTL = 7 * 24 * time.Hour

// EventPublisher receives ProductViewed events. kafka.Producer satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// Tracker keeps the recently viewed list in the client's cookie.
type Tracker struct {
	publisher EventPublisher
	now       func() time.Time
	secure    bool
}

// NewTracker creates a tracker. publisher may be nil.
func NewTracker(publisher EventPublisher, secureCookie bool) *Tracker {
	return &Tracker{
		publisher: publisher,
		now:       time.Now,
		secure:    secureCookie,
	}
}

// List returns the ids stored in the request cookie, most recent first.
func (t *Tracker) List(r *http.Request) []int {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return []int{}
	}
	return ReadList(cookie.Value)
}

// Capture records a single-product view and writes the updated cookie.
// Non-positive ids are ignored and reported with ok=false.
func (t *Tracker) Capture(w http.ResponseWriter, r *http.Request, productID int) (ids []int, ok bool) {
	if productID <= 0 {
		return t.List(r), false
	}

	ids = RecordView(t.List(r), productID)
	now := t.now()
	http.SetCookie(w, t.cookie(ids, now))

	if t.publisher != nil {
		event := ProductViewed{
			EventID:        uuid.New().String(),
			EventType:      EventProductViewed,
			ProductID:      productID,
			RecentlyViewed: ids,
			ViewedAt:       now,
		}
		if err := t.publisher.Publish(r.Context(), strconv.Itoa(productID), event); err != nil {
			log.Printf("[Tracker] Error publishing view of product %d: %v", productID, err)
		}
	}

	return ids, true
}

func (t *Tracker) cookie(ids []int, now time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    EncodeList(ids),
		Path:     "/",
		Expires:  now.Add(CookieTTL),
		MaxAge:   int(CookieTTL / time.Second),
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
