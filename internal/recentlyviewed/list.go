package recentlyviewed

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
)

const (
	// CookieName is the cookie holding the list, shared with the storefront JS.
	CookieName = "woopspro_recently_viewed_products"
	// MaxItems caps the number of remembered products.
	MaxItems = 10
)

// RecordView puts productID in front of existing, drops later duplicates and
// keeps at most MaxItems entries. existing is not modified.
func RecordView(existing []int, productID int) []int {
	if productID < 0 {
		productID = -productID
	}
	candidates := existing
	if productID >= 0 {
		candidates = append([]int{productID}, existing...)
	}

	seen := make(map[int]struct{}, len(candidates))
	out := make([]int, 0, MaxItems)
	for _, id := range candidates {
		if _, dup := seen[id]; dup || id < 0 {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
		if len(out) == MaxItems {
			break
		}
	}
	return out
}

// ReadList decodes a cookie value into product ids. Anything that is not
// exactly one JSON array yields an empty list; elements that are not JSON
// integers are dropped, including numeric strings.
func ReadList(cookieValue string) []int {
	raw := cookieValue
	if unescaped, err := url.QueryUnescape(cookieValue); err == nil {
		raw = unescaped
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []int{}
	}

	ids := make([]int, 0, len(items))
	for _, item := range items {
		id, err := strconv.ParseInt(string(bytes.TrimSpace(item)), 10, 64)
		if err != nil {
			continue
		}
		if id < 0 {
			id = -id
		}
		// -MinInt64 is still negative
		if id < 0 || int64(int(id)) != id {
			continue
		}
		ids = append(ids, int(id))
	}
	return ids
}

// EncodeList renders ids the way the cookie stores them: URL-encoded JSON.
func EncodeList(ids []int) string {
	if ids == nil {
		ids = []int{}
	}
	data, _ := json.Marshal(ids)
	return url.QueryEscape(string(data))
}
