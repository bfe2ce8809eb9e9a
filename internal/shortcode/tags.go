package shortcode

import "github.com/example/products-slider/internal/query"

const (
	TagProducts       = "woopspro_products_slider"
	TagBestselling    = "woopspro_bestselling_products_slider"
	TagFeatured       = "woopspro_featured_products_slider"
	TagOnSale         = "woopspro_on_sale_products_slider"
	TagTopRated       = "woopspro_top_rated_products_slider"
	TagRecentlyViewed = "woopspro_recently_viewed_products"
)

// Tags lists the registered shortcode tags in display order.
var Tags = []string{
	TagProducts,
	TagBestselling,
	TagFeatured,
	TagOnSale,
	TagTopRated,
	TagRecentlyViewed,
}

var tagVariants = map[string]query.Variant{
	TagProducts:       query.VariantDefault,
	TagBestselling:    query.VariantBestselling,
	TagFeatured:       query.VariantFeatured,
	TagOnSale:         query.VariantOnSale,
	TagTopRated:       query.VariantTopRated,
	TagRecentlyViewed: query.VariantRecentlyViewed,
}

// VariantForTag maps a shortcode tag to its slider variant. Unknown tags come
// back as an unrecognised variant, which the query builder leaves unspecialised.
func VariantForTag(tag string) query.Variant {
	if v, ok := tagVariants[tag]; ok {
		return v
	}
	return query.Variant(tag)
}

// IsKnownTag reports whether tag is one of the registered shortcodes.
func IsKnownTag(tag string) bool {
	_, ok := tagVariants[tag]
	return ok
}
