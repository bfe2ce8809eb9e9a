package shortcode

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/example/products-slider/internal/query"
)

var validate = validator.New()

// defaults lists every attribute the shortcodes understand, with the value
// used when the attribute is absent. attribute_* keys are handled separately.
var defaults = map[string]string{
	"cats":                       "",
	"tags":                       "",
	"skus":                       "",
	"ids":                        "",
	"tax":                        query.TaxonomyCategory,
	"stock_status":               "",
	"limit":                      "-1",
	"slide_to_show":              "3",
	"slide_to_show_for_mobile":   "1",
	"slide_to_show_for_tablet":   "2",
	"slide_to_show_for_laptop":   "3",
	"slide_to_scroll":            "3",
	"slide_to_scroll_for_mobile": "1",
	"slide_to_scroll_for_tablet": "2",
	"slide_to_scroll_for_laptop": "3",
	"autoplay":                   "true",
	"autoplay_speed":             "3000",
	"speed":                      "300",
	"arrows":                     "true",
	"dots":                       "true",
	"rtl":                        "",
	"slider_cls":                 "products",
	"order":                      "ASC",
	"orderby":                    query.OrderByMenuOrder,
	"meta_key":                   "",
}

// Shortcode is one parsed shortcode invocation with every attribute coerced
// to its typed form.
type Shortcode struct {
	Tag     string           `json:"tag" yaml:"tag"`
	Variant query.Variant    `json:"variant" yaml:"variant"`
	Filter  query.FilterSpec `json:"filter" yaml:"filter"`
	Slider  SliderConfig     `json:"slider" yaml:"slider"`
}

type ordering struct {
	Limit   int    `validate:"gte=-1"`
	Order   string `validate:"oneof=asc desc"`
	OrderBy string `validate:"required"`
}

// KnownAttribute reports whether key is part of the fixed attribute schema.
func KnownAttribute(key string) bool {
	_, ok := defaults[key]
	return ok
}

// Parse converts raw shortcode attributes into a Shortcode. Unknown keys are
// ignored, attribute_<name> keys become attribute filters, and an ordering
// value that fails validation falls back to its default. Slider settings are
// coerced only. Parse never fails.
func Parse(tag string, raw map[string]string, siteRTL bool) *Shortcode {
	merged := make(map[string]string, len(defaults))
	for key, def := range defaults {
		merged[key] = def
		if v, ok := raw[key]; ok {
			merged[key] = v
		}
	}

	sc := &Shortcode{
		Tag:     tag,
		Variant: VariantForTag(tag),
		Filter: query.FilterSpec{
			CategoryIDs: SplitIDs(Given(merged["cats"])),
			TagIDs:      SplitIDs(Given(merged["tags"])),
			ProductIDs:  SplitIDs(Given(merged["ids"])),
			SKUs:        SplitStrings(Given(merged["skus"])),
			StockStatus: query.SanitizeText(Given(merged["stock_status"])),
			Attributes:  query.ExtractAttributeFilters(raw),
			Order:       query.SanitizeKey(merged["order"]),
			OrderBy:     query.SanitizeKey(merged["orderby"]),
			MetaKey:     query.SanitizeText(merged["meta_key"]),
			Limit:       Atoi(merged["limit"]),
		},
		Slider: NormalizeSlider(merged, siteRTL),
	}

	if !sc.Variant.Known() {
		log.Printf("[Shortcode] Unknown tag %q, no slider specialisation applied", tag)
	}

	sc.validateOrdering()

	return sc
}

// Query builds the product query for this shortcode.
func (s *Shortcode) Query(recentlyViewed []int) *query.Descriptor {
	return query.Build(s.Filter, s.Variant, recentlyViewed)
}

// NeedsRecentlyViewed reports whether the query depends on the viewer's cookie.
func (s *Shortcode) NeedsRecentlyViewed() bool {
	return s.Variant == query.VariantRecentlyViewed
}

func (s *Shortcode) validateOrdering() {
	ord := ordering{Limit: s.Filter.Limit, Order: s.Filter.Order, OrderBy: s.Filter.OrderBy}
	for _, fe := range validationErrors(validate.Struct(ord)) {
		s.logReset(fe)
		switch fe.Field() {
		case "Limit":
			s.Filter.Limit = query.UnboundedLimit
		case "Order":
			s.Filter.Order = query.SanitizeKey(defaults["order"])
		case "OrderBy":
			s.Filter.OrderBy = defaults["orderby"]
		}
	}
}

func (s *Shortcode) logReset(fe validator.FieldError) {
	log.Printf("[Shortcode] %s: %s=%v fails %q, using default", s.Tag, fe.Field(), fe.Value(), fe.Tag())
}

func validationErrors(err error) validator.ValidationErrors {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func sanitizeClass(s string) string {
	return query.SanitizeText(s)
}
