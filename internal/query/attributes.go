package query

import (
	"sort"
	"strings"
)

// AttributeKeyPrefix marks a shortcode attribute as a product-attribute filter.
const AttributeKeyPrefix = "attribute_"

// ExtractAttributeFilters picks the attribute_<name> keys out of raw shortcode
// attributes and returns them keyed by attribute slug. Keys whose name or
// value normalise to nothing are skipped.
func ExtractAttributeFilters(raw map[string]string) map[string][]string {
	filters := make(map[string][]string)
	for key, value := range raw {
		if !strings.HasPrefix(key, AttributeKeyPrefix) || len(key) == len(AttributeKeyPrefix) {
			continue
		}
		name := Slug(strings.ReplaceAll(key, AttributeKeyPrefix, ""))
		if name == "" {
			continue
		}
		terms := splitSlugs(value)
		if len(terms) == 0 {
			continue
		}
		filters[name] = append(filters[name], terms...)
	}
	return filters
}

// ApplyAttributeFilters appends one taxonomy clause per attribute_<name> key.
func ApplyAttributeFilters(d *Descriptor, raw map[string]string) *Descriptor {
	return ApplyAttributeMap(d, ExtractAttributeFilters(raw))
}

// ApplyAttributeMap appends one pa_<slug> taxonomy clause per entry, in
// sorted slug order.
func ApplyAttributeMap(d *Descriptor, filters map[string][]string) *Descriptor {
	names := make([]string, 0, len(filters))
	for name, terms := range filters {
		if len(terms) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		d.TaxQuery = append(d.TaxQuery, TaxClause{
			Taxonomy: AttributeTaxPrefix + name,
			Field:    FieldSlug,
			Terms:    append([]string(nil), filters[name]...),
			Operator: OperatorIn,
		})
	}
	return d
}

func splitSlugs(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if slug := Slug(part); slug != "" {
			out = append(out, slug)
		}
	}
	return out
}
