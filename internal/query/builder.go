package query

import (
	"strconv"
)

// FilterSpec is the validated input to a query build.
type FilterSpec struct {
	CategoryIDs []int    `json:"category_ids,omitempty" yaml:"category_ids,omitempty"`
	TagIDs      []int    `json:"tag_ids,omitempty" yaml:"tag_ids,omitempty"`
	ProductIDs  []int    `json:"product_ids,omitempty" yaml:"product_ids,omitempty"`
	SKUs        []string `json:"skus,omitempty" yaml:"skus,omitempty"`
	StockStatus string   `json:"stock_status,omitempty" yaml:"stock_status,omitempty"`
	// Attributes maps an attribute slug (without the pa_ prefix) to term slugs.
	Attributes map[string][]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Order      string              `json:"order" yaml:"order"`
	OrderBy    string              `json:"orderby" yaml:"orderby"`
	MetaKey    string              `json:"meta_key,omitempty" yaml:"meta_key,omitempty"`
	Limit      int                 `json:"limit" yaml:"limit"`
}

// BuildBaseQuery turns the fixed filters into a descriptor. Empty inputs
// produce no clause at all.
func BuildBaseQuery(limit int, categoryIDs, tagIDs, productIDs []int, skus []string, stockStatus string) *Descriptor {
	d := &Descriptor{
		PostType:          PostTypeProduct,
		PostStatus:        PostStatusPublished,
		IgnoreStickyPosts: true,
		Limit:             limit,
	}

	if terms := idTerms(categoryIDs); len(terms) > 0 {
		d.TaxQuery = append(d.TaxQuery, TaxClause{
			Taxonomy: TaxonomyCategory,
			Field:    FieldID,
			Terms:    terms,
		})
	}
	if terms := idTerms(tagIDs); len(terms) > 0 {
		d.TaxQuery = append(d.TaxQuery, TaxClause{
			Taxonomy: TaxonomyTag,
			Field:    FieldID,
			Terms:    terms,
		})
	}

	meta := &MetaQuery{}
	if stockStatus = SanitizeText(stockStatus); stockStatus != "" {
		meta.addClause(MetaClause{
			Key:     MetaKeyStockStatus,
			Value:   stockStatus,
			Compare: CompareEqual,
		})
	}
	if cleaned := sanitizeStrings(skus); len(cleaned) > 0 {
		meta.addClause(MetaClause{
			Key:     MetaKeySKU,
			Values:  cleaned,
			Compare: CompareIn,
		})
	}
	if !meta.IsEmpty() {
		d.MetaQuery = meta
	}

	if ids := NonNegative(productIDs); len(ids) > 0 {
		d.PostIn = ids
	}

	return d
}

// Build runs the whole translation: base filters, attribute filters,
// ordering, variant rewrite and pruning.
func Build(spec FilterSpec, variant Variant, recentlyViewed []int) *Descriptor {
	d := BuildBaseQuery(spec.Limit, spec.CategoryIDs, spec.TagIDs, spec.ProductIDs, spec.SKUs, spec.StockStatus)
	d = ApplyAttributeMap(d, spec.Attributes)

	d.Order = spec.Order
	d.OrderBy = spec.OrderBy
	if spec.MetaKey != "" {
		d.MetaKey = spec.MetaKey
	}

	d = SpecializeForVariant(d, variant, recentlyViewed)
	return Prune(d)
}

// NonNegative returns ids with negative values made absolute. The minimum
// int has no absolute value and is dropped.
func NonNegative(ids []int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id < 0 {
			id = -id
		}
		if id < 0 {
			continue
		}
		out = append(out, id)
	}
	return out
}

func idTerms(ids []int) []string {
	terms := make([]string, 0, len(ids))
	for _, id := range NonNegative(ids) {
		terms = append(terms, strconv.Itoa(id))
	}
	return terms
}

func sanitizeStrings(values []string) []string {
	var out []string
	for _, v := range values {
		if v = SanitizeText(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
