package query

// Variant selects the per-slider rewrite applied to a base descriptor.
type Variant string

const (
	VariantDefault        Variant = "default"
	VariantBestselling    Variant = "bestselling"
	VariantFeatured       Variant = "featured"
	VariantOnSale         Variant = "on-sale"
	VariantTopRated       Variant = "top-rated"
	VariantRecentlyViewed Variant = "recently-viewed"
)

// Variants lists every recognised variant.
var Variants = []Variant{
	VariantDefault,
	VariantBestselling,
	VariantFeatured,
	VariantOnSale,
	VariantTopRated,
	VariantRecentlyViewed,
}

// Known reports whether v is one of the recognised variants.
func (v Variant) Known() bool {
	for _, known := range Variants {
		if v == known {
			return true
		}
	}
	return false
}

// SpecializeForVariant rewrites a copy of d for the given variant.
// Unrecognised variants return the copy unchanged.
func SpecializeForVariant(d *Descriptor, variant Variant, recentlyViewed []int) *Descriptor {
	out := d.Clone()

	switch variant {
	case VariantDefault:
		if !out.MetaQuery.IsEmpty() {
			out.MetaQuery = &MetaQuery{Groups: []MetaQuery{*out.MetaQuery}}
		}

	case VariantBestselling:
		out.OrderBy = OrderByMetaValueNum
		out.Order = OrderDesc
		out.MetaKey = ""
		out.MetaQuery = mergeMeta(MetaQuery{
			Clauses: []MetaClause{{
				Key:     MetaKeyTotalSales,
				Value:   "0",
				Compare: CompareGreater,
			}},
		}, out.MetaQuery)

	case VariantFeatured:
		featured := TaxClause{
			Taxonomy: TaxonomyVisibility,
			Field:    FieldName,
			Terms:    []string{"featured"},
			Operator: OperatorIn,
		}
		out.TaxQuery = append([]TaxClause{featured}, out.TaxQuery...)

	case VariantOnSale:
		out.MetaQuery = mergeMeta(MetaQuery{
			Groups: []MetaQuery{{
				Relation: RelationOr,
				Clauses: []MetaClause{
					{Key: MetaKeySalePrice, Value: "0", Compare: CompareGreater, Type: TypeNumeric},
					{Key: MetaKeyMinVariationSale, Value: "0", Compare: CompareGreater, Type: TypeNumeric},
				},
			}},
		}, out.MetaQuery)

	case VariantTopRated:
		out.MetaKey = MetaKeyAverageRating
		out.OrderBy = OrderByMetaValueNum
		out.Order = OrderDesc

	case VariantRecentlyViewed:
		ids := NonNegative(recentlyViewed)
		if len(ids) == 0 {
			ids = []int{emptyRecentlyViewedPostID}
		}
		out.PostIn = ids
		out.OrderBy = OrderByPostIn
		out.Order = ""
		out.MetaKey = ""
	}

	return out
}

// mergeMeta puts added first and keeps existing as a nested group only when
// it holds clauses.
func mergeMeta(added MetaQuery, existing *MetaQuery) *MetaQuery {
	if !existing.IsEmpty() {
		added.Groups = append(added.Groups, *existing)
	}
	return &added
}
