package query

const (
	PostTypeProduct     = "product"
	PostStatusPublished = "publish"

	TaxonomyCategory   = "product_cat"
	TaxonomyTag        = "product_tag"
	TaxonomyVisibility = "product_visibility"
	AttributeTaxPrefix = "pa_"

	FieldID   = "id"
	FieldSlug = "slug"
	FieldName = "name"

	OperatorIn = "IN"

	CompareEqual   = "="
	CompareIn      = "IN"
	CompareGreater = ">"

	TypeNumeric = "NUMERIC"

	RelationAnd = "AND"
	RelationOr  = "OR"

	OrderAsc  = "ASC"
	OrderDesc = "DESC"

	OrderByMenuOrder    = "menu_order"
	OrderByMetaValueNum = "meta_value_num"
	OrderByPostIn       = "post__in"

	MetaKeyStockStatus        = "_stock_status"
	MetaKeySKU                = "_sku"
	MetaKeyTotalSales         = "total_sales"
	MetaKeySalePrice          = "_sale_price"
	MetaKeyMinVariationSale   = "_min_variation_sale_price"
	MetaKeyAverageRating      = "_wc_average_rating"
	UnboundedLimit            = -1
	emptyRecentlyViewedPostID = 0
)

// Descriptor is the product query handed to the external query engine.
// TaxQuery and MetaQuery are nil whenever they hold no clauses.
type Descriptor struct {
	PostType          string      `json:"post_type" yaml:"post_type"`
	PostStatus        string      `json:"post_status" yaml:"post_status"`
	IgnoreStickyPosts bool        `json:"ignore_sticky_posts" yaml:"ignore_sticky_posts"`
	Limit             int         `json:"posts_per_page" yaml:"posts_per_page"`
	TaxQuery          []TaxClause `json:"tax_query,omitempty" yaml:"tax_query,omitempty"`
	MetaQuery         *MetaQuery  `json:"meta_query,omitempty" yaml:"meta_query,omitempty"`
	PostIn            []int       `json:"post__in,omitempty" yaml:"post__in,omitempty"`
	Order             string      `json:"order,omitempty" yaml:"order,omitempty"`
	OrderBy           string      `json:"orderby,omitempty" yaml:"orderby,omitempty"`
	MetaKey           string      `json:"meta_key,omitempty" yaml:"meta_key,omitempty"`
}

// TaxClause restricts results to products carrying one of Terms in Taxonomy.
type TaxClause struct {
	Taxonomy string   `json:"taxonomy" yaml:"taxonomy"`
	Field    string   `json:"field" yaml:"field"`
	Terms    []string `json:"terms" yaml:"terms"`
	Operator string   `json:"operator,omitempty" yaml:"operator,omitempty"`
}

// MetaClause compares one product meta value. Values is used by the IN compare.
type MetaClause struct {
	Key     string   `json:"key" yaml:"key"`
	Value   string   `json:"value,omitempty" yaml:"value,omitempty"`
	Values  []string `json:"values,omitempty" yaml:"values,omitempty"`
	Compare string   `json:"compare,omitempty" yaml:"compare,omitempty"`
	Type    string   `json:"type,omitempty" yaml:"type,omitempty"`
}

// MetaQuery is a group of meta clauses and nested groups joined by Relation.
// An empty Relation means AND.
type MetaQuery struct {
	Relation string       `json:"relation,omitempty" yaml:"relation,omitempty"`
	Clauses  []MetaClause `json:"clauses,omitempty" yaml:"clauses,omitempty"`
	Groups   []MetaQuery  `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// IsEmpty reports whether the group contains no clause at any depth.
func (m *MetaQuery) IsEmpty() bool {
	if m == nil {
		return true
	}
	if len(m.Clauses) > 0 {
		return false
	}
	for i := range m.Groups {
		if !m.Groups[i].IsEmpty() {
			return false
		}
	}
	return true
}

// FirstKey returns the key of the first clause found depth-first, or "".
func (m *MetaQuery) FirstKey() string {
	if m == nil {
		return ""
	}
	if len(m.Clauses) > 0 {
		return m.Clauses[0].Key
	}
	for i := range m.Groups {
		if key := m.Groups[i].FirstKey(); key != "" {
			return key
		}
	}
	return ""
}

func (m *MetaQuery) addClause(c MetaClause) {
	m.Clauses = append(m.Clauses, c)
}

// Clone returns a deep copy so variant rewrites never alias the caller's slices.
func (d *Descriptor) Clone() *Descriptor {
	if d == nil {
		return nil
	}
	out := *d
	if d.TaxQuery != nil {
		out.TaxQuery = make([]TaxClause, len(d.TaxQuery))
		for i, c := range d.TaxQuery {
			c.Terms = append([]string(nil), c.Terms...)
			out.TaxQuery[i] = c
		}
	}
	if d.MetaQuery != nil {
		mq := d.MetaQuery.clone()
		out.MetaQuery = &mq
	}
	if d.PostIn != nil {
		out.PostIn = append([]int(nil), d.PostIn...)
	}
	return &out
}

func (m MetaQuery) clone() MetaQuery {
	out := MetaQuery{Relation: m.Relation}
	if m.Clauses != nil {
		out.Clauses = make([]MetaClause, len(m.Clauses))
		for i, c := range m.Clauses {
			c.Values = append([]string(nil), c.Values...)
			if len(c.Values) == 0 {
				c.Values = nil
			}
			out.Clauses[i] = c
		}
	}
	if m.Groups != nil {
		out.Groups = make([]MetaQuery, len(m.Groups))
		for i, g := range m.Groups {
			out.Groups[i] = g.clone()
		}
	}
	return out
}

// Prune drops empty taxonomy and meta collections so the engine never sees them.
func Prune(d *Descriptor) *Descriptor {
	if len(d.TaxQuery) == 0 {
		d.TaxQuery = nil
	}
	if d.MetaQuery.IsEmpty() {
		d.MetaQuery = nil
	}
	return d
}
