package store

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/products-slider/internal/query"
)

func TestBuildSQL_BaseQuery(t *testing.T) {
	d := query.BuildBaseQuery(-1, nil, nil, nil, nil, "")
	d.Order = "asc"
	d.OrderBy = query.OrderByMenuOrder

	stmt, args := BuildSQL(d, "")

	assert.Equal(t,
		"SELECT p.id FROM wp_posts p WHERE p.post_type = $1 AND p.post_status = $2 ORDER BY p.menu_order ASC, p.id ASC",
		stmt)
	assert.Equal(t, []any{"product", "publish"}, args)
}

func TestBuildSQL_LimitAndPrefix(t *testing.T) {
	d := query.BuildBaseQuery(6, nil, nil, nil, nil, "")

	stmt, args := BuildSQL(d, "shop_")

	assert.Contains(t, stmt, "FROM shop_posts p")
	assert.Contains(t, stmt, "ORDER BY p.post_date DESC, p.id DESC LIMIT $3")
	assert.Equal(t, 6, args[2])
}

func TestBuildSQL_TaxClauses(t *testing.T) {
	d := query.BuildBaseQuery(-1, []int{12, 15}, nil, nil, nil, "")
	d = query.ApplyAttributeFilters(d, map[string]string{"attribute_color": "Red"})

	stmt, args := BuildSQL(d, "")

	assert.Contains(t, stmt, "tt.taxonomy = $3 AND t.term_id = ANY($4)")
	assert.Contains(t, stmt, "tt.taxonomy = $5 AND t.slug = ANY($6)")
	assert.Contains(t, stmt, "JOIN wp_term_taxonomy tt ON tt.term_taxonomy_id = tr.term_taxonomy_id")
	require.Len(t, args, 6)
	assert.Equal(t, "product_cat", args[2])
	assert.Equal(t, pq.Array([]int64{12, 15}), args[3])
	assert.Equal(t, "pa_color", args[4])
	assert.Equal(t, pq.Array([]string{"red"}), args[5])
}

func TestBuildSQL_NotInOperator(t *testing.T) {
	d := query.BuildBaseQuery(-1, nil, nil, nil, nil, "")
	d.TaxQuery = []query.TaxClause{{Taxonomy: "product_tag", Field: "slug", Terms: []string{"hidden"}, Operator: "NOT IN"}}

	stmt, _ := BuildSQL(d, "")

	assert.Contains(t, stmt, "NOT EXISTS (SELECT 1 FROM wp_term_relationships tr")
}

func TestBuildSQL_MetaClauses(t *testing.T) {
	d := query.BuildBaseQuery(-1, nil, nil, nil, []string{"A", "B"}, "instock")

	stmt, args := BuildSQL(d, "")

	assert.Contains(t, stmt, "pm.meta_key = $3 AND pm.meta_value = $4)")
	assert.Contains(t, stmt, "pm.meta_key = $5 AND pm.meta_value = ANY($6))")
	assert.Equal(t, "_stock_status", args[2])
	assert.Equal(t, "instock", args[3])
	assert.Equal(t, pq.Array([]string{"A", "B"}), args[5])
}

func TestBuildSQL_OnSaleUsesOrGroup(t *testing.T) {
	d := query.SpecializeForVariant(query.BuildBaseQuery(-1, nil, nil, nil, nil, ""), query.VariantOnSale, nil)

	stmt, args := BuildSQL(d, "")

	assert.Contains(t, stmt, ") OR EXISTS (")
	assert.Contains(t, stmt, "END) > CAST($4 AS NUMERIC)")
	assert.Contains(t, args, "_sale_price")
	assert.Contains(t, args, "_min_variation_sale_price")
}

func TestBuildSQL_BestsellingOrdersByFirstMetaKey(t *testing.T) {
	d := query.SpecializeForVariant(query.BuildBaseQuery(-1, nil, nil, nil, nil, ""), query.VariantBestselling, nil)

	stmt, args := BuildSQL(d, "")

	assert.Contains(t, stmt, "JOIN wp_postmeta om ON om.post_id = p.id AND om.meta_key = $5")
	assert.Contains(t, stmt, "THEN CAST(om.meta_value AS NUMERIC) END) DESC, p.id DESC")
	assert.Equal(t, "total_sales", args[4])
}

func TestBuildSQL_TopRatedUsesMetaKey(t *testing.T) {
	d := query.SpecializeForVariant(query.BuildBaseQuery(-1, nil, nil, nil, nil, ""), query.VariantTopRated, nil)

	stmt, args := BuildSQL(d, "")

	assert.Contains(t, stmt, "om.meta_key = $3")
	assert.Equal(t, "_wc_average_rating", args[2])
}

func TestBuildSQL_RecentlyViewedKeepsListOrder(t *testing.T) {
	d := query.SpecializeForVariant(query.BuildBaseQuery(-1, nil, nil, nil, nil, ""), query.VariantRecentlyViewed, []int{9, 3})

	stmt, args := BuildSQL(d, "")

	assert.Contains(t, stmt, "p.id = ANY($3)")
	assert.Contains(t, stmt, "ORDER BY array_position(CAST($4 AS BIGINT[]), CAST(p.id AS BIGINT))")
	assert.Equal(t, pq.Array([]int64{9, 3}), args[2])
}

func TestBuildSQL_MetaValueWithoutKeyFallsBackToDate(t *testing.T) {
	d := query.BuildBaseQuery(-1, nil, nil, nil, nil, "")
	d.OrderBy = query.OrderByMetaValueNum

	stmt, _ := BuildSQL(d, "")

	assert.NotContains(t, stmt, " om ")
	assert.Contains(t, stmt, "ORDER BY p.post_date DESC")
}
