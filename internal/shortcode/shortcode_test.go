package shortcode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/products-slider/internal/query"
)

// ============================================
// Coercion Tests
// ============================================

func TestParseBool(t *testing.T) {
	for _, s := range []string{"true", "TRUE", "1", "yes", "on", " Yes "} {
		assert.True(t, ParseBool(s), s)
	}
	for _, s := range []string{"false", "0", "no", "off", "", "maybe"} {
		assert.False(t, ParseBool(s), s)
	}
}

func TestAtoi(t *testing.T) {
	assert.Equal(t, 12, Atoi("12px"))
	assert.Equal(t, 3, Atoi("3.7"))
	assert.Equal(t, -1, Atoi("-1"))
	assert.Equal(t, 0, Atoi("abc"))
	assert.Equal(t, 0, Atoi(""))
	assert.Equal(t, 42, Atoi(" +42 "))
}

func TestSplitIDs(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, SplitIDs("1, 2,3"))
	assert.Equal(t, []int{4, 7}, SplitIDs("4,,x,-7,4"))
	assert.Nil(t, SplitIDs(""))
	assert.Equal(t, []int{math.MaxInt}, SplitIDs("99999999999999999999999"))
}

func TestGiven(t *testing.T) {
	assert.Equal(t, "", Given("0"))
	assert.Equal(t, "", Given(""))
	assert.Equal(t, "00", Given("00"))
	assert.Equal(t, "0,5", Given("0,5"))
}

func TestSplitStrings(t *testing.T) {
	assert.Equal(t, []string{"A-1", "B-2"}, SplitStrings(" A-1 ,B-2,,A-1"))
	assert.Nil(t, SplitStrings(" , "))
}

// ============================================
// RTL / Slider Tests
// ============================================

func TestResolveRTL(t *testing.T) {
	assert.True(t, ResolveRTL("", true))
	assert.False(t, ResolveRTL("", false))
	assert.True(t, ResolveRTL("true", false))
	assert.False(t, ResolveRTL("false", true))
	assert.False(t, ResolveRTL("yes", true))
	assert.True(t, ResolveRTL("0", true))
	assert.False(t, ResolveRTL("0", false))
}

func TestNormalizeSlider_Defaults(t *testing.T) {
	cfg := NormalizeSlider(map[string]string{}, false)

	assert.Equal(t, DefaultSliderConfig(false), cfg)
}

func TestNormalizeSlider_Coercion(t *testing.T) {
	cfg := NormalizeSlider(map[string]string{
		"slide_to_show":            "5",
		"slide_to_show_for_mobile": "2items",
		"autoplay":                 "false",
		"arrows":                   "no",
		"dots":                     "1",
		"autoplay_speed":           "1500",
		"rtl":                      "true",
		"slider_cls":               " <b>hot</b> deals ",
	}, false)

	assert.Equal(t, 5, cfg.SlideToShow)
	assert.Equal(t, 2, cfg.SlideToShowMobile)
	assert.False(t, cfg.Autoplay)
	assert.False(t, cfg.Arrows)
	assert.True(t, cfg.Dots)
	assert.Equal(t, 1500, cfg.AutoplaySpeed)
	assert.True(t, cfg.RTL)
	assert.Equal(t, "hot deals", cfg.SliderClass)
}

// ============================================
// Parse Tests
// ============================================

func TestParse_Defaults(t *testing.T) {
	sc := Parse(TagProducts, nil, true)

	assert.Equal(t, query.VariantDefault, sc.Variant)
	assert.Equal(t, -1, sc.Filter.Limit)
	assert.Equal(t, "asc", sc.Filter.Order)
	assert.Equal(t, query.OrderByMenuOrder, sc.Filter.OrderBy)
	assert.Empty(t, sc.Filter.CategoryIDs)
	assert.Empty(t, sc.Filter.Attributes)
	assert.True(t, sc.Slider.RTL)
}

func TestParse_Filters(t *testing.T) {
	sc := Parse(TagFeatured, map[string]string{
		"cats":            "10,11",
		"tags":            "3",
		"ids":             "99",
		"skus":            "AB-1, CD-2",
		"stock_status":    "instock",
		"limit":           "8",
		"order":           "DESC",
		"orderby":         "date",
		"attribute_color": "Red,Blue",
		"unknown":         "ignored",
	}, false)

	assert.Equal(t, query.VariantFeatured, sc.Variant)
	assert.Equal(t, []int{10, 11}, sc.Filter.CategoryIDs)
	assert.Equal(t, []int{3}, sc.Filter.TagIDs)
	assert.Equal(t, []int{99}, sc.Filter.ProductIDs)
	assert.Equal(t, []string{"AB-1", "CD-2"}, sc.Filter.SKUs)
	assert.Equal(t, "instock", sc.Filter.StockStatus)
	assert.Equal(t, 8, sc.Filter.Limit)
	assert.Equal(t, "desc", sc.Filter.Order)
	assert.Equal(t, "date", sc.Filter.OrderBy)
	assert.Equal(t, map[string][]string{"color": {"red", "blue"}}, sc.Filter.Attributes)
}

func TestParse_InvalidOrderingFallsBackToDefaults(t *testing.T) {
	sc := Parse(TagProducts, map[string]string{
		"limit":   "-20",
		"order":   "sideways",
		"orderby": "!!!",
	}, false)

	assert.Equal(t, -1, sc.Filter.Limit)
	assert.Equal(t, "asc", sc.Filter.Order)
	assert.Equal(t, query.OrderByMenuOrder, sc.Filter.OrderBy)
}

func TestParse_SliderValuesAreCoercedOnly(t *testing.T) {
	sc := Parse(TagProducts, map[string]string{
		"slide_to_show":   "0",
		"slide_to_scroll": "abc",
		"speed":           "-5",
		"slider_cls":      "   ",
	}, false)

	assert.Equal(t, 0, sc.Slider.SlideToShow)
	assert.Equal(t, 0, sc.Slider.SlideToScroll)
	assert.Equal(t, -5, sc.Slider.Speed)
	assert.Equal(t, "products", sc.Slider.SliderClass)
}

func TestParse_ZeroFiltersAreNotSet(t *testing.T) {
	sc := Parse(TagProducts, map[string]string{
		"cats":         "0",
		"tags":         "0",
		"ids":          "0",
		"skus":         "0",
		"stock_status": "0",
	}, false)

	assert.Empty(t, sc.Filter.CategoryIDs)
	assert.Empty(t, sc.Filter.TagIDs)
	assert.Empty(t, sc.Filter.ProductIDs)
	assert.Empty(t, sc.Filter.SKUs)
	assert.Empty(t, sc.Filter.StockStatus)

	d := sc.Query(nil)
	assert.Nil(t, d.PostIn)
	assert.Nil(t, d.TaxQuery)
	assert.Nil(t, d.MetaQuery)
}

func TestParse_ZeroInsideListIsKept(t *testing.T) {
	sc := Parse(TagProducts, map[string]string{"ids": "0,5"}, false)

	assert.Equal(t, []int{0, 5}, sc.Filter.ProductIDs)
}

func TestParse_UnknownTagIsNotSpecialised(t *testing.T) {
	sc := Parse("woopspro_typo_slider", map[string]string{"stock_status": "instock"}, false)

	assert.False(t, sc.Variant.Known())

	d := sc.Query(nil)
	require.NotNil(t, d.MetaQuery)
	assert.Len(t, d.MetaQuery.Clauses, 1)
	assert.Empty(t, d.MetaQuery.Groups)
}

func TestShortcode_Query_Bestselling(t *testing.T) {
	sc := Parse(TagBestselling, map[string]string{"cats": "5", "meta_key": "_price"}, false)

	d := sc.Query(nil)

	assert.Equal(t, query.OrderByMetaValueNum, d.OrderBy)
	assert.Equal(t, query.OrderDesc, d.Order)
	assert.Empty(t, d.MetaKey)
	require.NotNil(t, d.MetaQuery)
	assert.Equal(t, query.MetaKeyTotalSales, d.MetaQuery.Clauses[0].Key)
	assert.Equal(t, ">", d.MetaQuery.Clauses[0].Compare)
	assert.Equal(t, "0", d.MetaQuery.Clauses[0].Value)
}

func TestShortcode_Query_RecentlyViewed(t *testing.T) {
	sc := Parse(TagRecentlyViewed, nil, false)

	assert.True(t, sc.NeedsRecentlyViewed())
	assert.Equal(t, []int{0}, sc.Query(nil).PostIn)
	assert.Equal(t, []int{4, 2}, sc.Query([]int{4, 2}).PostIn)
}

func TestVariantForTag(t *testing.T) {
	assert.Equal(t, query.VariantOnSale, VariantForTag(TagOnSale))
	assert.Equal(t, query.VariantTopRated, VariantForTag(TagTopRated))
	assert.Equal(t, query.Variant("nope"), VariantForTag("nope"))
	assert.True(t, IsKnownTag(TagRecentlyViewed))
	assert.False(t, IsKnownTag("nope"))
}

// ============================================
// Text Tests
// ============================================

func TestParseText(t *testing.T) {
	tag, attrs, err := ParseText(`[woopspro_products_slider cats="1,2" Limit='4' dots=false attribute_color="Red, Blue"]`)

	require.NoError(t, err)
	assert.Equal(t, TagProducts, tag)
	assert.Equal(t, map[string]string{
		"cats":            "1,2",
		"limit":           "4",
		"dots":            "false",
		"attribute_color": "Red, Blue",
	}, attrs)
}

func TestParseText_NoAttributes(t *testing.T) {
	tag, attrs, err := ParseText("  [woopspro_recently_viewed_products]  ")

	require.NoError(t, err)
	assert.Equal(t, TagRecentlyViewed, tag)
	assert.Empty(t, attrs)
}

func TestParseText_SelfClosing(t *testing.T) {
	tag, attrs, err := ParseText(`[woopspro_featured_products_slider ids="3" /]`)

	require.NoError(t, err)
	assert.Equal(t, TagFeatured, tag)
	assert.Equal(t, "3", attrs["ids"])
}

func TestParseText_Invalid(t *testing.T) {
	_, _, err := ParseText("woopspro_products_slider cats=1")

	assert.ErrorIs(t, err, ErrNotShortcode)
}

func TestFormat(t *testing.T) {
	out := Format(TagOnSale, map[string]string{
		"limit": "6",
		"cats":  "1,2",
		"skus":  "",
		"dots":  "false",
	})

	assert.Equal(t, `[woopspro_on_sale_products_slider cats="1,2" dots="false" limit="6"]`, out)

	tag, attrs, err := ParseText(out)
	require.NoError(t, err)
	assert.Equal(t, TagOnSale, tag)
	assert.Equal(t, "6", attrs["limit"])
}
