package render

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/products-slider/internal/infrastructure/store/mocks"
	"github.com/example/products-slider/internal/shortcode"
)

// ============================================
// Context Tests
// ============================================

func TestContext_NextElementID_Increments(t *testing.T) {
	rc := NewContext()

	assert.Equal(t, "woopspro-product-slider-1", rc.NextElementID())
	assert.Equal(t, "woopspro-product-slider-2", rc.NextElementID())
	assert.Equal(t, 2, rc.Rendered())
}

func TestContext_IndependentCounters(t *testing.T) {
	a, b := NewContext(), NewContext()

	a.NextElementID()
	a.NextElementID()

	assert.Equal(t, "woopspro-product-slider-1", b.NextElementID())
	assert.NotEqual(t, a.RequestID, b.RequestID)
}

// ============================================
// Renderer Tests
// ============================================

func TestRenderer_Render_Success(t *testing.T) {
	engine := mocks.NewMockProductQuery(4, 8, 15)
	renderer := NewRenderer(engine)
	rc := NewContext()
	sc := shortcode.Parse(shortcode.TagProducts, map[string]string{"limit": "3"}, false)

	slider, err := renderer.Render(context.Background(), rc, sc, nil)

	require.NoError(t, err)
	require.NotNil(t, slider)
	assert.Equal(t, "woopspro-product-slider-1", slider.ElementID)
	assert.Equal(t, []int{4, 8, 15}, slider.ProductIDs)
	assert.Equal(t, shortcode.TagProducts, slider.Tag)
	assert.Equal(t, 3, slider.Query.Limit)
	assert.Same(t, slider.Query, engine.LastQuery())
}

func TestRenderer_Render_NoMatchesUsesNoElementID(t *testing.T) {
	renderer := NewRenderer(mocks.NewMockProductQuery())
	rc := NewContext()
	sc := shortcode.Parse(shortcode.TagFeatured, nil, false)

	slider, err := renderer.Render(context.Background(), rc, sc, nil)

	require.NoError(t, err)
	assert.Nil(t, slider)
	assert.Equal(t, 0, rc.Rendered())
}

func TestRenderer_Render_EngineError(t *testing.T) {
	engine := mocks.NewMockProductQuery()
	engine.ExecuteErr = errors.New("connection refused")
	renderer := NewRenderer(engine)

	slider, err := renderer.Render(context.Background(), NewContext(), shortcode.Parse(shortcode.TagOnSale, nil, false), nil)

	require.Error(t, err)
	assert.Nil(t, slider)
	assert.ErrorIs(t, err, engine.ExecuteErr)
	assert.Contains(t, err.Error(), "execute woopspro_on_sale_products_slider query")
}

func TestRenderer_Render_RecentlyViewedPassesCookieList(t *testing.T) {
	engine := mocks.NewMockProductQuery(9, 3)
	renderer := NewRenderer(engine)
	sc := shortcode.Parse(shortcode.TagRecentlyViewed, nil, false)

	_, err := renderer.Render(context.Background(), NewContext(), sc, []int{9, 3})

	require.NoError(t, err)
	require.NotNil(t, engine.LastQuery())
	assert.Equal(t, []int{9, 3}, engine.LastQuery().PostIn)
}

func TestRenderer_Render_TwoSlidersOnOnePage(t *testing.T) {
	renderer := NewRenderer(mocks.NewMockProductQuery(1))
	rc := NewContext()

	first, err := renderer.Render(context.Background(), rc, shortcode.Parse(shortcode.TagProducts, nil, false), nil)
	require.NoError(t, err)
	second, err := renderer.Render(context.Background(), rc, shortcode.Parse(shortcode.TagBestselling, nil, false), nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ElementID, second.ElementID)
}

// ============================================
// HTML Tests
// ============================================

func TestSlider_HTML(t *testing.T) {
	slider := &Slider{
		ElementID:  "woopspro-product-slider-1",
		Tag:        shortcode.TagProducts,
		ProductIDs: []int{4, 8},
		Config:     shortcode.DefaultSliderConfig(false),
	}

	html, err := slider.HTML()
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, `id="woopspro-product-slider-1"`)
	assert.Contains(t, out, `class="woocommerce woopspro-product-slider products"`)
	assert.Contains(t, out, `data-product-id="4"`)
	assert.Contains(t, out, `data-product-id="8"`)
	assert.Contains(t, out, `data-conf="{&#34;slide_to_show&#34;:3`)
}

func TestSlider_HTML_EscapesClass(t *testing.T) {
	cfg := shortcode.DefaultSliderConfig(false)
	cfg.SliderClass = `x" onmouseover="alert(1)`
	slider := &Slider{ElementID: "woopspro-product-slider-1", ProductIDs: []int{1}, Config: cfg}

	html, err := slider.HTML()
	require.NoError(t, err)

	assert.NotContains(t, string(html), `" onmouseover="`)
}
