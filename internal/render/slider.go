package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/example/products-slider/internal/infrastructure/store"
	"github.com/example/products-slider/internal/query"
	"github.com/example/products-slider/internal/shortcode"
)

var sliderTemplate = template.Must(template.New("slider").Parse(
	`<div class="woopspro-product-slider-wrap">` +
		`<div class="woocommerce woopspro-product-slider {{.Config.SliderClass}}" id="{{.ElementID}}">` +
		`<ul class="products">{{range .ProductIDs}}<li class="product" data-product-id="{{.}}"></li>{{end}}</ul>` +
		`</div>` +
		`<div class="woopspro-slider-conf" data-conf="{{.ConfJSON}}"></div>` +
		`</div>`))

// Slider is one rendered slider: the matched products in engine order plus
// the carousel configuration.
type Slider struct {
	ElementID  string                 `json:"element_id"`
	Tag        string                 `json:"tag"`
	ProductIDs []int                  `json:"product_ids"`
	Config     shortcode.SliderConfig `json:"config"`
	Query      *query.Descriptor      `json:"query"`
}

// Renderer executes shortcode queries and assembles sliders.
type Renderer struct {
	engine store.ProductQueryInterface
}

func NewRenderer(engine store.ProductQueryInterface) *Renderer {
	return &Renderer{engine: engine}
}

// Render runs the shortcode's query. It returns nil without error when no
// product matches; nothing is rendered in that case and no element id is used.
func (r *Renderer) Render(ctx context.Context, rc *Context, sc *shortcode.Shortcode, recentlyViewed []int) (*Slider, error) {
	d := sc.Query(recentlyViewed)

	ids, err := r.engine.Execute(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("execute %s query: %w", sc.Tag, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	return &Slider{
		ElementID:  rc.NextElementID(),
		Tag:        sc.Tag,
		ProductIDs: ids,
		Config:     sc.Slider,
		Query:      d,
	}, nil
}

// HTML renders the slider wrapper markup. Product cards are left for the
// storefront theme to fill in.
func (s *Slider) HTML() (template.HTML, error) {
	conf, err := json.Marshal(s.Config)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = sliderTemplate.Execute(&buf, struct {
		*Slider
		ConfJSON string
	}{s, string(conf)})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
