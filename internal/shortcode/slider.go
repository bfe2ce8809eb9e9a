package shortcode

// SliderConfig is the presentation configuration passed to the carousel
// widget. JSON keys match the shortcode attribute names.
type SliderConfig struct {
	SlideToShow         int    `json:"slide_to_show" yaml:"slide_to_show"`
	SlideToShowMobile   int    `json:"slide_to_show_for_mobile" yaml:"slide_to_show_for_mobile"`
	SlideToShowTablet   int    `json:"slide_to_show_for_tablet" yaml:"slide_to_show_for_tablet"`
	SlideToShowLaptop   int    `json:"slide_to_show_for_laptop" yaml:"slide_to_show_for_laptop"`
	SlideToScroll       int    `json:"slide_to_scroll" yaml:"slide_to_scroll"`
	SlideToScrollMobile int    `json:"slide_to_scroll_for_mobile" yaml:"slide_to_scroll_for_mobile"`
	SlideToScrollTablet int    `json:"slide_to_scroll_for_tablet" yaml:"slide_to_scroll_for_tablet"`
	SlideToScrollLaptop int    `json:"slide_to_scroll_for_laptop" yaml:"slide_to_scroll_for_laptop"`
	Autoplay            bool   `json:"autoplay" yaml:"autoplay"`
	AutoplaySpeed       int    `json:"autoplay_speed" yaml:"autoplay_speed"`
	Speed               int    `json:"speed" yaml:"speed"`
	Arrows              bool   `json:"arrows" yaml:"arrows"`
	Dots                bool   `json:"dots" yaml:"dots"`
	RTL                 bool   `json:"rtl" yaml:"rtl"`
	SliderClass         string `json:"slider_cls" yaml:"slider_cls"`
}

// DefaultSliderConfig returns the configuration used for absent attributes.
func DefaultSliderConfig(siteRTL bool) SliderConfig {
	return SliderConfig{
		SlideToShow:         3,
		SlideToShowMobile:   1,
		SlideToShowTablet:   2,
		SlideToShowLaptop:   3,
		SlideToScroll:       3,
		SlideToScrollMobile: 1,
		SlideToScrollTablet: 2,
		SlideToScrollLaptop: 3,
		Autoplay:            true,
		AutoplaySpeed:       3000,
		Speed:               300,
		Arrows:              true,
		Dots:                true,
		RTL:                 siteRTL,
		SliderClass:         "products",
	}
}

// ResolveRTL defers to the site direction when explicit is empty or "0";
// otherwise only the literal "true" turns RTL on.
func ResolveRTL(explicit string, siteRTL bool) bool {
	if Given(explicit) == "" {
		return siteRTL
	}
	return explicit == "true"
}

// NormalizeSlider coerces raw attributes into a SliderConfig. Missing keys
// take the defaults. No validation happens here; see Parse.
func NormalizeSlider(raw map[string]string, siteRTL bool) SliderConfig {
	cfg := DefaultSliderConfig(siteRTL)

	ints := map[string]*int{
		"slide_to_show":              &cfg.SlideToShow,
		"slide_to_show_for_mobile":   &cfg.SlideToShowMobile,
		"slide_to_show_for_tablet":   &cfg.SlideToShowTablet,
		"slide_to_show_for_laptop":   &cfg.SlideToShowLaptop,
		"slide_to_scroll":            &cfg.SlideToScroll,
		"slide_to_scroll_for_mobile": &cfg.SlideToScrollMobile,
		"slide_to_scroll_for_tablet": &cfg.SlideToScrollTablet,
		"slide_to_scroll_for_laptop": &cfg.SlideToScrollLaptop,
		"autoplay_speed":             &cfg.AutoplaySpeed,
		"speed":                      &cfg.Speed,
	}
	for key, dst := range ints {
		if v, ok := raw[key]; ok {
			*dst = Atoi(v)
		}
	}

	bools := map[string]*bool{
		"autoplay": &cfg.Autoplay,
		"arrows":   &cfg.Arrows,
		"dots":     &cfg.Dots,
	}
	for key, dst := range bools {
		if v, ok := raw[key]; ok {
			*dst = ParseBool(v)
		}
	}

	cfg.RTL = ResolveRTL(raw["rtl"], siteRTL)

	if v, ok := raw["slider_cls"]; ok {
		cfg.SliderClass = sanitizeClass(v)
	}
	if cfg.SliderClass == "" {
		cfg.SliderClass = "products"
	}

	return cfg
}
