package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/example/products-slider/internal/recentlyviewed"
	"github.com/example/products-slider/internal/render"
	"github.com/example/products-slider/internal/shortcode"
)

const (
	formatHTML      = "html"
	requestIDHeader = "X-Request-ID"
)

var ErrUnknownTag = errors.New("unknown slider shortcode")

type Handlers struct {
	renderer *render.Renderer
	tracker  *recentlyviewed.Tracker
	siteRTL  bool
}

func NewHandlers(renderer *render.Renderer, tracker *recentlyviewed.Tracker, siteRTL bool) *Handlers {
	return &Handlers{
		renderer: renderer,
		tracker:  tracker,
		siteRTL:  siteRTL,
	}
}

// RenderRequest is either raw shortcode text or a tag with its attributes.
type RenderRequest struct {
	Shortcode  string            `json:"shortcode"`
	Tag        string            `json:"tag"`
	Attributes map[string]string `json:"attributes"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Slider Handlers

// GetSlider renders /sliders/{tag}; every query parameter except format is a
// shortcode attribute.
func (h *Handlers) GetSlider(w http.ResponseWriter, r *http.Request) {
	tag := mux.Vars(r)["tag"]

	attrs := make(map[string]string)
	for key, values := range r.URL.Query() {
		if key == "format" || len(values) == 0 {
			continue
		}
		attrs[strings.ToLower(key)] = values[0]
	}

	h.serveSlider(w, r, tag, attrs)
}

func (h *Handlers) RenderSlider(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tag, attrs := req.Tag, req.Attributes
	if strings.TrimSpace(req.Shortcode) != "" {
		var err error
		tag, attrs, err = shortcode.ParseText(req.Shortcode)
		if err != nil {
			respondJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if tag == "" {
		respondJSONError(w, "shortcode or tag is required", http.StatusBadRequest)
		return
	}

	h.serveSlider(w, r, tag, attrs)
}

func (h *Handlers) serveSlider(w http.ResponseWriter, r *http.Request, tag string, attrs map[string]string) {
	if !shortcode.IsKnownTag(tag) {
		respondJSONError(w, ErrUnknownTag.Error(), http.StatusNotFound)
		return
	}

	sc := shortcode.Parse(tag, attrs, h.siteRTL)

	var recentlyViewed []int
	if sc.NeedsRecentlyViewed() {
		recentlyViewed = h.tracker.List(r)
	}

	rc := render.NewContext()
	w.Header().Set(requestIDHeader, rc.RequestID)

	slider, err := h.renderer.Render(r.Context(), rc, sc, recentlyViewed)
	if err != nil {
		log.Printf("[API] Error rendering %s (request %s): %v", tag, rc.RequestID, err)
		respondJSONError(w, "failed to render slider", http.StatusInternalServerError)
		return
	}
	if slider == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.URL.Query().Get("format") == formatHTML {
		html, err := slider.HTML()
		if err != nil {
			log.Printf("[API] Error writing HTML for %s (request %s): %v", tag, rc.RequestID, err)
			respondJSONError(w, "failed to render slider", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
		return
	}

	respondJSON(w, http.StatusOK, slider)
}

// Recently Viewed Handlers

func (h *Handlers) RecordView(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || productID <= 0 {
		respondJSONError(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	ids, _ := h.tracker.Capture(w, r, productID)
	respondJSON(w, http.StatusOK, map[string]any{
		"product_id":      productID,
		"recently_viewed": ids,
	})
}

func (h *Handlers) GetRecentlyViewed(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"recently_viewed": h.tracker.List(r),
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondJSONError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, status, map[string]string{"error": message})
}
