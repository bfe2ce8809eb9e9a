package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/example/products-slider/internal/api/middleware"
	"github.com/example/products-slider/internal/auth"
	"github.com/example/products-slider/internal/query"
	"github.com/example/products-slider/internal/shortcode"
)

var validate = validator.New()

// AdminHandlers serves the shortcode generator used by shop managers.
type AdminHandlers struct {
	account    auth.AdminAccount
	jwtService *auth.JWTService
	siteRTL    bool
}

func NewAdminHandlers(account auth.AdminAccount, jwtService *auth.JWTService, siteRTL bool) *AdminHandlers {
	return &AdminHandlers{
		account:    account,
		jwtService: jwtService,
		siteRTL:    siteRTL,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the access token for API clients; browsers use the cookie.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// GenerateRequest is the generator form: a tag and the options filled in.
type GenerateRequest struct {
	Tag        string            `json:"tag" validate:"required"`
	Attributes map[string]string `json:"attributes"`
}

// PreviewRequest holds shortcode text pasted into the preview box.
type PreviewRequest struct {
	Shortcode string `json:"shortcode" validate:"required"`
}

// PreviewResponse shows what a shortcode resolves to before it is published.
type PreviewResponse struct {
	Shortcode *shortcode.Shortcode `json:"shortcode"`
	Query     *query.Descriptor    `json:"query"`
}

func (h *AdminHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.account.Authenticate(req.Email, req.Password); err != nil {
		log.Printf("[API] Failed admin login for %s", req.Email)
		respondJSONError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAccessToken(h.account.Email, auth.RoleAdmin)
	if err != nil {
		respondJSONError(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})

	respondJSON(w, http.StatusOK, LoginResponse{AccessToken: token, ExpiresAt: expiresAt})
}

// GenerateShortcode prints shortcode text for the generator form. Options
// outside the attribute schema are dropped.
func (h *AdminHandlers) GenerateShortcode(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !shortcode.IsKnownTag(req.Tag) {
		respondJSONError(w, ErrUnknownTag.Error(), http.StatusBadRequest)
		return
	}

	attrs := make(map[string]string, len(req.Attributes))
	for key, value := range req.Attributes {
		key = strings.ToLower(strings.TrimSpace(key))
		if shortcode.KnownAttribute(key) || strings.HasPrefix(key, query.AttributeKeyPrefix) {
			attrs[key] = value
		}
	}

	code := shortcode.Format(req.Tag, attrs)
	if admin, ok := middleware.AdminFromContext(r.Context()); ok {
		log.Printf("[API] %s generated %s", admin.Email, req.Tag)
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"shortcode": code,
	})
}

// PreviewShortcode parses shortcode text and returns the typed attributes and
// the product query it would run for a visitor with no recently viewed list.
func (h *AdminHandlers) PreviewShortcode(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tag, attrs, err := shortcode.ParseText(req.Shortcode)
	if err != nil {
		respondJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sc := shortcode.Parse(tag, attrs, h.siteRTL)
	respondJSON(w, http.StatusOK, PreviewResponse{
		Shortcode: sc,
		Query:     sc.Query(nil),
	})
}

func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return errors.New(strings.ToLower(verrs[0].Field()) + " failed " + verrs[0].Tag() + " validation")
		}
		return err
	}
	return nil
}
