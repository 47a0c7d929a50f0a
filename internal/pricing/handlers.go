package pricing

import (
	"encoding/json"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/karameloo/pricing-api/internal/common"
	"github.com/karameloo/pricing-api/internal/obs"
)

// Handler exposes the custom quote endpoint.
type Handler struct {
	Calc     *Calculator
	Validate *validator.Validate
}

type quoteReq struct {
	Photos          int      `json:"photos"`
	Videos          int      `json:"videos"`
	DurationSeconds int      `json:"durationSeconds"`
	Platform        string   `json:"platform" validate:"omitempty,printascii,max=32"`
	Extras          []string `json:"extras" validate:"max=64,dive,alphanum,max=40"`
	Tier            string   `json:"tier" validate:"omitempty,printascii,max=16"`
	Urgent          bool     `json:"urgent"`
}

// Quote handles POST /api/v1/quotes. Counts and duration are clamped, not
// rejected; only structurally broken bodies fail.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Calc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "pricing service not configured", nil)
		return
	}
	var req quoteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid body", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid quote request", err.Error())
			return
		}
	}

	quote := h.Calc.Quote(Request{
		PhotoCount:           req.Photos,
		VideoCount:           req.Videos,
		VideoDurationSeconds: req.DurationSeconds,
		Platform:             req.Platform,
		Extras:               req.Extras,
		Tier:                 Tier(req.Tier),
		Urgent:               req.Urgent,
	})
	if obs.QuoteTotal != nil {
		obs.QuoteTotal.WithLabelValues(string(quote.Tier), "ok").Inc()
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": quote})
}
