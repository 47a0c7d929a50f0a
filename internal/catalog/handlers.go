package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/karameloo/pricing-api/internal/common"
	"github.com/karameloo/pricing-api/internal/pricing"
)

// Handler exposes the public catalog endpoints.
type Handler struct {
	Service *Service
}

// Packages handles GET /api/v1/packages with tier selection and pagination.
func (h *Handler) Packages(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	tier := pricing.ParseTier(r.URL.Query().Get("tier"))
	page, limit := common.ParsePagination(r, 0)
	result, err := h.Service.ListPackages(r.Context(), tier, page, limit)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "list packages", nil)
		return
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(result.Total))
	common.JSON(w, http.StatusOK, map[string]any{
		"data":       result.Items,
		"pagination": common.Pagination{Page: result.Page, PerPage: result.Limit, TotalItems: result.Total},
	})
}

// PackageDetail handles GET /api/v1/packages/{id}.
func (h *Handler) PackageDetail(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid package id", nil)
		return
	}
	tier := pricing.ParseTier(r.URL.Query().Get("tier"))
	item, err := h.Service.GetPackage(r.Context(), id, tier)
	if err != nil {
		common.JSONFromError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": item})
}

// Extras handles GET /api/v1/extras.
func (h *Handler) Extras(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Service.Extras()})
}
