package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/karameloo/pricing-api/internal/common"
	"github.com/karameloo/pricing-api/internal/obs"
	"github.com/karameloo/pricing-api/internal/pricing"
)

// ErrPackageNotFound is returned when no package carries the requested id.
var ErrPackageNotFound = common.NewAppError("NOT_FOUND", "package not found", http.StatusNotFound, nil)

// Service assembles priced catalog views, with best-effort caching of the
// per-tier pages.
type Service struct {
	packages     []Package
	byID         map[int]Package
	extras       []pricing.ExtraOption
	cache        *Cache
	defaultLimit int
	maxLimit     int
}

// ServiceConfig groups Service dependencies. Zero-value Packages and Extras
// fall back to the built-in catalogs.
type ServiceConfig struct {
	Packages     []Package
	Extras       []pricing.ExtraOption
	Cache        *Cache
	DefaultLimit int
	MaxLimit     int
}

// NewService constructs a catalog service.
func NewService(cfg ServiceConfig) (*Service, error) {
	packages := cfg.Packages
	if len(packages) == 0 {
		packages = Default()
	}
	extras := cfg.Extras
	if len(extras) == 0 {
		extras = pricing.DefaultExtras()
	}
	byID := make(map[int]Package, len(packages))
	for _, p := range packages {
		if p.ID <= 0 {
			return nil, fmt.Errorf("package %q: id must be positive", p.Name)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate package id %d", p.ID)
		}
		byID[p.ID] = p
	}
	defaultLimit := cfg.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	maxLimit := cfg.MaxLimit
	if maxLimit <= 0 {
		maxLimit = 100
	}
	return &Service{
		packages:     packages,
		byID:         byID,
		extras:       extras,
		cache:        cfg.Cache,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}, nil
}

// PricedPackage is a catalog entry priced at a specific tier.
type PricedPackage struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Eta   string          `json:"eta"`
	Items []string        `json:"items"`
	Tier  pricing.Tier    `json:"tier"`
}

// ListResult is one page of the priced catalog.
type ListResult struct {
	Items []PricedPackage `json:"items"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ListPackages returns one page of the catalog priced at the given tier.
func (s *Service) ListPackages(ctx context.Context, tier pricing.Tier, page, limit int) (ListResult, error) {
	tier = pricing.ParseTier(string(tier))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	key := "catalog:packages:" + string(tier) + ":" + strconv.Itoa(page) + ":" + strconv.Itoa(limit)
	var cached ListResult
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		countCache("hit")
		return cached, nil
	}
	countCache("miss")

	start := (page - 1) * limit
	end := start + limit
	if start > len(s.packages) {
		start = len(s.packages)
	}
	if end > len(s.packages) {
		end = len(s.packages)
	}
	items := make([]PricedPackage, 0, end-start)
	for _, p := range s.packages[start:end] {
		items = append(items, pricedPackage(p, tier))
	}
	result := ListResult{Items: items, Total: len(s.packages), Page: page, Limit: limit}
	// Best effort: a failed cache write must not fail the listing.
	_ = s.cache.SetJSON(ctx, key, result)
	return result, nil
}

// GetPackage prices a single package at the given tier.
func (s *Service) GetPackage(_ context.Context, id int, tier pricing.Tier) (PricedPackage, error) {
	p, ok := s.byID[id]
	if !ok {
		return PricedPackage{}, ErrPackageNotFound
	}
	return pricedPackage(p, pricing.ParseTier(string(tier))), nil
}

// Extras returns the extras catalog.
func (s *Service) Extras() []pricing.ExtraOption {
	return s.extras
}

func pricedPackage(p Package, tier pricing.Tier) PricedPackage {
	return PricedPackage{
		ID:    p.ID,
		Name:  p.Name,
		Price: PriceFor(p, tier),
		Eta:   p.Eta,
		Items: p.Items,
		Tier:  tier,
	}
}

func countCache(result string) {
	if obs.CatalogCacheTotal != nil {
		obs.CatalogCacheTotal.WithLabelValues(result).Inc()
	}
}
