package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/karameloo/pricing-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"PIX_KEY":           "pix@demo",
		"APP_ENV":           "",
		"PORT":              "",
		"REDIS_URL":         "",
		"PIX_MERCHANT_NAME": "",
		"PIX_MERCHANT_CITY": "",
		"CATALOG_CACHE_TTL": "",
		"QUOTE_RATE_MAX":    "",
	})
	require.NoError(t, err)

	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "pix@demo", cfg.PixKey)
	require.Equal(t, "Karameloo", cfg.PixMerchantName)
	require.Equal(t, "SAO PAULO", cfg.PixMerchantCity)
	require.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	require.Equal(t, 20, cfg.CatalogDefaultLimit)
	require.Equal(t, 60, cfg.QuoteRateMax)
	require.Empty(t, cfg.RedisURL)
}

func TestLoadRequiresPixKey(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{"PIX_KEY": ""})
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"PIX_KEY":              "key@merchant",
		"PORT":                 "9090",
		"REDIS_URL":            "redis://localhost:6379/0",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example",
		"QUOTE_RATE_WINDOW":    "30s",
		"QUOTE_RATE_MAX":       "10",
	})
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 30*time.Second, cfg.QuoteRateWindow)
	require.Equal(t, 10, cfg.QuoteRateMax)
}
