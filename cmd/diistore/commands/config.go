package commands

import (
	"time"

	"diistore/internal/dashboard"
	"diistore/lib/telemetry"
)

type Config struct {
	// ApiBaseUrl is the origin of /api/list_product and /api/cek_stock.
	ApiBaseUrl string `json:"api_base_url"`
	// AreaSourceUrl is the page holding the coverage table.
	AreaSourceUrl    string `json:"area_source_url"`
	TimeoutSeconds   int    `json:"timeout_seconds"`
	CloudflareBypass bool   `json:"cloudflare_bypass"`
	// OtherProductsPath overrides the embedded other products catalog.
	OtherProductsPath string                  `json:"other_products_path"`
	Port              int                     `json:"port"`
	AccessToken       string                  `json:"access_token"`
	Payment           dashboard.PaymentConfig `json:"payment"`
	Telemetry         telemetry.Config        `json:"telemetry"`
}

func DefaultConfig() Config {
	return Config{
		ApiBaseUrl:    "http://localhost:3000",
		AreaSourceUrl: "https://arifr.id/akrab/",
		Port:          8080,
		Payment:       dashboard.DefaultPaymentConfig(),
	}
}

func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
