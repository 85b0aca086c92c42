package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// BackendCfg locates the remote multi-service backend.
type BackendCfg struct {
	BaseURL         string
	Timeout         time.Duration
	ProductPrefix   string
	OrderPrefix     string
	InventoryPrefix string
	IdentityPrefix  string
	// IdentityToken is the bearer token attached to identity-service
	// calls. Injected from the environment, never compiled in.
	IdentityToken string
}

// ServerCfg configures the gateway's own listener.
type ServerCfg struct {
	Port         string
	ProbeMaxWait time.Duration
}

// PageCfg carries the per-resource default page sizes. The uneven defaults
// match what each backend page historically requested.
type PageCfg struct {
	Products  int
	Customers int
	Orders    int
	Inventory int
}

type Cfg struct {
	Backend BackendCfg
	Server  ServerCfg
	Pages   PageCfg
	// GuardStale enables dropping list responses superseded by a newer
	// request. Off by default to keep last-response-wins behavior.
	GuardStale bool
}

func Load() Cfg {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("BACKEND_BASE_URL", "http://api-yody.vutran.id.vn/api")
	viper.SetDefault("BACKEND_TIMEOUT_SEC", 30)
	viper.SetDefault("PRODUCT_SERVICE_PREFIX", "/product-service")
	viper.SetDefault("ORDER_SERVICE_PREFIX", "/order-service")
	viper.SetDefault("INVENTORY_SERVICE_PREFIX", "/inventory-service")
	viper.SetDefault("IDENTITY_SERVICE_PREFIX", "/identity-service")
	viper.SetDefault("IDENTITY_TOKEN", "")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("PROBE_MAX_WAIT_SEC", 60)
	viper.SetDefault("PAGE_SIZE_PRODUCTS", 100)
	viper.SetDefault("PAGE_SIZE_CUSTOMERS", 10)
	viper.SetDefault("PAGE_SIZE_ORDERS", 100)
	viper.SetDefault("PAGE_SIZE_INVENTORY", 100)
	viper.SetDefault("GUARD_STALE_RESPONSES", false)

	cfg := Cfg{
		Backend: BackendCfg{
			BaseURL:         strings.TrimRight(viper.GetString("BACKEND_BASE_URL"), "/"),
			Timeout:         time.Duration(viper.GetInt("BACKEND_TIMEOUT_SEC")) * time.Second,
			ProductPrefix:   viper.GetString("PRODUCT_SERVICE_PREFIX"),
			OrderPrefix:     viper.GetString("ORDER_SERVICE_PREFIX"),
			InventoryPrefix: viper.GetString("INVENTORY_SERVICE_PREFIX"),
			IdentityPrefix:  viper.GetString("IDENTITY_SERVICE_PREFIX"),
			IdentityToken:   strings.TrimSpace(viper.GetString("IDENTITY_TOKEN")),
		},
		Server: ServerCfg{
			Port:         viper.GetString("APP_PORT"),
			ProbeMaxWait: time.Duration(viper.GetInt("PROBE_MAX_WAIT_SEC")) * time.Second,
		},
		Pages: PageCfg{
			Products:  viper.GetInt("PAGE_SIZE_PRODUCTS"),
			Customers: viper.GetInt("PAGE_SIZE_CUSTOMERS"),
			Orders:    viper.GetInt("PAGE_SIZE_ORDERS"),
			Inventory: viper.GetInt("PAGE_SIZE_INVENTORY"),
		},
		GuardStale: viper.GetBool("GUARD_STALE_RESPONSES"),
	}

	if cfg.Backend.BaseURL == "" {
		log.Fatal().Msg("BACKEND_BASE_URL is required")
	}
	if cfg.Backend.IdentityToken == "" {
		log.Warn().Msg("IDENTITY_TOKEN not set; identity-service calls will be rejected")
	}

	return cfg
}
