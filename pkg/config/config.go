package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Merchant MerchantConfig
	Checkout CheckoutConfig
	Widget   WidgetConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.validateOrigin(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DOLA_APP_ENV" default:"production"`
	LogLevel     string `envconfig:"DOLA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DOLA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// MerchantConfig identifies the storefront owner; the id doubles as the
// path segment of the checkout surface URL and the shared-secret suffix.
type MerchantConfig struct {
	ID string `envconfig:"DOLA_MERCHANT_ID" required:"true"`
}

type CheckoutConfig struct {
	Origin    string        `envconfig:"DOLA_CHECKOUT_ORIGIN" default:"https://checkout.dola.me"`
	PostDelay time.Duration `envconfig:"DOLA_POST_DELAY" default:"350ms"`
}

// SurfaceURL returns the checkout URL loaded into the embedded surface.
func (c CheckoutConfig) SurfaceURL(merchantID string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(c.Origin, "/"), merchantID)
}

type WidgetConfig struct {
	InstanceClass string `envconfig:"DOLA_INSTANCE_CLASS" default:"dola-dola-bills-yall"`
	LoadingClass  string `envconfig:"DOLA_LOADING_CLASS" default:"dola-bep-loading"`
}

func (c *CheckoutConfig) validateOrigin() error {
	origin := strings.TrimSpace(c.Origin)
	if origin == "" {
		return fmt.Errorf("%s must not be empty", EnvCheckoutOrigin)
	}
	if !strings.HasPrefix(origin, "https://") && !strings.HasPrefix(origin, "http://") {
		return fmt.Errorf("%s must be an absolute origin, got %q", EnvCheckoutOrigin, origin)
	}
	c.Origin = strings.TrimRight(origin, "/")
	return nil
}
