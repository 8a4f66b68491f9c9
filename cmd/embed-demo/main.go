package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dolapay/embed-sdk/internal/cart"
	"github.com/dolapay/embed-sdk/internal/dom"
	"github.com/dolapay/embed-sdk/internal/dom/memdom"
	"github.com/dolapay/embed-sdk/internal/surface"
	"github.com/dolapay/embed-sdk/internal/widget"
	"github.com/dolapay/embed-sdk/pkg/config"
	"github.com/dolapay/embed-sdk/pkg/logger"
	"github.com/dolapay/embed-sdk/pkg/metrics"
)

// embed-demo seeds an in-memory storefront page, activates the widget and
// plays the checkout handshake back against it.
func main() {
	logg := logger.New(logger.Options{ServiceName: "embed-demo"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "embed-demo",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	page := memdom.NewPage()
	buyNow := page.AddElement(map[string]string{
		cart.KeyID:                   "prod-001",
		cart.KeyImage:                "https://cdn.example.com/shirt.png",
		cart.KeyQuantity:             "2",
		cart.KeyTitle:                "Demo Shirt",
		cart.KeyPrice:                "1500",
		cart.KeyWeight:               "200",
		cart.KeySKU:                  "SHIRT-001",
		cart.KeyCurrency:             "USD",
		cart.VariantPrefix + "Color": "red",
		cart.VariantPrefix + "Size":  "XL",
		"dolaBuynow":                 "true",
	}, cfg.Widget.InstanceClass, cfg.Widget.LoadingClass)

	registry := prometheus.NewRegistry()
	w, err := widget.Activate(widget.Params{
		Page:    page,
		Config:  cfg,
		Logger:  logg,
		Metrics: metrics.NewBridgeMetrics(registry),
		OnOrderComplete: func() {
			logg.Info(context.Background(), "no-code completion hook fired")
		},
	})
	if err != nil {
		logg.Error(context.Background(), "failed to activate widget", err)
		os.Exit(1)
	}

	ctx := logg.WithMerchantID(context.Background(), w.Handle.ID)
	logg.Info(ctx, "widget activated, simulating a buy-now click")

	buyNow.Click()

	// The bridge waits for the surface's page before posting; give the
	// real timer room to expire.
	time.Sleep(cfg.Checkout.PostDelay + 100*time.Millisecond)

	frame, ok := page.FrameByID(surface.FrameID)
	if !ok {
		logg.Error(ctx, "surface disappeared", nil)
		os.Exit(1)
	}
	for _, post := range frame.(*memdom.Frame).Posts() {
		logg.Info(logg.WithFields(ctx, map[string]any{
			"target_origin": post.TargetOrigin,
			"payload":       post.Payload,
		}), "recorded outbound post")
	}

	page.Deliver(dom.Message{Origin: cfg.Checkout.Origin, Data: "opened-dola"})
	logg.Info(logg.WithField(ctx, "z_index", frame.ZIndex()), "surface after opened-dola")

	page.Deliver(dom.Message{Origin: cfg.Checkout.Origin, Data: "order-complete"})
	page.Deliver(dom.Message{Origin: cfg.Checkout.Origin, Data: map[string]any{"action": "close-dola"}})

	logg.Info(logg.WithFields(ctx, map[string]any{
		"order_completed": w.Handle.OrderCompleted,
		"z_index":         frame.ZIndex(),
	}), "handshake complete")
}
