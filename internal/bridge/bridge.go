// Package bridge carries cart payloads to the checkout surface and reacts
// to the surface's messages. Outbound sends are best-effort one-shots;
// inbound handling trusts the checkout origin and nothing else.
package bridge

import (
	"context"
	"time"

	"github.com/dolapay/embed-sdk/internal/dom"
	"github.com/dolapay/embed-sdk/internal/surface"
	pkgerrors "github.com/dolapay/embed-sdk/pkg/errors"
	"github.com/dolapay/embed-sdk/pkg/logger"
	"github.com/dolapay/embed-sdk/pkg/metrics"
	"github.com/dolapay/embed-sdk/pkg/types"
)

// DefaultPostDelay is the wait before posting a cart, giving the surface's
// internal page time to register its own listener.
const DefaultPostDelay = 350 * time.Millisecond

// Inbound message shapes recognized from the checkout origin.
const (
	actionClose    = "close-dola"
	signalOpened   = "opened-dola"
	signalComplete = "order-complete"
)

const secretPrefix = "dola_"

// Envelope is the outbound wire payload.
type Envelope struct {
	Cart   *types.Cart `json:"cart"`
	Secret string      `json:"secret"`
}

// Scheduler runs fn once after d. The production scheduler is
// time.AfterFunc; tests substitute a synchronous one. There is no
// cancellation and no retry.
type Scheduler func(d time.Duration, fn func())

// Params configures a Bridge.
type Params struct {
	Page     dom.Page
	Origin   string
	Delay    time.Duration
	Schedule Scheduler
	Handle   *Handle
	Logger   *logger.Logger
	Metrics  *metrics.BridgeMetrics
}

// Bridge is the cross-window messaging seam between the storefront and
// the checkout surface.
type Bridge struct {
	page     dom.Page
	origin   string
	delay    time.Duration
	schedule Scheduler
	handle   *Handle
	log      *logger.Logger
	metrics  *metrics.BridgeMetrics
}

func New(params Params) (*Bridge, error) {
	if params.Page == nil {
		return nil, pkgerrors.New(pkgerrors.CodeSetup, "page required")
	}
	if params.Handle == nil {
		return nil, pkgerrors.New(pkgerrors.CodeSetup, "global handle required")
	}
	if params.Origin == "" {
		return nil, pkgerrors.New(pkgerrors.CodeSetup, "checkout origin required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeSetup, "logger required")
	}
	if params.Delay <= 0 {
		params.Delay = DefaultPostDelay
	}
	if params.Schedule == nil {
		params.Schedule = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	}
	return &Bridge{
		page:     params.Page,
		origin:   params.Origin,
		delay:    params.Delay,
		schedule: params.Schedule,
		handle:   params.Handle,
		log:      params.Logger,
		metrics:  params.Metrics,
	}, nil
}

// Send schedules a one-shot delivery of the cart to the checkout surface.
// A missing merchant id fails immediately. At delay expiry the frame is
// looked up by its reserved identity; if it is gone or its content window
// cannot be addressed, the payload is dropped silently.
func (b *Bridge) Send(ctx context.Context, cart *types.Cart, merchantID string) error {
	if merchantID == "" {
		return pkgerrors.New(pkgerrors.CodeSetup, "missing merchant id")
	}

	ctx = b.log.WithMerchantID(ctx, merchantID)
	b.schedule(b.delay, func() {
		frame, ok := b.page.FrameByID(surface.FrameID)
		if !ok {
			b.metrics.IncDropped(merchantID)
			b.log.Debug(ctx, "surface missing at delay expiry, payload dropped")
			return
		}
		envelope := Envelope{Cart: cart, Secret: secretPrefix + merchantID}
		if err := frame.Post(envelope, b.origin); err != nil {
			b.metrics.IncDropped(merchantID)
			b.log.Debug(ctx, "surface not addressable, payload dropped")
			return
		}
		b.metrics.IncPosted(merchantID)
		b.log.Info(ctx, "cart posted to checkout surface")
	})
	return nil
}

// AttachListeners registers the page-lifetime inbound subscription that
// toggles surface visibility and reports order completion. onComplete is
// the no-code-integration extension point; nil means no-op.
func (b *Bridge) AttachListeners(s *surface.Surface, onComplete func()) error {
	if s == nil {
		return pkgerrors.New(pkgerrors.CodeSetup, "surface required")
	}
	if onComplete == nil {
		onComplete = func() {}
	}
	b.page.Subscribe(func(msg dom.Message) {
		b.receive(msg, s, onComplete)
	})
	return nil
}

func (b *Bridge) receive(msg dom.Message, s *surface.Surface, onComplete func()) {
	// Origin filtering is the sole isolation mechanism; foreign messages
	// are not even inspected.
	if msg.Origin != b.origin {
		return
	}

	ctx := b.log.WithOrigin(context.Background(), msg.Origin)

	if action, ok := actionOf(msg.Data); ok && action == actionClose {
		s.Hide()
		b.metrics.IncInbound(actionClose)
		b.log.Debug(ctx, "checkout requested close")
		return
	}

	switch msg.Data {
	case signalOpened:
		s.Show()
		b.metrics.IncInbound(signalOpened)
		b.log.Debug(ctx, "checkout opened")
	case signalComplete:
		b.handle.OrderCompleted = true
		b.metrics.IncInbound(signalComplete)
		b.metrics.IncCompleted()
		b.log.Info(ctx, "order completed")
		onComplete()
	default:
		b.metrics.IncInbound("ignored")
	}
}

// actionOf extracts the "action" field from structured inbound payloads.
func actionOf(data any) (string, bool) {
	switch typed := data.(type) {
	case map[string]any:
		action, ok := typed["action"].(string)
		return action, ok
	case map[string]string:
		action, ok := typed["action"]
		return action, ok
	default:
		return "", false
	}
}
