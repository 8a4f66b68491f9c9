// Package widget activates the checkout embed on a host page: one
// surface, one message subscription, and a click binding per triggering
// element.
package widget

import (
	"github.com/dolapay/embed-sdk/internal/bridge"
	"github.com/dolapay/embed-sdk/internal/cart"
	"github.com/dolapay/embed-sdk/internal/dom"
	"github.com/dolapay/embed-sdk/internal/surface"
	"github.com/dolapay/embed-sdk/pkg/config"
	pkgerrors "github.com/dolapay/embed-sdk/pkg/errors"
	"github.com/dolapay/embed-sdk/pkg/ids"
	"github.com/dolapay/embed-sdk/pkg/logger"
	"github.com/dolapay/embed-sdk/pkg/metrics"
)

// Params configures widget activation.
type Params struct {
	Page    dom.Page
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.BridgeMetrics
	IDs     ids.Source
	// Schedule overrides the bridge's one-shot scheduler; nil keeps the
	// production timer.
	Schedule bridge.Scheduler
	// OnOrderComplete is the no-code-integration extension point invoked
	// when checkout reports completion. Nil means no-op.
	OnOrderComplete func()
}

// Widget is an activated embed instance.
type Widget struct {
	Handle  *bridge.Handle
	Surface *surface.Surface
	Bridge  *bridge.Bridge
	Binder  *Binder
}

// Activate wires the whole pipeline: create the surface, attach the
// message listeners, discover trigger instances and bind them. Errors
// here are fatal to activation and propagate to the caller.
func Activate(params Params) (*Widget, error) {
	if params.Page == nil {
		return nil, pkgerrors.New(pkgerrors.CodeSetup, "page required")
	}
	if params.Config == nil {
		return nil, pkgerrors.New(pkgerrors.CodeSetup, "config required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeSetup, "logger required")
	}
	if params.IDs == nil {
		params.IDs = ids.NewSource()
	}

	cfg := params.Config
	handle := &bridge.Handle{ID: cfg.Merchant.ID}

	manager, err := surface.NewManager(params.Page, cfg.Checkout)
	if err != nil {
		return nil, err
	}
	surf, err := manager.Ensure(handle.ID)
	if err != nil {
		return nil, err
	}

	br, err := bridge.New(bridge.Params{
		Page:     params.Page,
		Origin:   cfg.Checkout.Origin,
		Delay:    cfg.Checkout.PostDelay,
		Schedule: params.Schedule,
		Handle:   handle,
		Logger:   params.Logger,
		Metrics:  params.Metrics,
	})
	if err != nil {
		return nil, err
	}
	if err := br.AttachListeners(surf, params.OnOrderComplete); err != nil {
		return nil, err
	}

	assembler, err := cart.NewAssembler(params.IDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeSetup, err, "building assembler")
	}

	binder, err := NewBinder(BinderParams{
		Assembler:    assembler,
		Bridge:       br,
		Handle:       handle,
		IDs:          params.IDs,
		LoadingClass: cfg.Widget.LoadingClass,
		Logger:       params.Logger,
	})
	if err != nil {
		return nil, err
	}

	binder.BindAll(params.Page.InstancesByClass(cfg.Widget.InstanceClass))

	return &Widget{
		Handle:  handle,
		Surface: surf,
		Bridge:  br,
		Binder:  binder,
	}, nil
}
