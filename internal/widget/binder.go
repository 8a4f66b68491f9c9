package widget

import (
	"context"

	"github.com/dolapay/embed-sdk/internal/bridge"
	"github.com/dolapay/embed-sdk/internal/cart"
	"github.com/dolapay/embed-sdk/internal/dom"
	pkgerrors "github.com/dolapay/embed-sdk/pkg/errors"
	"github.com/dolapay/embed-sdk/pkg/ids"
	"github.com/dolapay/embed-sdk/pkg/logger"
)

// Trigger flag keys on storefront elements.
const (
	keyCartAction = "dolaCartaction"
	keyBuyNow     = "dolaBuynow"
)

// triggerKind is decided once at bind time and never re-evaluated per
// click.
type triggerKind int

const (
	triggerInert triggerKind = iota
	triggerCart
	triggerBuyNow
)

func classify(dataset map[string]string) triggerKind {
	if dataset[keyCartAction] == "true" {
		return triggerCart
	}
	if dataset[keyBuyNow] == "true" {
		return triggerBuyNow
	}
	return triggerInert
}

// Binder wires triggering elements to the assemble-and-send pipeline.
type Binder struct {
	assembler    *cart.Assembler
	bridge       *bridge.Bridge
	handle       *bridge.Handle
	ids          ids.Source
	loadingClass string
	log          *logger.Logger
}

// BinderParams configures a Binder.
type BinderParams struct {
	Assembler    *cart.Assembler
	Bridge       *bridge.Bridge
	Handle       *bridge.Handle
	IDs          ids.Source
	LoadingClass string
	Logger       *logger.Logger
}

func NewBinder(params BinderParams) (*Binder, error) {
	if params.Assembler == nil {
		return nil, pkgerrors.New(pkgerrors.CodeSetup, "assembler required")
	}
	if params.Bridge == nil {
		return nil, pkgerrors.New(pkgerrors.CodeSetup, "bridge required")
	}
	if params.Handle == nil {
		return nil, pkgerrors.New(pkgerrors.CodeSetup, "global handle required")
	}
	if params.IDs == nil {
		return nil, pkgerrors.New(pkgerrors.CodeSetup, "identifier source required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeSetup, "logger required")
	}
	return &Binder{
		assembler:    params.Assembler,
		bridge:       params.Bridge,
		handle:       params.Handle,
		ids:          params.IDs,
		loadingClass: params.LoadingClass,
		log:          params.Logger,
	}, nil
}

// BindAll walks the discovered elements once and binds click handlers by
// trigger kind. An element that already carries an identifier stops the
// whole pass; this mirrors the long-standing loader behavior and callers
// rely on it to make re-runs of BindAll a no-op. The loading marker is
// cleared on every element the pass reaches, trigger or not.
func (b *Binder) BindAll(elements []dom.Element) {
	for _, el := range elements {
		if el.ID() != "" {
			return
		}

		switch classify(el.Dataset()) {
		case triggerCart:
			el.SetID(b.ids.NewID())
			el.OnClick(func() { b.cartFlow(el, elements) })
		case triggerBuyNow:
			el.SetID(b.ids.NewID())
			el.OnClick(func() { b.buyNowFlow(el) })
		}

		el.RemoveClass(b.loadingClass)
	}
}

// buyNowFlow is the single-item click path. Failures are logged and
// swallowed at this boundary; the host page must never crash.
func (b *Binder) buyNowFlow(el dom.Element) {
	ctx := b.log.WithElementID(context.Background(), el.ID())

	cartObject, err := b.assembler.SingleItem(el.Dataset())
	if err != nil {
		b.log.Error(ctx, "error attaching dola to product", err)
		return
	}
	if err := b.bridge.Send(ctx, cartObject, b.handle.ID); err != nil {
		b.log.Error(ctx, "error sending cart", err)
	}
}

// cartFlow is the multi-item click path: currency from the trigger,
// items from every cart-eligible element in the collection.
func (b *Binder) cartFlow(el dom.Element, elements []dom.Element) {
	ctx := b.log.WithElementID(context.Background(), el.ID())

	cartObject, err := b.assembler.FromCollection(el.Dataset(), elements)
	if err != nil {
		b.log.Error(ctx, "error attaching dola to cart", err)
		return
	}
	if err := b.bridge.Send(ctx, cartObject, b.handle.ID); err != nil {
		b.log.Error(ctx, "error sending cart", err)
	}
}
