package widget

import (
	"io"
	"testing"
	"time"

	"github.com/dolapay/embed-sdk/internal/bridge"
	"github.com/dolapay/embed-sdk/internal/cart"
	"github.com/dolapay/embed-sdk/internal/dom"
	"github.com/dolapay/embed-sdk/internal/dom/memdom"
	"github.com/dolapay/embed-sdk/internal/surface"
	"github.com/dolapay/embed-sdk/pkg/config"
	"github.com/dolapay/embed-sdk/pkg/ids"
	"github.com/dolapay/embed-sdk/pkg/logger"
)

const (
	instanceClass = "dola-dola-bills-yall"
	loadingClass  = "dola-bep-loading"
	testOrigin    = "https://checkout.dola.me"
)

type binderFixture struct {
	page   *memdom.Page
	binder *Binder
	tasks  []func()
}

func newBinderFixture(t *testing.T) *binderFixture {
	t.Helper()

	f := &binderFixture{page: memdom.NewPage()}

	mgr, err := surface.NewManager(f.page, config.CheckoutConfig{Origin: testOrigin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := mgr.Ensure("merchant-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	handle := &bridge.Handle{ID: "merchant-1"}
	br, err := bridge.New(bridge.Params{
		Page:   f.page,
		Origin: testOrigin,
		Handle: handle,
		Logger: log,
		Schedule: func(d time.Duration, fn func()) {
			f.tasks = append(f.tasks, fn)
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assembler, err := cart.NewAssembler(ids.NewSource())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	binder, err := NewBinder(BinderParams{
		Assembler:    assembler,
		Bridge:       br,
		Handle:       handle,
		IDs:          ids.NewSource(),
		LoadingClass: loadingClass,
		Logger:       log,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.binder = binder
	return f
}

func (f *binderFixture) drain() {
	for len(f.tasks) > 0 {
		task := f.tasks[0]
		f.tasks = f.tasks[1:]
		task()
	}
}

func (f *binderFixture) posts(t *testing.T) []memdom.Post {
	t.Helper()
	frame, ok := f.page.FrameByID(surface.FrameID)
	if !ok {
		t.Fatal("expected surface frame")
	}
	return frame.(*memdom.Frame).Posts()
}

func buyNowDataset() map[string]string {
	return map[string]string{
		cart.KeyID:       "p1",
		cart.KeyImage:    "i.png",
		cart.KeyQuantity: "2",
		cart.KeyTitle:    "Shirt",
		cart.KeyPrice:    "1500",
		cart.KeyWeight:   "200",
		cart.KeySKU:      "SKU1",
		cart.KeyCurrency: "USD",
		keyBuyNow:        "true",
	}
}

func TestBindAllAssignsIdentifiersAndHandlers(t *testing.T) {
	t.Parallel()

	f := newBinderFixture(t)
	buyNow := f.page.AddElement(buyNowDataset(), instanceClass, loadingClass)

	cartTrigger := buyNowDataset()
	delete(cartTrigger, keyBuyNow)
	cartTrigger[keyCartAction] = "true"
	action := f.page.AddElement(cartTrigger, instanceClass, loadingClass)

	inert := f.page.AddElement(map[string]string{}, instanceClass, loadingClass)

	f.binder.BindAll(f.page.InstancesByClass(instanceClass))

	if buyNow.ID() == "" || action.ID() == "" {
		t.Fatal("expected trigger elements to receive identifiers")
	}
	if buyNow.ID() == action.ID() {
		t.Fatal("expected distinct identifiers")
	}
	if inert.ID() != "" {
		t.Fatal("inert elements must not be identified")
	}
	if buyNow.HandlerCount() != 1 || action.HandlerCount() != 1 {
		t.Fatal("expected exactly one click handler per trigger")
	}
	if inert.HandlerCount() != 0 {
		t.Fatal("inert elements must not get click handlers")
	}
	for _, el := range []*memdom.Element{buyNow, action, inert} {
		if el.HasClass(loadingClass) {
			t.Fatal("loading marker must be cleared regardless of branch")
		}
	}
}

func TestBindAllStopsAtFirstIdentifiedElement(t *testing.T) {
	t.Parallel()

	f := newBinderFixture(t)
	f.page.AddElement(buyNowDataset(), instanceClass, loadingClass)
	bound := f.page.AddElement(buyNowDataset(), instanceClass, loadingClass)
	trailing := f.page.AddElement(buyNowDataset(), instanceClass, loadingClass)

	elements := f.page.InstancesByClass(instanceClass)
	bound.SetID("already-bound")

	f.binder.BindAll(elements)

	// The pass reaches the first element, then halts on the identified one.
	if trailing.ID() != "" || trailing.HandlerCount() != 0 {
		t.Fatal("elements after an identified one must stay untouched")
	}
	if !trailing.HasClass(loadingClass) {
		t.Fatal("halted pass must not clear later loading markers")
	}
	if bound.HandlerCount() != 0 {
		t.Fatal("identified element must not be rebound")
	}
}

func TestBindAllRerunIsNoOp(t *testing.T) {
	t.Parallel()

	f := newBinderFixture(t)
	el := f.page.AddElement(buyNowDataset(), instanceClass, loadingClass)

	elements := f.page.InstancesByClass(instanceClass)
	f.binder.BindAll(elements)
	firstID := el.ID()

	f.binder.BindAll(elements)

	if el.ID() != firstID {
		t.Fatal("identifier must be assigned exactly once")
	}
	if el.HandlerCount() != 1 {
		t.Fatalf("expected a single handler after re-run, got %d", el.HandlerCount())
	}
}

func TestBuyNowClickPostsCart(t *testing.T) {
	t.Parallel()

	f := newBinderFixture(t)
	dataset := buyNowDataset()
	dataset[cart.VariantPrefix+"Color"] = "red"
	el := f.page.AddElement(dataset, instanceClass)

	f.binder.BindAll(f.page.InstancesByClass(instanceClass))
	el.Click()
	f.drain()

	posts := f.posts(t)
	if len(posts) != 1 {
		t.Fatalf("expected one post, got %d", len(posts))
	}
	envelope := posts[0].Payload.(bridge.Envelope)
	if envelope.Secret != "dola_merchant-1" {
		t.Fatalf("unexpected secret %q", envelope.Secret)
	}
	if envelope.Cart.Currency != "USD" || len(envelope.Cart.Items) != 1 {
		t.Fatalf("unexpected cart %+v", envelope.Cart)
	}
	item := envelope.Cart.Items[0]
	if item.SubTotal != 3000 || len(item.VariantInfo) != 1 {
		t.Fatalf("unexpected item %+v", item)
	}
}

func TestCartClickPostsEligibleItemsOnly(t *testing.T) {
	t.Parallel()

	f := newBinderFixture(t)

	itemDataset := buyNowDataset()
	delete(itemDataset, keyBuyNow)
	itemDataset[cart.KeyCartEligible] = "true"
	f.page.AddElement(itemDataset, instanceClass)

	trigger := map[string]string{keyCartAction: "true", cart.KeyCurrency: "NGN"}
	triggerEl := f.page.AddElement(trigger, instanceClass)

	f.binder.BindAll(f.page.InstancesByClass(instanceClass))
	triggerEl.Click()
	f.drain()

	posts := f.posts(t)
	if len(posts) != 1 {
		t.Fatalf("expected one post, got %d", len(posts))
	}
	envelope := posts[0].Payload.(bridge.Envelope)
	if envelope.Cart.Currency != "NGN" {
		t.Fatalf("expected trigger currency, got %q", envelope.Cart.Currency)
	}
	if len(envelope.Cart.Items) != 1 || envelope.Cart.Items[0].ID != "p1" {
		t.Fatalf("unexpected items %+v", envelope.Cart.Items)
	}
}

func TestClickFailureIsSwallowedAndNothingSent(t *testing.T) {
	t.Parallel()

	f := newBinderFixture(t)
	dataset := buyNowDataset()
	delete(dataset, cart.KeyCurrency)
	el := f.page.AddElement(dataset, instanceClass)

	f.binder.BindAll(f.page.InstancesByClass(instanceClass))
	el.Click()
	f.drain()

	if posts := f.posts(t); len(posts) != 0 {
		t.Fatalf("expected no post on assembly failure, got %d", len(posts))
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dataset map[string]string
		want    triggerKind
	}{
		{dataset: map[string]string{keyCartAction: "true"}, want: triggerCart},
		{dataset: map[string]string{keyBuyNow: "true"}, want: triggerBuyNow},
		{dataset: map[string]string{keyCartAction: "true", keyBuyNow: "true"}, want: triggerCart},
		{dataset: map[string]string{keyBuyNow: "false"}, want: triggerInert},
		{dataset: map[string]string{}, want: triggerInert},
	}
	for _, tt := range tests {
		if got := classify(tt.dataset); got != tt.want {
			t.Fatalf("dataset %v: expected %v, got %v", tt.dataset, tt.want, got)
		}
	}
}

var _ dom.Element = (*memdom.Element)(nil)
