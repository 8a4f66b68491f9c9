package bridge

// Handle is the shared storefront-global state: the merchant identity the
// widget was activated for and the order-completion flag. It is injected
// rather than reached ambiently so the bridge stays testable. All access
// happens on the page's single event thread.
type Handle struct {
	ID             string
	OrderCompleted bool
}
