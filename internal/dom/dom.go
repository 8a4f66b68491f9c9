// Package dom is the boundary between the widget runtime and the host
// page. The runtime only ever talks to these interfaces; memdom provides
// the in-memory reference implementation used by tests and the demo.
package dom

// Message is a cross-window message as observed by the page listener.
type Message struct {
	Origin string
	Data   any
}

// Element is a storefront element the widget may bind to. Dataset exposes
// the declarative attribute map (camelCase keys, e.g. "dolaId").
type Element interface {
	ID() string
	SetID(id string)
	Dataset() map[string]string
	RemoveClass(class string)
	OnClick(handler func())
	Click()
}

// FrameConfig describes the embedded checkout frame at creation time.
type FrameConfig struct {
	ElementID string
	Src       string
	Width     string
	Height    string
	Border    string
	Lazy      bool
	Position  string
	Top       string
	ZIndex    int
	Overflow  string
}

// Frame is a handle on the embedded checkout surface.
type Frame interface {
	Src() string
	ZIndex() int
	SetZIndex(z int)
	// Post delivers a payload to the frame's content window, addressed to
	// targetOrigin only. It returns an error when the content window is
	// not addressable.
	Post(payload any, targetOrigin string) error
}

// Page abstracts the host document and window.
type Page interface {
	InstancesByClass(class string) []Element
	FrameByID(id string) (Frame, bool)
	CreateFrame(cfg FrameConfig) (Frame, error)
	// Subscribe registers a page-lifetime listener for inbound messages.
	// Listeners are never removed.
	Subscribe(handler func(Message))
	// Deliver dispatches an inbound message to every subscriber. Hosts and
	// tests use it to simulate traffic from the checkout origin.
	Deliver(msg Message)
}
