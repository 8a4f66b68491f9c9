// Package memdom is the in-memory reference implementation of the dom
// boundary. It backs the package tests and cmd/embed-demo.
package memdom

import (
	"fmt"
	"sync"

	"github.com/dolapay/embed-sdk/internal/dom"
)

// Page is an in-memory host page.
type Page struct {
	mu          sync.Mutex
	elements    []*Element
	frames      map[string]*Frame
	subscribers []func(dom.Message)
}

func NewPage() *Page {
	return &Page{frames: make(map[string]*Frame)}
}

// AddElement seeds the page with a storefront element carrying the given
// classes and dataset.
func (p *Page) AddElement(dataset map[string]string, classes ...string) *Element {
	el := &Element{
		dataset: cloneDataset(dataset),
		classes: make(map[string]struct{}, len(classes)),
	}
	for _, c := range classes {
		el.classes[c] = struct{}{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.elements = append(p.elements, el)
	return el
}

func (p *Page) InstancesByClass(class string) []dom.Element {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []dom.Element
	for _, el := range p.elements {
		if el.hasClass(class) {
			out = append(out, el)
		}
	}
	return out
}

func (p *Page) FrameByID(id string) (dom.Frame, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	frame, ok := p.frames[id]
	if !ok {
		return nil, false
	}
	return frame, true
}

func (p *Page) CreateFrame(cfg dom.FrameConfig) (dom.Frame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.frames[cfg.ElementID]; exists {
		return nil, fmt.Errorf("frame %q already present", cfg.ElementID)
	}
	frame := &Frame{cfg: cfg, zIndex: cfg.ZIndex, addressable: true}
	p.frames[cfg.ElementID] = frame
	return frame, nil
}

func (p *Page) Subscribe(handler func(dom.Message)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, handler)
}

func (p *Page) Deliver(msg dom.Message) {
	p.mu.Lock()
	handlers := make([]func(dom.Message), len(p.subscribers))
	copy(handlers, p.subscribers)
	p.mu.Unlock()
	for _, handler := range handlers {
		handler(msg)
	}
}

// RemoveFrame detaches a frame, simulating the host tearing the surface
// down underneath the runtime.
func (p *Page) RemoveFrame(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.frames, id)
}

// Element is an in-memory storefront element.
type Element struct {
	mu       sync.Mutex
	id       string
	dataset  map[string]string
	classes  map[string]struct{}
	handlers []func()
}

func (e *Element) ID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id
}

func (e *Element) SetID(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.id = id
}

func (e *Element) Dataset() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneDataset(e.dataset)
}

func (e *Element) RemoveClass(class string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.classes, class)
}

// HasClass reports whether the element still carries the given class.
func (e *Element) HasClass(class string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hasClass(class)
}

func (e *Element) hasClass(class string) bool {
	_, ok := e.classes[class]
	return ok
}

func (e *Element) OnClick(handler func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
}

func (e *Element) Click() {
	e.mu.Lock()
	handlers := make([]func(), len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.Unlock()
	for _, handler := range handlers {
		handler()
	}
}

// HandlerCount reports how many click handlers are bound.
func (e *Element) HandlerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers)
}

// Frame is an in-memory checkout surface. Posts are recorded for
// inspection.
type Frame struct {
	mu          sync.Mutex
	cfg         dom.FrameConfig
	zIndex      int
	addressable bool
	posts       []Post
}

// Post is one recorded content-window delivery.
type Post struct {
	Payload      any
	TargetOrigin string
}

func (f *Frame) Src() string {
	return f.cfg.Src
}

// Config returns the creation-time configuration.
func (f *Frame) Config() dom.FrameConfig {
	return f.cfg
}

func (f *Frame) ZIndex() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.zIndex
}

func (f *Frame) SetZIndex(z int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.zIndex = z
}

func (f *Frame) Post(payload any, targetOrigin string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.addressable {
		return fmt.Errorf("content window not addressable")
	}
	f.posts = append(f.posts, Post{Payload: payload, TargetOrigin: targetOrigin})
	return nil
}

// SetAddressable toggles whether the content window accepts posts.
func (f *Frame) SetAddressable(ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addressable = ok
}

// Posts returns the recorded deliveries in order.
func (f *Frame) Posts() []Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Post, len(f.posts))
	copy(out, f.posts)
	return out
}

func cloneDataset(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
