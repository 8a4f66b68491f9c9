// Package surface owns the embedded checkout frame: one per page,
// created hidden, toggled between foreground and background z-order by
// the messaging bridge.
package surface

import (
	"github.com/dolapay/embed-sdk/internal/dom"
	"github.com/dolapay/embed-sdk/pkg/config"
	pkgerrors "github.com/dolapay/embed-sdk/pkg/errors"
)

// FrameID is the reserved element identity of the checkout frame.
const FrameID = "dolapayIframe"

const (
	// zIndexInitial stacks the freshly created frame behind all content.
	zIndexInitial = -9999
	// zIndexActive brings the frame to the foreground.
	zIndexActive = 99999
	// zIndexHidden pushes the frame back once checkout closes.
	zIndexHidden = -99999
)

// Manager creates and looks up the page's single checkout surface.
type Manager struct {
	page     dom.Page
	checkout config.CheckoutConfig
}

func NewManager(page dom.Page, checkout config.CheckoutConfig) (*Manager, error) {
	if page == nil {
		return nil, pkgerrors.New(pkgerrors.CodeSetup, "page required")
	}
	return &Manager{page: page, checkout: checkout}, nil
}

// Ensure creates the checkout surface for the merchant. It fails when a
// frame with the reserved identity already exists; repeated creation is
// never silently tolerated.
func (m *Manager) Ensure(merchantID string) (*Surface, error) {
	if merchantID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeSetup, "missing merchant id")
	}
	if _, exists := m.page.FrameByID(FrameID); exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "Iframe already exists")
	}

	frame, err := m.page.CreateFrame(dom.FrameConfig{
		ElementID: FrameID,
		Src:       m.checkout.SurfaceURL(merchantID),
		Width:     "100%",
		Height:    "100%",
		Border:    "none",
		Lazy:      true,
		Position:  "fixed",
		Top:       "0",
		ZIndex:    zIndexInitial,
		Overflow:  "hidden",
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeSetup, err, "error creating dola iframe")
	}
	return &Surface{frame: frame}, nil
}

// Surface is the live checkout frame handle.
type Surface struct {
	frame dom.Frame
}

// Show brings the frame to the foreground. No other property changes.
func (s *Surface) Show() {
	s.frame.SetZIndex(zIndexActive)
}

// Hide pushes the frame behind the page content.
func (s *Surface) Hide() {
	s.frame.SetZIndex(zIndexHidden)
}

// Visible reports whether the frame is currently in the foreground.
func (s *Surface) Visible() bool {
	return s.frame.ZIndex() > 0
}

// Frame exposes the underlying dom handle.
func (s *Surface) Frame() dom.Frame {
	return s.frame
}
