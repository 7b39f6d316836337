package focus

import "github.com/bnema/tvfocus/internal/domain/entity"

// Proxy stands in for a control that cannot be registered with a manager
// directly. Every call is forwarded to the wrapped control.
type Proxy struct {
	control Control
}

// ProxyFor returns a proxy delegating to control.
func ProxyFor(control Control) *Proxy {
	return &Proxy{control: control}
}

// Control returns the wrapped control.
func (p *Proxy) Control() Control {
	return p.control
}

func (p *Proxy) Enabled() bool { return p.control.Enabled() }
func (p *Proxy) SetEnabled(enabled bool) { p.control.SetEnabled(enabled) }
func (p *Proxy) Focused() bool { return p.control.Focused() }
func (p *Proxy) SetFocused(focused bool) { p.control.SetFocused(focused) }
func (p *Proxy) WantsAngleOfTouch() bool { return p.control.WantsAngleOfTouch() }
func (p *Proxy) WantsControlOfTouch() bool { return p.control.WantsControlOfTouch() }
func (p *Proxy) ResetFocus() { p.control.ResetFocus() }
func (p *Proxy) Activate() { p.control.Activate() }
func (p *Proxy) Position() entity.Point { return p.control.Position() }

func (p *Proxy) SetAngleOfTouch(angle, radius float64, first, last bool) {
	p.control.SetAngleOfTouch(angle, radius, first, last)
}

// PlayerDidPressPlayPause forwards to the wrapped control if it listens.
func (p *Proxy) PlayerDidPressPlayPause() {
	if n, ok := p.control.(PlayPauseNotifiee); ok {
		n.PlayerDidPressPlayPause()
	}
}

// Contains forwards hit testing; controls without an area never match.
func (p *Proxy) Contains(pt entity.Point) bool {
	if h, ok := p.control.(HitTester); ok {
		return h.Contains(pt)
	}
	return false
}

// unwrap resolves a node to the control a manager should track.
func unwrap(node any) (Control, bool) {
	if px, ok := node.(Proxied); ok {
		if c := px.Proxy(); c != nil {
			return c, true
		}
	}
	c, ok := node.(Control)
	return c, ok
}

var (
	_ Control           = (*Proxy)(nil)
	_ PlayPauseNotifiee = (*Proxy)(nil)
	_ HitTester         = (*Proxy)(nil)
)
