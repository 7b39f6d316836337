package widget

import (
	"fmt"

	"github.com/bnema/tvfocus/internal/domain/entity"
	"github.com/bnema/tvfocus/internal/ui/focus"
)

// Container groups widgets under a common origin. Children are laid out in
// container coordinates and registered with managers through proxies.
type Container struct {
	id       string
	bounds   entity.Rect
	children []Widget
}

// NewContainer creates an empty container.
func NewContainer(id string, bounds entity.Rect) *Container {
	return &Container{id: id, bounds: bounds}
}

// ID returns the container identifier.
func (c *Container) ID() string {
	return c.id
}

// Bounds returns the container area in scene coordinates.
func (c *Container) Bounds() entity.Rect {
	return c.bounds
}

// Children returns the nested widgets in insertion order.
func (c *Container) Children() []Widget {
	return c.children
}

// Add nests w and attaches its proxy. Adding a widget that already has a
// parent is an error.
func (c *Container) Add(w Widget) (*focus.Proxy, error) {
	var (
		p    *focus.Proxy
		base *Base
	)
	switch v := w.(type) {
	case *Button:
		p, base = ProxyForButton(v), &v.Base
	case *Slider:
		p, base = ProxyForSlider(v), &v.Base
	case *TextField:
		p, base = ProxyForTextField(v), &v.Base
	default:
		return nil, fmt.Errorf("container %s: unsupported widget %T", c.id, w)
	}
	if base.parent != nil && base.parent != c {
		return nil, fmt.Errorf("container %s: widget %s already nested in %s", c.id, w.ID(), base.parent.id)
	}
	base.parent = c
	c.children = append(c.children, w)
	return p, nil
}
