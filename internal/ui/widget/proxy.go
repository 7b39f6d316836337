package widget

import "github.com/bnema/tvfocus/internal/ui/focus"

// ProxyForButton attaches a proxy to b, reusing one already attached.
func ProxyForButton(b *Button) *focus.Proxy {
	return attachProxy(&b.Base, b)
}

// ProxyForTextField attaches a proxy to t, reusing one already attached.
func ProxyForTextField(t *TextField) *focus.Proxy {
	return attachProxy(&t.Base, t)
}

// ProxyForSlider attaches a proxy to s, reusing one already attached.
func ProxyForSlider(s *Slider) *focus.Proxy {
	return attachProxy(&s.Base, s)
}

func attachProxy(base *Base, c focus.Control) *focus.Proxy {
	if base.proxy == nil {
		base.proxy = focus.ProxyFor(c)
	}
	return base.proxy
}
