package canvas

import "image/color"

// ColorPickedFunc receives the color sampled by an eyedropper press.
type ColorPickedFunc func(c color.Color)

type colorSubscription struct {
	id int
	fn ColorPickedFunc
}

// SubscribeColorPicked registers fn to run on every eyedropper press, after
// the line color has been updated. Subscribers run in registration order.
// The returned function removes the subscription.
func (e *Engine) SubscribeColorPicked(fn ColorPickedFunc) (cancel func()) {
	e.nextSubID++
	id := e.nextSubID
	e.colorSubs = append(e.colorSubs, colorSubscription{id: id, fn: fn})
	return func() {
		for i, s := range e.colorSubs {
			if s.id == id {
				e.colorSubs = append(e.colorSubs[:i:i], e.colorSubs[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) notifyColorPicked(c color.Color) {
	subs := append([]colorSubscription(nil), e.colorSubs...)
	for _, s := range subs {
		s.fn(c)
	}
}
