package view

import "github.com/five82/liftoff/internal/dom"

// setLoading makes sure parent shows exactly one loading indicator and
// disables the form's submit button. It returns the indicator and the
// button that was disabled (nil without a form or button).
func setLoading(parent, form *dom.Node) (indicator, button *dom.Node) {
	indicator = parent.Query("." + ClassLoading)
	if indicator == nil {
		indicator = dom.El("div", dom.Attrs{"class": ClassLoading}, textLoading)
		parent.AppendChild(indicator)
	}
	if form == nil {
		return indicator, nil
	}
	button = form.Query("button")
	if button != nil {
		button.SetAttribute("disabled", "disabled")
	}
	return indicator, button
}

// setNotLoading removes the indicator and re-enables button. Indicators that
// were inserted behind our back under parent are removed as well.
func setNotLoading(parent, indicator, button *dom.Node) {
	if indicator != nil {
		indicator.Remove()
	}
	if parent != nil {
		for _, stray := range parent.QueryAll("." + ClassLoading) {
			stray.Remove()
		}
	}
	if button != nil {
		button.RemoveAttribute("disabled")
	}
}
