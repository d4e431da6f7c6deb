package layout

import (
	"gioui.org/layout"
)

// Reverse the order of the provided flex children if shouldReverse is
// true. This flips a leading-edge layout into a trailing-edge one.
func Reverse(shouldReverse bool, items ...layout.FlexChild) []layout.FlexChild {
	if !shouldReverse {
		return items
	}
	for ii := 0; ii < len(items)/2; ii++ {
		tail := len(items) - 1 - ii
		items[ii], items[tail] = items[tail], items[ii]
	}
	return items
}
