// Package thread provides the caller-side planning for a conversation
// of message rows: adjacency flags relating each message to its
// neighbors, synthetic separator injection, a sorted bounded history
// and a synchronous row manager. Everything in this package is a pure,
// synchronous computation over in-memory elements; no goroutines are
// spawned.
package thread

// Serial uniquely identifies a conversation element.
type Serial string

// NoSerial is a special serial used by elements that do not require a
// unique identifier. Only stateless elements may go without one.
const NoSerial = Serial("")

// Element is a single row of a conversation: a message, a separator,
// or any other horizontal slice of the interface.
type Element interface {
	// Serial returns a unique identifier for the Element, if it has
	// one. In order for an Element to be stateful, it _must_ return a
	// unique Serial. Elements that are not stateful may return
	// NoSerial to indicate that they do not need any state allocated
	// for them.
	Serial() Serial
}

// Start is a pseudo Element that indicates the beginning of the
// conversation. Type assert inside a Synthesizer or Relate to check
// for the list boundary.
type Start struct{}

func (Start) Serial() Serial {
	return Serial("START")
}

// End is a pseudo Element that indicates the end of the conversation.
// Type assert inside a Synthesizer or Relate to check for the list
// boundary.
type End struct{}

func (End) Serial() Serial {
	return Serial("END")
}

// Comparator returns whether element a sorts before element b.
type Comparator func(a, b Element) bool

// SliceRemove takes the given index of a slice and swaps it with the
// final index in the slice, then shortens the slice by one element.
// This hides the element at index from the slice, though it does not
// erase its data.
func SliceRemove(s *[]Element, index int) {
	if s == nil || len(*s) < 1 || index >= len(*s) {
		return
	}
	lastIndex := len(*s) - 1
	(*s)[index], (*s)[lastIndex] = (*s)[lastIndex], (*s)[index]
	*s = (*s)[:lastIndex]
}

// SliceFilter removes elements for which the predicate returns false
// from the slice.
func SliceFilter(s *[]Element, predicate func(elem Element) bool) {
	if predicate == nil {
		return
	}
	// Avoids using a range loop because we modify the slice as we
	// iterate.
	for i := 0; i < len(*s); i++ {
		if predicate((*s)[i]) {
			continue
		}
		SliceRemove(s, i)
		// Check the element at this index again next iteration.
		i--
	}
}

// MakeIndexValid forces the given index to be in bounds for the given
// slice.
func MakeIndexValid(slice []Element, index int) int {
	if index >= len(slice) {
		index = len(slice) - 1
	} else if index < 0 {
		index = 0
	}
	return index
}

// SerialAtOrBefore returns the serial of the element at the given
// index if it is not NoSerial. If it is NoSerial, this function
// iterates backwards towards the beginning of the list, searching for
// the nearest element with a serial. If no serial is found before the
// beginning of the list, NoSerial is returned.
func SerialAtOrBefore(list []Element, index int) Serial {
	for i := MakeIndexValid(list, index); i >= 0; i-- {
		if s := list[i].Serial(); s != NoSerial {
			return s
		}
	}
	return NoSerial
}

// SerialAtOrAfter returns the serial of the element at the given index
// if it is not NoSerial. If it is NoSerial, this function iterates
// forwards towards the end of the list, searching for the nearest
// element with a serial. If no serial is found before the end of the
// list, NoSerial is returned.
func SerialAtOrAfter(list []Element, index int) Serial {
	for i := MakeIndexValid(list, index); i < len(list); i++ {
		if s := list[i].Serial(); s != NoSerial {
			return s
		}
	}
	return NoSerial
}

func min(ints ...int) int {
	lowest := ints[0]
	for i := 1; i < len(ints); i++ {
		if ints[i] < lowest {
			lowest = ints[i]
		}
	}
	return lowest
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
