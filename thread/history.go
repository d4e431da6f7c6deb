package thread

import "sort"

// History is a sorted collection of conversation Elements with a soft
// maximum size. It supports insertion, updating elements in place, and
// removing elements by serial.
type History struct {
	elements []Element
	// Size is the soft cap on the number of retained elements. Trim
	// shrinks the list back towards this size.
	Size int
	Comparator
}

// NewHistory returns a History with the given soft maximum size, using
// the given Comparator to sort its contents.
func NewHistory(size int, comp Comparator) *History {
	return &History{
		Size:       size,
		Comparator: comp,
	}
}

func (h *History) mapping() map[Serial]int {
	serialToRaw := make(map[Serial]int)
	for i, elem := range h.elements {
		serialToRaw[elem.Serial()] = i
	}
	return serialToRaw
}

// Contents returns the sorted elements of the history. The returned
// slice is shared with the history and must not be mutated.
func (h *History) Contents() []Element {
	return h.elements
}

// Len returns the number of retained elements.
func (h *History) Len() int {
	return len(h.elements)
}

// Apply inserts, updates, and removes elements from within the
// contents of the history.
func (h *History) Apply(insertOrUpdate []Element, updateOnly []Element, remove []Serial) {
	serialToRaw := h.mapping()
	// Search insertOrUpdate for elements that already exist within the
	// stored slice.
	SliceFilter(&insertOrUpdate, func(elem Element) bool {
		rawIndex, exists := serialToRaw[elem.Serial()]
		if exists {
			// Update the stored existing element.
			h.elements[rawIndex] = elem
			return false
		}
		return true
	})

	// Update elements if and only if they are present.
	for _, elem := range updateOnly {
		index, isPresent := serialToRaw[elem.Serial()]
		if !isPresent {
			continue
		}
		h.elements[index] = elem
	}

	// Find the index of each element needing removal.
	var targetIndices []int
	for _, serial := range remove {
		idx, ok := serialToRaw[serial]
		if !ok {
			continue
		}
		targetIndices = append(targetIndices, idx)
	}
	// Remove them by swapping and re-slicing, starting from the highest
	// index to ensure that we do not move a removed element into the
	// middle of the list as part of the swap.
	sort.Sort(sort.Reverse(sort.IntSlice(targetIndices)))
	for _, target := range targetIndices {
		SliceRemove(&h.elements, target)
	}

	h.elements = append(h.elements, insertOrUpdate...)
	// Re-sort elements.
	sort.SliceStable(h.elements, func(i, j int) bool {
		return h.Comparator(h.elements[i], h.elements[j])
	})
}

// Trim shrinks the history back towards its soft size cap while
// preserving the region described by [keepStart, keepEnd]. It returns
// the serials of the elements that were discarded. The retained region
// may exceed Size when Size is smaller than 3 times the distance
// between keepStart and keepEnd; in that case Trim keeps the described
// region with the same number of elements on either side.
func (h *History) Trim(keepStart, keepEnd Serial) (discarded []Serial) {
	if len(h.elements) < 1 {
		return nil
	}
	serialToRaw := h.mapping()
	keepStartIdx, ok := serialToRaw[keepStart]
	if !ok || keepStart == NoSerial {
		keepStartIdx = 0
	}
	keepEndIdx, ok := serialToRaw[keepEnd]
	if !ok || keepEnd == NoSerial {
		keepEndIdx = len(h.elements) - 1
	}
	visible := (1 + keepEndIdx - keepStartIdx)
	size := max(h.Size, 3*visible)
	additional := size - visible
	if additional > 0 {
		// Cut the additional size in half, ensuring that no element is
		// lost to integer truncation.
		half := additional / 2
		secondHalf := additional - half
		if keepStartIdx < half {
			// Donate any unused quota at the beginning of the list to
			// the end.
			secondHalf += (half - keepStartIdx)
		}
		if newEnd := keepEndIdx + secondHalf; newEnd >= len(h.elements) {
			// Donate any unused quota at the end of the list to the
			// beginning.
			half += newEnd - (len(h.elements) - 1)
		}
		keepStartIdx = max(keepStartIdx-half, 0)
		keepEndIdx = min(keepEndIdx+secondHalf, len(h.elements)-1)
	}

	// Collect the serials of elements discarded by the trim.
	for i := 0; i < keepStartIdx; i++ {
		discarded = append(discarded, h.elements[i].Serial())
	}
	for i := keepEndIdx + 1; i < len(h.elements); i++ {
		discarded = append(discarded, h.elements[i].Serial())
	}

	// Allocate a new slice to house the data, allowing the older,
	// longer slice to be garbage collected.
	newLength := keepEndIdx - keepStartIdx + 1
	newRaw := make([]Element, newLength)
	copy(newRaw, h.elements[keepStartIdx:keepEndIdx+1])
	h.elements = newRaw

	return discarded
}
