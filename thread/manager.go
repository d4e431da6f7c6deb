package thread

import "gioui.org/layout"

// Presenter is a function that can transform the data for an Element
// into a widget to be laid out in the user interface. The adjacency
// flags relate the element's source entry to its neighbors; they are
// zero for synthetic elements.
type Presenter func(current Element, adj Adjacency, state interface{}) layout.Widget

// Allocator is a function that can allocate the appropriate state type
// for a given Element.
type Allocator func(current Element) (state interface{})

// Manager presents heterogenous conversation Elements. It owns the
// per-element interactive state, applies a Synthesizer to inject
// synthetic rows, and hands each visible element (with its adjacency
// flags) to a Presenter. All methods must be called from the layout
// goroutine.
type Manager struct {
	// synthesis is the current transformed view of the source
	// elements.
	synthesis Synthesis
	// synthesizer transforms source elements before presentation.
	synthesizer Synthesizer
	// presenter is a function that can transform a single Element into
	// a presentable widget.
	presenter Presenter
	// allocator is a function that can instantiate the state for a
	// particular Element.
	allocator Allocator
	// elementState is a map storing the state for the managed
	// elements.
	elementState map[Serial]interface{}
}

// NewManager constructs a manager with the given hooks. A nil
// synthesizer presents each element unchanged.
func NewManager(allocator Allocator, presenter Presenter, synthesizer Synthesizer) *Manager {
	if synthesizer == nil {
		synthesizer = func(prev, curr, next Element) []Element {
			return []Element{curr}
		}
	}
	return &Manager{
		synthesizer:  synthesizer,
		presenter:    presenter,
		allocator:    allocator,
		elementState: make(map[Serial]interface{}),
	}
}

// Update replaces the managed source elements and re-runs the
// synthesizer. State for elements that are no longer present is
// discarded.
func (m *Manager) Update(elements []Element) {
	m.synthesis = Synthesize(elements, m.synthesizer)
	for serial := range m.elementState {
		if _, ok := m.synthesis.SerialToIndex[serial]; !ok {
			delete(m.elementState, serial)
		}
	}
}

// Synthesis returns the current transformed view of the managed
// elements.
func (m *Manager) Synthesis() Synthesis {
	return m.synthesis
}

// Relate computes the adjacency flags for the element at position
// index within the synthesized list.
func (m *Manager) Relate(index int) Adjacency {
	return m.synthesis.Relate(index)
}

// Layout the Element at position index within the synthesized list.
func (m *Manager) Layout(gtx layout.Context, index int) layout.Dimensions {
	data := m.synthesis.Elements[index]
	serial := data.Serial()
	state, ok := m.elementState[serial]
	if !ok && serial != NoSerial {
		state = m.allocator(data)
		m.elementState[serial] = state
	}
	widget := m.presenter(data, m.synthesis.Relate(index), state)
	return widget(gtx)
}

// Len returns the number of synthesized elements managed by this
// manager.
func (m *Manager) Len() int {
	return len(m.synthesis.Elements)
}
