package thread

import (
	"image"
	"testing"

	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

type testState struct {
	serial Serial
}

func testContext() layout.Context {
	return layout.Context{
		Ops: new(op.Ops),
		Metric: unit.Metric{
			PxPerDp: 1,
			PxPerSp: 1,
		},
		Constraints: layout.Exact(image.Pt(100, 100)),
		Queue:       new(router.Router),
	}
}

func TestManagerStateAllocation(t *testing.T) {
	var allocations int
	var presented []Serial
	mgr := NewManager(
		func(elem Element) interface{} {
			allocations++
			return &testState{serial: elem.Serial()}
		},
		func(elem Element, adj Adjacency, state interface{}) layout.Widget {
			presented = append(presented, elem.Serial())
			if elem.Serial() != NoSerial {
				if s, ok := state.(*testState); !ok || s.serial != elem.Serial() {
					t.Errorf("element %v presented with state %v", elem.Serial(), state)
				}
			}
			return func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}
		},
		nil,
	)
	mgr.Update([]Element{
		testElement{serial: "a", synthCount: 1},
		testElement{serial: "b", synthCount: 1},
	})
	if mgr.Len() != 2 {
		t.Fatalf("expected 2 managed elements, got %d", mgr.Len())
	}
	gtx := testContext()
	for i := 0; i < mgr.Len(); i++ {
		mgr.Layout(gtx, i)
	}
	if allocations != 2 {
		t.Errorf("expected 2 state allocations, got %d", allocations)
	}
	// Laying out again must reuse the allocated state.
	for i := 0; i < mgr.Len(); i++ {
		mgr.Layout(gtx, i)
	}
	if allocations != 2 {
		t.Errorf("expected state reuse on second layout, got %d allocations", allocations)
	}
	if want := []Serial{"a", "b", "a", "b"}; !serialsEqual(presented, want) {
		t.Errorf("expected presentations %v, got %v", want, presented)
	}
}

func TestManagerUnidentifiedElements(t *testing.T) {
	var allocations int
	mgr := NewManager(
		func(elem Element) interface{} {
			allocations++
			return &testState{}
		},
		func(elem Element, adj Adjacency, state interface{}) layout.Widget {
			if state != nil {
				t.Errorf("expected nil state for unidentified element, got %v", state)
			}
			return func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}
		},
		nil,
	)
	mgr.Update([]Element{
		testElement{serial: "", synthCount: 1},
	})
	mgr.Layout(testContext(), 0)
	if allocations != 0 {
		t.Errorf("expected no allocations for unidentified elements, got %d", allocations)
	}
}

func TestManagerStatePruning(t *testing.T) {
	mgr := NewManager(
		func(elem Element) interface{} {
			return &testState{serial: elem.Serial()}
		},
		func(elem Element, adj Adjacency, state interface{}) layout.Widget {
			return func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}
		},
		nil,
	)
	mgr.Update([]Element{
		testElement{serial: "a", synthCount: 1},
		testElement{serial: "b", synthCount: 1},
	})
	gtx := testContext()
	for i := 0; i < mgr.Len(); i++ {
		mgr.Layout(gtx, i)
	}
	if len(mgr.elementState) != 2 {
		t.Fatalf("expected 2 retained states, got %d", len(mgr.elementState))
	}
	// Dropping an element from the source data must discard its state.
	mgr.Update([]Element{
		testElement{serial: "b", synthCount: 1},
	})
	if _, ok := mgr.elementState["a"]; ok {
		t.Error("expected state for removed element to be pruned")
	}
	if _, ok := mgr.elementState["b"]; !ok {
		t.Error("expected state for retained element to survive the update")
	}
}

func TestManagerSynthesis(t *testing.T) {
	mgr := NewManager(
		func(elem Element) interface{} { return nil },
		func(elem Element, adj Adjacency, state interface{}) layout.Widget {
			return func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}
		},
		testSynthesizer,
	)
	mgr.Update([]Element{
		testElement{serial: "a", synthCount: 2},
		testElement{serial: "b", synthCount: 0},
		testElement{serial: "c", synthCount: 1},
	})
	if mgr.Len() != 3 {
		t.Errorf("expected 3 synthesized elements, got %d", mgr.Len())
	}
	want := []Serial{"a", "a", "c"}
	var got []Serial
	for _, elem := range mgr.Synthesis().Elements {
		got = append(got, elem.Serial())
	}
	if !serialsEqual(got, want) {
		t.Errorf("expected synthesized serials %v, got %v", want, got)
	}
}
