package thread

import "testing"

func TestSliceRemove(t *testing.T) {
	type testcase struct {
		name   string
		data   []Element
		index  int
		result []Element
	}
	for _, tc := range []testcase{
		{
			name:   "empty slice",
			data:   []Element{},
			index:  0,
			result: []Element{},
		},
		{
			name:   "nil slice",
			data:   nil,
			index:  0,
			result: nil,
		},
		{
			name: "index out of bounds",
			data: []Element{
				testElement{},
			},
			index: 5,
			result: []Element{
				testElement{},
			},
		},
		{
			name: "single element slice",
			data: []Element{
				testElement{},
			},
			index:  0,
			result: []Element{},
		},
		{
			name: "two element slice (remove first)",
			data: []Element{
				testElement{serial: "a"},
				testElement{serial: "b"},
			},
			index: 0,
			result: []Element{
				testElement{serial: "b"},
			},
		},
		{
			name: "three element slice (remove first)",
			data: []Element{
				testElement{serial: "a"},
				testElement{serial: "b"},
				testElement{serial: "c"},
			},
			index: 0,
			result: []Element{
				testElement{serial: "c"},
				testElement{serial: "b"},
			},
		},
		{
			name: "three element slice (remove middle)",
			data: []Element{
				testElement{serial: "a"},
				testElement{serial: "b"},
				testElement{serial: "c"},
			},
			index: 1,
			result: []Element{
				testElement{serial: "a"},
				testElement{serial: "c"},
			},
		},
		{
			name: "three element slice (remove last)",
			data: []Element{
				testElement{serial: "a"},
				testElement{serial: "b"},
				testElement{serial: "c"},
			},
			index: 2,
			result: []Element{
				testElement{serial: "a"},
				testElement{serial: "b"},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			SliceRemove(&tc.data, tc.index)
			if !elementsEqual(tc.data, tc.result) {
				t.Errorf("expected %v, got %v", tc.result, tc.data)
			}
		})
	}
}

func TestSliceFilter(t *testing.T) {
	type testcase struct {
		name      string
		data      []Element
		predicate func(Element) bool
		result    []Element
	}
	for _, tc := range []testcase{
		{
			name:      "empty slice",
			data:      []Element{},
			predicate: func(_ Element) bool { return true },
			result:    []Element{},
		},
		{
			name:      "nil predicate",
			data:      []Element{testElement{}},
			predicate: nil,
			result:    []Element{testElement{}},
		},
		{
			name: "single element slice remove all",
			data: []Element{
				testElement{},
			},
			predicate: func(_ Element) bool { return false },
			result:    []Element{},
		},
		{
			name: "three element slice (remove middle)",
			data: []Element{
				testElement{serial: "a"},
				testElement{serial: "b"},
				testElement{serial: "c"},
			},
			predicate: func(e Element) bool { return e.Serial() != "b" },
			result: []Element{
				testElement{serial: "a"},
				testElement{serial: "c"},
			},
		},
		{
			name: "three element slice (remove first two)",
			data: []Element{
				testElement{serial: "a"},
				testElement{serial: "b"},
				testElement{serial: "c"},
			},
			predicate: func(e Element) bool { return e.Serial() != "a" && e.Serial() != "b" },
			result: []Element{
				testElement{serial: "c"},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			SliceFilter(&tc.data, tc.predicate)
			if !elementsEqual(tc.data, tc.result) {
				t.Errorf("expected %v, got %v", tc.result, tc.data)
			}
		})
	}
}

func TestSerialSearch(t *testing.T) {
	list := []Element{
		testElement{serial: "a"},
		testElement{serial: ""},
		testElement{serial: ""},
		testElement{serial: "d"},
		testElement{serial: ""},
	}
	type testcase struct {
		name   string
		index  int
		before Serial
		after  Serial
	}
	for _, tc := range []testcase{
		{
			name:   "element with serial",
			index:  0,
			before: "a",
			after:  "a",
		},
		{
			name:   "between serials",
			index:  1,
			before: "a",
			after:  "d",
		},
		{
			name:   "trailing unserialed element",
			index:  4,
			before: "d",
			after:  NoSerial,
		},
		{
			name:   "index past the end",
			index:  10,
			before: "d",
			after:  NoSerial,
		},
		{
			name:   "negative index",
			index:  -2,
			before: "a",
			after:  "a",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := SerialAtOrBefore(list, tc.index); got != tc.before {
				t.Errorf("SerialAtOrBefore(%d): expected %q, got %q", tc.index, tc.before, got)
			}
			if got := SerialAtOrAfter(list, tc.index); got != tc.after {
				t.Errorf("SerialAtOrAfter(%d): expected %q, got %q", tc.index, tc.after, got)
			}
		})
	}
}
