package thread

import (
	"reflect"
	"time"
)

type testElement struct {
	serial     string
	synthCount int
}

func (t testElement) Serial() Serial {
	return Serial(t.serial)
}

// testEntry is a testElement with authorship metadata.
type testEntry struct {
	testElement
	author string
	sent   time.Time
}

func (t testEntry) Author() string {
	return t.author
}

func (t testEntry) Sent() time.Time {
	return t.sent
}

func testSynthesizer(previous, current, next Element) []Element {
	out := []Element{}
	for i := 0; i < current.(testElement).synthCount; i++ {
		out = append(out, current)
	}
	return out
}

func elementsEqual(a, b []Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func serialsEqual(a, b []Serial) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
