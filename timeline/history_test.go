package timeline

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[int64])

	// Test is about appending two values in reverse order and checking that
	// everything is as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(2000, 110)
	if h.Len() != 1 {
		t.Errorf("Append(2000, 110).Len() = %v want 1", h.Len())
	}

	h.Append(1000, 100)
	if h.Len() != 2 {
		t.Errorf("Append(1000, 100).Len() = %v want 2", h.Len())
	}

	if h.stamps[0] != 1000 || h.values[0] != 100 {
		t.Errorf("history[0] = (%v, %v) want (1000, 100)", h.stamps[0], h.values[0])
	}
	if h.stamps[1] != 2000 || h.values[1] != 110 {
		t.Errorf("history[1] = (%v, %v) want (2000, 110)", h.stamps[1], h.values[1])
	}
}

func TestAppend_overwritesSameInstant(t *testing.T) {
	h := new(History[int64])
	h.Append(1000, 100)
	h.Append(1000, 120)

	if h.Len() != 1 {
		t.Fatalf("History.Len() = %v want 1", h.Len())
	}
	if v, ok := h.Get(1000); !ok || v != 120 {
		t.Errorf("Get(1000) = (%v, %v) want (120, true)", v, ok)
	}
}

func TestLatest(t *testing.T) {
	h := new(History[int64])

	if stamp, v := h.Latest(); stamp != 0 || v != 0 {
		t.Errorf("empty Latest() = (%v, %v) want (0, 0)", stamp, v)
	}

	h.Append(2000, 110).Append(1000, 100)
	if stamp, v := h.Latest(); stamp != 2000 || v != 110 {
		t.Errorf("Latest() = (%v, %v) want (2000, 110)", stamp, v)
	}
}

func TestUnion(t *testing.T) {
	h := new(History[int64])
	h.Append(1000, 100).Append(2000, 110)

	other := new(History[int64])
	other.Append(2000, 999).Append(3000, 120)

	added := h.Union(other)
	if added != 1 {
		t.Errorf("Union() added = %v want 1", added)
	}
	if h.Len() != 3 {
		t.Fatalf("History.Len() = %v want 3", h.Len())
	}
	// The receiver's value wins over the incoming one at the same instant.
	if v, _ := h.Get(2000); v != 110 {
		t.Errorf("Get(2000) = %v want the receiver's 110", v)
	}
	if v, _ := h.Get(3000); v != 120 {
		t.Errorf("Get(3000) = %v want 120", v)
	}

	// Union with the same history again is a no-op.
	if added := h.Union(other); added != 0 {
		t.Errorf("second Union() added = %v want 0", added)
	}
}

func TestValues_chronological(t *testing.T) {
	h := new(History[int64])
	h.Append(3000, 120).Append(1000, 100).Append(2000, 110)

	var stamps []int64
	for on := range h.Values() {
		stamps = append(stamps, on)
	}
	for i := 1; i < len(stamps); i++ {
		if stamps[i-1] >= stamps[i] {
			t.Fatalf("Values() not chronological: %v", stamps)
		}
	}
}
