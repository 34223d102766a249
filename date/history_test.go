package date

import "testing"

func TestHistoryAppendKeepsSorted(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2024-03-01"), 3)
	h.Append(MustParse("2024-01-01"), 1)
	h.Append(MustParse("2024-02-01"), 2)

	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	first, v := h.Earliest()
	if first != MustParse("2024-01-01") || v != 1 {
		t.Errorf("Earliest = %s %v", first, v)
	}
	last, v := h.Latest()
	if last != MustParse("2024-03-01") || v != 3 {
		t.Errorf("Latest = %s %v", last, v)
	}
}

func TestHistoryAppendOverwrites(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2024-01-01"), 1)
	h.Append(MustParse("2024-01-01"), 9)
	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1", h.Len())
	}
	if v, ok := h.Get(MustParse("2024-01-01")); !ok || v != 9 {
		t.Errorf("Get = %v %v, want 9 true", v, ok)
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2024-01-10"), 10)
	h.Append(MustParse("2024-01-20"), 20)

	tests := []struct {
		on   string
		want float64
		ok   bool
	}{
		{"2024-01-10", 10, true},
		{"2024-01-15", 10, true},
		{"2024-01-20", 20, true},
		{"2024-02-01", 20, true},
		{"2024-01-01", 0, false},
	}
	for _, tt := range tests {
		got, ok := h.ValueAsOf(MustParse(tt.on))
		if got != tt.want || ok != tt.ok {
			t.Errorf("ValueAsOf(%s) = %v %v, want %v %v", tt.on, got, ok, tt.want, tt.ok)
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	var h History[float64]
	if d, v := h.Latest(); !d.IsZero() || v != 0 {
		t.Errorf("Latest on empty = %s %v", d, v)
	}
	if _, ok := h.Get(MustParse("2024-01-01")); ok {
		t.Error("Get on empty should report false")
	}
}
