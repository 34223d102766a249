package equitywise

import "testing"

func TestSeriesLookupExactAndWindow(t *testing.T) {
	s := series(t, "exchange rate", map[string]float64{
		"2024-06-10": 83.10,
		"2024-06-14": 83.20,
		"2024-06-17": 83.30,
	})

	tests := []struct {
		name   string
		on     string
		window int
		want   float64
		ok     bool
	}{
		{"exact match", "2024-06-14", 15, 83.20, true},
		{"previous day preferred over next", "2024-06-15", 15, 83.20, true},
		{"one day gap resolves to preceding", "2024-06-11", 15, 83.10, true},
		{"closer next day wins over farther previous", "2024-06-16", 15, 83.30, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Lookup(day(tt.on), tt.window)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Lookup(%s) = %v %v, want %v %v", tt.on, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSeriesLookupWindowBoundary(t *testing.T) {
	// A single point, targets exactly window days away still resolve
	// through the scan; one day farther falls out of the window and
	// clamps to the latest value instead.
	s := series(t, "stock price", map[string]float64{"2024-06-01": 500})

	for _, window := range []int{TransactionLookupWindow, PriceLookupWindow, RateLookupWindow} {
		on := day("2024-06-01").Add(window)
		if got, ok := s.Lookup(on, window); !ok || got != 500 {
			t.Errorf("Lookup(%s, %d) = %v %v, want 500 true", on, window, got, ok)
		}
		// Past the window the latest-value clamp takes over.
		beyond := day("2024-06-01").Add(window + 1)
		if got, ok := s.Lookup(beyond, window); !ok || got != 500 {
			t.Errorf("Lookup(%s, %d) = %v %v, want clamped 500 true", beyond, window, got, ok)
		}
	}
}

func TestSeriesLookupClamps(t *testing.T) {
	// Series contains only 2023-12-29 and 2024-12-30.
	s := series(t, "exchange rate", map[string]float64{
		"2023-12-29": 83.25,
		"2024-12-30": 83.50,
	})

	// 2024-01-01 resolves to the nearest preceding date in window.
	if got, ok := s.Lookup(day("2024-01-01"), RateLookupWindow); !ok || got != 83.25 {
		t.Errorf("Lookup(2024-01-01) = %v %v, want 83.25 true", got, ok)
	}
	// 2025-06-01 is past the latest date and clamps to it.
	if got, ok := s.Lookup(day("2025-06-01"), RateLookupWindow); !ok || got != 83.50 {
		t.Errorf("Lookup(2025-06-01) = %v %v, want 83.50 true", got, ok)
	}
	// Before the earliest date clamps to it.
	if got, ok := s.Lookup(day("2022-01-01"), RateLookupWindow); !ok || got != 83.25 {
		t.Errorf("Lookup(2022-01-01) = %v %v, want 83.25 true", got, ok)
	}
	// Inside the covered range but outside any window: no match.
	if _, ok := s.Lookup(day("2024-06-15"), RateLookupWindow); ok {
		t.Error("Lookup inside a large gap should report no match")
	}
}

func TestSeriesLookupEmpty(t *testing.T) {
	s := NewSeries("exchange rate")
	if _, ok := s.Lookup(day("2024-01-01"), RateLookupWindow); ok {
		t.Error("Lookup on empty series should report no match")
	}
}

func TestSeriesAppendRejectsNonPositive(t *testing.T) {
	s := NewSeries("stock price")
	if err := s.Append(day("2024-01-01"), 0); err == nil {
		t.Error("Append(0) should fail")
	}
	if err := s.Append(day("2024-01-01"), -1); err == nil {
		t.Error("Append(-1) should fail")
	}
}
