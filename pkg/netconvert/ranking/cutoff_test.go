package ranking

import "testing"

func TestSelectCutoff(t *testing.T) {
	tests := []struct {
		name       string
		cumulative []float64
		expected   int
	}{
		{"empty", nil, -1},
		{"exact target", []float64{80, 100}, 0},
		{"second row", []float64{50, 80, 100}, 1},
		{"single row", []float64{100}, 0},
		{"band preferred over nearer outside", []float64{77, 89, 100}, 1},
		{"lower band edge", []float64{60, 78, 100}, 1},
		{"upper band edge", []float64{60, 90, 100}, 1},
		{"no band uses nearest", []float64{40, 95, 100}, 1},
		{"tie goes to lowest index", []float64{70, 79, 81, 100}, 1},
		{"tie outside band", []float64{69, 91, 100}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectCutoff(tt.cumulative)
			if got != tt.expected {
				t.Errorf("SelectCutoff(%v) = %d, expected %d", tt.cumulative, got, tt.expected)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{80, 80},
		{66.666666, 66.67},
		{33.333333, 33.33},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.expected {
			t.Errorf("Round2(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}
