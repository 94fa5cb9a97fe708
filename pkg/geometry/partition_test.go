package geometry

import "testing"

func TestPartition(t *testing.T) {
	type tc struct {
		extent   int
		ratios   []float64
		minWidth int
		expected []int
	}

	tests := map[string]tc{
		"even two-way": {
			extent:   100,
			ratios:   []float64{0.5, 0.5},
			expected: []int{50, 50},
		},
		"last child absorbs remainder": {
			// 0.7*1000 would round to 700 on its own; the last entry
			// must be computed as the remainder instead.
			extent:   1000,
			ratios:   []float64{0.3, 0.7},
			expected: []int{300, 700},
		},
		"odd extent remainder": {
			extent:   101,
			ratios:   []float64{0.5, 0.5},
			expected: []int{51, 50},
		},
		"thirds tile exactly": {
			extent:   100,
			ratios:   []float64{1.0 / 3, 1.0 / 3, 1.0 / 3},
			expected: []int{33, 33, 34},
		},
		"single child takes everything": {
			extent:   77,
			ratios:   []float64{1},
			expected: []int{77},
		},
		"zero extent": {
			extent:   0,
			ratios:   []float64{0.5, 0.5},
			expected: []int{0, 0},
		},
		"minimum raises small child": {
			// 0.05*100 = 5 < 20; the deficit comes out of the big child.
			extent:   100,
			ratios:   []float64{0.05, 0.95},
			minWidth: 20,
			expected: []int{20, 80},
		},
		"minimum infeasible overflows": {
			extent:   50,
			ratios:   []float64{0.5, 0.3, 0.2},
			minWidth: 30,
			expected: []int{30, 30, 30},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Partition(tt.extent, tt.ratios, tt.minWidth)
			if len(got) != len(tt.expected) {
				t.Fatalf("Partition returned %d widths, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("width[%d] = %d, want %d (all: %v)", i, got[i], tt.expected[i], got)
				}
			}
		})
	}
}

func TestPartition_AlwaysTilesExactly(t *testing.T) {
	// Sweep extents and ratio shapes; without a minimum the widths must
	// sum to the extent every single time.
	shapes := [][]float64{
		{0.5, 0.5},
		{0.3, 0.7},
		{0.25, 0.25, 0.5},
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
		{0.1, 0.2, 0.3, 0.4},
		{0.15, 0.35, 0.05, 0.45},
	}
	for extent := 0; extent <= 311; extent++ {
		for _, ratios := range shapes {
			widths := Partition(extent, ratios, 0)
			sum := 0
			for i, w := range widths {
				if w < 0 {
					t.Fatalf("extent=%d ratios=%v: width[%d] = %d is negative", extent, ratios, i, w)
				}
				sum += w
			}
			if sum != extent {
				t.Fatalf("extent=%d ratios=%v: widths %v sum to %d", extent, ratios, widths, sum)
			}
		}
	}
}

func TestPartition_MinimumFeasibleStillTiles(t *testing.T) {
	ratios := []float64{0.05, 0.15, 0.8}
	for extent := 100; extent <= 400; extent += 7 {
		widths := Partition(extent, ratios, 25)
		sum := 0
		for i, w := range widths {
			if w < 25 {
				t.Fatalf("extent=%d: width[%d] = %d below minimum", extent, i, w)
			}
			sum += w
		}
		if sum != extent {
			t.Fatalf("extent=%d: widths %v sum to %d", extent, widths, sum)
		}
	}
}
