package raycast

import "testing"

func TestShadeForThresholds(t *testing.T) {
	const depth = 16.0

	tests := []struct {
		name     string
		distance float64
		want     Shade
	}{
		{"touching", 0.1, ShadeFull},
		{"exactly depth/4 is inclusive", depth / 4, ShadeFull},
		{"just past depth/4", depth/4 + 1e-9, ShadeDark},
		{"exactly depth/3 is exclusive", depth / 3, ShadeMedium},
		{"between depth/3 and depth/2", 7, ShadeMedium},
		{"exactly depth/2 is exclusive", depth / 2, ShadeLight},
		{"just under depth", depth - 1e-9, ShadeLight},
		{"exactly depth is blank", depth, ShadeNone},
		{"beyond depth", depth + 3, ShadeNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShadeFor(tc.distance, depth); got != tc.want {
				t.Errorf("ShadeFor(%v) = %q, expected %q", tc.distance, got, tc.want)
			}
		})
	}
}

func TestShadeDensityMonotonic(t *testing.T) {
	density := map[Shade]int{
		ShadeNone:   0,
		ShadeLight:  1,
		ShadeMedium: 2,
		ShadeDark:   3,
		ShadeFull:   4,
	}

	const depth = 16.0
	prev := -1
	// Walk from far to near; density may never drop.
	for d := depth + 1; d > 0; d -= 0.05 {
		cur := density[ShadeFor(d, depth)]
		if cur < prev {
			t.Fatalf("density dropped from %d to %d at distance %v", prev, cur, d)
		}
		prev = cur
	}
	if prev != density[ShadeFull] {
		t.Errorf("nearest distance should be full shade, got density %d", prev)
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		distance    float64
		height      int
		wantCeiling int
		wantFloor   int
	}{
		{16, 40, 17, 23},
		{2, 40, 0, 40},
		{1, 40, -20, 60},
		{7, 10, 3, 7},
	}

	for _, tc := range tests {
		c, f := Band(tc.distance, tc.height)
		if c != tc.wantCeiling || f != tc.wantFloor {
			t.Errorf("Band(%v, %d) = (%d, %d), expected (%d, %d)",
				tc.distance, tc.height, c, f, tc.wantCeiling, tc.wantFloor)
		}
	}
}

func TestBandGrowsAsWallsGetCloser(t *testing.T) {
	prevSize := -1
	for d := 16.0; d >= 0.5; d -= 0.5 {
		c, f := Band(d, 40)
		size := f - c
		if size < prevSize {
			t.Fatalf("band shrank from %d to %d at distance %v", prevSize, size, d)
		}
		prevSize = size
	}
}

func TestFloorShade(t *testing.T) {
	tests := []struct {
		row  int
		want rune
	}{
		{20, ' '}, // horizon
		{22, ' '}, // b = 0.9 is not < 0.9
		{23, '-'},
		{25, '-'}, // b = 0.75
		{26, '.'},
		{30, '.'}, // b = 0.5
		{31, 'X'},
		{35, 'X'}, // b = 0.25
		{36, '#'},
		{39, '#'},
	}

	for _, tc := range tests {
		if got := FloorShade(tc.row, 40); got != tc.want {
			t.Errorf("FloorShade(%d, 40) = %q, expected %q", tc.row, got, tc.want)
		}
	}
}
