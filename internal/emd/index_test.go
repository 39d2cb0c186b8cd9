package emd

import "testing"

func TestGroupsPerRow(t *testing.T) {
	tests := []struct {
		width, n, want int
	}{
		{4, 2, 2},
		{5, 2, 2},
		{7, 3, 2},
		{2, 3, 0},
		{10, 0, 0},
	}

	for _, tt := range tests {
		if got := GroupsPerRow(tt.width, tt.n); got != tt.want {
			t.Errorf("GroupsPerRow(%d, %d): got %d, want %d", tt.width, tt.n, got, tt.want)
		}
	}
}

func TestGroupOrigin(t *testing.T) {
	tests := []struct {
		name         string
		i, perRow, n int
		want         Point
	}{
		{"first", 0, 2, 3, Point{0, 0}},
		{"second in row", 1, 2, 3, Point{3, 0}},
		{"wraps to next row", 2, 2, 3, Point{0, 1}},
		{"later row", 5, 2, 3, Point{3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GroupOrigin(tt.i, tt.perRow, tt.n); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGroupOrigin_NeverCrossesRow(t *testing.T) {
	for _, width := range []int{5, 7, 9, 16} {
		for n := 1; n <= 4; n++ {
			perRow := GroupsPerRow(width, n)
			for i := 0; i < perRow*3; i++ {
				o := GroupOrigin(i, perRow, n)
				if o.X+n > width {
					t.Fatalf("width=%d n=%d i=%d: group %+v runs past row end", width, n, i, o)
				}
			}
		}
	}
}
