package emd

// Point is a pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GroupsPerRow returns how many whole n-pixel groups fit in a row of the given
// width. Remainder pixels at the end of the row are never carriers.
func GroupsPerRow(width, n int) int {
	if n < 1 || width < 0 {
		return 0
	}
	return width / n
}

// GroupOrigin returns the coordinate of the first pixel of the carrier group
// for digit index i. The group occupies (x..x+n-1, y) within a single row.
//
// No bounds validation is done here; a row at or past the plane height is the
// caller's capacity problem. groupsPerRow must be positive.
func GroupOrigin(i, groupsPerRow, n int) Point {
	return Point{
		X: (i % groupsPerRow) * n,
		Y: i / groupsPerRow,
	}
}
