// Package emd implements Exploiting Modification Direction (EMD) steganography
// over a single-channel pixel plane.
//
// Each secret digit in a (2n+1)-ary notational system is carried by a group of
// n consecutive pixels in one image row, and at most one pixel of the group is
// increased or decreased by 1 to encode it. The digit carried by a group is the
// weighted sum of its samples modulo 2n+1:
//
//	f(g1, ..., gn) = (1*g1 + 2*g2 + ... + n*gn) mod (2n+1)
//
// The scheme follows Zhang and Wang, "Efficient Steganographic Embedding by
// Exploiting Modification Direction", IEEE Communications Letters 10(11), 2006.
//
// # Layout
//
// Groups are packed row-major: a row of width W holds floor(W/n) groups and any
// remaining pixels at the end of the row are never used as carriers. A group
// therefore never spans two rows.
//
// # Bit Packing
//
// Secrets are expanded most-significant-bit first. Each digit carries
// floor(log2(2n+1)) bits; the final digit is zero-padded on hide and the padding
// is discarded on extract by truncating to exactly 8 bits per requested byte.
//
// # Boundary Pixels
//
// When the pixel that would carry the change is saturated (255 for an increment,
// 0 for a decrement) it is moved one step away from the boundary instead and the
// search is repeated. In that case more than one sample of the group may change.
// HideStats.BoundaryFallbacks counts how often this happened.
//
// # Concurrency
//
// A Codec holds no mutable state and may be shared. Hide mutates the plane it is
// given; callers must not run Hide concurrently on the same plane. Extract and
// Sweep only read from the plane.
package emd
