// Package rim compiles a fold assignment on the outer ring of a grid into
// pre-crease edges for the inner cells.
//
// The ring surrounding a w×w grid of cells has 4(w+1) vertices, numbered
// clockwise from the top-left corner: side k ∈ {top, right, bottom, left}
// holds vertices k(w+1) … k(w+1)+w. Every non-corner ring vertex carries a
// fold value in [0,7]; bit j is the crease along the j-th inward edge of that
// vertex. Ring corners carry no inward edges.
//
// PreCrease also forbids the outward diagonal at each of the four corner
// cells, so the square's corners are never folded to 45°.
package rim
