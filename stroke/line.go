package stroke

// Line walks the integer approximation of the segment from (x1, y1) to
// (x2, y2) and calls plot for every pixel on it, both end points included.
// The axis with the larger delta is the major axis: it advances by one on
// every step while an error accumulator decides when the minor axis follows.
// The resulting pixels are 8-connected for any slope and direction.
func Line(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx, dy := x2-x1, y2-y1
	stepX, stepY := sign(dx), sign(dy)

	dx, dy = absInt(dx)<<1, absInt(dy)<<1

	plot(x1, y1)

	if dx > dy {
		fraction := dy - (dx >> 1)
		for x1 != x2 {
			if fraction >= 0 {
				y1 += stepY
				fraction -= dx
			}
			x1 += stepX
			fraction += dy
			plot(x1, y1)
		}
	} else {
		fraction := dx - (dy >> 1)
		for y1 != y2 {
			if fraction >= 0 {
				x1 += stepX
				fraction -= dy
			}
			y1 += stepY
			fraction += dx
			plot(x1, y1)
		}
	}
}

// adjacent reports whether two points touch, including the diagonal and the
// point itself.
func adjacent(x1, y1, x2, y2 int) bool {
	return absInt(x2-x1) <= 1 && absInt(y2-y1) <= 1
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
