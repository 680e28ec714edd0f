package region

import "github.com/linaank/web1/internal/domain"

// Contains reports whether (x, y) lies inside the region parameterized by r.
// r is expected to be positive; comparisons are exact.
func Contains(x, y, r float64) bool {
	return inTriangle(x, y, r) || inRectangle(x, y, r) || inQuarterDisk(x, y, r)
}

// Evaluate is Contains applied to a Query.
func Evaluate(q domain.Query) bool {
	return Contains(q.X, q.Y, q.R)
}

// inTriangle: vertices (0,0), (r,0), (0,r).
func inTriangle(x, y, r float64) bool {
	return x >= 0 && y >= 0 && y <= -x+r
}

// inRectangle: x in [0, r/2], y in [-r, 0].
func inRectangle(x, y, r float64) bool {
	return x >= 0 && x <= r/2 && y <= 0 && y >= -r
}

// inQuarterDisk: radius r/2 around the origin, third quadrant.
func inQuarterDisk(x, y, r float64) bool {
	return x <= 0 && y <= 0 && x*x+y*y <= r*r/4
}
