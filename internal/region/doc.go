// Package region implements the point-in-region test.
//
// The region for a given r is the union of a triangle in the first quadrant,
// a rectangle in the fourth quadrant and a quarter disk in the third quadrant.
// Boundaries belong to the region.
package region
