package domain

import "time"

// Query is one submitted point together with the region parameter.
type Query struct {
	X float64
	Y float64
	R float64
}

// Result is the outcome of evaluating a Query.
// Elapsed covers the region test only, not the whole request.
type Result struct {
	Query
	Hit     bool
	At      time.Time
	Elapsed time.Duration
}
