// Package complexity implements approximate entropy and the selection of
// its tolerance parameter r, either by convention (0.2 standard deviations)
// or by sweeping a grid of candidate tolerances and keeping the one that
// maximizes the entropy estimate.
package complexity
