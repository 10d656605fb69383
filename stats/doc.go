// Package stats provides descriptive statistics and distribution summaries
// used across the library: NaN-aware aggregates, robust scale estimates,
// rescaling, kernel density estimation and highest density intervals.
// Missing values are represented as NaN; the NaN-aware variants skip them
// instead of poisoning the aggregate.
package stats
