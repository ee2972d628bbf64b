// Package frame owns the fixed layout of one transmission.
//
// Ownership boundary:
// - region offsets and lead-in/trailer multipliers
// - slicing a timing sequence into regions
// - reading one raw input line
package frame
