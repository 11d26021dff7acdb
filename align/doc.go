// Package align converts pairwise sequence alignments into per-column edit
// annotations.  A Record holds a target (reference) sequence, a query
// sequence and their gapped alignment strings; every alignment column is
// classified as a match, mismatch, insertion or deletion at construction
// time, and the resulting edit row and counts are immutable thereafter.
// Display-oriented derivations (color rows, truncation, plot matrices) live
// in the track package.
package align
