// Package track derives display-ready rows from annotated alignments: one
// color token and one symbol per rendered cell, plus the assembled matrix a
// renderer draws as a colored track.  It contains no drawing or file-format
// logic.
package track
