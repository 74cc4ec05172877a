// Package printcheck reconciles exported mesh files against the part
// catalog.
//
// Each file base name is matched through a four-tier cascade (substring both
// ways, then fuzzy above a cutoff, then best fuzzy score) and reduced to a
// verdict: one of the two print colors, or missing, unknown, conflicting.
// Verdicts are bucketed into five disjoint lists whose sizes must sum to the
// number of input files.
//
// Files come either from a local checkout via a glob pattern or from the
// release bucket. Results are written as one color-results file per bucket
// plus a count overview, mirroring what the documentation build consumes.
package printcheck
