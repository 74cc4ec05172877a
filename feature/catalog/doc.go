// Package catalog turns the raw CAD assembly export into a classified part
// catalog.
//
// The CAD-side exporter flattens the assembly's document/link graph into a
// list of part records (label, shape color, optional fastener subtype, owning
// document). This package supplies three things on top of that export:
//
//   - Normalize: canonicalizes labels and mesh file names into matching keys
//     (separator cleanup, revision tags, quantity prefixes, auto-increment
//     suffixes).
//   - Classify: assigns each record a BOM category. Fastener labels win over
//     color; the exact teal/blue palette tuples decide printed main/accent;
//     everything else is other. Classification is a pure function of the
//     record.
//   - Walker: the source abstraction for the export (local file, object
//     storage), with an optional GORM-backed cache keyed by source name.
//
// Color comparison is deliberately exact. The palette is assigned
// programmatically in the CAD project, so a near-miss tuple is a different
// color, not a rounding artifact.
package catalog
