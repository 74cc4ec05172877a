// Package bom aggregates classified parts into bill-of-materials counts.
//
// Two count structures are maintained per run: a global one and one per
// owning CAD document. Every classified part increments exactly one
// (category, name) cell in each. Off-model consumables (hardware used in the
// physical build but absent from the CAD tree) are injected as fixed
// quantities, including the derived 3030 M6 T-nut count, which equals the
// number of M6 screws in the assembly.
//
// Snapshots are deep copies serialized into the published report files
// (bom-all.json, bom-fasteners.json, bom-printed-parts.json, bom-other.json,
// bom-detail.json), written locally or uploaded to the release bucket.
package bom
