package models

import "fmt"

// Category is the BOM category a part is counted under.
type Category string

const (
	// CategoryMain is a printed part in the main color (teal).
	CategoryMain Category = "main"
	// CategoryAccent is a printed part in the accent color (blue).
	CategoryAccent Category = "accent"
	// CategoryFastener is purchased hardware (screws, washers, nuts, heat-set inserts).
	CategoryFastener Category = "fastener"
	// CategoryOther is everything else (extrusions, electronics, linked bodies).
	CategoryOther Category = "other"
)

// Categories lists all BOM categories.
var Categories = []Category{CategoryMain, CategoryAccent, CategoryFastener, CategoryOther}

// Color is an RGBA shape color with components in 0..1, as exported from the
// CAD viewer. Values are compared exactly: the palette is set
// programmatically, never measured, so there is no precision concern.
type Color [4]float64

// PartRecord is one flattened entry of the CAD assembly export, produced by
// the exporter script that walks the document/link graph.
type PartRecord struct {
	// Label is the raw CAD object label, possibly carrying an
	// auto-increment suffix (e.g. "M3-Washer004").
	Label string `json:"label"`
	// Color is the object's shape color.
	Color Color `json:"color"`
	// FastenerType is the optional fastener subtype code (e.g. "ISO4762").
	FastenerType string `json:"fastener_type,omitempty"`
	// Document is the label of the owning CAD document.
	Document string `json:"document"`
	// Parent is the label of the containing assembly object, if any.
	Parent string `json:"parent,omitempty"`
}

// Part is a classified part derived from a PartRecord.
type Part struct {
	// Label is the raw CAD label, unchanged.
	Label string `json:"label"`
	// Name is the cleaned display name used as the BOM aggregation key.
	Name string `json:"name"`
	// Key is the normalized matching key. Used only for filename matching,
	// never shown in reports.
	Key string `json:"key"`
	// Category is the BOM category.
	Category Category `json:"category"`
	// Document is the label of the owning CAD document.
	Document string `json:"document"`
	// Parent is the label of the containing assembly object, if any.
	Parent string `json:"parent,omitempty"`
}

func (p Part) String() string {
	return fmt.Sprintf("%s: %s/%s", p.Document, p.Parent, p.Name)
}
