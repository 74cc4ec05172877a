package catalog

import (
	"regexp"

	"bom-manager/feature/catalog/models"
)

// fastenerPattern matches labels that name purchased hardware: a hyphen
// followed by the fastener kind at the very end of the label. Case-sensitive.
var fastenerPattern = regexp.MustCompile(`-(Screw|Washer|HeatSet|Nut)$`)

// Canonical print palette, exact values as exported by the CAD viewer.
var (
	// ColorMain is teal, the main print color.
	ColorMain = models.Color{0.3333333432674408, 1.0, 1.0, 0.0}
	// ColorAccent is blue, the accent print color.
	ColorAccent = models.Color{0.6666666865348816, 0.6666666865348816, 1.0, 0.0}
)

// fastenerTypeNames maps fastener subtype codes to human-readable prefixes.
var fastenerTypeNames = map[string]string{
	"ISO4762":   "Socket head",
	"ISO7380-1": "Button head",
	"ISO4026":   "Grub",
	"ISO4032":   "Hex",
	"ISO7092":   "Small size",
	"ISO7093-1": "Big size",
	"ISO7089":   "Standard size",
	"ISO7090":   "Standard size",
}

// Classify derives a classified Part from a raw record. It is a pure
// function of (label, color, fastener type): fastener labels win over color,
// then the exact palette colors decide main/accent, everything else is other.
func Classify(rec models.PartRecord) (models.Part, error) {
	key, err := Normalize(rec.Label)
	if err != nil {
		return models.Part{}, err
	}

	// Display cleanup only: drop the auto-increment suffix, keep the rest.
	name := stripTrailingDigits(rec.Label)
	if name == "" {
		name = rec.Label
	}

	category := categoryOf(rec)
	if category == models.CategoryFastener {
		if prefix, ok := fastenerTypeNames[rec.FastenerType]; ok {
			name = prefix + " " + name
		}
	}

	return models.Part{
		Label:    rec.Label,
		Name:     name,
		Key:      key,
		Category: category,
		Document: rec.Document,
		Parent:   rec.Parent,
	}, nil
}

func categoryOf(rec models.PartRecord) models.Category {
	if fastenerPattern.MatchString(rec.Label) {
		return models.CategoryFastener
	}
	switch rec.Color {
	case ColorMain:
		return models.CategoryMain
	case ColorAccent:
		return models.CategoryAccent
	}
	return models.CategoryOther
}
