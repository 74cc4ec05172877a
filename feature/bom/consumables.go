package bom

import "bom-manager/feature/catalog/models"

// Consumable is an off-model fastener included in the physical build.
type Consumable struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DefaultConsumables lists hardware that never appears in the CAD tree:
// spring washers and bolts for the rail mounts, square nuts and T-nuts for
// the extrusions. The M6 T-nut count is derived per run, not listed here.
var DefaultConsumables = []Consumable{
	{Name: "Spring washer M3", Count: 60},
	{Name: "Socket head M3x10-Screw", Count: 50},
	{Name: "Socket head M3x8-Screw", Count: 10},
	{Name: "Square M3-Nut", Count: 30},
	{Name: "3030 M3-T-nut", Count: 60},
	{Name: "3030 M5-T-nut", Count: 10},
}

// ApplyConsumables adds the fixed quantities to the fastener counters, then
// the derived 3030 M6 T-nut count (one per M6 screw in the assembly).
func (a *Aggregator) ApplyConsumables(items []Consumable) {
	for _, item := range items {
		a.AddFixed(models.CategoryFastener, item.Name, item.Count)
	}
	if count := a.M6TNutCount(); count > 0 {
		a.AddFixed(models.CategoryFastener, "3030 M6-T-nut", count)
	}
}
