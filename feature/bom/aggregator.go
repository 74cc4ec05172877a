package bom

import (
	"strings"

	"bom-manager/feature/catalog/models"
)

// Counters maps category -> display name -> count. Entries spring into
// existence at count 1; a zero count is never stored.
type Counters map[models.Category]map[string]int

func newCounters() Counters {
	c := make(Counters, len(models.Categories))
	for _, cat := range models.Categories {
		c[cat] = map[string]int{}
	}
	return c
}

func (c Counters) add(cat models.Category, name string, count int) {
	names, ok := c[cat]
	if !ok {
		names = map[string]int{}
		c[cat] = names
	}
	names[name] += count
}

func (c Counters) clone() Counters {
	out := make(Counters, len(c))
	for cat, names := range c {
		copied := make(map[string]int, len(names))
		for name, count := range names {
			copied[name] = count
		}
		out[cat] = copied
	}
	return out
}

// Aggregator accumulates BOM counts, globally and per owning document.
// One aggregator instance belongs to one run; it is not safe for concurrent
// use.
type Aggregator struct {
	global     Counters
	byDocument map[string]Counters
}

// NewAggregator creates an empty aggregator with all categories initialized.
func NewAggregator() *Aggregator {
	return &Aggregator{
		global:     newCounters(),
		byDocument: map[string]Counters{},
	}
}

// Add counts a classified part: exactly one (category, name) cell in the
// global counters and one in the owning document's counters.
func (a *Aggregator) Add(p models.Part) {
	a.global.add(p.Category, p.Name, 1)

	doc, ok := a.byDocument[p.Document]
	if !ok {
		doc = newCounters()
		a.byDocument[p.Document] = doc
	}
	doc.add(p.Category, p.Name, 1)
}

// AddFixed injects a known quantity directly into the global counters, for
// hardware used in the physical build but absent from the CAD tree. It is
// additive, not idempotent: calling twice doubles the count.
func (a *Aggregator) AddFixed(cat models.Category, name string, count int) {
	a.global.add(cat, name, count)
}

// M6TNutCount derives the number of 3030 M6 T-nuts: one per M6 screw, so the
// sum of all fastener counts whose name contains both "Screw" and "M6".
// Substring containment is deliberate; names carry size and head prefixes.
func (a *Aggregator) M6TNutCount() int {
	total := 0
	for name, count := range a.global[models.CategoryFastener] {
		if strings.Contains(name, "Screw") && strings.Contains(name, "M6") {
			total += count
		}
	}
	return total
}

// Snapshot captures the aggregator state for serialization. The nested maps
// are deep copies; mutating the snapshot does not affect the aggregator.
// JSON encoding emits map keys in sorted order at every level, which keeps
// written reports stable across runs.
type Snapshot struct {
	Global     Counters            `json:"global"`
	ByDocument map[string]Counters `json:"by_document"`
}

// Snapshot returns a deep copy of the current counts.
func (a *Aggregator) Snapshot() Snapshot {
	byDoc := make(map[string]Counters, len(a.byDocument))
	for doc, counters := range a.byDocument {
		byDoc[doc] = counters.clone()
	}
	return Snapshot{
		Global:     a.global.clone(),
		ByDocument: byDoc,
	}
}
