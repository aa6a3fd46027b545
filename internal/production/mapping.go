// Package production declares the static per-intent mapping between reviewed
// answer segments and the authoritative production content tables. The
// registry is closed: adding an intent means adding a Mapping here, nothing
// branches on intent strings elsewhere.
package production

import (
	"fmt"
)

// LookupField derives one column of the composite natural key from the
// item's slot values.
type LookupField struct {
	Column string
	Slot   string
}

// Mapping declares, for one intent, the target table, how its lookup key is
// derived from slots, and which column each segment writes to. Segments
// mapped to an empty column are display-only and never persisted.
type Mapping struct {
	Intent         string
	Schema         string
	Table          string
	Lookup         []LookupField
	SegmentColumns map[string]string

	// FormatSource, when set, turns the raw lookup row into the
	// clinician-facing source view. Nil means the raw row is shown as-is.
	FormatSource func(record map[string]interface{}) map[string]interface{}
}

func (m Mapping) FullTable() string {
	return m.Schema + "." + m.Table
}

// ResolveLookup maps slot values onto lookup columns. A missing slot is a
// data error in the queue item.
func (m Mapping) ResolveLookup(slots map[string]string) (map[string]string, error) {
	values := make(map[string]string, len(m.Lookup))
	for _, f := range m.Lookup {
		v, ok := slots[f.Slot]
		if !ok || v == "" {
			return nil, fmt.Errorf("slot %q required for lookup column %q is missing", f.Slot, f.Column)
		}
		values[f.Column] = v
	}
	return values, nil
}

// MappedColumns lists the persisted target columns in segment-id order.
func (m Mapping) MappedColumns() []string {
	cols := make([]string, 0, len(m.SegmentColumns))
	for _, col := range m.SegmentColumns {
		if col != "" {
			cols = append(cols, col)
		}
	}
	return cols
}

// Registry is the closed intent → mapping table.
type Registry struct {
	mappings map[string]Mapping
}

func NewRegistry(mappings ...Mapping) *Registry {
	r := &Registry{mappings: make(map[string]Mapping, len(mappings))}
	for _, m := range mappings {
		r.mappings[m.Intent] = m
	}
	return r
}

func (r *Registry) Lookup(intent string) (Mapping, bool) {
	m, ok := r.mappings[intent]
	return m, ok
}

func (r *Registry) Intents() []string {
	intents := make([]string, 0, len(r.mappings))
	for intent := range r.mappings {
		intents = append(intents, intent)
	}
	return intents
}

// DefaultRegistry carries every intent the review surface supports.
func DefaultRegistry() *Registry {
	return NewRegistry(InteractionMapping(), DosingMapping())
}
