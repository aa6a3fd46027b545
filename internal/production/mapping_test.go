package production

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryIntents(t *testing.T) {
	registry := DefaultRegistry()

	assert.ElementsMatch(t, []string{"interaction", "dosing"}, registry.Intents())

	_, ok := registry.Lookup("interaction")
	assert.True(t, ok)
	_, ok = registry.Lookup("pregnancy_safety")
	assert.False(t, ok)
}

func TestResolveLookup(t *testing.T) {
	m := InteractionMapping()

	lookup, err := m.ResolveLookup(map[string]string{"drug_a": "warfarin", "drug_b": "aspirin"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"subject_drug": "warfarin", "object_drug": "aspirin"}, lookup)

	_, err = m.ResolveLookup(map[string]string{"drug_a": "warfarin"})
	assert.Error(t, err)

	_, err = m.ResolveLookup(map[string]string{"drug_a": "warfarin", "drug_b": ""})
	assert.Error(t, err)
}

func TestMappedColumnsExcludeDisplayOnlySegments(t *testing.T) {
	m := DosingMapping()

	cols := m.MappedColumns()
	assert.ElementsMatch(t, []string{"dose_value", "frequency", "special_considerations"}, cols)
	assert.NotContains(t, cols, "")
}

func TestFullTable(t *testing.T) {
	assert.Equal(t, "public.document_ddi_pairs", InteractionMapping().FullTable())
	assert.Equal(t, "content.drug_dosing", DosingMapping().FullTable())
}

func TestFormatInteractionSource(t *testing.T) {
	record := map[string]interface{}{
		"subject_drug": "warfarin",
		"object_drug":  "aspirin",
		"set_id":       "abc-123",
		"version":      "4",
		"severity":     "major",
		"mechanism":    "",
		"evidence":     nil,
		"effect":       "Bleeding risk increases.",
		"guidance":     "Avoid the combination.",
		"quotes":       `[{"span_text": "Monitor INR closely.", "section_key": "warnings", "start": 5, "end": 25}]`,
	}

	out := formatInteractionSource(record)

	assert.Equal(t, "warfarin + aspirin", out["Drug Pair"])
	assert.Equal(t, "major", out["Severity"])
	assert.Equal(t, "Not specified", out["Mechanism"])
	assert.Equal(t, "Not specified", out["Evidence Level"])
	assert.Equal(t, "Bleeding risk increases.", out["Effect (S1)"])
	assert.Equal(t, "Avoid the combination.", out["Guidance (S2)"])

	quotes, ok := out["FDA Source Quotes"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Monitor INR closely.", quotes[0]["text"])
	assert.Equal(t, "warnings", quotes[0]["section"])
	assert.Equal(t, "Characters 5-25", quotes[0]["position"])
}

func TestFormatInteractionSourceMalformedQuotes(t *testing.T) {
	record := map[string]interface{}{
		"subject_drug": "warfarin",
		"object_drug":  "aspirin",
		"quotes":       "not json",
	}

	out := formatInteractionSource(record)
	_, ok := out["FDA Source Quotes"]
	assert.False(t, ok)
}
