package production

import (
	"encoding/json"
	"fmt"
)

// InteractionMapping targets the drug-drug interaction pairs table. S4 is the
// source-attribution segment and stays display-only.
func InteractionMapping() Mapping {
	return Mapping{
		Intent: "interaction",
		Schema: "public",
		Table:  "document_ddi_pairs",
		Lookup: []LookupField{
			{Column: "subject_drug", Slot: "drug_a"},
			{Column: "object_drug", Slot: "drug_b"},
		},
		SegmentColumns: map[string]string{
			"S1": "effect_s1",       // Headline answer
			"S2": "guidance",        // Clinical guidance
			"S3": "effect_complete", // Complete explanation
			"S4": "",                // Source attribution, not stored
		},
		FormatSource: formatInteractionSource,
	}
}

type sourceQuote struct {
	SpanText   string `json:"span_text"`
	SectionKey string `json:"section_key"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
}

// formatInteractionSource shapes the raw DDI row into the clinician view:
// pair metadata, FDA label quotes, then the currently-published segment text.
func formatInteractionSource(record map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{
		"Drug Pair":      fmt.Sprintf("%v + %v", record["subject_drug"], record["object_drug"]),
		"FDA Set ID":     record["set_id"],
		"Version":        record["version"],
		"Severity":       orNotSpecified(record["severity"]),
		"Mechanism":      orNotSpecified(record["mechanism"]),
		"Evidence Level": orNotSpecified(record["evidence"]),
	}

	if quotes := parseQuotes(record["quotes"]); len(quotes) > 0 {
		formatted := make([]map[string]interface{}, 0, len(quotes))
		for _, q := range quotes {
			formatted = append(formatted, map[string]interface{}{
				"text":     q.SpanText,
				"section":  q.SectionKey,
				"position": fmt.Sprintf("Characters %d-%d", q.Start, q.End),
			})
		}
		out["FDA Source Quotes"] = formatted
	}

	out["Effect (S1)"] = orEmpty(record["effect"])
	out["Guidance (S2)"] = orEmpty(record["guidance"])

	return out
}

func parseQuotes(raw interface{}) []sourceQuote {
	var data []byte
	switch v := raw.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return nil
	}

	var quotes []sourceQuote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil
	}
	return quotes
}

func orNotSpecified(v interface{}) interface{} {
	if v == nil || v == "" {
		return "Not specified"
	}
	return v
}

func orEmpty(v interface{}) interface{} {
	if v == nil {
		return ""
	}
	return v
}
