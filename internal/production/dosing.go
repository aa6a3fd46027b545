package production

// DosingMapping targets the curated dosing table. The raw lookup row is
// already clinician-readable, so no source formatter is declared.
func DosingMapping() Mapping {
	return Mapping{
		Intent: "dosing",
		Schema: "content",
		Table:  "drug_dosing",
		Lookup: []LookupField{
			{Column: "drug_id", Slot: "drug"},
			{Column: "indication", Slot: "indication"},
		},
		SegmentColumns: map[string]string{
			"S1": "dose_value",             // Dose headline
			"S2": "frequency",              // Frequency/administration
			"S3": "special_considerations", // Additional context
			"S4": "",                       // Source, not stored
		},
	}
}
