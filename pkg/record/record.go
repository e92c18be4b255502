package record

// Record is the canonical intermediate form between pipeline stages: exactly
// three text fields extracted from a raw export entry, plus an optional model
// link when link generation is enabled. Records are created once by the
// builder, possibly dropped by the PII filter, consumed by a renderer, and
// never mutated after creation.
type Record struct {
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description" yaml:"description"`
	SystemPrompt string `json:"system_prompt" yaml:"system_prompt"`

	// Link carries an openwebui://model/<id> reference when the builder runs
	// with model links enabled; empty otherwise and omitted from output.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Columns returns the canonical column order used by tabular renderers.
// The link column appears only when requested.
func Columns(includeLink bool) []string {
	cols := []string{"name", "description", "system_prompt"}
	if includeLink {
		cols = append(cols, "link")
	}
	return cols
}

// Values returns the record's field values in canonical column order.
func (r Record) Values(includeLink bool) []string {
	vals := []string{r.Name, r.Description, r.SystemPrompt}
	if includeLink {
		vals = append(vals, r.Link)
	}
	return vals
}
