package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without the pipeline knowing format specifics.
type RenderOptions struct {
	// IncludeLink adds the model link column/key to formats that carry it.
	// The pipeline sets this when the record builder runs with links enabled
	// so every format agrees on the shape of one conversion.
	IncludeLink bool

	// Title labels document-style outputs (markdown, text). Tabular and
	// structured formats ignore it.
	Title string
}
