package schema

// ============================================================================
// SCHEMA — bounded-sample column classification
// ============================================================================
// Datasets arrive with no declared schema; column types are inferred by
// sampling values. The loader uses the result to type raw CSV/Excel cells,
// and the CLI prints it for inspection. Classification is best effort —
// the engine tolerates mixed columns through its coercion rules.
// ============================================================================

// ColumnType is the inferred scalar type of a column.
type ColumnType string

const (
	TypeString ColumnType = "string"
	TypeNumber ColumnType = "number"
	TypeBool   ColumnType = "bool"
	TypeDate   ColumnType = "date"
)

// Column describes one inferred column.
type Column struct {
	Name     string     `json:"name"`
	Type     ColumnType `json:"type"`
	Distinct int        `json:"distinct"` // distinct non-empty values in the sample
	Sampled  int        `json:"sampled"`  // non-empty values inspected
}

// Options controls inference behavior.
type Options struct {
	SampleSize int // max rows to inspect; 0 means DefaultSampleSize
}

// DefaultSampleSize bounds the inference pass.
const DefaultSampleSize = 1000

// classifyThreshold is the share of sampled values that must parse as a
// candidate type before the column adopts it.
const classifyThreshold = 0.9
